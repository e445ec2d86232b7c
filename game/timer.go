package game

import (
	"time"
)

const (
	TimerIntervalMS = 250
	GameTimeoutMS   = 120 * 1000
)

// Timer 对局定时器, 由宿主周期调用OnTick驱动;
// 引擎本身不等墙上时钟
type Timer struct {
	triggerTime time.Time
	callback    func()
}

func NewTimer() *Timer {
	return &Timer{}
}

// Schedule 安排定时任务
func (t *Timer) Schedule(delay time.Duration, callback func()) {
	t.triggerTime = time.Now().Add(delay)
	t.callback = callback
}

// Cancel 取消定时任务
func (t *Timer) Cancel() {
	t.callback = nil
}

// OnTick 定时器触发时的处理
func (t *Timer) OnTick() {
	if t.callback == nil {
		return
	}
	if time.Now().After(t.triggerTime) {
		callback := t.callback
		t.callback = nil
		callback()
	}
}
