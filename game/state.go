package game

import (
	"errors"
	"time"

	"google.golang.org/protobuf/proto"
)

type IState interface {
	OnEnter()
	OnPlayerMsg(seat int32, req proto.Message) error
}

// State 游戏状态基类
type State struct {
	game       *Game
	msgHandler func(seat int32, req proto.Message) error
}

func NewState(game *Game) *State {
	return &State{
		game:       game,
		msgHandler: nil,
	}
}

// AsyncMsgTimer 等待玩家消息, 超时走onTimeout
func (s *State) AsyncMsgTimer(
	handler func(seat int32, req proto.Message) error,
	timeout time.Duration,
	onTimeout func(),
) {
	s.msgHandler = handler
	s.game.timer.Schedule(timeout, onTimeout)
}

// AsyncTimer 纯延时
func (s *State) AsyncTimer(timeout time.Duration, onTimeout func()) {
	s.msgHandler = nil
	s.game.timer.Schedule(timeout, onTimeout)
}

func (s *State) OnPlayerMsg(seat int32, req proto.Message) error {
	if s.msgHandler != nil {
		return s.msgHandler(seat, req)
	}
	return errors.New("msgHandler is nil")
}
