package mahjong

// Claim 抢牌窗口内一次待决的申请
type Claim struct {
	Seat    int32
	Operate int32
	Tile    Tile
}

// ClaimWindow 出牌后的抢牌窗口. 窗口本身不计时不阻塞:
// 调用方可等所有座位表态(Resolved), 也可到时直接Resolve,
// 只要提交集合相同, 裁决结果与提交顺序无关
type ClaimWindow struct {
	discarder int32
	tile      Tile
	seatCount int32
	robKon    bool
	allowed   []*Operates // 各座位的可抢集合, 出牌方为nil
	responded []bool
	pending   []Claim
	closed    bool
}

func newClaimWindow(discarder int32, tile Tile, seatCount int32, robKon bool) *ClaimWindow {
	return &ClaimWindow{
		discarder: discarder,
		tile:      tile,
		seatCount: seatCount,
		robKon:    robKon,
		allowed:   make([]*Operates, seatCount),
		responded: make([]bool, seatCount),
		pending:   make([]Claim, 0),
	}
}

func (w *ClaimWindow) Tile() Tile {
	return w.tile
}

func (w *ClaimWindow) Discarder() int32 {
	return w.discarder
}

func (w *ClaimWindow) setAllowed(seat int32, opt *Operates) {
	w.allowed[seat] = opt
	// 无可抢操作的座位视同已表态
	if !opt.HasOperate(OperateChow | OperatePon | OperateKon | OperateHu) {
		w.responded[seat] = true
	}
}

// Allowed 某座位的可抢集合, 供上层决定亮哪些按钮
func (w *ClaimWindow) Allowed(seat int32) *Operates {
	if seat < 0 || seat >= w.seatCount || w.allowed[seat] == nil {
		return NewOperates()
	}
	return w.allowed[seat]
}

// Submit 座位提交一项申请, 先对可抢集合校验, 不合法即拒绝
func (w *ClaimWindow) Submit(seat int32, operate int32) error {
	if seat < 0 || seat >= w.seatCount || seat == w.discarder {
		return ErrInvalidSeat
	}
	if w.closed {
		return ErrClaimClosed
	}
	if w.responded[seat] {
		return ErrSeatResponded
	}
	if w.allowed[seat] == nil || !w.allowed[seat].HasOperate(operate) {
		return ErrInvalidOperate
	}
	w.pending = append(w.pending, Claim{Seat: seat, Operate: operate, Tile: w.tile})
	w.responded[seat] = true
	return nil
}

// SubmitPass 座位明确放弃
func (w *ClaimWindow) SubmitPass(seat int32) error {
	if seat < 0 || seat >= w.seatCount || seat == w.discarder {
		return ErrInvalidSeat
	}
	if w.closed {
		return ErrClaimClosed
	}
	if w.responded[seat] {
		return ErrSeatResponded
	}
	w.responded[seat] = true
	return nil
}

// Resolved 所有可抢座位是否都已表态
func (w *ClaimWindow) Resolved() bool {
	for seat := int32(0); seat < w.seatCount; seat++ {
		if seat != w.discarder && !w.responded[seat] {
			return false
		}
	}
	return true
}

// Resolve 按优先级胡>杠>碰>吃裁决; 同级多家按与出牌方的顺时针
// 座位距离取最近. 无人申请时无赢家, 弃牌保留.
// 裁决后窗口关闭, 迟到的表态一律拒绝
func (w *ClaimWindow) Resolve() (Claim, bool) {
	w.closed = true
	for _, op := range claimPriority {
		var best Claim
		bestDist := w.seatCount
		found := false
		for _, c := range w.pending {
			if c.Operate != op {
				continue
			}
			dist := SeatDistance(w.discarder, c.Seat, w.seatCount)
			if !found || dist < bestDist {
				best, bestDist, found = c, dist, true
			}
		}
		if found {
			return best, true
		}
	}
	return Claim{}, false
}
