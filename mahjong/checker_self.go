package mahjong

type CheckerSelf interface {
	Check(opt *Operates)
}

// 胡检查器
type checkerHu struct {
	play *Play
}

func NewCheckerHu(play *Play) CheckerSelf {
	return &checkerHu{play: play}
}

func (c *checkerHu) Check(opt *Operates) {
	if c.play.IsAfterPon() {
		return
	}

	data := NewHuData(c.play.playData[c.play.curSeat], true)
	result, hu := data.CheckHu()
	if !hu {
		return
	}

	if result.TotalFan < c.play.conf.MinFanLimit {
		opt.Tips = append(opt.Tips, TipsQiHuFan)
	} else if c.play.conf.MustHu {
		opt.RemoveOperate(OperateDiscard)
		c.play.AddHuOperate(opt, c.play.curSeat, result, true)
	} else {
		c.play.AddHuOperate(opt, c.play.curSeat, result, false)
	}
}

// 杠检查器
type checkerKon struct {
	play *Play
}

func NewCheckerKon(play *Play) CheckerSelf {
	return &checkerKon{play: play}
}

func (c *checkerKon) Check(opt *Operates) {
	if opt.IsMustHu {
		return
	}
	if c.play.dealer.GetRestCount() <= 0 {
		return
	}
	if tiles, ok := c.play.playData[c.play.curSeat].canSelfKon(); ok {
		opt.KonTiles = tiles
		opt.AddOperate(OperateKon)
	}
}
