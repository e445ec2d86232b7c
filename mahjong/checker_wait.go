package mahjong

// CheckerWait 定义检查接口
type CheckerWait interface {
	Check(seat int32, opt *Operates)
}

type CheckerPao struct{ play *Play } // 点炮检查器
func NewCheckerPao(play *Play) CheckerWait {
	return &CheckerPao{play: play}
}

func (c *CheckerPao) Check(seat int32, opt *Operates) {
	if c.play.conf.OnlyZimo {
		opt.Tips = append(opt.Tips, TipsOnlyZiMo)
		return
	}

	data := NewHuData(c.play.playData[seat], false)
	result, hu := data.CheckHu()
	if !hu {
		return
	}

	if c.play.playData[seat].IsPassHuTile(c.play.curTile) && c.play.conf.HuPass {
		opt.Tips = append(opt.Tips, TipsPassHu)
	} else if result.TotalFan < c.play.conf.MinFanLimit {
		opt.Tips = append(opt.Tips, TipsQiHuFan)
	} else if c.play.conf.MustHu {
		c.play.AddHuOperate(opt, seat, result, true)
	} else {
		c.play.AddHuOperate(opt, seat, result, false)
	}
}

type CheckerChow struct{ play *Play } // 吃牌检查器
func NewCheckerChow(play *Play) CheckerWait {
	return &CheckerChow{play: play}
}

func (c *CheckerChow) Check(seat int32, opt *Operates) {
	if opt.IsMustHu || !c.play.rule.WithChow() {
		return
	}
	playData := c.play.playData[seat]
	if playData.ting {
		return
	}

	// 只有下家可吃
	if GetNextSeat(c.play.curSeat, 1, c.play.playerCount) != seat {
		return
	}

	if playData.canChow(c.play.curTile) {
		opt.AddOperate(OperateChow)
	}
}

type CheckerPon struct{ play *Play } // 碰牌检查器
func NewCheckerPon(play *Play) CheckerWait {
	return &CheckerPon{play: play}
}

func (c *CheckerPon) Check(seat int32, opt *Operates) {
	if opt.IsMustHu {
		return
	}
	playData := c.play.playData[seat]
	if playData.ting {
		return
	}

	if !playData.canPon(c.play.curTile) {
		return
	}
	if playData.IsPassPonTile(c.play.curTile) && c.play.conf.PonPass {
		opt.Tips = append(opt.Tips, TipsPassPon)
		return
	}
	opt.AddOperate(OperatePon)
}

type CheckerZhiKon struct{ play *Play } // 直杠检查器
func NewCheckerZhiKon(play *Play) CheckerWait {
	return &CheckerZhiKon{play: play}
}

func (c *CheckerZhiKon) Check(seat int32, opt *Operates) {
	if opt.IsMustHu {
		return
	}
	if c.play.dealer.GetRestCount() <= 0 {
		return
	}

	playData := c.play.playData[seat]
	if playData.ting {
		return
	}
	if playData.canKon(c.play.curTile, KonTypeZhi) {
		opt.AddOperate(OperateKon)
	}
}
