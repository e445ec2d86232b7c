package game

// Player 对局内一个座位的账户侧数据, 牌面数据在引擎的PlayData里
type Player struct {
	seat        int32
	curScore    int64
	scoreChange int64
	tax         int64
	isOut       bool
	isOffline   bool
	isTrust     bool
}

func NewPlayer(seat int32, score int64) *Player {
	return &Player{
		seat:     seat,
		curScore: score,
	}
}

func (p *Player) GetSeat() int32 {
	return p.seat
}

func (p *Player) GetCurScore() int64 {
	return p.curScore
}

func (p *Player) GetScoreChange() int64 {
	return p.scoreChange
}

func (p *Player) GetTax() int64 {
	return p.tax
}

func (p *Player) SetTax(tax int64) {
	p.tax = tax
}

func (p *Player) AddScoreChange(change int64) {
	p.scoreChange += change
	p.curScore += change
}

func (p *Player) IsOut() bool {
	return p.isOut
}

func (p *Player) SetOut(out bool) {
	p.isOut = out
}

func (p *Player) IsOffline() bool {
	return p.isOffline
}

func (p *Player) SetOffline(offline bool) {
	p.isOffline = offline
}

func (p *Player) IsTrust() bool {
	return p.isTrust
}

func (p *Player) SetTrust(trust bool) {
	p.isTrust = trust
}
