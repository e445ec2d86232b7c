package game

import (
	"github.com/kevin-chtw/tw_mahjong/mahjong"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/proto"
)

// Game 牌局流程适配层: 状态机驱动引擎Play, 引擎本身不懂消息与计时
type Game struct {
	play       *mahjong.Play
	rule       *mahjong.Rule
	timer      *Timer
	CurState   IState
	nextState  IState
	players    []*Player
	sender     *Sender
	scorelator *mahjong.ScorelatorMany
	manual     *mahjong.Manual
	over       bool
}

// NewGame property为规则属性串, scores为各座位带入分
func NewGame(property string, scores []int64, send SendFunc) *Game {
	rule := mahjong.NewRule()
	rule.LoadRule(property, nil)

	g := &Game{
		rule:    rule,
		timer:   NewTimer(),
		players: make([]*Player, rule.PlayerCount()),
	}
	for i := int32(0); i < rule.PlayerCount(); i++ {
		var score int64
		if int(i) < len(scores) {
			score = scores[i]
		}
		g.players[i] = NewPlayer(i, score)
	}
	g.sender = NewSender(g, send)
	g.scorelator = mahjong.NewScorelatorMany(g, mahjong.ScoreTypeNatural)
	return g
}

// SetManual 配牌器, 仅调试/用例复现使用
func (g *Game) SetManual(manual *mahjong.Manual) {
	g.manual = manual
}

// Start banker/prevailing由上层的局数轮转决定
func (g *Game) Start(banker, prevailing int32) {
	g.play = mahjong.NewPlay(g.rule, banker, prevailing)
	g.SetNextState(NewStateDeal)
	g.enterNextState()
}

// OnPlayerMsg 宿主转入的玩家消息
func (g *Game) OnPlayerMsg(seat int32, req proto.Message) error {
	if g.CurState == nil {
		return nil
	}
	if err := g.CurState.OnPlayerMsg(seat, req); err != nil {
		return err
	}
	g.enterNextState()
	return nil
}

// OnGameTimer 宿主周期调用, 驱动超时
func (g *Game) OnGameTimer() {
	g.timer.OnTick()
	g.enterNextState()
}

func (g *Game) IsOver() bool {
	return g.over
}

func (g *Game) GetPlay() *mahjong.Play {
	return g.play
}

func (g *Game) GetRule() *mahjong.Rule {
	return g.rule
}

func (g *Game) GetSender() *Sender {
	return g.sender
}

func (g *Game) GetScorelator() *mahjong.ScorelatorMany {
	return g.scorelator
}

func (g *Game) GetPlayer(seat int32) *Player {
	if g.IsValidSeat(seat) {
		return g.players[seat]
	}
	return nil
}

func (g *Game) IsValidSeat(seat int32) bool {
	return seat >= 0 && seat < int32(len(g.players))
}

func (g *Game) SetNextState(newFn func(*Game, ...any) IState, args ...any) {
	g.nextState = newFn(g, args...)
}

func (g *Game) enterNextState() {
	for g.nextState != nil {
		g.CurState = g.nextState
		g.nextState = nil
		g.timer.Cancel()
		g.CurState.OnEnter()
	}
}

// mahjong.ScoreHost

func (g *Game) GetPlayerCount() int32 {
	return int32(len(g.players))
}

func (g *Game) GetScoreBase() int64 {
	return mahjong.NewPlayConf(g.rule).ScoreBase
}

func (g *Game) GetCurScore(seat int32) int64 {
	if p := g.GetPlayer(seat); p != nil {
		return p.GetCurScore()
	}
	return 0
}

func (g *Game) GetTax(seat int32) int64 {
	if p := g.GetPlayer(seat); p != nil {
		return p.GetTax()
	}
	return 0
}

func (g *Game) IsOut(seat int32) bool {
	if p := g.GetPlayer(seat); p != nil {
		return p.IsOut()
	}
	return true
}

func (g *Game) AddScoreChange(seat int32, change int64) {
	if p := g.GetPlayer(seat); p != nil {
		p.AddScoreChange(change)
	} else {
		logger.Log.Errorf("score change on invalid seat %d", seat)
	}
}
