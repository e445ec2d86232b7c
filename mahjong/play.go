package mahjong

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// HandResult 一局的终局结果
type HandResult struct {
	Winner   int32 // 无人胡为SeatNull(荒庄)
	Zimo     bool
	PaoSeat  int32 // 点炮座位, 自摸/荒庄为SeatNull
	HuResult *HuResult
	Score    int64
}

// ClaimOutcome 抢牌裁决的落地结果
type ClaimOutcome struct {
	Seat     int32 // 无人抢为SeatNull
	Operate  int32
	HuResult *HuResult
}

// Play 一局牌的规则引擎: 持有座位/牌墙/当前座位/阶段,
// 状态只经转移方法改动, 非法操作在改动前拒绝
type Play struct {
	rule         *Rule
	conf         *PlayConf
	dealer       *Dealer
	arena        *Arena
	playData     []*PlayData
	playerCount  int32
	banker       int32
	curSeat      int32
	curTile      Tile
	prevailing   int32 // 圈风
	phase        Phase
	winner       int32
	paoSeat      int32
	huResult     []*HuResult
	history      []Action
	claims       *ClaimWindow
	pendingBuKon Tile // 抢杠窗口未决的补杠牌
	selfCheckers []CheckerSelf
	waitCheckers []CheckerWait
}

func NewPlay(rule *Rule, banker, prevailing int32) *Play {
	count := rule.PlayerCount()
	p := &Play{
		rule:         rule,
		conf:         NewPlayConf(rule),
		dealer:       NewDealer(rule),
		playData:     make([]*PlayData, count),
		playerCount:  count,
		banker:       banker,
		curSeat:      banker,
		curTile:      TileNull,
		prevailing:   prevailing,
		phase:        PhaseDraw,
		winner:       SeatNull,
		paoSeat:      SeatNull,
		huResult:     make([]*HuResult, count),
		history:      make([]Action, 0),
		pendingBuKon: TileNull,
		selfCheckers: make([]CheckerSelf, 0),
		waitCheckers: make([]CheckerWait, 0),
	}
	p.RegisterSelfCheck(NewCheckerHu(p), NewCheckerKon(p))
	p.RegisterWaitCheck(NewCheckerPao(p), NewCheckerZhiKon(p), NewCheckerPon(p), NewCheckerChow(p))
	return p
}

func (p *Play) RegisterSelfCheck(cks ...CheckerSelf) {
	p.selfCheckers = append(p.selfCheckers, cks...)
}

func (p *Play) RegisterWaitCheck(cks ...CheckerWait) {
	p.waitCheckers = append(p.waitCheckers, cks...)
}

// Initialize 洗牌砌墙并建实体牌档案, manual可为nil
func (p *Play) Initialize(manual *Manual) {
	p.dealer.Initialize(manual)
	p.arena = NewArena(p.dealer.FullWall())
	full := len(p.dealer.FullWall())
	for i := full - p.dealer.DeadWallCount(); i < full; i++ {
		p.arena.Move(int32(i), Placement{Zone: ZoneDeadWall, Seat: SeatNull})
	}
	for i := range p.playerCount {
		p.playData[i] = NewPlayData(p, i)
	}
}

// Deal 配牌: 每家13张, 庄家多摸1张, 花牌即时补.
// 结束后庄家持14张进入出牌阶段
func (p *Play) Deal() {
	for i := range p.playerCount {
		tiles := p.dealer.Deal(TileCountInitNormal)
		for _, t := range tiles {
			p.arena.MoveNextWall(t, Placement{Zone: ZoneHand, Seat: i})
			p.playData[i].PutHandTile(t)
		}
	}
	tile := p.dealer.DrawTile()
	p.arena.MoveNextWall(tile, Placement{Zone: ZoneHand, Seat: p.banker})
	p.playData[p.banker].PutHandTile(tile)
	p.curTile = tile

	for i := range p.playerCount {
		p.replaceFlowers(i)
	}
	p.curSeat = p.banker
	p.phase = PhaseDiscard
	p.FreshCallData(p.banker)
}

// replaceFlowers 手中花牌移入花区并从墙尾补牌, 直到无花
func (p *Play) replaceFlowers(seat int32) {
	playData := p.playData[seat]
	for {
		flower := TileNull
		for _, t := range playData.handTiles {
			if t.IsExtra() {
				flower = t
				break
			}
		}
		if flower == TileNull {
			return
		}
		playData.RemoveHandTile(flower, 1)
		playData.PutBonusTile(flower)
		p.arena.MoveTile(flower, Placement{Zone: ZoneHand, Seat: seat}, Placement{Zone: ZoneBonus, Seat: seat})
		if !p.drawReplacement(seat) {
			return
		}
	}
}

// drawReplacement 从墙尾补一张进手牌, 墙尾补不出则荒庄
func (p *Play) drawReplacement(seat int32) bool {
	tile, refill := p.dealer.ReplacementTile()
	if refill != TileNull {
		p.arena.MoveTile(refill, Placement{Zone: ZoneWall, Seat: SeatNull}, Placement{Zone: ZoneDeadWall, Seat: SeatNull})
	}
	if tile == TileNull {
		p.phase = PhaseHandOver
		return false
	}
	p.arena.MoveTile(tile, Placement{Zone: ZoneDeadWall, Seat: SeatNull}, Placement{Zone: ZoneHand, Seat: seat})
	p.playData[seat].PutHandTile(tile)
	p.curTile = tile
	return true
}

// LegalActions 某座位当前的合法操作集; 非当前座位/已终局为空集
func (p *Play) LegalActions(seat int32) *Operates {
	if !p.IsValidSeat(seat) || p.phase == PhaseHandOver {
		return NewOperates()
	}
	switch p.phase {
	case PhaseDraw:
		if seat != p.curSeat || p.dealer.GetRestCount() <= 0 {
			return NewOperates()
		}
		return NewOperates(OperateDraw)
	case PhaseDiscard:
		if seat != p.curSeat {
			return NewOperates()
		}
		return p.FetchSelfOperates()
	case PhaseWaitClaims:
		if seat == p.claims.Discarder() {
			return NewOperates()
		}
		return p.claims.Allowed(seat)
	default:
		return NewOperates()
	}
}

// FetchSelfOperates 当前座位出牌阶段的操作集, 由检查器链累积
func (p *Play) FetchSelfOperates() *Operates {
	opt := NewOperates(OperateDiscard)
	for _, v := range p.selfCheckers {
		v.Check(opt)
	}
	return opt
}

// FetchWaitOperates 某座位对刚打出一张牌的可抢集合
func (p *Play) FetchWaitOperates(seat int32) *Operates {
	opt := NewOperates(OperatePass)
	for _, v := range p.waitCheckers {
		v.Check(seat, opt)
	}
	return opt
}

// Draw 摸牌. 牌墙耗尽时不是错误, 转入荒庄终局
func (p *Play) Draw(seat int32) (Tile, error) {
	if err := p.checkTurn(seat, PhaseDraw); err != nil {
		return TileNull, err
	}

	tile := p.dealer.DrawTile()
	if tile == TileNull {
		p.phase = PhaseHandOver
		return TileNull, nil
	}
	p.arena.MoveNextWall(tile, Placement{Zone: ZoneHand, Seat: seat})
	p.playData[seat].PutHandTile(tile)
	// 过胡/过碰限制到自己下次摸牌为止
	p.playData[seat].ClearPass()
	p.curTile = tile
	p.addHistory(seat, seat, OperateDraw, tile, TileNull)
	p.replaceFlowers(seat)
	if p.phase == PhaseHandOver {
		return TileNull, nil
	}
	p.phase = PhaseDiscard
	p.FreshCallData(seat)
	return p.curTile, nil
}

// Discard 出牌并开抢牌窗口
func (p *Play) Discard(seat int32, tile Tile) error {
	if err := p.checkTurn(seat, PhaseDiscard); err != nil {
		return err
	}
	playData := p.playData[seat]
	if tile == TileNull {
		tile = playData.handTiles[len(playData.handTiles)-1]
	}
	if !playData.Discard(tile) {
		return fmt.Errorf("%w: seat %d tile %s", ErrTileNotHeld, seat, tile.Name())
	}
	p.arena.MoveTile(tile, Placement{Zone: ZoneHand, Seat: seat}, Placement{Zone: ZoneDiscards, Seat: seat})
	p.addHistory(seat, seat, OperateDiscard, tile, TileNull)
	p.curTile = tile
	p.openClaimWindow(false)
	return nil
}

func (p *Play) openClaimWindow(robKon bool) {
	p.claims = newClaimWindow(p.curSeat, p.curTile, p.playerCount, robKon)
	for seat := range p.playerCount {
		if seat == p.curSeat {
			continue
		}
		if robKon {
			p.claims.setAllowed(seat, p.fetchRobKonOperates(seat))
		} else {
			p.claims.setAllowed(seat, p.FetchWaitOperates(seat))
		}
	}
	p.phase = PhaseWaitClaims
}

// fetchRobKonOperates 补杠牌的抢胡判定
func (p *Play) fetchRobKonOperates(seat int32) *Operates {
	opt := NewOperates(OperatePass)
	data := NewHuData(p.playData[seat], false)
	data.RobKon = true
	result, hu := data.CheckHu()
	if !hu || result.TotalFan < p.conf.MinFanLimit {
		return opt
	}
	p.AddHuOperate(opt, seat, result, false)
	return opt
}

// Zimo 自摸胡, 须经判胡确认
func (p *Play) Zimo(seat int32) (*HuResult, error) {
	if err := p.checkTurn(seat, PhaseDiscard); err != nil {
		return nil, err
	}
	data := NewHuData(p.playData[seat], true)
	result, hu := data.CheckHu()
	if !hu || result.TotalFan < p.conf.MinFanLimit {
		return nil, ErrNotWinningHand
	}
	p.huResult[seat] = result
	p.winner = seat
	p.phase = PhaseHandOver
	p.addHistory(seat, seat, OperateHu, p.curTile, TileNull)
	return result, nil
}

// TryKon 当前座位自杠(暗杠/补杠). 补杠先开抢杠窗口,
// 无人抢才落杠补牌; 杠成后仍由该座位出牌
func (p *Play) TryKon(seat int32, tile Tile, konType KonType) error {
	if err := p.checkTurn(seat, PhaseDiscard); err != nil {
		return err
	}
	if konType != KonTypeAn && konType != KonTypeBu {
		return ErrInvalidOperate
	}
	if p.dealer.GetRestCount() <= 0 {
		return ErrInvalidOperate
	}
	playData := p.playData[seat]
	if !playData.canKon(tile, konType) {
		return fmt.Errorf("%w: seat %d kon %s", ErrInvalidOperate, seat, tile.Name())
	}

	if konType == KonTypeAn {
		playData.kon(tile, seat, konType)
		p.moveHandToMeld(seat, tile, 4)
		p.addHistory(seat, seat, OperateKon, tile, TileNull)
		p.afterKonCommitted(seat)
		return nil
	}

	// 补杠
	playData.kon(tile, seat, konType)
	p.moveHandToMeld(seat, tile, 1)
	p.addHistory(seat, seat, OperateKon, tile, TileNull)
	p.curTile = tile
	p.pendingBuKon = tile
	p.openClaimWindow(true)
	if p.claims.Resolved() {
		// 无人可抢, 直接落杠
		return p.commitPendingBuKon()
	}
	return nil
}

func (p *Play) afterKonCommitted(seat int32) {
	playData := p.playData[seat]
	playData.ClearPass()
	if p.drawReplacement(seat) {
		p.addHistory(seat, seat, OperateDraw, p.curTile, TileNull)
		p.phase = PhaseDiscard
		p.FreshCallData(seat)
	}
}

func (p *Play) commitPendingBuKon() error {
	seat := p.claims.Discarder()
	p.pendingBuKon = TileNull
	p.afterKonCommitted(seat)
	return nil
}

// SubmitClaim 抢牌窗口内某座位提交申请
func (p *Play) SubmitClaim(seat int32, operate int32) error {
	if p.phase != PhaseWaitClaims {
		return ErrWrongPhase
	}
	return p.claims.Submit(seat, operate)
}

// SubmitPass 某座位明确放弃, 记过胡/过碰
func (p *Play) SubmitPass(seat int32) error {
	if p.phase != PhaseWaitClaims {
		return ErrWrongPhase
	}
	if err := p.claims.SubmitPass(seat); err != nil {
		return err
	}
	allowed := p.claims.Allowed(seat)
	playData := p.playData[seat]
	if allowed.HasOperate(OperateHu) && p.conf.HuPass {
		playData.PassHu(p.claims.Tile(), allowed.HuFan)
	}
	if allowed.HasOperate(OperatePon) && p.conf.PonPass {
		playData.PassPon(p.claims.Tile())
	}
	return nil
}

// ClaimsResolved 是否所有可抢座位都已表态
func (p *Play) ClaimsResolved() bool {
	return p.phase == PhaseWaitClaims && p.claims.Resolved()
}

// ResolveClaims 关窗裁决并落地. 何时调用由上层决定:
// 可等齐所有表态, 也可超时即调, 未表态的视为弃权
func (p *Play) ResolveClaims() (*ClaimOutcome, error) {
	if p.phase != PhaseWaitClaims {
		return nil, ErrWrongPhase
	}
	claim, ok := p.claims.Resolve()
	robKon := p.claims.robKon

	if !ok {
		if robKon {
			return &ClaimOutcome{Seat: SeatNull, Operate: OperateNone}, p.commitPendingBuKon()
		}
		// 无人抢, 轮转下家
		p.curSeat = GetNextSeat(p.curSeat, 1, p.playerCount)
		p.phase = PhaseDraw
		return &ClaimOutcome{Seat: SeatNull, Operate: OperateNone}, nil
	}

	switch claim.Operate {
	case OperateHu:
		if robKon {
			p.applyRobKon(claim.Seat)
		} else {
			p.applyPaoHu(claim.Seat)
		}
		return &ClaimOutcome{Seat: claim.Seat, Operate: OperateHu, HuResult: p.huResult[claim.Seat]}, nil
	case OperateKon:
		p.applyZhiKon(claim.Seat)
	case OperatePon:
		p.applyPon(claim.Seat)
	case OperateChow:
		p.applyChow(claim.Seat)
	default:
		return nil, ErrInvalidOperate
	}
	return &ClaimOutcome{Seat: claim.Seat, Operate: claim.Operate}, nil
}

func (p *Play) applyPaoHu(seat int32) {
	playData := p.playData[seat]
	playData.PutHandTile(p.curTile)
	p.playData[p.curSeat].RemoveOutTile()
	p.arena.MoveTile(p.curTile, Placement{Zone: ZoneDiscards, Seat: p.curSeat}, Placement{Zone: ZoneHand, Seat: seat})
	p.paoSeat = p.curSeat
	p.winner = seat
	p.phase = PhaseHandOver
	p.addHistory(seat, p.curSeat, OperateHu, p.curTile, TileNull)
}

// applyRobKon 抢杠成立: 补杠回退为碰, 第四张归抢胡者
func (p *Play) applyRobKon(seat int32) {
	konSeat := p.claims.Discarder()
	tile := p.pendingBuKon
	p.playData[konSeat].revertBuKon(tile)
	p.playData[seat].PutHandTile(tile)
	p.arena.MoveTile(tile, Placement{Zone: ZoneMeld, Seat: konSeat}, Placement{Zone: ZoneHand, Seat: seat})
	p.pendingBuKon = TileNull
	p.paoSeat = konSeat
	p.winner = seat
	p.phase = PhaseHandOver
	p.addHistory(seat, konSeat, OperateHu, tile, TileNull)
}

func (p *Play) applyZhiKon(seat int32) {
	playData := p.playData[seat]
	if !playData.canKon(p.curTile, KonTypeZhi) {
		logrus.Error("player cannot zhi kon")
		return
	}
	from := p.curSeat
	playData.kon(p.curTile, from, KonTypeZhi)
	p.playData[from].RemoveOutTile()
	p.moveHandToMeld(seat, p.curTile, 3)
	p.arena.MoveTile(p.curTile, Placement{Zone: ZoneDiscards, Seat: from}, Placement{Zone: ZoneMeld, Seat: seat})
	p.addHistory(seat, from, OperateKon, p.curTile, TileNull)
	p.curSeat = seat
	p.afterKonCommitted(seat)
}

func (p *Play) applyPon(seat int32) {
	playData := p.playData[seat]
	if !playData.canPon(p.curTile) {
		logrus.Error("player cannot pon")
		return
	}
	from := p.curSeat
	playData.Pon(p.curTile, from)
	p.playData[from].RemoveOutTile()
	p.moveHandToMeld(seat, p.curTile, 2)
	p.arena.MoveTile(p.curTile, Placement{Zone: ZoneDiscards, Seat: from}, Placement{Zone: ZoneMeld, Seat: seat})
	playData.ClearPass()
	p.addHistory(seat, from, OperatePon, p.curTile, TileNull)
	p.curSeat = seat
	p.phase = PhaseDiscard
	p.FreshCallData(seat)
}

// applyChow 搜索与弃牌成顺的两张手牌, 弃牌依次按高位/中位/低位试
func (p *Play) applyChow(seat int32) {
	playData := p.playData[seat]
	left, ok := ChowSearch(playData.handTiles, p.curTile)
	if !ok {
		logrus.Error("player cannot chow")
		return
	}
	tiles, ok := playData.tryChow(p.curTile, left)
	if !ok {
		logrus.Error("player cannot chow")
		return
	}
	from := p.curSeat
	playData.chow(tiles, p.curTile, left, from)
	p.playData[from].RemoveOutTile()
	for _, t := range tiles {
		p.arena.MoveTile(t, Placement{Zone: ZoneHand, Seat: seat}, Placement{Zone: ZoneMeld, Seat: seat})
	}
	p.arena.MoveTile(p.curTile, Placement{Zone: ZoneDiscards, Seat: from}, Placement{Zone: ZoneMeld, Seat: seat})
	playData.ClearPass()
	p.addHistory(seat, from, OperateChow, p.curTile, left)
	p.curSeat = seat
	p.phase = PhaseDiscard
	p.FreshCallData(seat)
}

// Result 终局结果, 未终局返回nil
func (p *Play) Result() *HandResult {
	if p.phase != PhaseHandOver {
		return nil
	}
	result := &HandResult{
		Winner:  p.winner,
		PaoSeat: p.paoSeat,
	}
	if p.winner != SeatNull {
		result.HuResult = p.huResult[p.winner]
		result.Zimo = p.paoSeat == SeatNull
		result.Score = p.conf.ScoreForFan(result.HuResult.TotalFan)
	}
	return result
}

func (p *Play) checkTurn(seat int32, phase Phase) error {
	if !p.IsValidSeat(seat) {
		return ErrInvalidSeat
	}
	if p.phase == PhaseHandOver {
		return ErrHandOver
	}
	if p.phase != phase {
		return fmt.Errorf("%w: in %s", ErrWrongPhase, p.phase)
	}
	if seat != p.curSeat {
		return fmt.Errorf("%w: seat %d, current %d", ErrNotYourTurn, seat, p.curSeat)
	}
	return nil
}

func (p *Play) moveHandToMeld(seat int32, tile Tile, count int) {
	for range count {
		p.arena.MoveTile(tile, Placement{Zone: ZoneHand, Seat: seat}, Placement{Zone: ZoneMeld, Seat: seat})
	}
}

func (p *Play) IsValidSeat(seat int32) bool {
	return seat >= 0 && seat < p.playerCount
}

func (p *Play) IsAfterPon() bool {
	return len(p.history) > 0 && p.history[len(p.history)-1].Operate == OperatePon
}

func (p *Play) IsAfterKon() bool {
	if len(p.history) < 2 {
		return false
	}
	last := p.history[len(p.history)-1]
	prev := p.history[len(p.history)-2]
	return last.Operate == OperateDraw && prev.Operate == OperateKon
}

func (p *Play) AddHuOperate(opt *Operates, seat int32, result *HuResult, mustHu bool) {
	opt.Capped = result.Capped
	p.huResult[seat] = result
	opt.AddOperate(OperateHu)
	opt.IsMustHu = mustHu
	opt.HuFan = result.TotalFan
}

func (p *Play) addHistory(seat, from int32, operate int32, tile Tile, extra Tile) {
	p.history = append(p.history, Action{
		Seat:    seat,
		From:    from,
		Operate: operate,
		Tile:    tile,
		Extra:   extra,
	})
}

func (p *Play) isKonAfterPon(tile Tile) bool {
	if len(p.history) == 0 {
		return false
	}
	action := p.history[len(p.history)-1]
	return action.Operate == OperatePon && action.Tile == tile
}

// FreshCallData 手牌变动后重算听牌表
func (p *Play) FreshCallData(seat int32) {
	playData := p.playData[seat]
	data := NewHuData(playData, false)
	playData.SetCallMap(data.CheckCall())
}

func (p *Play) SeatWindTile(seat int32) Tile {
	return MakeTile(ColorWind, int(SeatDistance(p.banker, seat, p.playerCount)))
}

func (p *Play) PrevailingWindTile() Tile {
	return MakeTile(ColorWind, int(p.prevailing))
}

func (p *Play) GetPlayData(seat int32) *PlayData {
	return p.playData[seat]
}

func (p *Play) GetPlayerCount() int32 {
	return p.playerCount
}

func (p *Play) GetCurSeat() int32 {
	return p.curSeat
}

func (p *Play) GetBanker() int32 {
	return p.banker
}

func (p *Play) GetCurTile() Tile {
	return p.curTile
}

func (p *Play) GetPhase() Phase {
	return p.phase
}

func (p *Play) GetWinner() int32 {
	return p.winner
}

func (p *Play) GetRule() *Rule {
	return p.rule
}

func (p *Play) GetConf() *PlayConf {
	return p.conf
}

func (p *Play) GetDealer() *Dealer {
	return p.dealer
}

func (p *Play) GetArena() *Arena {
	return p.arena
}

func (p *Play) GetClaims() *ClaimWindow {
	return p.claims
}

func (p *Play) GetHistory() []Action {
	return p.history
}
