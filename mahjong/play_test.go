package mahjong

import (
	"errors"
	"testing"
)

func passAllClaims(t *testing.T, play *Play) {
	t.Helper()
	w := play.GetClaims()
	for seat := int32(0); seat < play.GetPlayerCount(); seat++ {
		if seat == w.Discarder() || w.responded[seat] {
			continue
		}
		if err := play.SubmitPass(seat); err != nil {
			t.Fatalf("pass seat %d: %v", seat, err)
		}
	}
	if !play.ClaimsResolved() {
		t.Fatal("all seats responded, claims should be resolved")
	}
	if _, err := play.ResolveClaims(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
}

func Test_Play_Deal(t *testing.T) {
	play := NewPlay(NewRule(), 0, 0)
	play.Initialize(nil)
	play.Deal()

	if play.GetPhase() != PhaseDiscard {
		t.Fatalf("phase = %s, want Discard", play.GetPhase())
	}
	if play.GetCurSeat() != 0 {
		t.Errorf("cur seat = %d, want banker", play.GetCurSeat())
	}
	for seat := int32(0); seat < 4; seat++ {
		want := TileCountInitNormal
		if seat == play.GetBanker() {
			want = TileCountInitBanker
		}
		if got := len(play.playData[seat].handTiles); got != want {
			t.Errorf("seat %d hand = %d, want %d", seat, got, want)
		}
		if got := play.arena.SeatZoneCount(ZoneHand, seat); got != want {
			t.Errorf("seat %d arena hand = %d, want %d", seat, got, want)
		}
	}
	if got := play.arena.CountZone(ZoneDeadWall); got != DeadWallCount {
		t.Errorf("arena dead wall = %d, want %d", got, DeadWallCount)
	}
}

func Test_Play_IllegalActions(t *testing.T) {
	play := NewPlay(NewRule(), 0, 0)
	play.Initialize(nil)
	play.Deal()

	if err := play.Discard(1, TileNull); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("discard off turn: %v, want ErrNotYourTurn", err)
	}
	if _, err := play.Draw(0); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("draw in discard phase: %v, want ErrWrongPhase", err)
	}
	if err := play.Discard(-1, TileNull); !errors.Is(err, ErrInvalidSeat) {
		t.Errorf("discard invalid seat: %v, want ErrInvalidSeat", err)
	}

	var missing Tile
	for tile := range play.GetRule().GetAllTiles() {
		if CountElement(play.playData[0].handTiles, tile) == 0 {
			missing = tile
			break
		}
	}
	if err := play.Discard(0, missing); !errors.Is(err, ErrTileNotHeld) {
		t.Errorf("discard unheld tile: %v, want ErrTileNotHeld", err)
	}
	// 失败的操作不得改动任何状态
	if play.GetPhase() != PhaseDiscard || len(play.playData[0].handTiles) != TileCountInitBanker {
		t.Error("rejected actions must leave state untouched")
	}
}

func Test_Play_TurnRotation(t *testing.T) {
	play := NewPlay(NewRule(), 0, 0)
	play.Initialize(nil)
	play.Deal()

	if err := play.Discard(0, TileNull); err != nil {
		t.Fatalf("discard: %v", err)
	}
	if play.GetPhase() != PhaseWaitClaims {
		t.Fatalf("phase = %s, want WaitClaims", play.GetPhase())
	}
	if got := play.arena.SeatZoneCount(ZoneDiscards, 0); got != 1 {
		t.Errorf("discard zone = %d, want 1", got)
	}
	passAllClaims(t, play)

	if play.GetPhase() != PhaseDraw || play.GetCurSeat() != 1 {
		t.Fatalf("after pass: phase %s seat %d, want Draw for seat 1", play.GetPhase(), play.GetCurSeat())
	}
	tile, err := play.Draw(1)
	if err != nil || tile == TileNull {
		t.Fatalf("draw: %v %v", tile, err)
	}
	if play.GetPhase() != PhaseDiscard || len(play.playData[1].handTiles) != TileCountInitBanker {
		t.Error("draw should leave seat 1 with 14 tiles in discard phase")
	}
	if ops := play.LegalActions(2); !ops.Empty() {
		t.Error("off-turn seat must have no legal actions")
	}
	if ops := play.LegalActions(1); !ops.HasOperate(OperateDiscard) {
		t.Error("seat on turn must be allowed to discard")
	}
}

// 无人胡牌打满整墙: 每张牌都有归宿, 游标停在墙尾前
func Test_Play_ExhaustionDrill(t *testing.T) {
	play := NewPlay(NewRule(), 0, 0)
	play.Initialize(nil)
	play.Deal()

	for steps := 0; play.GetPhase() != PhaseHandOver; steps++ {
		if steps > 2000 {
			t.Fatal("hand did not terminate")
		}
		switch play.GetPhase() {
		case PhaseDraw:
			if _, err := play.Draw(play.GetCurSeat()); err != nil {
				t.Fatalf("draw: %v", err)
			}
		case PhaseDiscard:
			if err := play.Discard(play.GetCurSeat(), TileNull); err != nil {
				t.Fatalf("discard: %v", err)
			}
		case PhaseWaitClaims:
			passAllClaims(t, play)
		}
	}

	result := play.Result()
	if result == nil || result.Winner != SeatNull {
		t.Fatalf("result = %+v, want drawn hand", result)
	}
	if result.HuResult != nil || result.Score != 0 {
		t.Error("drawn hand carries no win or score")
	}
	if got := play.GetDealer().Cursor(); got != 136-DeadWallCount {
		t.Errorf("cursor = %d, want %d", got, 136-DeadWallCount)
	}
	if got := play.arena.CountZone(ZoneWall); got != 0 {
		t.Errorf("wall zone = %d, want empty", got)
	}

	total := 0
	for zone := ZoneWall; zone <= ZoneDiscards; zone++ {
		total += play.arena.CountZone(zone)
	}
	if total != 136 {
		t.Errorf("tiles across zones = %d, want 136", total)
	}

	// 终局后一切操作拒绝
	if _, err := play.Draw(play.GetCurSeat()); !errors.Is(err, ErrHandOver) {
		t.Errorf("draw after hand over: %v, want ErrHandOver", err)
	}
}

// 过胡只限到自己下次摸牌: 摸牌换手后同一张牌可再胡
func Test_Play_PassHuLiftedByDraw(t *testing.T) {
	play := NewPlay(NewRule(), 0, 0)
	play.Initialize(nil)
	play.Deal()

	winTile := MakeTile(ColorCharacter, 0)
	wait := append(tiles(ColorCharacter, 1, 1, 2, 3, 4), tiles(ColorDot, 5, 5, 5, 7, 8, 9)...)
	wait = append(wait, TileZhong, TileZhong)
	play.playData[1].handTiles = wait
	play.playData[0].handTiles[0] = winTile

	if err := play.Discard(0, winTile); err != nil {
		t.Fatalf("discard: %v", err)
	}
	if !play.GetClaims().Allowed(1).HasOperate(OperateHu) {
		t.Fatal("seat 1 should be offered hu")
	}
	if err := play.SubmitPass(1); err != nil {
		t.Fatalf("pass hu: %v", err)
	}
	if !play.playData[1].IsPassHuTile(winTile) {
		t.Fatal("pass hu should be recorded")
	}
	passAllClaims(t, play)

	// 座位1摸牌出牌, 过胡解除
	if _, err := play.Draw(1); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if play.playData[1].IsPassHuTile(winTile) {
		t.Error("own draw should lift the pass-hu mark")
	}
	if err := play.Discard(1, TileNull); err != nil {
		t.Fatalf("discard: %v", err)
	}
	passAllClaims(t, play)

	if _, err := play.Draw(2); err != nil {
		t.Fatalf("draw: %v", err)
	}
	play.playData[2].handTiles[0] = winTile
	if err := play.Discard(2, winTile); err != nil {
		t.Fatalf("discard: %v", err)
	}
	if !play.GetClaims().Allowed(1).HasOperate(OperateHu) {
		t.Error("hu on the same tile must be offered again after own draw")
	}
}

// 点炮: 抢牌窗口胡牌落地后弃牌归胡家
func Test_Play_PaoHu(t *testing.T) {
	play := NewPlay(NewRule(), 0, 0)
	play.Initialize(nil)
	play.Deal()

	// 座位1做成听1万的手牌, 庄家打1万
	winTile := MakeTile(ColorCharacter, 0)
	play.playData[1].handTiles = append(tiles(ColorCharacter, 1, 1, 2, 3, 4), tiles(ColorDot, 5, 5, 5, 7, 8, 9)...)
	play.playData[1].handTiles = append(play.playData[1].handTiles, TileZhong, TileZhong)
	play.playData[0].handTiles[0] = winTile
	play.FreshCallData(1)

	if err := play.Discard(0, winTile); err != nil {
		t.Fatalf("discard: %v", err)
	}
	allowed := play.GetClaims().Allowed(1)
	if !allowed.HasOperate(OperateHu) {
		t.Fatal("seat 1 should be offered hu")
	}
	if err := play.SubmitClaim(1, OperateHu); err != nil {
		t.Fatalf("claim hu: %v", err)
	}
	for seat := int32(2); seat < 4; seat++ {
		if !play.GetClaims().responded[seat] {
			if err := play.SubmitPass(seat); err != nil {
				t.Fatalf("pass seat %d: %v", seat, err)
			}
		}
	}
	outcome, err := play.ResolveClaims()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if outcome.Seat != 1 || outcome.Operate != OperateHu {
		t.Fatalf("outcome = %+v, want hu by seat 1", outcome)
	}

	result := play.Result()
	if result == nil || result.Winner != 1 || result.Zimo || result.PaoSeat != 0 {
		t.Fatalf("result = %+v, want pao from seat 0 to seat 1", result)
	}
	// 炮牌从出牌方弃牌转入胡家手牌
	if got := len(play.playData[0].outTiles); got != 0 {
		t.Errorf("discarder out tiles = %d, want reclaimed", got)
	}
	if got := len(play.playData[1].handTiles); got != 14 {
		t.Errorf("winner hand = %d, want 14", got)
	}
}
