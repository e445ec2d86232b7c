package mahjong

import (
	"slices"
	"strconv"
	"testing"
)

func tiles(color EColor, points ...int) []Tile {
	res := make([]Tile, len(points))
	for i, p := range points {
		res[i] = MakeTile(color, p-1)
	}
	return res
}

// 庄家0, 圈风东, 自摸. 连风刻只归门风, 不再计圈风
func Test_Fan_Zimo(t *testing.T) {
	honors := append(MakeTiles(TileDong, 3), MakeTiles(TileNan, 3)...)
	honors = append(honors, MakeTiles(TileXi, 3)...)
	honors = append(honors, MakeTiles(TileBei, 3)...)
	honors = append(honors, TileZhong, TileZhong)

	pure := append(tiles(ColorCharacter, 1, 1, 1, 2, 3, 4, 5, 6, 7, 9, 9), tiles(ColorCharacter, 8, 8, 8)...)

	mixedPairs := append(tiles(ColorDot, 1, 1, 2, 2, 3, 3, 7, 7), tiles(ColorBamboo, 4, 4, 5, 5, 9, 9)...)

	testCases := []struct {
		hand       []Tile
		wantFan    int32
		wantScore  int64
		wantCapped bool
	}{
		// 自摸1 + 混幺九10 + 门风刻1 = 12, 封顶8番, 1<<8
		{honors, 12, 256, true},
		// 自摸1 + 清一色6 = 7
		{pure, 7, 128, false},
		// 自摸1 + 七对4 = 5
		{mixedPairs, 5, 32, false},
	}

	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			play := NewPlay(NewRule(), 0, 0)
			play.Initialize(nil)
			play.Deal()
			play.playData[0].handTiles = tc.hand

			result, err := play.Zimo(0)
			if err != nil {
				t.Fatalf("zimo: %v", err)
			}
			if result.TotalFan != tc.wantFan {
				t.Errorf("fan = %d (%v), want %d", result.TotalFan, fanList(result.FanTypes), tc.wantFan)
			}
			if result.Capped != tc.wantCapped {
				t.Errorf("capped = %v, want %v", result.Capped, tc.wantCapped)
			}
			hr := play.Result()
			if hr == nil || hr.Winner != 0 || !hr.Zimo {
				t.Fatalf("result = %+v, want zimo winner 0", hr)
			}
			if hr.Score != tc.wantScore {
				t.Errorf("score = %d, want %d", hr.Score, tc.wantScore)
			}
		})
	}
}

func fanList(fanTypes []int32) []string {
	names := make([]string, len(fanTypes))
	for i, f := range fanTypes {
		names[i] = FanName(f)
	}
	return names
}

func Test_Fan_NotWinningHand(t *testing.T) {
	play := NewPlay(NewRule(), 0, 0)
	play.Initialize(nil)
	play.Deal()
	play.playData[0].handTiles = append(tiles(ColorCharacter, 1, 2, 4, 5, 7, 8), tiles(ColorDot, 1, 2, 4, 5, 7, 8)...)
	play.playData[0].handTiles = append(play.playData[0].handTiles, TileZhong, TileFa)

	if _, err := play.Zimo(0); err != ErrNotWinningHand {
		t.Errorf("err = %v, want ErrNotWinningHand", err)
	}
	if play.GetPhase() != PhaseDiscard {
		t.Errorf("failed zimo must not advance phase, got %s", play.GetPhase())
	}
}

// 门前清接炮计门清; 有副露不计
func Test_Fan_MenQing(t *testing.T) {
	winTile := MakeTile(ColorCharacter, 0)

	play := NewPlay(NewRule(), 0, 0)
	play.Initialize(nil)
	play.Deal()
	play.curTile = winTile

	pd := NewPlayData(play, 1)
	pd.handTiles = append(tiles(ColorCharacter, 1, 1, 2, 3, 4), tiles(ColorDot, 5, 5, 5, 7, 8, 9)...)
	pd.handTiles = append(pd.handTiles, TileZhong, TileZhong)

	result, ok := NewHuData(pd, false).CheckHu()
	if !ok {
		t.Fatal("hand should win on the discard")
	}
	if !slices.Contains(result.FanTypes, FanMenQing) || result.TotalFan != 1 {
		t.Errorf("fans = %v (%d), want men qing only", fanList(result.FanTypes), result.TotalFan)
	}

	exposed := NewPlayData(play, 2)
	exposed.handTiles = append(tiles(ColorCharacter, 1, 1, 2, 3, 4), tiles(ColorDot, 5, 5, 5)...)
	exposed.handTiles = append(exposed.handTiles, TileZhong, TileZhong)
	exposed.ponGroups = append(exposed.ponGroups, Group{Tile: MakeTile(ColorDot, 7), From: 0})

	result, ok = NewHuData(exposed, false).CheckHu()
	if !ok {
		t.Fatal("exposed hand should still win on the discard")
	}
	if slices.Contains(result.FanTypes, FanMenQing) {
		t.Error("men qing must not apply with an exposed pon")
	}
}

// 能胡必胡: 操作集只留胡, 出牌被撤
func Test_Rule_MustHu(t *testing.T) {
	rule := NewRule()
	rule.LoadRule("4,1,0,0,8,1,1,1,0,1", nil)
	play := NewPlay(rule, 0, 0)
	if !play.GetConf().MustHu {
		t.Fatal("must-hu rule bit should reach PlayConf")
	}
	play.Initialize(nil)
	play.Deal()

	win := append(MakeTiles(TileDong, 3), MakeTiles(TileNan, 3)...)
	win = append(win, MakeTiles(TileXi, 3)...)
	win = append(win, MakeTiles(TileBei, 3)...)
	win = append(win, TileZhong, TileZhong)
	play.playData[0].handTiles = win

	opt := play.FetchSelfOperates()
	if !opt.HasOperate(OperateHu) || !opt.IsMustHu {
		t.Fatal("winning hand under must-hu should be forced to hu")
	}
	if opt.HasOperate(OperateDiscard) {
		t.Error("must-hu removes the discard option")
	}
}

func Test_Fan_Values(t *testing.T) {
	if FanValue(FanShiSanYao) != 13 || FanValue(FanHunYaoJiu) != 10 {
		t.Error("top fan values wrong")
	}
	if FanValue(FanCount) != 0 || FanValue(-1) != 0 {
		t.Error("out of range fan should be worthless")
	}
	if TotalFan([]int32{FanZiMo, FanQiDui}) != 5 {
		t.Error("total fan should sum values")
	}
}
