package mahjong

import "testing"

// 七对与十三幺要求门前清: 有任何副露即不成立
func Test_CheckHu_SpecialPatternsNeedConcealed(t *testing.T) {
	play := NewPlay(NewRule(), 0, 0)
	play.Initialize(nil)
	play.Deal()

	qidui := append(tiles(ColorDot, 1, 1, 2, 2, 3, 3, 7, 7), tiles(ColorBamboo, 4, 4, 5, 5, 9, 9)...)
	thirteen := append(TerminalHonorTiles(), MakeTile(ColorCharacter, 0))

	testCases := []struct {
		name string
		hand []Tile
	}{
		{"qidui", qidui},
		{"shisanyao", thirteen},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pd := NewPlayData(play, 0)
			pd.handTiles = tc.hand

			if _, ok := NewHuData(pd, true).CheckHu(); !ok {
				t.Fatal("concealed hand should win")
			}

			pd.konGroups = append(pd.konGroups, KonGroup{Tile: TileFa, From: 0, Type: KonTypeAn})
			if _, ok := NewHuData(pd, true).CheckHu(); ok {
				t.Error("exposed meld must reject the special pattern")
			}
			pd.konGroups = nil

			pd.chowGroups = append(pd.chowGroups, ChowGroup{ChowTile: MakeTile(ColorCharacter, 2), From: 3, LeftTile: MakeTile(ColorCharacter, 0)})
			if _, ok := NewHuData(pd, true).CheckHu(); ok {
				t.Error("chow group must reject the special pattern")
			}
		})
	}
}
