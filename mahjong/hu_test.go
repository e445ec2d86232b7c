package mahjong_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_mahjong/mahjong"
)

func mk(color mahjong.EColor, points ...int) []mahjong.Tile {
	tiles := make([]mahjong.Tile, len(points))
	for i, p := range points {
		tiles[i] = mahjong.MakeTile(color, p-1)
	}
	return tiles
}

type Case struct {
	cards []mahjong.Tile
	laiZi int
	want  mahjong.HuCoreType
}

func Test_Hu(t *testing.T) {
	hc := mahjong.NewHuCore(14)
	if hc == nil {
		t.Fatal("Failed to create HuCore")
	}

	w := mk(mahjong.ColorCharacter, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	testCases := []Case{
		{
			// 1-7万各一对, 既是七对也可拆成顺子
			cards: []mahjong.Tile{w[0], w[0], w[1], w[1], w[2], w[2], w[3], w[3], w[4], w[4], w[5], w[5], w[6], w[6]},
			laiZi: 0,
			want:  mahjong.HU_PIN,
		},
		{
			// 副露后的3n+2短手
			cards: []mahjong.Tile{w[0], w[0], w[1], w[2], w[3], w[3], w[3], w[4], w[4], w[5], w[5]},
			laiZi: 0,
			want:  mahjong.HU_PIN,
		},
		{
			// 只有把4万用进顺子才成胡, 贪心拆刻会漏判
			cards: []mahjong.Tile{w[1], w[2], w[3], w[3], w[3], w[3], w[4], w[5], w[6], w[6], w[6], w[7], w[7], w[7]},
			laiZi: 0,
			want:  mahjong.HU_PIN,
		},
		{
			cards: append(mk(mahjong.ColorDot, 1, 1, 2, 2, 3, 3, 7, 7), mk(mahjong.ColorBamboo, 4, 4, 9, 9, 5, 5)...),
			laiZi: 0,
			want:  mahjong.HU_QIDUI,
		},
		{
			// 十三幺, 1万成对
			cards: append(mahjong.TerminalHonorTiles(), mahjong.MakeTile(mahjong.ColorCharacter, 0)),
			laiZi: 0,
			want:  mahjong.HU_13YAO,
		},
		{
			// 差一张
			cards: []mahjong.Tile{w[0], w[0], w[1], w[2], w[3], w[4], w[5], w[6], w[7], w[8], w[8], w[8], w[7]},
			laiZi: 0,
			want:  mahjong.HU_NON,
		},
		{
			// 混子补缺: 2,3万与混子成顺
			cards: []mahjong.Tile{w[0], w[0], w[0], w[1], w[2], w[4], w[5], w[6], w[6], w[6]},
			laiZi: 1,
			want:  mahjong.HU_PIN,
		},
		{
			cards: []mahjong.Tile{},
			laiZi: 14,
			want:  mahjong.HU_PIN,
		},
	}

	for i, tc := range testCases {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			slices.Sort(tc.cards)
			t.Log(mahjong.TilesName(tc.cards))
			got := hc.CheckBasicHu(tc.cards, tc.laiZi)
			if got != tc.want {
				t.Errorf("CheckBasicHu(%v, %d) = %v, want %v", tc.cards, tc.laiZi, got, tc.want)
			}
		})
	}
}

// 任意4面子+1对成立, 去掉任一张后必不成立
func Test_Hu_RemoveOne(t *testing.T) {
	cards := append(mk(mahjong.ColorCharacter, 1, 1, 1, 2, 3, 4), mk(mahjong.ColorDot, 5, 5, 5, 7, 8, 9)...)
	cards = append(cards, mahjong.TileZhong, mahjong.TileZhong)

	if got := mahjong.DefaultHuCore.CheckBasicHu(cards, 0); got != mahjong.HU_PIN {
		t.Fatalf("full hand = %v, want HU_PIN", got)
	}
	for i := range cards {
		removed := slices.Delete(slices.Clone(cards), i, i+1)
		if got := mahjong.DefaultHuCore.CheckBasicHu(removed, 0); got != mahjong.HU_NON {
			t.Errorf("hand without %s = %v, want HU_NON", cards[i].Name(), got)
		}
	}
}

func Test_Hu_SevenPairsNeedsFullHand(t *testing.T) {
	// 11张不判七对
	cards := append(mk(mahjong.ColorDot, 1, 1, 2, 2, 3, 3), mk(mahjong.ColorBamboo, 4, 4, 9, 9, 5)...)
	if got := mahjong.DefaultHuCore.CheckBasicHu(cards, 0); got != mahjong.HU_NON {
		t.Errorf("short seven pairs = %v, want HU_NON", got)
	}
}

func Test_Decompose(t *testing.T) {
	cards := append(mk(mahjong.ColorCharacter, 1, 1, 1, 2, 3, 4), mk(mahjong.ColorDot, 5, 5, 5)...)
	cards = append(cards, mahjong.TileZhong, mahjong.TileZhong)

	pair, melds, ok := mahjong.DefaultHuCore.Decompose(cards)
	if !ok {
		t.Fatal("Decompose failed on winning hand")
	}
	if len(melds) != 3 {
		t.Errorf("melds = %d, want 3", len(melds))
	}
	if !pair.IsValid() {
		t.Errorf("pair = %v, want valid tile", pair)
	}
}
