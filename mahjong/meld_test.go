package mahjong_test

import (
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_mahjong/mahjong"
)

func Test_CanFormChow(t *testing.T) {
	testCases := []struct {
		tiles []mahjong.Tile
		want  bool
	}{
		{mk(mahjong.ColorCharacter, 1, 2, 3), true},
		{mk(mahjong.ColorCharacter, 3, 1, 2), true}, // 乱序
		{mk(mahjong.ColorCharacter, 7, 8, 9), true}, // 7起的顺合法
		{mk(mahjong.ColorCharacter, 1, 2, 4), false},
		{mk(mahjong.ColorCharacter, 1, 1, 1), false},
		{append(mk(mahjong.ColorCharacter, 1, 2), mahjong.MakeTile(mahjong.ColorDot, 2)), false}, // 跨色
		{[]mahjong.Tile{mahjong.TileDong, mahjong.TileNan, mahjong.TileXi}, false},               // 字牌无顺
		{mk(mahjong.ColorCharacter, 1, 2), false},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			if got := mahjong.CanFormChow(tc.tiles); got != tc.want {
				t.Errorf("CanFormChow(%s) = %v, want %v", mahjong.TilesName(tc.tiles), got, tc.want)
			}
		})
	}
}

func Test_CanFormPonKon(t *testing.T) {
	pon := mk(mahjong.ColorDot, 5, 5, 5)
	if !mahjong.CanFormPon(pon) {
		t.Error("three identical should form pon")
	}
	if mahjong.CanFormPon(mk(mahjong.ColorDot, 5, 5, 6)) {
		t.Error("mixed tiles cannot form pon")
	}
	if !mahjong.CanFormKon(mk(mahjong.ColorDot, 5, 5, 5, 5)) {
		t.Error("four identical should form kon")
	}
	if mahjong.CanFormKon(pon) {
		t.Error("three tiles cannot form kon")
	}
}

func Test_CanClaim(t *testing.T) {
	hand := append(mk(mahjong.ColorBamboo, 2, 2, 3, 4, 7), mahjong.TileDong, mahjong.TileDong)
	discard := mahjong.MakeTile(mahjong.ColorBamboo, 1) // 2条

	if !mahjong.CanClaimPon(hand, discard) {
		t.Error("two matching in hand should allow pon")
	}
	if mahjong.CanClaimKon(hand, discard) {
		t.Error("kon claim needs three matching")
	}
	if !mahjong.CanClaimChow(hand, discard) {
		t.Error("3,4 in hand should allow chow of 2")
	}
	if mahjong.CanClaimChow(hand, mahjong.TileDong) {
		t.Error("honor tile can never be chowed")
	}
}

// 吃牌搜索按弃牌作高位/中位/低位的次序取第一个成立的
func Test_ChowSearch(t *testing.T) {
	hand := mk(mahjong.ColorCharacter, 3, 4, 6, 7)
	discard := mahjong.MakeTile(mahjong.ColorCharacter, 4) // 5万

	left, ok := mahjong.ChowSearch(hand, discard)
	if !ok {
		t.Fatal("chow should be possible")
	}
	// 3,4,5 优先于 4,5,6 和 5,6,7
	if want := mahjong.MakeTile(mahjong.ColorCharacter, 2); left != want {
		t.Errorf("left = %s, want %s", left.Name(), want.Name())
	}

	hand = mk(mahjong.ColorCharacter, 6, 7)
	left, ok = mahjong.ChowSearch(hand, discard)
	if !ok {
		t.Fatal("5,6,7 chow should be possible")
	}
	if want := mahjong.MakeTile(mahjong.ColorCharacter, 4); left != want {
		t.Errorf("left = %s, want %s", left.Name(), want.Name())
	}
}
