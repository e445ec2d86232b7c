package mahjong

import "slices"

// 副露组, 形成后不可变; 唯一例外是碰升补杠
type Group struct {
	Tile  Tile
	From  int32
	Extra int32
}

type KonGroup struct {
	Tile  Tile
	From  int32
	Type  KonType
	Extra int32
}

type ChowGroup struct {
	ChowTile Tile
	From     int32
	LeftTile Tile
}

// 以下为无状态判定, 不改动任何牌权

func CanFormPon(tiles []Tile) bool {
	if len(tiles) != NP3 {
		return false
	}
	return tiles[0].IsValid() && tiles[0] == tiles[1] && tiles[1] == tiles[2]
}

func CanFormKon(tiles []Tile) bool {
	if len(tiles) != NP4 {
		return false
	}
	return tiles[0].IsValid() && tiles[0] == tiles[1] && tiles[1] == tiles[2] && tiles[2] == tiles[3]
}

// CanFormChow 同色数牌的连续3张; 字牌花牌不可吃, 起点不可超过7
func CanFormChow(tiles []Tile) bool {
	if len(tiles) != NP3 {
		return false
	}
	color := tiles[0].Color()
	for _, t := range tiles {
		if !t.IsSuit() || t.Color() != color {
			return false
		}
	}
	points := []int{tiles[0].Point(), tiles[1].Point(), tiles[2].Point()}
	slices.Sort(points)
	if points[0] > 6 {
		return false
	}
	return points[1] == points[0]+1 && points[2] == points[0]+2
}

func CanClaimPon(hand []Tile, tile Tile) bool {
	return tile.IsValid() && CountElement(hand, tile) >= 2
}

func CanClaimKon(hand []Tile, tile Tile) bool {
	return tile.IsValid() && CountElement(hand, tile) >= 3
}

// CanClaimChow 手中持有与弃牌成顺的两张, 弃牌可为顺子高/中/低位
func CanClaimChow(hand []Tile, tile Tile) bool {
	if !tile.IsSuit() {
		return false
	}
	color, point := tile.Info()
	points := make([]int, PointCountByColor[color])
	for _, t := range hand {
		if t.Color() == color {
			points[t.Point()]++
		}
	}
	points[point]++
	leftPoint := max(point-2, 0)
	maxLeftPoint := min(6, point)
	for i := leftPoint; i <= maxLeftPoint; i++ {
		if points[i] != 0 && points[i+1] != 0 && points[i+2] != 0 {
			return true
		}
	}
	return false
}

// ChowSearch 定位与弃牌成顺的两张手牌, 依次尝试弃牌作高位/中位/低位,
// 取第一个成立的组合, 返回顺子低位牌
func ChowSearch(hand []Tile, tile Tile) (left Tile, ok bool) {
	if !tile.IsSuit() {
		return TileNull, false
	}
	color, point := tile.Info()
	for _, start := range []int{point - 2, point - 1, point} {
		if start < 0 || start > 6 {
			continue
		}
		found := true
		for i := start; i < start+3; i++ {
			t := MakeTile(color, i)
			if t == tile {
				continue
			}
			if !slices.Contains(hand, t) {
				found = false
				break
			}
		}
		if found {
			return MakeTile(color, start), true
		}
	}
	return TileNull, false
}
