package mahjong

// RemoveElements 从切片中移除至多count个指定元素
func RemoveElements(tiles []Tile, tile Tile, count int) []Tile {
	res := make([]Tile, 0, len(tiles))
	for _, t := range tiles {
		if t == tile && count > 0 {
			count--
			continue
		}
		res = append(res, t)
	}
	return res
}

func RemoveAllElement(tiles []Tile, tile Tile) []Tile {
	res := make([]Tile, 0, len(tiles))
	for _, t := range tiles {
		if t != tile {
			res = append(res, t)
		}
	}
	return res
}

func CountElement(tiles []Tile, tile Tile) int {
	count := 0
	for _, t := range tiles {
		if t == tile {
			count++
		}
	}
	return count
}

func MakeTiles(t Tile, count int) []Tile {
	if count <= 0 {
		return []Tile{}
	}
	res := make([]Tile, count)
	for i := range res {
		res[i] = t
	}
	return res
}

// CountTiles 按牌统计张数
func CountTiles(tiles []Tile) map[Tile]int {
	counts := make(map[Tile]int, len(tiles))
	for _, t := range tiles {
		counts[t]++
	}
	return counts
}

func HasSameKeys[K comparable, V any](a, b map[K]V) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
