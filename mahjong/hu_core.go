package mahjong

import "slices"

type HuCoreType int

const (
	HU_NON   HuCoreType = iota // 未成胡
	HU_PIN                     // 平胡(n组面子+1对)
	HU_QIDUI                   // 七对
	HU_13YAO                   // 十三幺
)

const defaultHandCount = 14

var DefaultHuCore = NewHuCore(defaultHandCount)

// HuCore 胡牌判定核心. 回溯搜索必须穷举将牌选择与刻/顺分支,
// 贪心的单趟拆解会漏判(某些牌型只有把特定牌用作顺才成立).
// 手牌至多14张, 无需剪枝缓存.
type HuCore struct {
	maxHandCount int
}

func NewHuCore(handCount int) *HuCore {
	return &HuCore{maxHandCount: handCount}
}

// CheckBasicHu 判定牌型, laiCount张混子可代任意牌.
// 平胡接受任意3n+2张(副露在多重集之外); 七对与十三幺要求整手14张.
func (h *HuCore) CheckBasicHu(tiles []Tile, laiCount int) HuCoreType {
	total := len(tiles) + laiCount
	if total > h.maxHandCount {
		return HU_NON
	}
	for _, t := range tiles {
		if !t.IsValid() || t.IsExtra() {
			return HU_NON
		}
	}

	if total%3 == 2 && h.checkPin(CountTiles(tiles), laiCount) {
		return HU_PIN
	}
	if total == 14 {
		if h.checkSevenPairs(tiles, laiCount) {
			return HU_QIDUI
		}
		if h.checkThirteenOrphans(tiles, laiCount) {
			return HU_13YAO
		}
	}
	return HU_NON
}

// checkPin 穷举将牌再递归拆面子
func (h *HuCore) checkPin(counts map[Tile]int, lai int) bool {
	order := sortedTiles(counts)
	for _, t := range order {
		if counts[t] >= 2 {
			counts[t] -= 2
			ok := h.stripMelds(counts, order, lai)
			counts[t] += 2
			if ok {
				return true
			}
		}
		if lai >= 1 {
			counts[t]--
			ok := h.stripMelds(counts, order, lai-1)
			counts[t]++
			if ok {
				return true
			}
		}
	}
	// 纯混子作将
	if lai >= 2 {
		return h.stripMelds(counts, order, lai-2)
	}
	return false
}

// stripMelds 从结构序最小的余牌开始拆, 每个分支点同时尝试刻子与顺子
func (h *HuCore) stripMelds(counts map[Tile]int, order []Tile, lai int) bool {
	var first Tile = TileNull
	for _, t := range order {
		if counts[t] > 0 {
			first = t
			break
		}
	}
	if first == TileNull {
		return lai%3 == 0
	}

	// 刻子, 不足的张数用混子补; 少用实牌多用混子的组合也要试,
	// 留下的实牌可能要进顺子
	count := counts[first]
	for use := min(count, 3); use >= 1; use-- {
		need := 3 - use
		if need > lai {
			continue
		}
		counts[first] -= use
		ok := h.stripMelds(counts, order, lai-need)
		counts[first] += use
		if ok {
			return true
		}
	}

	// 顺子: first必为顺子低位(更低的牌已拆完), 缺位用混子补
	if first.IsSuit() && first.Point() <= 6 {
		color, point := first.Info()
		second, third := MakeTile(color, point+1), MakeTile(color, point+2)
		for _, miss := range [][2]Tile{{TileNull, TileNull}, {second, TileNull}, {third, TileNull}, {second, third}} {
			need := 0
			use := []Tile{first}
			for _, t := range []Tile{second, third} {
				if t == miss[0] || t == miss[1] {
					need++
				} else {
					use = append(use, t)
				}
			}
			if need > lai {
				continue
			}
			ok := true
			for _, t := range use {
				if counts[t] <= 0 {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			for _, t := range use {
				counts[t]--
			}
			done := h.stripMelds(counts, order, lai-need)
			for _, t := range use {
				counts[t]++
			}
			if done {
				return true
			}
		}
	}
	return false
}

func (h *HuCore) checkSevenPairs(tiles []Tile, lai int) bool {
	odd := 0
	for _, count := range CountTiles(tiles) {
		odd += count % 2
	}
	return odd <= lai && (lai-odd)%2 == 0
}

func (h *HuCore) checkThirteenOrphans(tiles []Tile, lai int) bool {
	targets := TerminalHonorTiles()
	counts := CountTiles(tiles)
	extras := 0
	for t, count := range counts {
		if !slices.Contains(targets, t) {
			return false
		}
		if count > 2 {
			return false
		}
		extras += count - 1
	}
	if extras > 1 {
		return false
	}
	missing := len(targets) - len(counts)
	return lai == missing+1-extras
}

// DecomposedMeld 平胡拆解中的一组面子
type DecomposedMeld struct {
	Kind EGroupType // GroupTypePon或GroupTypeChow
	Tile Tile       // 刻子牌面或顺子低位
}

// Decompose 返回平胡拆解: 将牌 + 面子列表. 拆解顺序固定:
// 将牌候选按牌值升序, 分支点先刻后顺, 取第一个成立的拆法.
// 番型检测依赖该结构, 顺序不可随意改动.
func (h *HuCore) Decompose(tiles []Tile) (pair Tile, melds []DecomposedMeld, ok bool) {
	if len(tiles)%3 != 2 {
		return TileNull, nil, false
	}
	counts := CountTiles(tiles)
	order := sortedTiles(counts)
	for _, t := range order {
		if counts[t] < 2 {
			continue
		}
		counts[t] -= 2
		melds = melds[:0]
		if h.decomposeMelds(counts, order, &melds) {
			counts[t] += 2
			return t, slices.Clone(melds), true
		}
		counts[t] += 2
	}
	return TileNull, nil, false
}

func (h *HuCore) decomposeMelds(counts map[Tile]int, order []Tile, melds *[]DecomposedMeld) bool {
	var first Tile = TileNull
	for _, t := range order {
		if counts[t] > 0 {
			first = t
			break
		}
	}
	if first == TileNull {
		return true
	}

	if counts[first] >= 3 {
		counts[first] -= 3
		*melds = append(*melds, DecomposedMeld{Kind: GroupTypePon, Tile: first})
		if h.decomposeMelds(counts, order, melds) {
			counts[first] += 3
			return true
		}
		*melds = (*melds)[:len(*melds)-1]
		counts[first] += 3
	}

	if first.IsSuit() && first.Point() <= 6 {
		color, point := first.Info()
		second, third := MakeTile(color, point+1), MakeTile(color, point+2)
		if counts[second] > 0 && counts[third] > 0 {
			counts[first]--
			counts[second]--
			counts[third]--
			*melds = append(*melds, DecomposedMeld{Kind: GroupTypeChow, Tile: first})
			if h.decomposeMelds(counts, order, melds) {
				counts[first]++
				counts[second]++
				counts[third]++
				return true
			}
			*melds = (*melds)[:len(*melds)-1]
			counts[first]++
			counts[second]++
			counts[third]++
		}
	}
	return false
}

func sortedTiles(counts map[Tile]int) []Tile {
	order := make([]Tile, 0, len(counts))
	for t := range counts {
		order = append(order, t)
	}
	slices.Sort(order)
	return order
}
