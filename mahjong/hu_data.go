package mahjong

import "slices"

// HuResult 一次胡牌判定的结果: 番型明细 + 总番
type HuResult struct {
	Seat     int32
	FanTypes []int32
	TotalFan int32
	Capped   bool
}

// HuData 某座位手牌的判胡快照. 所有检查在克隆数据上进行,
// 不会改动PlayData本身(带候选牌试胡同理).
type HuData struct {
	*PlayData
	Tiles   []Tile
	curTile Tile

	Zimo           bool
	LastTile       bool // 海底
	AfterKon       bool // 杠上开花
	RobKon         bool // 抢杠胡
	SeatWind       Tile
	PrevailingWind Tile
	Banker         bool
}

func NewHuData(playData *PlayData, self bool) *HuData {
	play := playData.play
	data := &HuData{
		PlayData:       playData,
		Tiles:          slices.Clone(playData.handTiles),
		curTile:        play.curTile,
		Zimo:           self,
		LastTile:       play.dealer.GetRestCount() == 0,
		AfterKon:       self && play.IsAfterKon(),
		SeatWind:       play.SeatWindTile(playData.seat),
		PrevailingWind: play.PrevailingWindTile(),
		Banker:         playData.seat == play.banker,
	}
	return data
}

func (h *HuData) GetCurTile() Tile {
	return h.curTile
}

// CheckHu 判定当前快照是否成胡, 成胡时返回番型明细.
// 七对与十三幺要求门前清: 有任何副露(含暗杠)即不参与这两种牌型.
func (h *HuData) CheckHu() (*HuResult, bool) {
	if len(h.Tiles)%3 != 2 {
		h.Tiles = append(h.Tiles, h.curTile)
	}
	huType := DefaultHuCore.CheckBasicHu(h.Tiles, 0)
	if huType == HU_NON {
		return nil, false
	}
	if huType != HU_PIN && h.HasGroups() {
		return nil, false
	}

	fanTypes := DetectFans(h, huType)
	total := TotalFan(fanTypes)
	conf := h.play.conf
	result := &HuResult{
		Seat:     h.seat,
		FanTypes: fanTypes,
		TotalFan: total,
		Capped:   conf.IsTopFan(total),
	}
	return result, true
}

// CheckCall 计算听牌表: 打哪张 -> 能胡哪些牌及其番数.
// 临时移牌+插候选完成, 不动原手牌.
func (h *HuData) CheckCall() map[Tile]map[Tile]int32 {
	callMap := make(map[Tile]map[Tile]int32)
	switch len(h.Tiles) % 3 {
	case 2:
		tileSet := make(map[Tile]bool)
		for _, tile := range h.Tiles {
			tileSet[tile] = true
		}

		tempData := *h
		for tile := range tileSet {
			tempData.Tiles = RemoveElements(h.Tiles, tile, 1)
			fans := tempData.checkCalls()
			if len(fans) > 0 {
				callMap[tile] = fans
			}
		}
	case 1:
		// 出牌后直接查叫
		callData := h.checkCalls()
		if len(callData) > 0 {
			callMap[TileNull] = callData
		}
	}
	return callMap
}

func (h *HuData) CanHu() bool {
	return DefaultHuCore.CheckBasicHu(h.Tiles, 0) != HU_NON
}

func (h *HuData) checkCalls() map[Tile]int32 {
	fans := make(map[Tile]int32)
	testTiles := h.play.rule.GetAllTiles()
	originalTiles := slices.Clone(h.Tiles)
	originalCur := h.curTile
	for tile := range testTiles {
		if tile.IsExtra() {
			continue
		}
		h.curTile = tile
		h.Tiles = append(h.Tiles, tile)
		if result, ok := h.CheckHu(); ok {
			fans[tile] = result.TotalFan
		}
		h.Tiles = originalTiles
	}
	h.curTile = originalCur
	return fans
}
