package mahjong

// 番型. 各番独立检测后求和, 互斥关系在DetectFans内处理
const (
	FanZiMo            int32 = iota // 自摸
	FanPengPengHu                   // 碰碰胡
	FanQingYiSe                     // 清一色
	FanHunYiSe                      // 混一色
	FanHunYaoJiu                    // 混幺九
	FanDuanYaoJiu                   // 断幺九
	FanJianKe                       // 箭刻
	FanSeatWind                     // 门风刻
	FanPrevailingWind               // 圈风刻
	FanGen                          // 杠(根)
	FanFlower                       // 花牌
	FanHaiDi                        // 海底捞月
	FanGangShangKaiHua              // 杠上开花
	FanQiangGangHu                  // 抢杠胡
	FanQiDui                        // 七对
	FanShiSanYao                    // 十三幺
	FanMenQing                      // 门清
	FanCount
)

var fanValues = [FanCount]int32{
	FanZiMo:            1,
	FanPengPengHu:      2,
	FanQingYiSe:        6,
	FanHunYiSe:         3,
	FanHunYaoJiu:       10,
	FanDuanYaoJiu:      1,
	FanJianKe:          1,
	FanSeatWind:        1,
	FanPrevailingWind:  1,
	FanGen:             1,
	FanFlower:          1,
	FanHaiDi:           1,
	FanGangShangKaiHua: 1,
	FanQiangGangHu:     1,
	FanQiDui:           4,
	FanShiSanYao:       13,
	FanMenQing:         1,
}

var fanNames = [FanCount]string{
	FanZiMo:            "自摸",
	FanPengPengHu:      "碰碰胡",
	FanQingYiSe:        "清一色",
	FanHunYiSe:         "混一色",
	FanHunYaoJiu:       "混幺九",
	FanDuanYaoJiu:      "断幺九",
	FanJianKe:          "箭刻",
	FanSeatWind:        "门风刻",
	FanPrevailingWind:  "圈风刻",
	FanGen:             "根",
	FanFlower:          "花",
	FanHaiDi:           "海底捞月",
	FanGangShangKaiHua: "杠上开花",
	FanQiangGangHu:     "抢杠胡",
	FanQiDui:           "七对",
	FanShiSanYao:       "十三幺",
	FanMenQing:         "门清",
}

func FanValue(fan int32) int32 {
	if fan < 0 || fan >= FanCount {
		return 0
	}
	return fanValues[fan]
}

func FanName(fan int32) string {
	if fan < 0 || fan >= FanCount {
		return ""
	}
	return fanNames[fan]
}

func TotalFan(fanTypes []int32) int32 {
	var total int32
	for _, fan := range fanTypes {
		total += FanValue(fan)
	}
	return total
}

// DetectFans 对成胡快照逐项检测番型, 每项独立; 同一番可多计(箭刻/根/花).
// 互斥: 清一色压混一色, 混幺九压碰碰胡(幺九字牌型必然无顺, 不重复计).
func DetectFans(h *HuData, huType HuCoreType) []int32 {
	fans := make([]int32, 0, 8)

	switch huType {
	case HU_QIDUI:
		fans = append(fans, FanQiDui)
	case HU_13YAO:
		fans = append(fans, FanShiSanYao)
	}

	if h.Zimo {
		fans = append(fans, FanZiMo)
	} else if h.IsMenQin() {
		// 门前清接炮
		fans = append(fans, FanMenQing)
	}

	all := h.AllTiles(h.Tiles)
	fans = append(fans, detectSuitFans(all)...)

	if huType == HU_PIN {
		fans = append(fans, detectTripletFans(h, all)...)
	}

	for range h.konGroups {
		fans = append(fans, FanGen)
	}
	for range h.bonusTiles {
		fans = append(fans, FanFlower)
	}

	if h.LastTile {
		fans = append(fans, FanHaiDi)
	}
	if h.AfterKon {
		fans = append(fans, FanGangShangKaiHua)
	}
	if h.RobKon {
		fans = append(fans, FanQiangGangHu)
	}
	return fans
}

// detectSuitFans 一色与幺九类, 在手牌+副露的全部牌上检测
func detectSuitFans(all []Tile) []int32 {
	var fans []int32
	suits := make(map[EColor]bool)
	hasHonor, allYao, anyYao := false, true, false
	for _, t := range all {
		if t.IsHonor() {
			hasHonor = true
			anyYao = true
			continue
		}
		suits[t.Color()] = true
		if t.IsTerminal() {
			anyYao = true
		} else {
			allYao = false
		}
	}

	if len(suits) == 1 {
		if hasHonor {
			fans = append(fans, FanHunYiSe)
		} else {
			fans = append(fans, FanQingYiSe)
		}
	}
	if allYao {
		fans = append(fans, FanHunYaoJiu)
	} else if !anyYao {
		fans = append(fans, FanDuanYaoJiu)
	}
	return fans
}

// detectTripletFans 刻子类: 碰碰胡/箭刻/风刻. 依赖平胡拆解,
// 拆解顺序已在HuCore固定
func detectTripletFans(h *HuData, all []Tile) []int32 {
	var fans []int32
	_, melds, ok := DefaultHuCore.Decompose(h.Tiles)
	if !ok {
		return nil
	}

	triplets := make([]Tile, 0, len(melds))
	hasChow := len(h.chowGroups) > 0
	for _, m := range melds {
		if m.Kind == GroupTypePon {
			triplets = append(triplets, m.Tile)
		} else {
			hasChow = true
		}
	}
	for _, g := range h.ponGroups {
		triplets = append(triplets, g.Tile)
	}
	for _, g := range h.konGroups {
		triplets = append(triplets, g.Tile)
	}

	allYao := true
	for _, t := range all {
		if !t.IsHonor() && !t.IsTerminal() {
			allYao = false
			break
		}
	}
	if !hasChow && !allYao {
		fans = append(fans, FanPengPengHu)
	}

	for _, t := range triplets {
		if t.IsDragon() {
			fans = append(fans, FanJianKe)
		}
		if t.IsWind() {
			if t == h.SeatWind {
				fans = append(fans, FanSeatWind)
			}
			// 连风刻只计一次, 圈风与门风相同时归门风
			if t == h.PrevailingWind && h.PrevailingWind != h.SeatWind {
				fans = append(fans, FanPrevailingWind)
			}
		}
	}
	return fans
}
