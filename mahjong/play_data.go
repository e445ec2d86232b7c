package mahjong

import (
	"maps"
	"slices"
)

// PlayData 一个座位的牌面数据: 手牌多重集 + 副露列表 + 花牌区.
// 不变量: 手牌数 + 3*(碰/吃数) + 4*杠数 + 花牌数 = 该座位累计received张数;
// 等待摸牌时手牌13张, 摸牌/抢牌后出牌前14张(随副露增减)
type PlayData struct {
	play        *Play
	seat        int32
	handTiles   []Tile
	outTiles    []Tile
	bonusTiles  []Tile
	chowGroups  []ChowGroup
	ponGroups   []Group
	konGroups   []KonGroup
	callDataMap map[Tile]map[Tile]int32 // 听牌(出牌前)
	callData    map[Tile]int32          // 听牌(出牌后)
	ting        bool
	passPon     map[Tile]struct{}
	passHu      map[Tile]int32
}

func NewPlayData(p *Play, seat int32) *PlayData {
	return &PlayData{
		play:        p,
		seat:        seat,
		handTiles:   make([]Tile, 0),
		outTiles:    make([]Tile, 0),
		bonusTiles:  make([]Tile, 0),
		chowGroups:  make([]ChowGroup, 0),
		ponGroups:   make([]Group, 0),
		konGroups:   make([]KonGroup, 0),
		callDataMap: make(map[Tile]map[Tile]int32),
		callData:    make(map[Tile]int32),
		passPon:     make(map[Tile]struct{}),
		passHu:      make(map[Tile]int32),
	}
}

func (p *PlayData) GetSeat() int32 {
	return p.seat
}

func (p *PlayData) GetHandTiles() []Tile {
	return p.handTiles
}

func (p *PlayData) GetOutTiles() []Tile {
	return p.outTiles
}

func (p *PlayData) GetBonusTiles() []Tile {
	return p.bonusTiles
}

func (p *PlayData) SetCallMap(callMap map[Tile]map[Tile]int32) {
	p.callDataMap = callMap
}

func (p *PlayData) GetCallMap() map[Tile]map[Tile]int32 {
	return p.callDataMap
}

func (p *PlayData) GetCallData() map[Tile]int32 {
	return p.callData
}

func (p *PlayData) SetTing(ting bool) {
	p.ting = ting
}

func (p *PlayData) IsTing() bool {
	return p.ting
}

func (p *PlayData) PutHandTile(tile Tile) {
	p.handTiles = append(p.handTiles, tile)
}

func (p *PlayData) RemoveHandTile(tile Tile, count int) {
	p.handTiles = RemoveElements(p.handTiles, tile, count)
}

func (p *PlayData) PutBonusTile(tile Tile) {
	p.bonusTiles = append(p.bonusTiles, tile)
}

func (p *PlayData) PutOutTile(tile Tile) {
	p.outTiles = append(p.outTiles, tile)
}

func (p *PlayData) RemoveOutTile() {
	if len(p.outTiles) > 0 {
		p.outTiles = p.outTiles[:len(p.outTiles)-1]
	}
}

func (p *PlayData) Discard(tile Tile) bool {
	if !slices.Contains(p.handTiles, tile) {
		return false
	}
	p.handTiles = RemoveElements(p.handTiles, tile, 1)
	p.PutOutTile(tile)
	p.callData = make(map[Tile]int32)
	if callMap, ok := p.callDataMap[tile]; ok {
		maps.Copy(p.callData, callMap)
	}
	return true
}

// HasGroups 是否有任何副露(含暗杠)
func (p *PlayData) HasGroups() bool {
	return len(p.chowGroups) > 0 || len(p.ponGroups) > 0 || len(p.konGroups) > 0
}

func (p *PlayData) GroupCount() int {
	return len(p.chowGroups) + len(p.ponGroups) + len(p.konGroups)
}

// AllTiles 拼出参与牌型判定的全部牌面: 指定的手牌 + 副露(花牌不算)
func (p *PlayData) AllTiles(concealed []Tile) []Tile {
	all := slices.Clone(concealed)
	for _, g := range p.chowGroups {
		color, point := g.LeftTile.Info()
		all = append(all, g.LeftTile, MakeTile(color, point+1), MakeTile(color, point+2))
	}
	for _, g := range p.ponGroups {
		all = append(all, MakeTiles(g.Tile, 3)...)
	}
	for _, g := range p.konGroups {
		all = append(all, MakeTiles(g.Tile, 4)...)
	}
	return all
}

func (p *PlayData) canKon(tile Tile, konType KonType) bool {
	count := CountElement(p.handTiles, tile)
	switch konType {
	case KonTypeZhi:
		return count == 3
	case KonTypeAn:
		return count == 4
	case KonTypeBu:
		return count == 1 && p.HasPon(tile)
	default:
		return false
	}
}

func (p *PlayData) canPon(tile Tile) bool {
	return CanClaimPon(p.handTiles, tile)
}

func (p *PlayData) canChow(tile Tile) bool {
	return CanClaimChow(p.handTiles, tile)
}

func (p *PlayData) tryChow(curTile, leftTile Tile) ([]Tile, bool) {
	tiles := make([]Tile, 0)
	color, point := leftTile.Info()
	if color != curTile.Color() || curTile.Point()-point >= 3 {
		return tiles, false
	}
	for i := range 3 {
		t := MakeTile(color, point+i)
		if t == curTile {
			continue
		}
		if !slices.Contains(p.handTiles, t) {
			return tiles, false
		}
		tiles = append(tiles, t)
	}
	return tiles, true
}

func (p *PlayData) chow(tiles []Tile, curTile, leftTile Tile, from int32) {
	for _, t := range tiles {
		p.RemoveHandTile(t, 1)
	}
	p.chowGroups = append(p.chowGroups, ChowGroup{
		ChowTile: curTile,
		From:     from,
		LeftTile: leftTile,
	})
}

func (p *PlayData) Pon(tile Tile, from int32) {
	p.RemoveHandTile(tile, 2)
	p.ponGroups = append(p.ponGroups, Group{Tile: tile, From: from})
}

func (p *PlayData) HasPon(tile Tile) bool {
	for _, group := range p.ponGroups {
		if group.Tile == tile {
			return true
		}
	}
	return false
}

func (p *PlayData) kon(tile Tile, from int32, konType KonType) {
	if konType == KonTypeBu {
		p.buKon(tile, p.play.isKonAfterPon(tile))
	} else {
		p.anZhiKon(tile, from, konType)
	}
}

// buKon 碰升补杠: 撤下碰组, 换成带原出处的杠组.
// 刚碰即杠视同直杠
func (p *PlayData) buKon(tile Tile, buKonAfterPon bool) {
	p.RemoveHandTile(tile, 1)
	from := p.RemovePon(tile).From
	if buKonAfterPon {
		p.konGroups = append(p.konGroups, KonGroup{Tile: tile, From: from, Type: KonTypeZhi})
	} else {
		p.konGroups = append(p.konGroups, KonGroup{Tile: tile, From: from, Type: KonTypeBu})
	}
}

func (p *PlayData) anZhiKon(tile Tile, from int32, konType KonType) {
	if konType == KonTypeAn {
		p.RemoveHandTile(tile, 4)
	} else {
		p.RemoveHandTile(tile, 3)
	}
	p.konGroups = append(p.konGroups, KonGroup{Tile: tile, From: from, Type: konType})
}

// revertBuKon 抢杠成立时回退补杠: 杠组撤销, 碰组恢复, 该张牌交出
func (p *PlayData) revertBuKon(tile Tile) {
	group := p.RemoveKon(tile)
	p.ponGroups = append(p.ponGroups, Group{Tile: tile, From: group.From})
}

func (p *PlayData) HasKon(tile Tile) bool {
	for _, group := range p.konGroups {
		if group.Tile == tile {
			return true
		}
	}
	return false
}

func (p *PlayData) RemovePon(tile Tile) Group {
	for i, group := range p.ponGroups {
		if group.Tile == tile {
			p.ponGroups = append(p.ponGroups[:i], p.ponGroups[i+1:]...)
			return group
		}
	}
	return Group{}
}

func (p *PlayData) RemoveKon(tile Tile) KonGroup {
	for i, group := range p.konGroups {
		if group.Tile == tile {
			p.konGroups = append(p.konGroups[:i], p.konGroups[i+1:]...)
			return group
		}
	}
	return KonGroup{}
}

func (p *PlayData) GetChowGroups() []ChowGroup {
	return p.chowGroups
}

func (p *PlayData) GetPonGroups() []Group {
	return p.ponGroups
}

func (p *PlayData) GetKonGroups() []KonGroup {
	return p.konGroups
}

func (p *PlayData) IsMenQin() bool {
	if len(p.chowGroups) > 0 || len(p.ponGroups) > 0 {
		return false
	}
	for _, group := range p.konGroups {
		if group.Type != KonTypeAn {
			return false
		}
	}
	return true
}

func (p *PlayData) IsPassHuTile(tile Tile) bool {
	_, ok := p.passHu[tile]
	return ok
}

func (p *PlayData) IsPassPonTile(tile Tile) bool {
	_, ok := p.passPon[tile]
	return ok
}

// ClearPass 手牌变动后过胡/过碰限制解除
func (p *PlayData) ClearPass() {
	p.passPon = make(map[Tile]struct{})
	p.passHu = make(map[Tile]int32)
}

func (p *PlayData) PassPon(tile Tile) {
	p.passPon[tile] = struct{}{}
}

func (p *PlayData) PassHu(tile Tile, fan int32) {
	p.passHu[tile] = fan
}

// canSelfKon 自杠判定: 碰组升杠或手中四张.
// 已听牌的座位只能开不改叫的杠
func (p *PlayData) canSelfKon() ([]Tile, bool) {
	konTiles := make([]Tile, 0)
	counts := CountTiles(p.handTiles)

	if !p.ting {
		for _, pon := range p.ponGroups {
			if slices.Contains(p.handTiles, pon.Tile) {
				konTiles = append(konTiles, pon.Tile)
			}
		}
		for tile, count := range counts {
			if count == 4 {
				konTiles = append(konTiles, tile)
			}
		}
		return konTiles, len(konTiles) > 0
	}

	lastTile := p.handTiles[len(p.handTiles)-1]
	for _, pon := range p.ponGroups {
		if pon.Tile == lastTile {
			return []Tile{pon.Tile}, true
		}
	}
	if counts[lastTile] == 4 && p.canKonAfterCall(lastTile, KonTypeAn) {
		return []Tile{lastTile}, true
	}
	return nil, false
}

// canKonAfterCall 开杠前后叫牌一致才允许
func (p *PlayData) canKonAfterCall(tile Tile, konType KonType) bool {
	if KonTypeZhi != konType && tile != p.handTiles[len(p.handTiles)-1] {
		return false
	}

	hudata := NewHuData(p, false)
	if KonTypeZhi != konType {
		hudata.Tiles = hudata.Tiles[:len(hudata.Tiles)-1]
	}
	call0 := hudata.CheckCall()
	hudata.Tiles = RemoveAllElement(hudata.Tiles, tile)
	call1 := hudata.CheckCall()
	if len(call0) != 1 || len(call1) != 1 {
		return false
	}
	return HasSameKeys(call0[TileNull], call1[TileNull])
}
