package mahjong

import (
	"math/rand"
)

// Dealer 牌墙: 前段摸牌区 + 固定大小的墙尾(杠补区).
// 摸牌游标只进不退; 从墙尾补牌后由摸牌区尾部回填,
// 摸牌区耗尽前墙尾大小恒定
type Dealer struct {
	rule     *Rule
	fullWall []Tile // 初始全墙, 供Arena建档
	tileWall []Tile // 摸牌区
	deadWall []Tile // 墙尾
	cursor   int
}

func NewDealer(rule *Rule) *Dealer {
	return &Dealer{
		rule:     rule,
		tileWall: make([]Tile, 0),
		deadWall: make([]Tile, 0),
	}
}

func (d *Dealer) Initialize(manual *Manual) {
	tiles := d.rule.GetAllTiles()
	total := 0
	for _, count := range tiles {
		total += count
	}

	full := make([]Tile, 0, total)
	if manual.enabled() {
		if loaded, err := manual.load(tiles, int(d.rule.PlayerCount()), TileCountInitNormal); err == nil {
			full = loaded
		}
	}
	if len(full) == 0 {
		full = make([]Tile, total)
		// 边填边洗
		i := 0
		for tile, count := range tiles {
			for range count {
				pos := rand.Intn(i + 1)
				if pos != i {
					full[i] = full[pos]
				}
				full[pos] = tile
				i++
			}
		}
	}

	d.fullWall = full
	dead := min(DeadWallCount, len(full))
	d.tileWall = full[:len(full)-dead]
	d.deadWall = append([]Tile(nil), full[len(full)-dead:]...)
	d.cursor = 0
}

func (d *Dealer) FullWall() []Tile {
	return d.fullWall
}

// DrawTile 从墙头摸一张, 摸牌区耗尽返回TileNull
func (d *Dealer) DrawTile() Tile {
	if d.cursor >= len(d.tileWall) {
		return TileNull
	}
	tile := d.tileWall[d.cursor]
	d.cursor++
	return tile
}

// Deal 开局配牌, 从墙头顺序取
func (d *Dealer) Deal(count int) []Tile {
	if d.GetRestCount() < int32(count) {
		return nil
	}
	tiles := make([]Tile, count)
	copy(tiles, d.tileWall[d.cursor:d.cursor+count])
	d.cursor += count
	return tiles
}

// ReplacementTile 杠/花补牌: 取墙尾头一张, 再从摸牌区尾部回填一张
// 保持墙尾大小不变. refill为回填的那张, 摸牌区已空时为TileNull
func (d *Dealer) ReplacementTile() (tile, refill Tile) {
	if len(d.deadWall) == 0 {
		return TileNull, TileNull
	}
	tile, refill = d.deadWall[0], TileNull
	d.deadWall = d.deadWall[1:]
	if d.GetRestCount() > 0 {
		last := len(d.tileWall) - 1
		refill = d.tileWall[last]
		d.deadWall = append(d.deadWall, refill)
		d.tileWall = d.tileWall[:last]
	}
	return tile, refill
}

// GetRestCount 摸牌区剩余张数
func (d *Dealer) GetRestCount() int32 {
	return int32(len(d.tileWall) - d.cursor)
}

func (d *Dealer) DeadWallCount() int {
	return len(d.deadWall)
}

func (d *Dealer) Cursor() int {
	return d.cursor
}
