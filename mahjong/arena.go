package mahjong

// Zone 一张实体牌当前所处的区域
type Zone int

const (
	ZoneWall     Zone = iota // 牌墙
	ZoneDeadWall             // 墙尾(杠补区)
	ZoneHand                 // 手牌
	ZoneMeld                 // 副露
	ZoneBonus                // 花牌区
	ZoneDiscards             // 弃牌区
)

// Instance 一张实体牌: 不变的牌面 + 局内唯一id
type Instance struct {
	ID   int32
	Tile Tile
}

type Placement struct {
	Zone Zone
	Seat int32 // 牌墙区为SeatNull
}

// Arena 实体牌位置的唯一事实来源: id -> 区域.
// 牌只迁移, 从不销毁; 手牌/副露等处的切片只是规则逻辑的视图.
type Arena struct {
	instances  []Instance
	placements []Placement
}

// NewArena 按牌墙顺序为整副牌建档, 全部落在牌墙区
func NewArena(wall []Tile) *Arena {
	a := &Arena{
		instances:  make([]Instance, len(wall)),
		placements: make([]Placement, len(wall)),
	}
	for i, t := range wall {
		a.instances[i] = Instance{ID: int32(i), Tile: t}
		a.placements[i] = Placement{Zone: ZoneWall, Seat: SeatNull}
	}
	return a
}

func (a *Arena) Size() int {
	return len(a.instances)
}

func (a *Arena) Instance(id int32) Instance {
	return a.instances[id]
}

func (a *Arena) PlacementOf(id int32) Placement {
	return a.placements[id]
}

func (a *Arena) Move(id int32, to Placement) {
	a.placements[id] = to
}

// MoveTile 将指定区域内一张同牌面的实体牌迁到目标区域.
// 同牌面可互换, 取id最小的一张.
func (a *Arena) MoveTile(tile Tile, from, to Placement) bool {
	for id, p := range a.placements {
		if p == from && a.instances[id].Tile == tile {
			a.placements[id] = to
			return true
		}
	}
	return false
}

// MoveNextWall 牌墙区id最小的一张迁出, 对应从墙头摸牌
func (a *Arena) MoveNextWall(tile Tile, to Placement) bool {
	return a.MoveTile(tile, Placement{Zone: ZoneWall, Seat: SeatNull}, to)
}

func (a *Arena) Find(zone Zone, seat int32) []int32 {
	var ids []int32
	for id, p := range a.placements {
		if p.Zone == zone && p.Seat == seat {
			ids = append(ids, int32(id))
		}
	}
	return ids
}

func (a *Arena) CountZone(zone Zone) int {
	count := 0
	for _, p := range a.placements {
		if p.Zone == zone {
			count++
		}
	}
	return count
}

func (a *Arena) SeatZoneCount(zone Zone, seat int32) int {
	count := 0
	for _, p := range a.placements {
		if p.Zone == zone && p.Seat == seat {
			count++
		}
	}
	return count
}

// Concealed 实体牌当前是否背面朝上
func (a *Arena) Concealed(id int32) bool {
	switch a.placements[id].Zone {
	case ZoneWall, ZoneDeadWall, ZoneHand:
		return true
	default:
		return false
	}
}
