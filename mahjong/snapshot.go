package mahjong

import (
	"github.com/jinzhu/copier"
	"github.com/sirupsen/logrus"
)

// SeatSnapshot 观战/回放视角下一个座位的可见状态
type SeatSnapshot struct {
	Seat       int32
	HandTiles  []Tile // 非本人视角全部置为TileNull
	OutTiles   []Tile
	BonusTiles []Tile
	ChowGroups []ChowGroup
	PonGroups  []Group
	KonGroups  []KonGroup
}

// PlaySnapshot 深拷贝的对局快照, 与引擎内部状态完全脱钩
type PlaySnapshot struct {
	Banker    int32
	CurSeat   int32
	CurTile   Tile
	Phase     Phase
	RestCount int32
	Winner    int32
	History   []Action
	Seats     []*SeatSnapshot
}

// Snapshot 以viewer视角导出快照: 他人手牌遮蔽, 暗杠牌面保留
// (回放场景由上层决定是否二次遮蔽). viewer为SeatNull时全明
func (p *Play) Snapshot(viewer int32) *PlaySnapshot {
	snap := &PlaySnapshot{
		Banker:    p.banker,
		CurSeat:   p.curSeat,
		CurTile:   p.curTile,
		Phase:     p.phase,
		RestCount: p.dealer.GetRestCount(),
		Winner:    p.winner,
		Seats:     make([]*SeatSnapshot, p.playerCount),
	}
	if err := copier.CopyWithOption(&snap.History, &p.history, copier.Option{DeepCopy: true}); err != nil {
		logrus.Errorf("snapshot history copy: %v", err)
	}

	for i := range p.playerCount {
		playData := p.playData[i]
		seat := &SeatSnapshot{Seat: i}
		if err := copier.CopyWithOption(seat, &struct {
			HandTiles  []Tile
			OutTiles   []Tile
			BonusTiles []Tile
			ChowGroups []ChowGroup
			PonGroups  []Group
			KonGroups  []KonGroup
		}{
			HandTiles:  playData.handTiles,
			OutTiles:   playData.outTiles,
			BonusTiles: playData.bonusTiles,
			ChowGroups: playData.chowGroups,
			PonGroups:  playData.ponGroups,
			KonGroups:  playData.konGroups,
		}, copier.Option{DeepCopy: true}); err != nil {
			logrus.Errorf("snapshot seat copy: %v", err)
		}
		if viewer != SeatNull && viewer != i && p.phase != PhaseHandOver {
			for k := range seat.HandTiles {
				seat.HandTiles[k] = TileNull
			}
		}
		snap.Seats[i] = seat
	}
	return snap
}
