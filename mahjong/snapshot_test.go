package mahjong

import (
	"slices"
	"testing"
)

func Test_Snapshot_ViewerMasking(t *testing.T) {
	play := NewPlay(NewRule(), 0, 0)
	play.Initialize(nil)
	play.Deal()

	snap := play.Snapshot(1)
	if !slices.Equal(snap.Seats[1].HandTiles, play.playData[1].handTiles) {
		t.Error("viewer's own hand should be visible")
	}
	for _, tile := range snap.Seats[0].HandTiles {
		if tile != TileNull {
			t.Fatal("other seats' hands must be masked")
		}
	}
	if len(snap.Seats[0].HandTiles) != TileCountInitBanker {
		t.Errorf("masked hand length = %d, want %d", len(snap.Seats[0].HandTiles), TileCountInitBanker)
	}

	full := play.Snapshot(SeatNull)
	if !slices.Equal(full.Seats[0].HandTiles, play.playData[0].handTiles) {
		t.Error("SeatNull viewer sees all hands")
	}
}

// 快照与引擎状态脱钩: 改快照不得影响对局
func Test_Snapshot_DeepCopy(t *testing.T) {
	play := NewPlay(NewRule(), 0, 0)
	play.Initialize(nil)
	play.Deal()
	if err := play.Discard(0, TileNull); err != nil {
		t.Fatalf("discard: %v", err)
	}

	snap := play.Snapshot(SeatNull)
	if len(snap.History) != 1 {
		t.Fatalf("history = %d, want 1", len(snap.History))
	}

	origTile := play.playData[1].handTiles[0]
	snap.Seats[1].HandTiles[0] = TileNull
	snap.History[0].Tile = TileNull
	snap.Seats[0].OutTiles = append(snap.Seats[0].OutTiles, TileZhong)

	if play.playData[1].handTiles[0] != origTile {
		t.Error("snapshot hand edit leaked into play data")
	}
	if play.history[0].Tile == TileNull {
		t.Error("snapshot history edit leaked into play data")
	}
	if len(play.playData[0].outTiles) != 1 {
		t.Error("snapshot out-tiles edit leaked into play data")
	}
}
