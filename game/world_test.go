package game

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func spawnN(w *World, kinds ...Kind) []Handle {
	handles := make([]Handle, len(kinds))
	for i, k := range kinds {
		handles[i] = w.Spawn(NewEntity(k, mgl64.Vec3{float64(i), 0, 0}))
	}
	return handles
}

func TestWorldSpawnKeepsOrder(t *testing.T) {
	w := NewWorld(4)
	spawnN(w, KindPlayer, KindEnemy, KindSeeker, KindBuoy)

	want := []Kind{KindPlayer, KindEnemy, KindSeeker, KindBuoy}
	if w.Len() != len(want) {
		t.Fatalf("Len = %d, want %d", w.Len(), len(want))
	}
	for i, k := range want {
		if w.At(i).Kind != k {
			t.Errorf("At(%d) = %v, want %v", i, w.At(i).Kind, k)
		}
	}
	if p, ok := w.Player(); !ok || p.Kind != KindPlayer {
		t.Error("Player() did not return the player")
	}
}

func TestWorldRemoveMidCollection(t *testing.T) {
	w := NewWorld(4)
	h := spawnN(w, KindPlayer, KindEnemy, KindSeeker, KindBuoy)

	if err := w.Remove(h[2]); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if w.Len() != 3 || w.At(2).Kind != KindBuoy {
		t.Errorf("order after removal broken: len=%d last=%v", w.Len(), w.At(w.Len()-1).Kind)
	}

	// Other handles survive the removal
	if e, ok := w.Get(h[3]); !ok || e.Kind != KindBuoy {
		t.Error("buoy handle went stale after an unrelated removal")
	}
	if _, ok := w.Get(h[2]); ok {
		t.Error("removed handle still resolves")
	}
	if err := w.Remove(h[2]); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("second Remove = %v, want ErrStaleHandle", err)
	}
}

func TestWorldReusedSlotRejectsOldHandle(t *testing.T) {
	w := NewWorld(2)
	h := spawnN(w, KindPlayer, KindEnemy)
	if err := w.Remove(h[1]); err != nil {
		t.Fatal(err)
	}
	fresh := w.Spawn(NewEntity(KindPenguin, mgl64.Vec3{}))

	if _, ok := w.Get(h[1]); ok {
		t.Error("old handle resolves to the reused slot")
	}
	if e, ok := w.Get(fresh); !ok || e.Kind != KindPenguin {
		t.Error("fresh handle does not resolve")
	}
}

func TestWorldClearStalesOldHandles(t *testing.T) {
	w := NewWorld(2)
	old := spawnN(w, KindPlayer, KindEnemy)
	w.Clear()
	if w.Len() != 0 {
		t.Fatalf("Len = %d after Clear", w.Len())
	}

	// Respawning reuses the same slots under new generations
	fresh := spawnN(w, KindPlayer, KindSeeker)
	for i, h := range old {
		if _, ok := w.Get(h); ok {
			t.Errorf("handle %d from before Clear still resolves", i)
		}
	}
	if e, ok := w.Get(fresh[1]); !ok || e.Kind != KindSeeker {
		t.Error("fresh handle does not resolve")
	}
	if p, ok := w.Player(); !ok || p.Kind != KindPlayer {
		t.Error("player not back at position 0")
	}
}

func TestWorldPlayerIsPinned(t *testing.T) {
	w := NewWorld(2)
	h := spawnN(w, KindPlayer, KindEnemy)
	if err := w.Remove(h[0]); !errors.Is(err, ErrPlayerPinned) {
		t.Errorf("Remove(player) = %v, want ErrPlayerPinned", err)
	}
	if w.Len() != 2 {
		t.Errorf("Len = %d after refused removal", w.Len())
	}
}

func TestWorldCount(t *testing.T) {
	w := NewWorld(5)
	spawnN(w, KindPlayer, KindEnemy, KindEnemy, KindSeeker, KindBackground)
	if got := w.Count(KindEnemy); got != 2 {
		t.Errorf("Count(enemy) = %d, want 2", got)
	}
	if got := w.Count(KindArrow); got != 0 {
		t.Errorf("Count(arrow) = %d, want 0", got)
	}
}

func TestChangesDeferRemovals(t *testing.T) {
	w := NewWorld(4)
	h := spawnN(w, KindPlayer, KindEnemy, KindShieldPowerUp, KindSeeker)
	snapshot := w.Handles()

	var c Changes
	c.Remove(h[1])
	c.Remove(h[1])
	c.Remove(h[3])

	if w.Len() != 4 {
		t.Fatal("removals applied before Apply")
	}
	if !c.Removed(h[1]) || c.Removed(h[2]) {
		t.Error("Removed reports the wrong handles")
	}

	n, err := w.Apply(&c)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if n != 2 || w.Len() != 2 {
		t.Errorf("applied %d removals, len %d; want 2 and 2", n, w.Len())
	}
	if c.Removed(h[1]) || c.Removed(h[3]) {
		t.Error("Apply left pending changes")
	}

	// The snapshot taken before the scan is untouched
	if len(snapshot) != 4 {
		t.Errorf("snapshot len = %d, want 4", len(snapshot))
	}
}
