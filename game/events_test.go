package game

import "testing"

type countingListener struct {
	seen []EventType
}

func (l *countingListener) OnEvent(e Event) {
	l.seen = append(l.seen, e.Type)
}

func TestDispatcherRoutesByType(t *testing.T) {
	d := NewDispatcher()
	kills := &countingListener{}
	all := &countingListener{}
	d.Subscribe(EnemyDestroyed, kills)
	d.SubscribeAll(all)

	d.Dispatch(Event{Type: EnemyDestroyed})
	d.Dispatch(Event{Type: BulletFired})
	d.Dispatch(Event{Type: GameWon})

	if len(kills.seen) != 1 || kills.seen[0] != EnemyDestroyed {
		t.Errorf("kills listener saw %v", kills.seen)
	}
	if len(all.seen) != 3 {
		t.Errorf("catch-all listener saw %d events, want 3", len(all.seen))
	}
}

func TestDispatcherWithoutListeners(t *testing.T) {
	d := NewDispatcher()
	d.Dispatch(Event{Type: Frozen}) // must not panic
}

func TestGameEventsCarryKindAndTime(t *testing.T) {
	rig := newRig(t, at(KindStarPowerUp, 0, 0.5), at(KindEnemy, 20, 20))
	rig.clock.Set(2)
	rig.step(frame)

	if len(rig.events) != 1 {
		t.Fatalf("events = %+v, want one pickup", rig.events)
	}
	e := rig.events[0]
	if e.Type != PowerUpCollected || e.Kind != KindStarPowerUp || e.Time != 2 {
		t.Errorf("event = %+v", e)
	}
}
