package game

// DebugState holds global debug flags that persist across game resets
type DebugState struct {
	ShowHitboxes bool // Draw collision and aggro radii
}

// Global debug state instance (persists across game resets)
var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}

// Hitbox is a circle the debug overlay draws
type Hitbox struct {
	X, Y    float64
	Radius  float64
	Faction Faction
}

// Hitboxes lists the collision circle of every collidable entity plus the
// aggro circle around the player
func (g *Game) Hitboxes() []Hitbox {
	boxes := make([]Hitbox, 0, g.world.Len()+1)
	radius := g.config.Physics.CollisionRadius / 2
	for i := 0; i < g.world.Len(); i++ {
		e := g.world.At(i)
		if !e.Collidable && !e.Kind.IsPowerUp() && e.Kind != KindPenguin {
			continue
		}
		boxes = append(boxes, Hitbox{
			X:       e.Position.X(),
			Y:       e.Position.Y(),
			Radius:  radius,
			Faction: KindFaction(e.Kind),
		})
	}
	if player, ok := g.world.Player(); ok {
		boxes = append(boxes, Hitbox{
			X:       player.Position.X(),
			Y:       player.Position.Y(),
			Radius:  g.config.Physics.AggroRadius,
			Faction: FactionNeutral,
		})
	}
	return boxes
}
