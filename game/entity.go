package game

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrStaleHandle is returned when a handle no longer names a live entity
	ErrStaleHandle = errors.New("stale entity handle")

	// ErrPlayerPinned is returned when something tries to remove the player
	ErrPlayerPinned = errors.New("player entity cannot be removed")

	// ErrUnknownKind is returned for kind names that do not exist
	ErrUnknownKind = errors.New("unknown entity kind")

	// ErrNoPlayer is returned when a level does not start with a player
	ErrNoPlayer = errors.New("level has no leading player entity")
)

// DefaultVelocityLimit is the per-axis bound enforced by SetVelocity
const DefaultVelocityLimit = 2.0

// AIState is the patrol state of enemies and penguins
type AIState string

const (
	StatePatrolling AIState = "patrolling"
	StateMoving     AIState = "moving"
)

// Entity represents a simulated object (player, enemy, pickup, projectile, scenery)
type Entity struct {
	// Position in world units, z is always 0
	Position mgl64.Vec3

	// Velocity in world units per second (use the setters)
	velocity mgl64.Vec3

	// Orientation in degrees
	Angle float64

	// Uniform scale factor
	Scale float64

	// Mass, only read by the elastic buoy response
	Mass float64

	// Collidable entities take part in collision response
	Collidable bool

	// Behavioral tag
	Kind Kind

	// Patrol state for enemies and penguins
	State AIState

	// Texture used when rendering
	Texture TextureID

	// Orbit phase offset in radians (shield orbs)
	Phase float64

	// Per-axis bound for SetVelocity
	velocityLimit float64

	// Cached matrices from the last transform computation
	transform   mgl64.Mat4
	rotation    mgl64.Mat4
	translation mgl64.Mat4
	movement    mgl64.Mat4

	// Owned children rendered relative to this entity
	Attachments []*Entity
	Shields     []*Entity

	// Live projectiles owned by this entity
	bullet *Entity
	arrow  *Entity
}

// NewEntity creates an entity with the spawn defaults of its kind
func NewEntity(kind Kind, position mgl64.Vec3) *Entity {
	kindConfig := GetKindConfig(kind)
	position[2] = 0

	e := &Entity{
		Position:      position,
		Scale:         kindConfig.Scale,
		Mass:          kindConfig.Mass,
		Collidable:    kindConfig.Collidable,
		Kind:          kind,
		State:         kindConfig.State,
		Texture:       kindConfig.Texture,
		velocityLimit: DefaultVelocityLimit,
		transform:     mgl64.Ident4(),
		rotation:      mgl64.Ident4(),
		translation:   mgl64.Ident4(),
		movement:      mgl64.Ident4(),
	}
	return e
}

// Velocity returns the current velocity
func (e *Entity) Velocity() mgl64.Vec3 {
	return e.velocity
}

// SetVelocity assigns a velocity with each axis clamped to the entity's limit
func (e *Entity) SetVelocity(v mgl64.Vec3) {
	limit := e.velocityLimit
	if limit <= 0 {
		limit = DefaultVelocityLimit
	}
	for i := 0; i < 3; i++ {
		v[i] = mgl64.Clamp(v[i], -limit, limit)
	}
	e.velocity = v
}

// SetVelocityOverride assigns a velocity without clamping (projectiles, scripted motion)
func (e *Entity) SetVelocityOverride(v mgl64.Vec3) {
	e.velocity = v
}

// SetVelocityLimit changes the bound used by SetVelocity
func (e *Entity) SetVelocityLimit(limit float64) {
	e.velocityLimit = limit
}

// Update advances the entity by one frame. Behavior shaping runs first,
// then the position is integrated with explicit Euler.
func (e *Entity) Update(deltaTime, now float64) {
	behaviors[e.Kind](e, now)

	e.Position = e.Position.Add(e.velocity.Mul(deltaTime))
	e.Position[2] = 0
}

// Speed returns the velocity magnitude
func (e *Entity) Speed() float64 {
	return e.velocity.Len()
}

// DistanceTo calculates the planar distance to another entity
func (e *Entity) DistanceTo(other *Entity) float64 {
	return Distance(e.Position, other.Position)
}

// Distance returns the Euclidean distance between two points, ignoring z
func Distance(a, b mgl64.Vec3) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	return math.Sqrt(dx*dx + dy*dy)
}

// AddAttachment adds an owned child rendered in this entity's frame
func (e *Entity) AddAttachment(child *Entity) {
	e.Attachments = append(e.Attachments, child)
}

// AddShield adds an orbiting shield orb
func (e *Entity) AddShield(orb *Entity) {
	e.Shields = append(e.Shields, orb)
}

// ClearShields drops every shield orb
func (e *Entity) ClearShields() {
	e.Shields = nil
}

// Bullet returns the live bullet, or nil
func (e *Entity) Bullet() *Entity {
	return e.bullet
}

// Arrow returns the live arrow, or nil
func (e *Entity) Arrow() *Entity {
	return e.arrow
}

func (e *Entity) setBullet(b *Entity) {
	e.bullet = b
}

func (e *Entity) setArrow(a *Entity) {
	e.arrow = a
}
