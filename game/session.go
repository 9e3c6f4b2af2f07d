package game

import "math"

// never is the timestamp used for events that have not happened yet
var never = math.Inf(-1)

// SessionState holds the flags, timestamps and counters of one game session.
// All gameplay gates live here and change only through the methods below.
type SessionState struct {
	GameOver bool
	Lost     bool

	Shielded       bool
	Invincible     bool
	Frozen         bool
	ArrowAvailable bool

	BulletExists bool
	ArrowExists  bool

	LastBulletFired float64
	LastArrowFired  float64
	InvincibleSince float64
	FrozenSince     float64

	RemainingEnemies  int
	RemainingPowerUps int
}

// NewSessionState creates a fresh session with the given counters
func NewSessionState(enemies, powerUps int) SessionState {
	return SessionState{
		LastBulletFired:   never,
		LastArrowFired:    never,
		InvincibleSince:   never,
		FrozenSince:       never,
		RemainingEnemies:  enemies,
		RemainingPowerUps: powerUps,
	}
}

// Won reports whether every hostile has been destroyed
func (s SessionState) Won() bool {
	return !s.Lost && s.RemainingEnemies <= 0
}

// Over reports whether the session has ended either way
func (s SessionState) Over() bool {
	return s.GameOver || s.RemainingEnemies <= 0
}

// Lose ends the session as a loss
func (s *SessionState) Lose() {
	s.GameOver = true
	s.Lost = true
}

// EnemyDestroyed decrements the hostile counter
func (s *SessionState) EnemyDestroyed() {
	if s.RemainingEnemies > 0 {
		s.RemainingEnemies--
	}
}

// PowerUpCollected decrements the power-up counter
func (s *SessionState) PowerUpCollected() {
	if s.RemainingPowerUps > 0 {
		s.RemainingPowerUps--
	}
}

// RaiseShield reports false when a shield is already up
func (s *SessionState) RaiseShield() bool {
	if s.Shielded {
		return false
	}
	s.Shielded = true
	return true
}

// BreakShield drops the shield after it absorbed a hit
func (s *SessionState) BreakShield() {
	s.Shielded = false
}

// StartInvincibility (re)starts the invincibility window
func (s *SessionState) StartInvincibility(now float64) {
	s.Invincible = true
	s.InvincibleSince = now
}

// StartFreeze (re)starts the freeze window
func (s *SessionState) StartFreeze(now float64) {
	s.Frozen = true
	s.FrozenSince = now
}

// GrantArrow makes one arrow shot available
func (s *SessionState) GrantArrow() {
	s.ArrowAvailable = true
}

// Effect names a timed effect
type Effect int

const (
	EffectInvincible Effect = 1 << iota
	EffectFrozen
)

func (e Effect) String() string {
	switch e {
	case EffectInvincible:
		return "invincible"
	case EffectFrozen:
		return "frozen"
	default:
		return "effects"
	}
}

// ExpireEffects clears timed effects whose windows have elapsed and returns
// the set that ended this call
func (s *SessionState) ExpireEffects(now, invincibleDuration, freezeDuration float64) Effect {
	var ended Effect
	if s.Invincible && now-s.InvincibleSince >= invincibleDuration {
		s.Invincible = false
		ended |= EffectInvincible
	}
	if s.Frozen && now-s.FrozenSince >= freezeDuration {
		s.Frozen = false
		ended |= EffectFrozen
	}
	return ended
}

// CanFireBullet reports whether the bullet gate is open
func (s *SessionState) CanFireBullet(now, cooldown float64) bool {
	return !s.BulletExists && now-s.LastBulletFired >= cooldown
}

// BulletFired records a shot
func (s *SessionState) BulletFired(now float64) {
	s.BulletExists = true
	s.LastBulletFired = now
}

// ClearBullet marks the bullet as gone
func (s *SessionState) ClearBullet() {
	s.BulletExists = false
}

// CanFireArrow reports whether an arrow may be fired
func (s *SessionState) CanFireArrow() bool {
	return s.ArrowAvailable && !s.ArrowExists
}

// ArrowFired consumes the arrow power-up
func (s *SessionState) ArrowFired(now float64) {
	s.ArrowAvailable = false
	s.ArrowExists = true
	s.LastArrowFired = now
}

// ClearArrow marks the arrow as gone
func (s *SessionState) ClearArrow() {
	s.ArrowExists = false
}
