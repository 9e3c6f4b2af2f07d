package game

// Action is a discrete control the simulation reacts to
type Action int

const (
	ActionThrustForward Action = iota
	ActionThrustBackward
	ActionTurnLeft
	ActionTurnRight
	ActionFireBullet
	ActionFireArrow
	ActionQuit
	ActionCount // Total number of actions
)

var actionNames = [ActionCount]string{
	ActionThrustForward:  "thrust_forward",
	ActionThrustBackward: "thrust_backward",
	ActionTurnLeft:       "turn_left",
	ActionTurnRight:      "turn_right",
	ActionFireBullet:     "fire_bullet",
	ActionFireArrow:      "fire_arrow",
	ActionQuit:           "quit",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Controls reports which actions are pressed this frame. Implementations
// decide whether an action is held (thrust, turn) or edge-triggered (fire).
type Controls interface {
	Pressed(action Action) bool
}

// ControlState is a settable Controls, used for scripted input
type ControlState [ActionCount]bool

// Pressed reports whether an action is set
func (c *ControlState) Pressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return c[action]
}

// Press sets actions
func (c *ControlState) Press(actions ...Action) {
	for _, a := range actions {
		c[a] = true
	}
}

// Release clears actions
func (c *ControlState) Release(actions ...Action) {
	for _, a := range actions {
		c[a] = false
	}
}

// Reset clears every action
func (c *ControlState) Reset() {
	*c = ControlState{}
}

// noControls never presses anything
type noControls struct{}

func (noControls) Pressed(Action) bool { return false }

// handleControls applies one frame of input to the player. While frozen only
// quit is honoured.
func (g *Game) handleControls(player *Entity, deltaTime, now float64) {
	if g.controls.Pressed(ActionQuit) {
		if !g.quit {
			g.log.Info("quit requested")
		}
		g.quit = true
	}
	if g.session.Frozen {
		return
	}

	heading := HeadingVector(player.Angle)
	thrust := g.config.Player.ThrustAccel * deltaTime
	if g.controls.Pressed(ActionThrustForward) {
		player.SetVelocity(player.Velocity().Add(heading.Mul(thrust)))
	}
	if g.controls.Pressed(ActionThrustBackward) {
		player.SetVelocity(player.Velocity().Sub(heading.Mul(thrust)))
	}

	turn := g.config.Player.TurnRate * deltaTime
	if g.controls.Pressed(ActionTurnLeft) {
		g.turnPlayer(player, turn)
	}
	if g.controls.Pressed(ActionTurnRight) {
		g.turnPlayer(player, -turn)
	}

	if g.controls.Pressed(ActionFireBullet) {
		g.fireBullet(player, now)
	}
	if g.controls.Pressed(ActionFireArrow) {
		g.fireArrow(player, now)
	}
}

// turnPlayer rotates the player and its attachments together
func (g *Game) turnPlayer(player *Entity, degrees float64) {
	player.Angle += degrees
	for _, a := range player.Attachments {
		a.Angle += degrees
	}
}
