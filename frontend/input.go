package frontend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"helidune/game"
)

// Keyboard maps keys to game actions. Thrust and turn are held; the arrow
// fires on the key edge. The bullet key may be held since the cooldown
// already limits the rate.
type Keyboard struct{}

var _ game.Controls = Keyboard{}

// Pressed reports whether the keys for an action are down this frame
func (Keyboard) Pressed(action game.Action) bool {
	switch action {
	case game.ActionThrustForward:
		return ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp)
	case game.ActionThrustBackward:
		return ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown)
	case game.ActionTurnLeft:
		return ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
	case game.ActionTurnRight:
		return ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)
	case game.ActionFireBullet:
		return ebiten.IsKeyPressed(ebiten.KeySpace)
	case game.ActionFireArrow:
		return inpututil.IsKeyJustPressed(ebiten.KeyE)
	case game.ActionQuit:
		return ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape)
	}
	return false
}
