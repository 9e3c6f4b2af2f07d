package frontend

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"helidune/game"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
)

var (
	hudTextColor   = color.RGBA{240, 240, 240, 255}
	hudEffectColor = color.RGBA{255, 215, 0, 255}
	bannerWon      = color.RGBA{120, 255, 120, 255}
	bannerLost     = color.RGBA{255, 90, 90, 255}
)

// HUD prints the session counters, active effects and the end banner
type HUD struct {
	face font.Face
}

// NewHUD creates a HUD using the built-in bitmap font
func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13}
}

// Draw renders the overlay for the current session
func (h *HUD) Draw(screen *ebiten.Image, s game.SessionState, debug bool) {
	y := hudMargin + hudLineHeight
	text.Draw(screen, fmt.Sprintf("Enemies: %d", s.RemainingEnemies), h.face, hudMargin, y, hudTextColor)
	y += hudLineHeight
	text.Draw(screen, fmt.Sprintf("Power-ups: %d", s.RemainingPowerUps), h.face, hudMargin, y, hudTextColor)

	if effects := activeEffects(s); effects != "" {
		y += hudLineHeight
		text.Draw(screen, effects, h.face, hudMargin, y, hudEffectColor)
	}

	if debug {
		bounds := screen.Bounds()
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
			bounds.Dx()-140, hudMargin)
	}

	switch {
	case s.Lost:
		h.banner(screen, "GAME OVER", bannerLost)
	case s.Won():
		h.banner(screen, "YOU WIN", bannerWon)
	}
}

func (h *HUD) banner(screen *ebiten.Image, msg string, clr color.Color) {
	bounds := screen.Bounds()
	textBounds := text.BoundString(h.face, msg)
	x := (bounds.Dx() - textBounds.Dx()) / 2
	y := (bounds.Dy() + textBounds.Dy()) / 2
	text.Draw(screen, msg, h.face, x, y, clr)
}

func activeEffects(s game.SessionState) string {
	var parts []string
	if s.Shielded {
		parts = append(parts, "SHIELD")
	}
	if s.Invincible {
		parts = append(parts, "INVINCIBLE")
	}
	if s.Frozen {
		parts = append(parts, "FROZEN")
	}
	if s.ArrowAvailable {
		parts = append(parts, "ARROW")
	}
	return strings.Join(parts, "  ")
}
