package game

import "github.com/go-gl/mathgl/mgl64"

// TextureID names a texture in the renderer's table
type TextureID int

const (
	TexturePlayer TextureID = iota
	TextureEnemy
	TextureSeeker
	TexturePenguin
	TextureBuoy
	TextureBackground
	TextureBlade
	TextureBullet
	TextureArrow
	TextureOrb
	TextureShieldPowerUp
	TextureStarPowerUp
	TextureArrowPowerUp
	TextureExplosion
	TextureCount // Total number of textures
)

var textureNames = [TextureCount]string{
	TexturePlayer:        "player",
	TextureEnemy:         "enemy",
	TextureSeeker:        "seeker",
	TexturePenguin:       "penguin",
	TextureBuoy:          "buoy",
	TextureBackground:    "background",
	TextureBlade:         "blade",
	TextureBullet:        "bullet",
	TextureArrow:         "arrow",
	TextureOrb:           "orb",
	TextureShieldPowerUp: "shield_power_up",
	TextureStarPowerUp:   "star_power_up",
	TextureArrowPowerUp:  "arrow_power_up",
	TextureExplosion:     "explosion",
}

// Name returns the file stem of the texture
func (t TextureID) Name() string {
	if t < 0 || t >= TextureCount {
		return "missing"
	}
	return textureNames[t]
}

// Renderer draws textured unit quads. The view matrix is set once per
// frame before any Draw call.
type Renderer interface {
	SetView(view mgl64.Mat4)
	Draw(model mgl64.Mat4, texture TextureID)
}

// Render submits the scene. Entities are drawn from last to first so the
// player, at position 0, lands on top, followed by its attachments,
// projectiles and shield orbs.
func (g *Game) Render(r Renderer) {
	player, ok := g.world.Player()
	if !ok {
		return
	}
	r.SetView(ViewMatrix(player.Position, g.config.Camera.Zoom))

	for i := g.world.Len() - 1; i >= 0; i-- {
		e := g.world.At(i)
		r.Draw(e.ComputeTransform(), g.textureFor(e))
	}

	for _, a := range player.Attachments {
		r.Draw(a.AttachedTransform(player), a.Texture)
	}
	if b := player.Bullet(); b != nil {
		r.Draw(b.ComputeTransform(), b.Texture)
	}
	if a := player.Arrow(); a != nil {
		r.Draw(a.ComputeTransform(), a.Texture)
	}
	for _, orb := range player.Shields {
		r.Draw(orb.OrbitTransform(player), orb.Texture)
	}
}

// textureFor applies the explosion swap after a loss
func (g *Game) textureFor(e *Entity) TextureID {
	if !g.session.Lost {
		return e.Texture
	}
	switch e.Texture {
	case TexturePlayer, TextureEnemy, TextureSeeker:
		return TextureExplosion
	}
	return e.Texture
}
