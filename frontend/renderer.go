package frontend

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"helidune/game"
)

// ScreenRenderer draws unit quads onto an ebiten screen. Model and view
// matrices map the quad into clip space [-1,1]², which is then stretched
// over the window.
type ScreenRenderer struct {
	textures *Textures
	screen   *ebiten.Image
	view     mgl64.Mat4
	width    float64
	height   float64
}

var _ game.Renderer = (*ScreenRenderer)(nil)

// NewScreenRenderer creates a renderer over a texture table
func NewScreenRenderer(textures *Textures) *ScreenRenderer {
	return &ScreenRenderer{
		textures: textures,
		view:     mgl64.Ident4(),
	}
}

// Begin targets a new frame
func (r *ScreenRenderer) Begin(screen *ebiten.Image) {
	r.screen = screen
	bounds := screen.Bounds()
	r.width = float64(bounds.Dx())
	r.height = float64(bounds.Dy())
}

// SetView sets the camera matrix for the following draws
func (r *ScreenRenderer) SetView(view mgl64.Mat4) {
	r.view = view
}

// Draw renders one textured quad
func (r *ScreenRenderer) Draw(model mgl64.Mat4, texture game.TextureID) {
	img := r.textures.Get(texture)
	if r.screen == nil || img == nil {
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear

	// Pixels to the unit quad, y up, centred on the origin
	op.GeoM.Scale(1/float64(w), -1/float64(h))
	op.GeoM.Translate(-0.5, 0.5)

	op.GeoM.Concat(affine(r.view.Mul4(model)))
	r.toScreen(&op.GeoM)

	r.screen.DrawImage(img, op)
}

// WorldToScreen converts a world position to window pixels
func (r *ScreenRenderer) WorldToScreen(p mgl64.Vec3) (float64, float64) {
	var geo ebiten.GeoM
	geo.Concat(affine(r.view))
	r.toScreen(&geo)
	return geo.Apply(p.X(), p.Y())
}

// DrawHitboxes outlines debug circles in their faction colours
func (r *ScreenRenderer) DrawHitboxes(boxes []game.Hitbox) {
	if r.screen == nil {
		return
	}
	// Clip space is stretched per axis; horizontal scale sets the radius
	pixelsPerUnit := r.view.At(0, 0) * r.width / 2
	for _, b := range boxes {
		x, y := r.WorldToScreen(mgl64.Vec3{b.X, b.Y, 0})
		clr := color.RGBA{255, 255, 255, 255}
		if cfg, ok := game.FactionConfigs[b.Faction]; ok {
			clr = cfg.Color
		}
		vector.StrokeCircle(r.screen, float32(x), float32(y), float32(b.Radius*pixelsPerUnit), 1, clr, true)
	}
}

// toScreen maps clip space onto the window, flipping y
func (r *ScreenRenderer) toScreen(geo *ebiten.GeoM) {
	geo.Scale(r.width/2, -r.height/2)
	geo.Translate(r.width/2, r.height/2)
}

// affine extracts the xy part of a 4x4 transform. Everything in the scene
// lies in z=0 and rotates about z, so nothing is lost.
func affine(m mgl64.Mat4) ebiten.GeoM {
	var geo ebiten.GeoM
	geo.SetElement(0, 0, m.At(0, 0))
	geo.SetElement(0, 1, m.At(0, 1))
	geo.SetElement(0, 2, m.At(0, 3))
	geo.SetElement(1, 0, m.At(1, 0))
	geo.SetElement(1, 1, m.At(1, 1))
	geo.SetElement(1, 2, m.At(1, 3))
	return geo
}
