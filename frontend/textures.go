package frontend

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"helidune/game"
)

const placeholderSize = 64

type shape int

const (
	shapeTriangle shape = iota
	shapeDisc
	shapeRing
	shapeBar
	shapeTile
)

// placeholders describes the generated image used when a texture file is missing
var placeholders = [game.TextureCount]struct {
	shape shape
	color color.RGBA
}{
	game.TexturePlayer:        {shapeTriangle, color.RGBA{100, 150, 255, 255}},
	game.TextureEnemy:         {shapeTriangle, color.RGBA{255, 100, 100, 255}},
	game.TextureSeeker:        {shapeTriangle, color.RGBA{200, 60, 200, 255}},
	game.TexturePenguin:       {shapeDisc, color.RGBA{240, 240, 240, 255}},
	game.TextureBuoy:          {shapeRing, color.RGBA{255, 140, 0, 255}},
	game.TextureBackground:    {shapeTile, color.RGBA{194, 170, 110, 255}},
	game.TextureBlade:         {shapeBar, color.RGBA{60, 60, 60, 255}},
	game.TextureBullet:        {shapeDisc, color.RGBA{255, 200, 0, 255}},
	game.TextureArrow:         {shapeTriangle, color.RGBA{255, 230, 120, 255}},
	game.TextureOrb:           {shapeDisc, color.RGBA{80, 220, 255, 255}},
	game.TextureShieldPowerUp: {shapeRing, color.RGBA{80, 220, 255, 255}},
	game.TextureStarPowerUp:   {shapeRing, color.RGBA{255, 215, 0, 255}},
	game.TextureArrowPowerUp:  {shapeRing, color.RGBA{255, 230, 120, 255}},
	game.TextureExplosion:     {shapeDisc, color.RGBA{255, 90, 0, 255}},
}

// Textures holds one image per TextureID
type Textures struct {
	images [game.TextureCount]*ebiten.Image
}

// Get returns the image for a texture, or nil for an unknown id
func (t *Textures) Get(id game.TextureID) *ebiten.Image {
	if id < 0 || id >= game.TextureCount {
		return nil
	}
	return t.images[id]
}

// LoadTextures reads <dir>/textures/<name>.png for every texture. Missing
// files are replaced by generated placeholders; unreadable ones are an error.
func LoadTextures(dir string, log *zap.Logger) (*Textures, error) {
	if log == nil {
		log = zap.NewNop()
	}
	t := &Textures{}
	generated := 0
	for id := game.TextureID(0); id < game.TextureCount; id++ {
		path := filepath.Join(dir, "textures", id.Name()+".png")
		_, err := os.Stat(path)
		switch {
		case err == nil:
			img, _, err := ebitenutil.NewImageFromFile(path)
			if err != nil {
				return nil, fmt.Errorf("load texture %s: %w", path, err)
			}
			t.images[id] = img
		case errors.Is(err, fs.ErrNotExist):
			p := placeholders[id]
			t.images[id] = ebiten.NewImageFromImage(placeholderImage(placeholderSize, p.shape, p.color))
			generated++
		default:
			return nil, fmt.Errorf("stat texture %s: %w", path, err)
		}
	}
	if generated > 0 {
		log.Info("using placeholder textures", zap.String("dir", dir), zap.Int("count", generated))
	}
	return t, nil
}

// placeholderImage draws a simple shape on a transparent square. Triangles
// point to the top of the image, which is the +Y heading in the world.
func placeholderImage(size int, s shape, clr color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	outline := color.RGBA{0, 0, 0, 255}
	half := float64(size) / 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			relX := float64(x) + 0.5 - half
			relY := float64(y) + 0.5 - half
			dist := math.Hypot(relX, relY)

			switch s {
			case shapeTriangle:
				// Apex at the top, base at the bottom
				if relY < -half*0.9 || relY > half*0.9 {
					continue
				}
				edgeX := half * 0.8 * (relY + half*0.9) / (half * 1.8)
				if math.Abs(relX) < edgeX-1 {
					img.SetRGBA(x, y, clr)
				} else if math.Abs(relX) < edgeX {
					img.SetRGBA(x, y, outline)
				}
			case shapeDisc:
				if dist < half*0.9-1 {
					img.SetRGBA(x, y, clr)
				} else if dist < half*0.9 {
					img.SetRGBA(x, y, outline)
				}
			case shapeRing:
				if dist < half*0.9 && dist > half*0.6 {
					img.SetRGBA(x, y, clr)
				}
			case shapeBar:
				if math.Abs(relY) < half*0.08 || math.Abs(relX) < half*0.08 {
					img.SetRGBA(x, y, clr)
				}
			case shapeTile:
				c := clr
				if (x/8+y/8)%2 == 0 {
					c.R, c.G, c.B = c.R-12, c.G-12, c.B-12
				}
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img
}
