package game

import (
	"time"

	"go.uber.org/zap"
)

// SoundID identifies a loaded sound
type SoundID int

// AudioPlayer plays short effects. Calls are made from the frame loop.
type AudioPlayer interface {
	Load(path string) (SoundID, error)
	Play(id SoundID) error
	IsPlaying(id SoundID) bool
	AnyPlaying() bool
	Shutdown()
}

const audioPollInterval = 10 * time.Millisecond

// playExplosion plays the explosion sound and blocks until nothing is playing
// or the wait limit passes. Gameplay freezes for the duration.
func (g *Game) playExplosion() {
	if g.audio == nil || g.config.Audio.Explosion == "" {
		return
	}
	if !g.explosionLoaded {
		id, err := g.audio.Load(g.config.Audio.Explosion)
		if err != nil {
			g.log.Warn("explosion sound unavailable", zap.String("path", g.config.Audio.Explosion), zap.Error(err))
			g.config.Audio.Explosion = ""
			return
		}
		g.explosionSound = id
		g.explosionLoaded = true
	}

	if err := g.audio.Play(g.explosionSound); err != nil {
		g.log.Warn("play explosion", zap.Error(err))
		return
	}

	deadline := time.Now().Add(g.config.Audio.WaitLimit)
	for g.audio.AnyPlaying() && time.Now().Before(deadline) {
		g.sleep(audioPollInterval)
	}
}
