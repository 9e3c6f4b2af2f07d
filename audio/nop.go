package audio

import "helidune/game"

// Nop is a silent AudioPlayer for machines without a sound device
type Nop struct{}

var _ game.AudioPlayer = Nop{}

func (Nop) Load(string) (game.SoundID, error) { return 0, nil }
func (Nop) Play(game.SoundID) error            { return nil }
func (Nop) IsPlaying(game.SoundID) bool        { return false }
func (Nop) AnyPlaying() bool                   { return false }
func (Nop) Shutdown()                          {}
