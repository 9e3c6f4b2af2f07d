package game

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		cfg  LoggingConfig
		want zapcore.Level
	}{
		{LoggingConfig{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{LoggingConfig{Level: "warn", Format: "json"}, zapcore.WarnLevel},
		{LoggingConfig{Level: "shouting"}, zapcore.InfoLevel},
	}
	for _, tt := range tests {
		log, err := NewLogger(tt.cfg)
		if err != nil {
			t.Fatalf("NewLogger(%+v): %v", tt.cfg, err)
		}
		if !log.Core().Enabled(tt.want) || (tt.want > zapcore.DebugLevel && log.Core().Enabled(tt.want-1)) {
			t.Errorf("NewLogger(%+v) level does not match %v", tt.cfg, tt.want)
		}
	}
}

func TestLogEvents(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	rig := newRig(t, at(KindEnemy, 0.4, 0))
	LogEvents(rig.game.Events(), zap.New(core))

	rig.step(frame)

	lost := logs.FilterMessage(string(GameLost))
	if lost.Len() != 1 {
		t.Fatalf("GameLost logged %d times", lost.Len())
	}
	if lost.All()[0].Level != zapcore.InfoLevel {
		t.Errorf("GameLost level = %v, want info", lost.All()[0].Level)
	}
}
