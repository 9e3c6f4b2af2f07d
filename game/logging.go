package game

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a console logger for development or a json one for
// production. An unparseable level falls back to info.
func NewLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// LogEvents logs every dispatched event at debug level, and the session
// outcome at info
func LogEvents(d *Dispatcher, log *zap.Logger) {
	d.SubscribeAll(ListenerFunc(func(e Event) {
		fields := []zap.Field{
			zap.Stringer("kind", e.Kind),
			zap.Float64("x", e.Position.X()),
			zap.Float64("y", e.Position.Y()),
			zap.Float64("t", e.Time),
		}
		if e.Detail != "" {
			fields = append(fields, zap.String("detail", e.Detail))
		}
		switch e.Type {
		case GameLost, GameWon:
			log.Info(string(e.Type), fields...)
		default:
			log.Debug(string(e.Type), fields...)
		}
	}))
}
