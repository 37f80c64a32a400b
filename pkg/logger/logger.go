package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

// Init configures the process-wide logger. Production gets JSON output at
// info level, everything else gets the console encoder with debug enabled.
func Init(environment string) {
	var cfg zap.Config
	if environment == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}
	sugar = l.Sugar()
}

func logger() *zap.SugaredLogger {
	if sugar == nil {
		sugar = zap.NewNop().Sugar()
	}
	return sugar
}

func Debug(msg string, keysAndValues ...interface{}) {
	logger().Debugw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...interface{}) {
	logger().Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...interface{}) {
	logger().Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...interface{}) {
	logger().Errorw(msg, normalizeError(keysAndValues)...)
}

func Fatal(msg string, keysAndValues ...interface{}) {
	logger().Fatalw(msg, normalizeError(keysAndValues)...)
}

// normalizeError lets callers pass a bare error as the only argument
// instead of an explicit "error" key.
func normalizeError(args []interface{}) []interface{} {
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			return []interface{}{"error", err}
		}
	}
	return args
}

func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
