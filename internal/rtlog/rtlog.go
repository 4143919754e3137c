// Package rtlog is the core's single structured-logging entry point: a
// package-level zap logger initialized once and used by the render loop
// and shading kernel for progress and diagnostic messages. The library
// never calls log.Fatal/os.Exit; that stays a CLI-layer concern.
package rtlog

import "go.uber.org/zap"

// L is the package-level logger. It starts as a working no-op-free
// production logger so callers never need a nil check; Init lets a host
// binary swap in its own configured logger.
var L = mustNewProduction()

// Init replaces L with logger. Call it once at program start if the
// default production configuration isn't suitable.
func Init(logger *zap.Logger) {
	if logger != nil {
		L = logger
	}
}

func mustNewProduction() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		// zap.NewProduction only fails on a broken encoder config, which
		// never happens with the default config it's called with here.
		panic(err)
	}
	return logger
}
