// The icon generator writes icon-<size>.png for every badge size into
// <repo>/icons, replacing earlier output.
// Usage: go run ./scripts
package main

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/rook-computer/badgeicons/internal/app"
)

func main() {
	logger := app.NewZeroLogger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}, zerolog.WarnLevel)

	a := app.New(outputDir())
	a.Logger = logger
	if _, err := a.Run(); err != nil {
		logger.Errorf("main", "%v", err)
		os.Exit(1)
	}
}

// outputDir is the icons directory beside this file's parent directory.
func outputDir() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "icons"
	}
	return filepath.Join(filepath.Dir(file), "..", "icons")
}
