package app

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/rook-computer/badgeicons/internal/icon"
)

// Sizes are the icon edge lengths generated on every run, in order.
var Sizes = []int{16, 32, 48, 128}

// DirPerm is used when creating the output directory.
const DirPerm = 0o755

// FileName returns the output name for an icon of the given size.
func FileName(size int) string { return fmt.Sprintf("icon-%d.png", size) }

// App renders the badge at each size and writes it into OutDir.
type App struct {
	OutDir string
	Sizes  []int
	Stdout io.Writer
	Logger Logger
}

func New(outDir string) *App {
	return &App{OutDir: outDir, Sizes: Sizes, Stdout: os.Stdout, Logger: NoopLogger{}}
}

// Run creates OutDir if needed and writes one PNG per size, printing a
// "wrote <path>" line after each. It stops at the first error; files written
// before it are left in place. The returned paths are those written so far.
func (app *App) Run() ([]string, error) {
	dir, err := filepath.Abs(app.OutDir)
	if err != nil {
		return nil, fmt.Errorf("resolve output dir: %w", err)
	}
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		app.Logger.Errorf("app", "create %s: %v", dir, err)
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	app.Logger.Infof("app", "output dir %s, %d sizes", dir, len(app.Sizes))

	written := make([]string, 0, len(app.Sizes))
	for _, size := range app.Sizes {
		path := filepath.Join(dir, FileName(size))
		if err := WriteIcon(path, size); err != nil {
			app.Logger.Errorf("app", "size %d: %v", size, err)
			return written, err
		}
		written = append(written, path)
		app.Logger.Infof("icon", "rendered %dx%d", size, size)
		if _, err := fmt.Fprintln(app.Stdout, "wrote", path); err != nil {
			return written, err
		}
	}
	return written, nil
}

// WriteIcon renders the badge at size and stores it at path as PNG,
// replacing any existing file.
func WriteIcon(path string, size int) (err error) {
	img := icon.Draw(size)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
