package icon

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/rook-computer/badgeicons/internal/render"
)

var sizes = []int{16, 32, 48, 128}

// recorder captures drawing calls instead of rasterizing them.
type recorder struct {
	size  int
	calls []call
}

type call struct {
	op     string
	width  float64 // stroke width or radius
	colour color.RGBA
	from   render.Point
	to     render.Point
}

func (r *recorder) Size() (int, int) { return r.size, r.size }

func (r *recorder) FillRoundedRect(rect render.Rect, radius float64, c color.RGBA) {
	r.calls = append(r.calls, call{op: "rect", width: radius, colour: c, from: rect.Min, to: rect.Max})
}

func (r *recorder) StrokeLine(from, to render.Point, width float64, c color.RGBA) {
	r.calls = append(r.calls, call{op: "line", width: width, colour: c, from: from, to: to})
}

func (r *recorder) FillCircle(center render.Point, radius float64, c color.RGBA) {
	r.calls = append(r.calls, call{op: "circle", width: radius, colour: c, from: center, to: center})
}

func TestPaintOrder(t *testing.T) {
	rec := &recorder{size: 128}
	Paint(rec)

	want := []struct {
		op     string
		colour color.RGBA
	}{
		{"rect", render.Background},
		{"line", render.Foreground},
		{"line", render.Accent},
		{"line", render.Foreground},
		{"circle", render.Accent},
	}
	if len(rec.calls) != len(want) {
		t.Fatalf("got %d drawing calls, want %d", len(rec.calls), len(want))
	}
	for i, w := range want {
		got := rec.calls[i]
		if got.op != w.op || got.colour != w.colour {
			t.Errorf("call %d = %s %v, want %s %v", i, got.op, got.colour, w.op, w.colour)
		}
	}
	// Both diagonals end at the same apex.
	if rec.calls[1].to != rec.calls[2].to {
		t.Errorf("diagonals end at %+v and %+v, want a shared apex", rec.calls[1].to, rec.calls[2].to)
	}
	if bar := rec.calls[3]; bar.from.Y != bar.to.Y {
		t.Errorf("crossbar is not horizontal: %+v -> %+v", bar.from, bar.to)
	}
}

func TestPaintSize16(t *testing.T) {
	rec := &recorder{size: 16}
	Paint(rec)

	wantWidths := []float64{3, 2, 2, 2, 1}
	for i, w := range wantWidths {
		if got := rec.calls[i].width; got != w {
			t.Errorf("call %d (%s) width/radius = %v, want %v", i, rec.calls[i].op, got, w)
		}
	}
	bg := rec.calls[0]
	if bg.from != render.Pt(0, 0) || bg.to != render.Pt(16, 16) {
		t.Errorf("background spans %+v-%+v, want the full canvas", bg.from, bg.to)
	}
}

func TestDrawDimensions(t *testing.T) {
	for _, size := range sizes {
		img := Draw(size)
		b := img.Bounds()
		if b.Dx() != size || b.Dy() != size {
			t.Errorf("Draw(%d) bounds = %v", size, b)
		}
	}
}

func TestDrawDeterministic(t *testing.T) {
	for _, size := range sizes {
		a, b := Draw(size), Draw(size)
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Errorf("Draw(%d) produced different pixels on a second call", size)
		}
	}
}

func TestDrawCornersTransparent(t *testing.T) {
	for _, size := range sizes {
		img := Draw(size)
		last := size - 1
		for _, p := range [][2]int{{0, 0}, {last, 0}, {0, last}, {last, last}} {
			if a := img.RGBAAt(p[0], p[1]).A; a != 0 {
				t.Errorf("size %d: corner %v alpha = %d, want 0", size, p, a)
			}
		}
	}
}

func TestDrawBackground(t *testing.T) {
	for _, size := range sizes {
		img := Draw(size)

		if a := img.RGBAAt(size/2, size/2).A; a != 0xFF {
			t.Errorf("size %d: centre alpha = %d, want opaque", size, a)
		}
		// Below the feet of the "A" nothing is drawn over the background.
		x, y := size/2, size*9/10
		if got := img.RGBAAt(x, y); got != render.Background {
			t.Errorf("size %d: pixel (%d,%d) = %v, want background %v", size, x, y, got, render.Background)
		}
	}
}

func TestDrawCentreIsBackground(t *testing.T) {
	// At 16px the crossbar row passes through the centre; from 32px up it
	// sits below it and the centre shows plain background.
	for _, size := range []int{32, 48, 128} {
		c := size / 2
		if got := Draw(size).RGBAAt(c, c); got != render.Background {
			t.Errorf("size %d: centre (%d,%d) = %v, want %v", size, c, c, got, render.Background)
		}
	}
}

func TestDrawHasNoBlendedPixels(t *testing.T) {
	palette := map[color.RGBA]bool{
		{}:                true,
		render.Background: true,
		render.Accent:     true,
		render.Foreground: true,
	}
	for _, size := range sizes {
		img := Draw(size)
		for i := 0; i < len(img.Pix); i += 4 {
			c := color.RGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: img.Pix[i+3]}
			if !palette[c] {
				t.Fatalf("size %d: pixel %d = %v is not a palette colour", size, i/4, c)
			}
		}
	}
}

func TestDrawColourPresence(t *testing.T) {
	img := Draw(128)

	var accent, white bool
	for i := 0; i < len(img.Pix); i += 4 {
		c := color.RGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: img.Pix[i+3]}
		accent = accent || c == render.Accent
		white = white || c == render.Foreground
	}
	if !accent {
		t.Error("no pixel equals the accent colour")
	}
	if !white {
		t.Error("no pixel equals the foreground colour")
	}
}

func TestDrawLayering(t *testing.T) {
	img := Draw(128)

	// Just below the apex the accent stroke covers the white one.
	if got := img.RGBAAt(51, 37); got != render.Accent {
		t.Errorf("apex pixel = %v, want accent", got)
	}
	// Where the crossbar meets the accent stroke, the bar wins.
	if got := img.RGBAAt(80, 70); got != render.Foreground {
		t.Errorf("bar/stroke overlap = %v, want foreground", got)
	}
	// Centre of the dot.
	if got := img.RGBAAt(89, 38); got != render.Accent {
		t.Errorf("dot centre = %v, want accent", got)
	}
}

func TestDrawRejectsNonPositiveSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Draw(0) did not panic")
		}
	}()
	Draw(0)
}
