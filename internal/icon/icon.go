// Package icon draws the accessibility badge: a dark rounded square carrying
// a stylized "A" and an accent dot.
package icon

import (
	"fmt"
	"image"

	"github.com/rook-computer/badgeicons/internal/render"
	"github.com/rook-computer/badgeicons/internal/render/layout"
)

// Draw renders the badge onto a new transparent size×size canvas.
// It panics if size is not positive.
func Draw(size int) *image.RGBA {
	if size <= 0 {
		panic(fmt.Sprintf("icon: invalid size %d", size))
	}
	canvas := render.NewCanvas(size, size)
	Paint(canvas)
	return canvas.Image()
}

// Paint issues the badge's drawing calls against d, sized to d's width.
// The order matters: each shape is painted over the ones before it.
func Paint(d render.Drawer) {
	size, _ := d.Size()
	b := layout.NewBadge(size)

	d.FillRoundedRect(b.Bounds, float64(b.CornerRadius), render.Background)

	// The two diagonals meet at the apex of the "A".
	d.StrokeLine(b.LeftFoot(), b.Apex(), float64(b.StrokeWidth), render.Foreground)
	d.StrokeLine(b.RightFoot(), b.Apex(), float64(b.StrokeWidth), render.Accent)

	from, to := b.BarEnds()
	d.StrokeLine(from, to, float64(b.BarWidth), render.Foreground)

	d.FillCircle(b.Dot(), float64(b.DotRadius), render.Accent)
}
