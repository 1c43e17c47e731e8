package layout

import "github.com/rook-computer/badgeicons/internal/render"

// Fractions of the canvas size that place the badge strokes.
const (
	PadRatio     = 0.18
	TopRatio     = 0.28
	BottomRatio  = 0.78
	ApexRatio    = 0.40
	BarRatio     = 0.55
	BarInset     = 1.15
	DotXRatio    = 0.70
	DotYRatio    = 0.30
	cornerDiv    = 8
	strokeDiv    = 10
	barDiv       = 14
	dotDiv       = 16
	minCorner    = 3
	minStroke    = 2
	minBarStroke = 2
	minDot       = 1
)

// Badge holds every coordinate the icon is drawn with for one canvas size.
type Badge struct {
	Size int

	// Bounds is the background square. Its far corner is the last pixel
	// (size-1, size-1), which in canvas space ends at size.
	Bounds       render.Rect
	CornerRadius int

	Pad     float64
	TopY    float64
	BottomY float64
	MidX    float64
	BarY    float64

	StrokeWidth int
	BarWidth    int

	DotX      float64
	DotY      float64
	DotRadius int
}

// Apex is the shared top point of both diagonal strokes.
func (b Badge) Apex() render.Point { return render.Pt(b.MidX, b.TopY) }

// LeftFoot is the bottom end of the left stroke.
func (b Badge) LeftFoot() render.Point { return render.Pt(b.Pad, b.BottomY) }

// RightFoot is the bottom end of the right stroke.
func (b Badge) RightFoot() render.Point { return render.Pt(float64(b.Size)-b.Pad, b.BottomY) }

// BarEnds returns the crossbar endpoints.
func (b Badge) BarEnds() (render.Point, render.Point) {
	inset := b.Pad * BarInset
	return render.Pt(inset, b.BarY), render.Pt(float64(b.Size)-inset, b.BarY)
}

// Dot is the centre of the accent dot.
func (b Badge) Dot() render.Point { return render.Pt(b.DotX, b.DotY) }

// NewBadge computes the badge geometry for a size×size canvas.
// size must be positive.
func NewBadge(size int) Badge {
	s := float64(size)
	last := float64(size - 1)
	return Badge{
		Size:         size,
		Bounds:       render.R(0, 0, last+1, last+1),
		CornerRadius: Clamp(size, cornerDiv, minCorner),
		Pad:          s * PadRatio,
		TopY:         s * TopRatio,
		BottomY:      s * BottomRatio,
		MidX:         s * ApexRatio,
		BarY:         s * BarRatio,
		StrokeWidth:  Clamp(size, strokeDiv, minStroke),
		BarWidth:     Clamp(size, barDiv, minBarStroke),
		DotX:         s * DotXRatio,
		DotY:         s * DotYRatio,
		DotRadius:    Clamp(size, dotDiv, minDot),
	}
}

// Clamp returns size/divisor (integer division), but never less than floor.
func Clamp(size, divisor, floor int) int {
	v := size / divisor
	if v < floor {
		return floor
	}
	return v
}
