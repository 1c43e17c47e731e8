package render

import "image/color"

// Global render configuration for the badge palette.
var (
	Background = color.RGBA{R: 18, G: 18, B: 18, A: 0xFF}  // near-black
	Accent     = color.RGBA{R: 234, G: 88, B: 12, A: 0xFF} // #ea580c
	Foreground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)
