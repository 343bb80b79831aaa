package textures

import (
	"math"

	"github.com/tisnik/svitava-deepzoom/deepimage"
	"github.com/tisnik/svitava-deepzoom/params"
)

// CalcFMSynth fills image with a sinusoidal (FM-style) pattern.
//
// The function treats image as a height-by-width grid (rows = height, cols =
// width) and samples the rectangle starting at (params.Xmin, params.Ymin)
// with the step sizes returned by getSteps. For each pixel it computes a
// value using a nested sine formula, converts that value to an integer,
// masks it to the low 8 bits, and stores it in image.I (so the values are in
// the range 0–255, usable as palette indices); the sampled coordinate is
// stored in image.Z.
//
// The function does not return a value; it mutates image in place.
func CalcFMSynth(
	params params.FractalParameter,
	image deepimage.Image) {

	width := image.Resolution.Width
	height := image.Resolution.Height

	stepx, stepy := getSteps(params, image)

	y1 := params.Ymin
	for y := range height {
		x1 := params.Xmin
		for x := range width {
			val := 100.0 + 100.0*math.Sin(float64(x1)/4.0+2*math.Sin(float64(x1)/15.0+float64(y1)/40.0))
			i := int(val) & 255
			image.Z[y][x] = deepimage.ZPixel(complex(x1, y1))
			image.I[y][x] = deepimage.IPixel(i)
			x1 += stepx
		}
		y1 += stepy
	}
}
