// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"heavylift.dev/hlcolor/base/tolassert"
	"heavylift.dev/hlcolor/math32"
)

func TestHCT(t *testing.T) {
	h := SRGBToHCT(1, 1, 1)
	tolassert.EqualTol(t, 209.492, h.Hue, 0.01)
	tolassert.EqualTol(t, 2.869, h.Chroma, 0.01)
	tolassert.EqualTol(t, 100, h.Tone, 0.01)

	r, g, b := SolveToRGB(120, 60, 50)
	h = SRGBToHCT(r, g, b)
	tolassert.EqualTol(t, 120.114, h.Hue, 0.5)
	tolassert.EqualTol(t, 52.82, h.Chroma, 0.5) // can't do 60
	tolassert.EqualTol(t, 50, h.Tone, 0.5)
}

func TestHCTAll(t *testing.T) {
	hues := []float32{15, 45, 75, 105, 135, 165, 195, 225, 255, 285, 315, 345}
	chromas := []float32{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	tones := []float32{20, 30, 40, 50, 60, 70, 80}

	for _, hue := range hues {
		for _, chroma := range chromas {
			for _, tone := range tones {
				h := New(hue, chroma, tone)
				hs := h.String()
				if chroma > 0 {
					tolassert.EqualTol(t, hue, h.Hue, 4, hs)
				}
				assert.LessOrEqual(t, h.Chroma, chroma+2.5, hs)
				tolassert.EqualTol(t, tone, h.Tone, 0.5, hs)
			}
		}
	}
}

func TestExtremes(t *testing.T) {
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, New(0, 0, 0).AsRGBA())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, New(0, 0, 100).AsRGBA())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, New(270, 80, 100).AsRGBA())

	grey := New(42, 0, 50).AsRGBA()
	assert.Equal(t, grey.R, grey.G)
	assert.Equal(t, grey.G, grey.B)
	assert.Equal(t, uint8(119), grey.R)
}

func TestFromColor(t *testing.T) {
	blue := FromColor(color.RGBA{0, 0, 255, 255})
	tolassert.EqualTol(t, 282.788, blue.Hue, 0.01)
	tolassert.EqualTol(t, 87.23, blue.Chroma, 0.01)
	tolassert.EqualTol(t, 32.30, blue.Tone, 0.01)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, blue.AsRGBA())

	red := FromColor(color.RGBA{255, 0, 0, 255})
	tolassert.EqualTol(t, 27.408, red.Hue, 0.01)
	tolassert.EqualTol(t, 113.357, red.Chroma, 0.01)
	tolassert.EqualTol(t, 53.232, red.Tone, 0.01)

	assert.Equal(t, color.RGBA{255, 0, 0, 255}, FromColor(red).AsRGBA())
	assert.Equal(t, float32(0), FromColor(color.RGBA{}).A)
}

func TestBisectToLimit(t *testing.T) {
	// the hue of pure blue, at the luminance of pure blue
	target := math32.DegToRad(282.788)
	lin := BisectToLimit(7.22, target)
	assert.GreaterOrEqual(t, lin.X, float32(-0.001))
	assert.GreaterOrEqual(t, lin.Y, float32(-0.001))
	assert.GreaterOrEqual(t, lin.Z, float32(-0.001))
	tolassert.EqualTol(t, 7.22, lin.Dot(math32.Vec3(yFromLinrgb[0], yFromLinrgb[1], yFromLinrgb[2])), 0.01)
	tolassert.EqualTol(t, target, HueOf(lin), 0.02)
}

func BenchmarkHCT(b *testing.B) {
	for b.Loop() {
		New(120, 45, 56)
	}
}
