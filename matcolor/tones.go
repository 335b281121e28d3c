// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"image/color"

	"heavylift.dev/hlcolor/cam/hct"
	"heavylift.dev/hlcolor/colors"
)

// Tones contains cached color values for each tone
// of a key color. To get a tonal value, use [Tones.AbsTone].
// All tones share the hue and chroma of the key color, and only
// differ in tone. Tones is not safe for concurrent use; each
// scheme generation makes its own.
type Tones struct {

	// the key color used to generate these tones;
	// its tone is not used
	Key Color

	// the cached map of tonal color values
	Tones map[int]color.RGBA
}

// NewTones returns a new set of [Tones]
// for the given key color.
func NewTones(key Color) *Tones {
	return &Tones{
		Key:   key,
		Tones: map[int]color.RGBA{},
	}
}

// AbsTone returns the color at the given absolute
// tone on a scale of 0 to 100. It uses the cached
// value if it exists, and it caches the value if
// it is not already.
func (t *Tones) AbsTone(tone int) color.RGBA {
	if c, ok := t.Tones[tone]; ok {
		return c
	}
	r := hct.New(t.Key.Hue, t.Key.Chroma, float32(tone)).AsRGBA()
	t.Tones[tone] = r
	return r
}

// Hex returns [Tones.AbsTone] as a #rrggbb string.
func (t *Tones) Hex(tone int) string {
	return colors.AsHex(t.AbsTone(tone))
}
