// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted in part from https://github.com/material-foundation/material-color-utilities
// Copyright 2022 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package matcolor

import (
	"fmt"

	"heavylift.dev/hlcolor/math32"
)

// Key contains the key colors of every palette of a scheme.
// Only the hue and chroma of the palette key colors are used;
// their tone is that of the seed they came from.
type Key struct {

	// Source is the primary seed color, as given.
	Source Color

	// the primary key color
	Primary Color

	// the secondary key color
	Secondary Color

	// the tertiary key color
	Tertiary Color

	// the error key color
	Error Color

	// the warning key color
	Warning Color

	// the success key color
	Success Color

	// the info key color
	Info Color

	// the neutral key color used for themed surfaces
	Neutral Color

	// the neutral variant key color used for themed surfaces
	NeutralVariant Color
}

// Seeds are the seed colors of a scheme. Only the primary seed is
// required; nil seeds are derived.
type Seeds struct {
	Primary   Color
	Secondary *Color
	Tertiary  *Color
	Error     *Color
}

// hueChroma is the hue and chroma of one palette.
type hueChroma struct {
	hue, chroma float32
}

// variantPalettes are the palettes of a [Variant] for one source color.
type variantPalettes struct {
	primary, secondary, tertiary, neutral, neutralVariant hueChroma
}

// rotationHues are the hue breakpoints for the piecewise hue rotations
// of the [Vibrant] and [Expressive] accents.
var rotationHues = []float32{0, 41, 61, 101, 131, 181, 251, 301, 360}

var (
	vibrantSecondaryRotations    = []float32{18, 15, 10, 12, 15, 18, 15, 12, 12}
	vibrantTertiaryRotations     = []float32{35, 30, 20, 25, 30, 35, 30, 25, 25}
	expressiveSecondaryRotations = []float32{45, 95, 45, 20, 45, 90, 45, 45, 45}
	expressiveTertiaryRotations  = []float32{120, 120, 20, 45, 20, 15, 20, 120, 120}
)

// rotatedHue returns the source hue rotated by the rotation of the
// hue range it falls in. Hues exactly on a breakpoint are not rotated.
func rotatedHue(source float32, hues, rotations []float32) float32 {
	for i := 0; i < len(hues)-1; i++ {
		if hues[i] < source && source < hues[i+1] {
			return math32.WrapDegrees(source + rotations[i])
		}
	}
	return source
}

// palettes returns the palettes of this variant for the given source color.
func (v Variant) palettes(src Color) variantPalettes {
	h, c := src.Hue, src.Chroma
	switch v {
	case TonalSpot:
		return variantPalettes{
			primary: hueChroma{h, 36}, secondary: hueChroma{h, 16}, tertiary: hueChroma{h + 60, 24},
			neutral: hueChroma{h, 6}, neutralVariant: hueChroma{h, 8},
		}
	case Expressive:
		return variantPalettes{
			primary:        hueChroma{h + 240, 40},
			secondary:      hueChroma{rotatedHue(h, rotationHues, expressiveSecondaryRotations), 24},
			tertiary:       hueChroma{rotatedHue(h, rotationHues, expressiveTertiaryRotations), 32},
			neutral:        hueChroma{h + 15, 8},
			neutralVariant: hueChroma{h + 15, 12},
		}
	case Fidelity:
		return variantPalettes{
			primary: hueChroma{h, c}, secondary: hueChroma{h, max(c-32, c*0.5)}, tertiary: hueChroma{h + 180, c},
			neutral: hueChroma{h, c / 8}, neutralVariant: hueChroma{h, c/8 + 4},
		}
	case FruitSalad:
		return variantPalettes{
			primary: hueChroma{h - 50, 48}, secondary: hueChroma{h - 50, 36}, tertiary: hueChroma{h, 36},
			neutral: hueChroma{h, 10}, neutralVariant: hueChroma{h, 16},
		}
	case Monochrome:
		return variantPalettes{
			primary: hueChroma{h, 0}, secondary: hueChroma{h, 0}, tertiary: hueChroma{h, 0},
			neutral: hueChroma{h, 0}, neutralVariant: hueChroma{h, 0},
		}
	case Neutral:
		return variantPalettes{
			primary: hueChroma{h, 12}, secondary: hueChroma{h, 8}, tertiary: hueChroma{h, 16},
			neutral: hueChroma{h, 2}, neutralVariant: hueChroma{h, 2},
		}
	case Rainbow:
		return variantPalettes{
			primary: hueChroma{h, 48}, secondary: hueChroma{h, 16}, tertiary: hueChroma{h + 60, 24},
			neutral: hueChroma{h, 0}, neutralVariant: hueChroma{h, 0},
		}
	}
	// Vibrant
	return variantPalettes{
		primary:        hueChroma{h, MaxChroma},
		secondary:      hueChroma{rotatedHue(h, rotationHues, vibrantSecondaryRotations), 24},
		tertiary:       hueChroma{rotatedHue(h, rotationHues, vibrantTertiaryRotations), 32},
		neutral:        hueChroma{h, 10},
		neutralVariant: hueChroma{h, 12},
	}
}

// Offsets returns the secondary and tertiary hue offsets
// of this strategy, in degrees.
func (s Strategy) Offsets() (secondary, tertiary float32) {
	switch s {
	case Analogous:
		return 30, 240
	case Triadic:
		return 120, 240
	}
	return 30, 180
}

// CalibrateAccentHue moves hues in the muddy olive band (70°, 100°),
// exclusive, out of it: to 65° if below 85°, and to 110° otherwise.
// Other hues are only wrapped into [0, 360).
func CalibrateAccentHue(hue float32) float32 {
	h := math32.WrapDegrees(hue)
	if h > 70 && h < 100 {
		if h < 85 {
			return 65
		}
		return 110
	}
	return h
}

// NewKey returns the [Key] for the given seeds, variant and strategy.
// The variant determines the hue and chroma of the palettes derived
// from the primary seed. When the secondary or tertiary seed is missing,
// the strategy hue offsets from the primary seed hue replace the variant
// hues of both accents, after [CalibrateAccentHue]. Explicit seeds always
// take precedence. The semantic seeds come from the config, and the error
// seed does too when it is not given.
func NewKey(seeds Seeds, variant Variant, strategy Strategy, cfg *Config) (*Key, error) {
	src := seeds.Primary
	vp := variant.palettes(src)
	k := &Key{
		Source:         src,
		Primary:        NewColor(vp.primary.hue, vp.primary.chroma, src.Tone),
		Secondary:      NewColor(vp.secondary.hue, vp.secondary.chroma, src.Tone),
		Tertiary:       NewColor(vp.tertiary.hue, vp.tertiary.chroma, src.Tone),
		Neutral:        NewColor(vp.neutral.hue, vp.neutral.chroma, src.Tone),
		NeutralVariant: NewColor(vp.neutralVariant.hue, vp.neutralVariant.chroma, src.Tone),
	}

	if seeds.Secondary == nil || seeds.Tertiary == nil {
		so, to := strategy.Offsets()
		k.Secondary = NewColor(CalibrateAccentHue(src.AdjustHue(so).Hue), vp.secondary.chroma, src.Tone)
		k.Tertiary = NewColor(CalibrateAccentHue(src.AdjustHue(to).Hue), vp.tertiary.chroma, src.Tone)
		if variant != Monochrome {
			k.Tertiary = k.Tertiary.WithChroma(max(vp.tertiary.chroma, cfg.TertiaryMinChroma))
		}
	}
	if seeds.Secondary != nil {
		k.Secondary = *seeds.Secondary
	}
	if seeds.Tertiary != nil {
		k.Tertiary = *seeds.Tertiary
	}

	var err error
	if seeds.Error != nil {
		k.Error = *seeds.Error
	} else if k.Error, err = configSeed("error_seed", cfg.ErrorSeed); err != nil {
		return nil, err
	}
	if k.Warning, err = configSeed("warning_seed", cfg.WarningSeed); err != nil {
		return nil, err
	}
	if k.Success, err = configSeed("success_seed", cfg.SuccessSeed); err != nil {
		return nil, err
	}
	if k.Info, err = configSeed("info_seed", cfg.InfoSeed); err != nil {
		return nil, err
	}
	return k, nil
}

func configSeed(name, hex string) (Color, error) {
	c, err := ColorFromHex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("config %s: %w", name, err)
	}
	return c, nil
}
