// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

// Accent contains the four standard variations of a base accent color,
// as #rrggbb hex strings.
type Accent struct {

	// Base is the base color
	Base string

	// On is the color applied to content on top of [Accent.Base]
	On string

	// Container is the color applied to elements with less emphasis than [Accent.Base]
	Container string

	// OnContainer is the color applied to content on top of [Accent.Container]
	OnContainer string
}

// NewAccent returns a new [Accent] from the given [Tones] at the given role tones.
func NewAccent(tones *Tones, rt RoleTones) Accent {
	return Accent{
		Base:        tones.Hex(rt.Base),
		On:          tones.Hex(rt.On),
		Container:   tones.Hex(rt.Container),
		OnContainer: tones.Hex(rt.OnContainer),
	}
}

// Fixed contains the four theme-invariant variations of an accent color,
// as #rrggbb hex strings. They are the same in light and dark themes.
type Fixed struct {

	// Fixed is the fixed container color
	Fixed string

	// FixedDim is a more emphasized version of [Fixed.Fixed]
	FixedDim string

	// OnFixed is the color applied to content on top of [Fixed.Fixed]
	OnFixed string

	// OnFixedVariant is a less emphasized version of [Fixed.OnFixed]
	OnFixedVariant string
}

// NewFixed returns a new [Fixed] from the given [Tones] at the given fixed tones.
func NewFixed(tones *Tones, ft FixedTones) Fixed {
	return Fixed{
		Fixed:          tones.Hex(ft.Fixed),
		FixedDim:       tones.Hex(ft.FixedDim),
		OnFixed:        tones.Hex(ft.OnFixed),
		OnFixedVariant: tones.Hex(ft.OnFixedVariant),
	}
}
