// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"fmt"
	"strings"
)

// Variant is the style of the palettes derived from the primary seed,
// following the Material Design 3 dynamic scheme variants.
type Variant int32

const (
	// Vibrant uses the most colorful primary palette possible
	// for the seed hue, with hue-rotated accents.
	Vibrant Variant = iota

	// TonalSpot is the default Material Design 3 style: a calm
	// primary and muted accents.
	TonalSpot

	// Expressive rotates the primary hue away from the seed and
	// uses playful accent rotations.
	Expressive

	// Fidelity keeps the primary palette at the chroma of the seed.
	Fidelity

	// FruitSalad rotates the hues of the primary and secondary
	// palettes away from the seed.
	FruitSalad

	// Monochrome uses no chroma at all.
	Monochrome

	// Neutral is nearly grayscale with a hint of the seed hue.
	Neutral

	// Rainbow uses a colorful primary with grayscale surfaces.
	Rainbow
)

var variantNames = []string{"vibrant", "tonalspot", "expressive", "fidelity", "fruit-salad", "monochrome", "neutral", "rainbow"}

// VariantValues returns all possible [Variant] values.
func VariantValues() []Variant {
	return []Variant{Vibrant, TonalSpot, Expressive, Fidelity, FruitSalad, Monochrome, Neutral, Rainbow}
}

// String returns the string representation of this Variant value.
func (i Variant) String() string {
	if i < 0 || int(i) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int32(i))
	}
	return variantNames[i]
}

// SetString sets the Variant value from its string representation,
// and returns an error if the string is invalid.
func (i *Variant) SetString(s string) error {
	v, err := parseEnum(s, variantNames, "Variant")
	if err != nil {
		return err
	}
	*i = Variant(v)
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Variant) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Variant) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}

// Strategy determines the secondary and tertiary hues
// derived from the primary seed hue.
type Strategy int32

const (
	// Complementary rotates the secondary by 30° and the tertiary by 180°.
	Complementary Strategy = iota

	// Analogous rotates the secondary by 30° and the tertiary by 240°.
	Analogous

	// Triadic rotates the secondary by 120° and the tertiary by 240°.
	Triadic
)

var strategyNames = []string{"complementary", "analogous", "triadic"}

// StrategyValues returns all possible [Strategy] values.
func StrategyValues() []Strategy {
	return []Strategy{Complementary, Analogous, Triadic}
}

// String returns the string representation of this Strategy value.
func (i Strategy) String() string {
	if i < 0 || int(i) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int32(i))
	}
	return strategyNames[i]
}

// SetString sets the Strategy value from its string representation,
// and returns an error if the string is invalid.
func (i *Strategy) SetString(s string) error {
	v, err := parseEnum(s, strategyNames, "Strategy")
	if err != nil {
		return err
	}
	*i = Strategy(v)
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Strategy) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Strategy) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}

// Theme is the light or dark theme of a scheme.
type Theme int32

const (
	Light Theme = iota
	Dark
)

// Themes are all themes, in the order they appear in a scheme.
var Themes = []Theme{Light, Dark}

// String returns "light" or "dark".
func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

func parseEnum(s string, names []string, typ string) (int, error) {
	ls := strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == ls || strings.ReplaceAll(n, "-", "") == ls {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%q does not belong to %s values (%s)", s, typ, strings.Join(names, ", "))
}
