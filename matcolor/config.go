// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"errors"
	"fmt"

	"heavylift.dev/hlcolor/colors"
)

// RoleTones are the tones of the four parts of an [Accent].
type RoleTones struct {
	Base        int `toml:"base"`
	On          int `toml:"on"`
	Container   int `toml:"container"`
	OnContainer int `toml:"on_container"`
}

// FixedTones are the tones of the four parts of a [Fixed] accent.
type FixedTones struct {
	Fixed          int `toml:"fixed"`
	FixedDim       int `toml:"fixed_dim"`
	OnFixed        int `toml:"on_fixed"`
	OnFixedVariant int `toml:"on_fixed_variant"`
}

// SurfaceTable contains the constant surface colors of one theme,
// as #rrggbb hex strings. The inverse primary is not part of it,
// as it is always derived from the primary seed.
type SurfaceTable struct {
	Background              string `toml:"background"`
	OnBackground            string `toml:"on_background"`
	Surface                 string `toml:"surface"`
	OnSurface               string `toml:"on_surface"`
	SurfaceVariant          string `toml:"surface_variant"`
	OnSurfaceVariant        string `toml:"on_surface_variant"`
	Outline                 string `toml:"outline"`
	OutlineVariant          string `toml:"outline_variant"`
	Shadow                  string `toml:"shadow"`
	Scrim                   string `toml:"scrim"`
	InverseSurface          string `toml:"inverse_surface"`
	InverseOnSurface        string `toml:"inverse_on_surface"`
	SurfaceContainerLowest  string `toml:"surface_container_lowest"`
	SurfaceContainerLow     string `toml:"surface_container_low"`
	SurfaceContainer        string `toml:"surface_container"`
	SurfaceContainerHigh    string `toml:"surface_container_high"`
	SurfaceContainerHighest string `toml:"surface_container_highest"`
	SurfaceDim              string `toml:"surface_dim"`
	SurfaceBright           string `toml:"surface_bright"`
}

// Config contains all of the constants that determine the visual
// character of generated schemes. Use [DefaultConfig] to get the
// standard values; a Config is never modified by scheme generation.
type Config struct {

	// LightTones are the role tones of the light theme.
	LightTones RoleTones `toml:"light_tones"`

	// DarkTones are the role tones of the dark theme.
	DarkTones RoleTones `toml:"dark_tones"`

	// FixedTones are the theme-invariant fixed role tones.
	FixedTones FixedTones `toml:"fixed_tones"`

	// ErrorSeed is the error seed used when none is given.
	ErrorSeed string `toml:"error_seed"`

	// WarningSeed is the seed of the warning role.
	WarningSeed string `toml:"warning_seed"`

	// SuccessSeed is the seed of the success role.
	SuccessSeed string `toml:"success_seed"`

	// InfoSeed is the seed of the info role.
	InfoSeed string `toml:"info_seed"`

	// TertiaryMinChroma is the lowest chroma of a strategy-derived
	// tertiary palette, so that it is never too gray. It does not
	// apply to the [Monochrome] variant.
	TertiaryMinChroma float32 `toml:"tertiary_min_chroma"`

	// InversePrimaryDelta is the tone delta applied to the primary
	// seed to get the inverse primary of the constant surfaces.
	InversePrimaryDelta float32 `toml:"inverse_primary_delta"`

	// ContrastDark is the near-black returned by [Color.ContrastColor]
	// for light colors.
	ContrastDark string `toml:"contrast_dark"`

	// ContrastLight is the near-white returned by [Color.ContrastColor]
	// for dark colors.
	ContrastLight string `toml:"contrast_light"`

	// ThemedSurfaces derives the surface roles from the neutral
	// palettes of the primary seed instead of the constant tables.
	ThemedSurfaces bool `toml:"themed_surfaces"`

	// LightSurfaces are the constant surfaces of the light theme.
	LightSurfaces SurfaceTable `toml:"light_surfaces"`

	// DarkSurfaces are the constant surfaces of the dark theme.
	DarkSurfaces SurfaceTable `toml:"dark_surfaces"`
}

// DefaultConfig returns a new [Config] with the standard values.
func DefaultConfig() *Config {
	return &Config{
		LightTones:          RoleTones{Base: 40, On: 100, Container: 90, OnContainer: 10},
		DarkTones:           RoleTones{Base: 80, On: 20, Container: 30, OnContainer: 90},
		FixedTones:          FixedTones{Fixed: 90, FixedDim: 80, OnFixed: 10, OnFixedVariant: 30},
		ErrorSeed:           "#b3261e",
		WarningSeed:         "#e6ac00",
		SuccessSeed:         "#00b33c",
		InfoSeed:            "#2e58ff",
		TertiaryMinChroma:   32,
		InversePrimaryDelta: 25,
		ContrastDark:        "#080808",
		ContrastLight:       "#e1e1e1",
		LightSurfaces: SurfaceTable{
			Background:              "#e1e1e1",
			OnBackground:            "#1e1e1e",
			Surface:                 "#3f3f3f",
			OnSurface:               "#989898",
			SurfaceVariant:          "#ffffff",
			OnSurfaceVariant:        "#080808",
			Outline:                 "#989898",
			OutlineVariant:          "#6e6e6e",
			Shadow:                  "#080808",
			Scrim:                   "#080808",
			InverseSurface:          "#989898",
			InverseOnSurface:        "#3f3f3f",
			SurfaceContainerLowest:  "#ffffff",
			SurfaceContainerLow:     "#f3f3f3",
			SurfaceContainer:        "#ededed",
			SurfaceContainerHigh:    "#e8e8e8",
			SurfaceContainerHighest: "#e2e2e2",
			SurfaceDim:              "#dadada",
			SurfaceBright:           "#f9f9f9",
		},
		DarkSurfaces: SurfaceTable{
			Background:              "#080808",
			OnBackground:            "#ffffff",
			Surface:                 "#1e1e1e",
			OnSurface:               "#e1e1e1",
			SurfaceVariant:          "#080808",
			OnSurfaceVariant:        "#6e6e6e",
			Outline:                 "#e1e1e1",
			OutlineVariant:          "#3f3f3f",
			Shadow:                  "#000000",
			Scrim:                   "#000000",
			InverseSurface:          "#e1e1e1",
			InverseOnSurface:        "#1e1e1e",
			SurfaceContainerLowest:  "#0e0e0e",
			SurfaceContainerLow:     "#1b1b1b",
			SurfaceContainer:        "#1f1f1f",
			SurfaceContainerHigh:    "#2a2a2a",
			SurfaceContainerHighest: "#353535",
			SurfaceDim:              "#131313",
			SurfaceBright:           "#393939",
		},
	}
}

// Surfaces returns the constant surface table of the given theme.
func (c *Config) Surfaces(theme Theme) *SurfaceTable {
	if theme == Dark {
		return &c.DarkSurfaces
	}
	return &c.LightSurfaces
}

// Tones returns the role tones of the given theme.
func (c *Config) Tones(theme Theme) RoleTones {
	if theme == Dark {
		return c.DarkTones
	}
	return c.LightTones
}

// Validate returns an error describing every invalid value in the
// config: tones outside of [0, 100], and malformed hex colors.
func (c *Config) Validate() error {
	var errs []error
	tone := func(name string, v int) {
		if v < 0 || v > 100 {
			errs = append(errs, fmt.Errorf("%s: tone %d is outside of [0, 100]", name, v))
		}
	}
	hex := func(name, v string) {
		if !colors.IsHex(v) {
			errs = append(errs, fmt.Errorf("%s: %w: %q", name, colors.ErrMalformedHex, v))
		}
	}
	for _, rt := range []struct {
		name  string
		tones RoleTones
	}{{"light_tones", c.LightTones}, {"dark_tones", c.DarkTones}} {
		tone(rt.name+".base", rt.tones.Base)
		tone(rt.name+".on", rt.tones.On)
		tone(rt.name+".container", rt.tones.Container)
		tone(rt.name+".on_container", rt.tones.OnContainer)
	}
	tone("fixed_tones.fixed", c.FixedTones.Fixed)
	tone("fixed_tones.fixed_dim", c.FixedTones.FixedDim)
	tone("fixed_tones.on_fixed", c.FixedTones.OnFixed)
	tone("fixed_tones.on_fixed_variant", c.FixedTones.OnFixedVariant)

	hex("error_seed", c.ErrorSeed)
	hex("warning_seed", c.WarningSeed)
	hex("success_seed", c.SuccessSeed)
	hex("info_seed", c.InfoSeed)
	hex("contrast_dark", c.ContrastDark)
	hex("contrast_light", c.ContrastLight)
	if c.TertiaryMinChroma < 0 || c.TertiaryMinChroma > MaxChroma {
		errs = append(errs, fmt.Errorf("tertiary_min_chroma: %g is outside of [0, %d]", c.TertiaryMinChroma, MaxChroma))
	}
	for _, theme := range Themes {
		prefix := theme.String() + "_surfaces."
		for _, e := range c.Surfaces(theme).entries() {
			hex(prefix+e.name, e.value)
		}
	}
	return errors.Join(errs...)
}

type tableEntry struct {
	name  string
	value string
}

// entries returns the values of the table with their config names.
func (t *SurfaceTable) entries() []tableEntry {
	return []tableEntry{
		{"background", t.Background},
		{"on_background", t.OnBackground},
		{"surface", t.Surface},
		{"on_surface", t.OnSurface},
		{"surface_variant", t.SurfaceVariant},
		{"on_surface_variant", t.OnSurfaceVariant},
		{"outline", t.Outline},
		{"outline_variant", t.OutlineVariant},
		{"shadow", t.Shadow},
		{"scrim", t.Scrim},
		{"inverse_surface", t.InverseSurface},
		{"inverse_on_surface", t.InverseOnSurface},
		{"surface_container_lowest", t.SurfaceContainerLowest},
		{"surface_container_low", t.SurfaceContainerLow},
		{"surface_container", t.SurfaceContainer},
		{"surface_container_high", t.SurfaceContainerHigh},
		{"surface_container_highest", t.SurfaceContainerHighest},
		{"surface_dim", t.SurfaceDim},
		{"surface_bright", t.SurfaceBright},
	}
}
