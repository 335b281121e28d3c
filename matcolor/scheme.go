// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

// Scheme contains the colors of every role for one theme.
type Scheme struct {

	// Theme is the theme of this scheme
	Theme Theme

	// Primary is the primary color applied to important elements
	Primary Accent

	// Secondary is the secondary color applied to less important elements
	Secondary Accent

	// Tertiary is the tertiary color applied as an accent to highlight elements and create contrast between other colors
	Tertiary Accent

	// Error is the color applied to elements that indicate an error or danger
	Error Accent

	// Warning is the color applied to elements that indicate a warning
	Warning Accent

	// Success is the color applied to elements that indicate success
	Success Accent

	// Info is the color applied to elements that give information
	Info Accent

	// Surface contains the surface, outline, shadow and inverse roles
	Surface Surface

	// PrimaryFixed is the theme-invariant version of [Scheme.Primary]
	PrimaryFixed Fixed

	// SecondaryFixed is the theme-invariant version of [Scheme.Secondary]
	SecondaryFixed Fixed

	// TertiaryFixed is the theme-invariant version of [Scheme.Tertiary]
	TertiaryFixed Fixed
}

// NewScheme returns the [Scheme] of the given theme for the given key colors
// and their palette.
func NewScheme(key *Key, p *Palette, theme Theme, cfg *Config) *Scheme {
	rt := cfg.Tones(theme)
	return &Scheme{
		Theme:          theme,
		Primary:        NewAccent(p.Primary, rt),
		Secondary:      NewAccent(p.Secondary, rt),
		Tertiary:       NewAccent(p.Tertiary, rt),
		Error:          NewAccent(p.Error, rt),
		Warning:        NewAccent(p.Warning, rt),
		Success:        NewAccent(p.Success, rt),
		Info:           NewAccent(p.Info, rt),
		Surface:        NewSurface(key, p, theme, cfg),
		PrimaryFixed:   NewFixed(p.Primary, cfg.FixedTones),
		SecondaryFixed: NewFixed(p.Secondary, cfg.FixedTones),
		TertiaryFixed:  NewFixed(p.Tertiary, cfg.FixedTones),
	}
}

// Schemes contains the light and dark schemes of one set of key colors.
type Schemes struct {
	Light *Scheme
	Dark  *Scheme
}

// NewSchemes returns new [Schemes] for the given [Key], sharing
// one [Palette] between both themes.
func NewSchemes(key *Key, cfg *Config) *Schemes {
	p := NewPalette(key)
	return &Schemes{
		Light: NewScheme(key, p, Light, cfg),
		Dark:  NewScheme(key, p, Dark, cfg),
	}
}

// Scheme returns the scheme of the given theme.
func (s *Schemes) Scheme(theme Theme) *Scheme {
	if theme == Dark {
		return s.Dark
	}
	return s.Light
}
