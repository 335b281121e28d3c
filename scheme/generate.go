// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheme

import (
	"errors"
	"fmt"

	"heavylift.dev/hlcolor/colors"
	"heavylift.dev/hlcolor/matcolor"
)

// MaxSeeds is the largest number of seed colors of a scheme.
const MaxSeeds = 4

// ErrInvalidColorCount is returned by [GenerateFromColors]
// for fewer than one or more than [MaxSeeds] colors.
var ErrInvalidColorCount = errors.New("please provide 1-4 colors")

// Seeds are the seed colors of a scheme, as #RRGGBB hex strings.
// The primary seed is required; empty seeds are derived from it,
// or from the config in the case of the error seed.
type Seeds struct {
	Primary   string
	Secondary string
	Tertiary  string
	Error     string
}

// SeedsFromColors returns the seeds for the given colors in the
// order primary, secondary, tertiary, error.
func SeedsFromColors(colors []string) (Seeds, error) {
	if len(colors) < 1 || len(colors) > MaxSeeds {
		return Seeds{}, fmt.Errorf("%w, got %d", ErrInvalidColorCount, len(colors))
	}
	var s Seeds
	for i, c := range colors {
		*s.field(i) = c
	}
	return s, nil
}

func (s *Seeds) field(i int) *string {
	switch i {
	case 0:
		return &s.Primary
	case 1:
		return &s.Secondary
	case 2:
		return &s.Tertiary
	}
	return &s.Error
}

// Options are the options of scheme generation. The zero value
// uses the [matcolor.Vibrant] variant, the [matcolor.Complementary]
// strategy and [matcolor.DefaultConfig].
type Options struct {

	// Variant is the style of the palettes derived from the primary seed.
	Variant matcolor.Variant `toml:"variant"`

	// Strategy determines the derived secondary and tertiary hues.
	Strategy matcolor.Strategy `toml:"strategy"`

	// Config contains the tone stops, semantic seeds and surfaces.
	// If it is nil, [matcolor.DefaultConfig] is used.
	Config *matcolor.Config `toml:"-"`
}

func (o *Options) config() *matcolor.Config {
	if o.Config == nil {
		return matcolor.DefaultConfig()
	}
	return o.Config
}

// Result is the result of [GenerateFromColors].
type Result struct {
	Scheme *Scheme

	// JSON is the scheme in the JSON format.
	JSON string

	// CSS is the scheme in the CSS custom properties format.
	CSS string
}

// Generate returns the scheme of the given seeds. It returns an error
// wrapping [colors.ErrMalformedHex] for any seed that is not of the form
// #RRGGBB, and the errors of [matcolor.Config.Validate] for a bad config.
// The result only depends on the arguments.
func Generate(seeds Seeds, opts Options) (*Scheme, error) {
	cfg := opts.config()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	ms, err := seeds.colors()
	if err != nil {
		return nil, err
	}
	key, err := matcolor.NewKey(ms, opts.Variant, opts.Strategy, cfg)
	if err != nil {
		return nil, err
	}
	return Assemble(matcolor.NewSchemes(key, cfg)), nil
}

// GenerateFromColors returns the scheme of the given 1 to 4 seed colors,
// in the order primary, secondary, tertiary, error, together with its
// JSON and CSS exports. It returns [ErrInvalidColorCount] for any other
// number of colors.
func GenerateFromColors(colors []string, opts Options) (*Result, error) {
	seeds, err := SeedsFromColors(colors)
	if err != nil {
		return nil, err
	}
	s, err := Generate(seeds, opts)
	if err != nil {
		return nil, err
	}
	js, err := JSON(s)
	if err != nil {
		return nil, err
	}
	return &Result{Scheme: s, JSON: js, CSS: CSS(s)}, nil
}

// Assemble returns the flat scheme of the given light and dark schemes.
// For each theme, light first, it has the four colors of every core role,
// then those of every semantic role, then the surface roles, and then
// the four fixed colors of the primary, secondary and tertiary roles.
func Assemble(ss *matcolor.Schemes) *Scheme {
	s := newScheme()
	for _, theme := range matcolor.Themes {
		ms := ss.Scheme(theme)
		for _, roles := range [][]accentRole{coreRoles, semanticRoles} {
			for _, r := range roles {
				a := r.accent(ms)
				for _, p := range accentParts {
					s.add(Key(theme, p.prefix+r.name+p.suffix), p.color(a))
				}
			}
		}
		for _, r := range surfaceRoles {
			s.add(Key(theme, r.name), r.color(&ms.Surface))
		}
		for _, r := range fixedRoles {
			f := r.fixed(ms)
			for _, p := range fixedParts {
				s.add(Key(theme, p.prefix+r.name+p.suffix), p.color(f))
			}
		}
	}
	return s
}

// colors returns the seeds as colors.
func (s *Seeds) colors() (matcolor.Seeds, error) {
	var ms matcolor.Seeds
	if s.Primary == "" {
		return ms, fmt.Errorf("primary seed: %w: missing", colors.ErrMalformedHex)
	}
	p, err := matcolor.ColorFromHex(s.Primary)
	if err != nil {
		return ms, fmt.Errorf("primary seed: %w", err)
	}
	ms.Primary = p
	opt := func(name, hex string) (*matcolor.Color, error) {
		if hex == "" {
			return nil, nil
		}
		c, err := matcolor.ColorFromHex(hex)
		if err != nil {
			return nil, fmt.Errorf("%s seed: %w", name, err)
		}
		return &c, nil
	}
	if ms.Secondary, err = opt("secondary", s.Secondary); err != nil {
		return ms, err
	}
	if ms.Tertiary, err = opt("tertiary", s.Tertiary); err != nil {
		return ms, err
	}
	if ms.Error, err = opt("error", s.Error); err != nil {
		return ms, err
	}
	return ms, nil
}
