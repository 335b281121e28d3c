// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import "strings"

// Surface contains the surface roles of one theme, as #rrggbb
// hex strings. Surface roles have no on/container sub-roles.
type Surface struct {
	Background              string
	OnBackground            string
	Surface                 string
	OnSurface               string
	SurfaceVariant          string
	OnSurfaceVariant        string
	Outline                 string
	OutlineVariant          string
	Shadow                  string
	Scrim                   string
	InverseSurface          string
	InverseOnSurface        string
	InversePrimary          string
	SurfaceContainerLowest  string
	SurfaceContainerLow     string
	SurfaceContainer        string
	SurfaceContainerHigh    string
	SurfaceContainerHighest string
	SurfaceDim              string
	SurfaceBright           string
}

// NewSurface returns the surface roles of the given theme. They come
// from the constant tables of the config, except for the inverse primary,
// which is the primary seed with its tone raised by
// [Config.InversePrimaryDelta] in both themes. If [Config.ThemedSurfaces]
// is set, all of them come from the palette instead (see [NewThemedSurface]).
func NewSurface(key *Key, p *Palette, theme Theme, cfg *Config) Surface {
	if cfg.ThemedSurfaces {
		return NewThemedSurface(p, theme)
	}
	t := cfg.Surfaces(theme)
	lc := strings.ToLower
	return Surface{
		Background:              lc(t.Background),
		OnBackground:            lc(t.OnBackground),
		Surface:                 lc(t.Surface),
		OnSurface:               lc(t.OnSurface),
		SurfaceVariant:          lc(t.SurfaceVariant),
		OnSurfaceVariant:        lc(t.OnSurfaceVariant),
		Outline:                 lc(t.Outline),
		OutlineVariant:          lc(t.OutlineVariant),
		Shadow:                  lc(t.Shadow),
		Scrim:                   lc(t.Scrim),
		InverseSurface:          lc(t.InverseSurface),
		InverseOnSurface:        lc(t.InverseOnSurface),
		InversePrimary:          key.Source.AdjustTone(cfg.InversePrimaryDelta).Hex(),
		SurfaceContainerLowest:  lc(t.SurfaceContainerLowest),
		SurfaceContainerLow:     lc(t.SurfaceContainerLow),
		SurfaceContainer:        lc(t.SurfaceContainer),
		SurfaceContainerHigh:    lc(t.SurfaceContainerHigh),
		SurfaceContainerHighest: lc(t.SurfaceContainerHighest),
		SurfaceDim:              lc(t.SurfaceDim),
		SurfaceBright:           lc(t.SurfaceBright),
	}
}

// NewThemedSurface returns the surface roles of the given theme
// derived from the neutral, neutral variant and primary palettes,
// at the standard Material Design 3 tones.
func NewThemedSurface(p *Palette, theme Theme) Surface {
	// pick returns the light or dark tone
	pick := func(light, dark int) int {
		if theme == Dark {
			return dark
		}
		return light
	}
	n, nv := p.Neutral, p.NeutralVariant
	return Surface{
		Background:              n.Hex(pick(98, 6)),
		OnBackground:            n.Hex(pick(10, 90)),
		Surface:                 n.Hex(pick(98, 6)),
		OnSurface:               n.Hex(pick(10, 90)),
		SurfaceVariant:          nv.Hex(pick(90, 30)),
		OnSurfaceVariant:        nv.Hex(pick(30, 80)),
		Outline:                 nv.Hex(pick(50, 60)),
		OutlineVariant:          nv.Hex(pick(80, 30)),
		Shadow:                  n.Hex(0),
		Scrim:                   n.Hex(0),
		InverseSurface:          n.Hex(pick(20, 90)),
		InverseOnSurface:        n.Hex(pick(95, 20)),
		InversePrimary:          p.Primary.Hex(pick(80, 40)),
		SurfaceContainerLowest:  n.Hex(pick(100, 4)),
		SurfaceContainerLow:     n.Hex(pick(96, 10)),
		SurfaceContainer:        n.Hex(pick(94, 12)),
		SurfaceContainerHigh:    n.Hex(pick(92, 17)),
		SurfaceContainerHighest: n.Hex(pick(90, 22)),
		SurfaceDim:              n.Hex(pick(87, 6)),
		SurfaceBright:           n.Hex(pick(98, 24)),
	}
}
