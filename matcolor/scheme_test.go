// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"heavylift.dev/hlcolor/colors"
)

var hexRegexp = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestTones(t *testing.T) {
	tn := NewTones(NewColor(260, 60, 30))
	assert.Equal(t, "#000000", tn.Hex(0))
	assert.Equal(t, "#ffffff", tn.Hex(100))
	c := tn.AbsTone(40)
	assert.Contains(t, tn.Tones, 40)
	assert.Equal(t, c, tn.AbsTone(40))
	assert.Len(t, tn.Tones, 3)

	// tones only depend on hue and chroma
	other := NewTones(NewColor(260, 60, 90))
	assert.Equal(t, tn.Hex(40), other.Hex(40))

	// higher tones are lighter
	prev := -1.0
	for tone := 0; tone <= 100; tone += 10 {
		l, err := ColorFromHex(tn.Hex(tone))
		require.NoError(t, err)
		assert.Greater(t, float64(l.Tone), prev, "tone %d", tone)
		prev = float64(l.Tone)
	}
}

func accentHexes(a Accent) []string {
	return []string{a.Base, a.On, a.Container, a.OnContainer}
}

func fixedHexes(f Fixed) []string {
	return []string{f.Fixed, f.FixedDim, f.OnFixed, f.OnFixedVariant}
}

func TestSchemes(t *testing.T) {
	cfg := DefaultConfig()
	src, err := ColorFromHex("#0051e0")
	require.NoError(t, err)
	k, err := NewKey(Seeds{Primary: src}, Vibrant, Complementary, cfg)
	require.NoError(t, err)
	s := NewSchemes(k, cfg)

	assert.Equal(t, Light, s.Light.Theme)
	assert.Equal(t, Dark, s.Dark.Theme)
	assert.Same(t, s.Dark, s.Scheme(Dark))
	assert.Same(t, s.Light, s.Scheme(Light))

	for _, sc := range []*Scheme{s.Light, s.Dark} {
		for _, a := range []Accent{sc.Primary, sc.Secondary, sc.Tertiary, sc.Error, sc.Warning, sc.Success, sc.Info} {
			for _, h := range accentHexes(a) {
				assert.Regexp(t, hexRegexp, h)
			}
		}
		for _, f := range []Fixed{sc.PrimaryFixed, sc.SecondaryFixed, sc.TertiaryFixed} {
			for _, h := range fixedHexes(f) {
				assert.Regexp(t, hexRegexp, h)
			}
		}
	}

	assert.NotEqual(t, s.Light.Primary.Base, s.Dark.Primary.Base)
	assert.Equal(t, "#ffffff", s.Light.Primary.On)
	assert.Equal(t, s.Light.PrimaryFixed, s.Dark.PrimaryFixed)
	assert.Equal(t, s.Light.SecondaryFixed, s.Dark.SecondaryFixed)
	assert.Equal(t, s.Light.TertiaryFixed, s.Dark.TertiaryFixed)

	// light container is the dark on-container tone (90)
	assert.Equal(t, s.Light.Primary.Container, s.Dark.Primary.OnContainer)
	assert.Equal(t, s.Light.Primary.Container, s.Light.PrimaryFixed.Fixed)
	assert.Equal(t, s.Dark.Primary.Base, s.Light.PrimaryFixed.FixedDim)
}

func TestConstantSurfaces(t *testing.T) {
	cfg := DefaultConfig()
	src, err := ColorFromHex("#0051e0")
	require.NoError(t, err)
	k, err := NewKey(Seeds{Primary: src}, Vibrant, Complementary, cfg)
	require.NoError(t, err)
	s := NewSchemes(k, cfg)

	assert.Equal(t, "#e1e1e1", s.Light.Surface.Background)
	assert.Equal(t, "#080808", s.Dark.Surface.Background)
	assert.Equal(t, "#000000", s.Dark.Surface.Scrim)
	want := src.AdjustTone(25).Hex()
	assert.Equal(t, want, s.Light.Surface.InversePrimary)
	assert.Equal(t, want, s.Dark.Surface.InversePrimary)

	cfg.LightSurfaces.Background = "#ABCDEF"
	s = NewSchemes(k, cfg)
	assert.Equal(t, "#abcdef", s.Light.Surface.Background)
}

func TestThemedSurfaces(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ThemedSurfaces = true
	k, err := NewKey(Seeds{Primary: NewColor(140, 50, 50)}, TonalSpot, Complementary, cfg)
	require.NoError(t, err)
	s := NewSchemes(k, cfg)

	assert.Equal(t, "#000000", s.Light.Surface.Shadow)
	assert.Equal(t, "#000000", s.Dark.Surface.Scrim)
	assert.Equal(t, "#ffffff", s.Light.Surface.SurfaceContainerLowest)
	assert.NotEqual(t, s.Light.Surface.Background, s.Dark.Surface.Background)
	assert.Equal(t, s.Light.Surface.Background, s.Light.Surface.Surface)

	bg, err := ColorFromHex(s.Light.Surface.Background)
	require.NoError(t, err)
	assert.InDelta(t, 98, bg.Tone, 1)
	dbg, err := ColorFromHex(s.Dark.Surface.Background)
	require.NoError(t, err)
	assert.InDelta(t, 6, dbg.Tone, 1)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.LightTones.Base = 140
	cfg.FixedTones.OnFixed = -1
	cfg.WarningSeed = "#fff"
	cfg.DarkSurfaces.Scrim = "#0000"
	cfg.TertiaryMinChroma = 500
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, colors.ErrMalformedHex)
	for _, name := range []string{"light_tones.base", "fixed_tones.on_fixed", "warning_seed", "dark_surfaces.scrim", "tertiary_min_chroma"} {
		assert.ErrorContains(t, err, name)
	}

	assert.Equal(t, 40, DefaultConfig().Tones(Light).Base)
	assert.Equal(t, 80, DefaultConfig().Tones(Dark).Base)
}

func TestContrastAgainstRoles(t *testing.T) {
	cfg := DefaultConfig()
	k, err := NewKey(Seeds{Primary: NewColor(20, 60, 50)}, Vibrant, Complementary, cfg)
	require.NoError(t, err)
	s := NewSchemes(k, cfg)
	dark, err := ColorFromHex(s.Dark.Primary.Base)
	require.NoError(t, err)
	assert.Equal(t, "#080808", dark.ContrastColor(cfg))
	light, err := ColorFromHex(s.Light.Primary.Base)
	require.NoError(t, err)
	assert.Equal(t, "#e1e1e1", light.ContrastColor(cfg))
}
