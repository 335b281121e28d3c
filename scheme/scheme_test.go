// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheme

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"heavylift.dev/hlcolor/colors"
	"heavylift.dev/hlcolor/matcolor"
)

var hexRegexp = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func generate(t *testing.T, opts Options, seeds ...string) *Scheme {
	t.Helper()
	res, err := GenerateFromColors(seeds, opts)
	require.NoError(t, err)
	return res.Scheme
}

func TestKey(t *testing.T) {
	assert.Equal(t, "light__primary_hlv", Key(matcolor.Light, "primary"))
	assert.Equal(t, "dark__onprimarycontainer_hlv", Key(matcolor.Dark, "onPrimaryContainer"))
	assert.Equal(t, 60, KeysPerTheme)
	assert.Equal(t, []string{"primary", "secondary", "tertiary", "error", "warning", "success", "info"}, AccentRoles())
}

func TestDeterminism(t *testing.T) {
	for _, v := range matcolor.VariantValues() {
		for _, st := range matcolor.StrategyValues() {
			opts := Options{Variant: v, Strategy: st}
			a := generate(t, opts, "#0051e0")
			b := generate(t, opts, "#0051E0")
			assert.True(t, a.Equal(b), "%v %v", v, st)
			assert.Equal(t, Fingerprint(a), Fingerprint(b))
		}
	}
}

func TestCompleteness(t *testing.T) {
	s := generate(t, Options{}, "#0051e0")
	assert.Equal(t, 2*KeysPerTheme, s.Len())
	assert.Equal(t, 120, s.Len())

	for _, theme := range matcolor.Themes {
		for _, r := range AccentRoles() {
			for _, name := range []string{r, "on" + r, r + "container", "on" + r + "container"} {
				v, ok := s.Value(Key(theme, name))
				assert.True(t, ok, name)
				assert.NotEmpty(t, v, name)
			}
		}
		for _, r := range []string{"primary", "secondary", "tertiary"} {
			for _, name := range []string{r + "fixed", r + "fixeddim", "on" + r + "fixed", "on" + r + "fixedvariant"} {
				_, ok := s.Value(Key(theme, name))
				assert.True(t, ok, name)
			}
		}
		for _, r := range surfaceRoles {
			_, ok := s.Value(Key(theme, r.name))
			assert.True(t, ok, r.name)
		}
		_, ok := s.Value(Key(theme, "errorfixed"))
		assert.False(t, ok)
	}

	for k, v := range s.All() {
		assert.Regexp(t, hexRegexp, v, k)
		assert.Regexp(t, `^(light|dark)__[a-z]+_hlv$`, k)
	}
}

func TestOrder(t *testing.T) {
	keys := generate(t, Options{}, "#0051e0").Keys()
	assert.Equal(t, []string{"light__primary_hlv", "light__onprimary_hlv", "light__primarycontainer_hlv", "light__onprimarycontainer_hlv"}, keys[:4])
	assert.Equal(t, "light__warning_hlv", keys[16])
	assert.Equal(t, "light__background_hlv", keys[28])
	assert.Equal(t, "light__inverseprimary_hlv", keys[40])
	assert.Equal(t, "light__surfacebright_hlv", keys[47])
	assert.Equal(t, "light__primaryfixed_hlv", keys[48])
	assert.Equal(t, "light__ontertiaryfixedvariant_hlv", keys[59])
	assert.Equal(t, "dark__primary_hlv", keys[60])
	assert.Equal(t, "dark__ontertiaryfixedvariant_hlv", keys[119])
}

func TestCountValidation(t *testing.T) {
	seeds := []string{"#0051e0", "#40617f", "#ff00ff", "#ff0000", "#00ff00"}
	_, err := GenerateFromColors(nil, Options{})
	assert.ErrorIs(t, err, ErrInvalidColorCount)
	_, err5 := GenerateFromColors(seeds, Options{})
	assert.ErrorIs(t, err5, ErrInvalidColorCount)
	assert.Contains(t, err.Error(), "please provide 1-4 colors")
	assert.Contains(t, err5.Error(), "please provide 1-4 colors")

	for n := 1; n <= 4; n++ {
		res, err := GenerateFromColors(seeds[:n], Options{})
		require.NoError(t, err, n)
		assert.Equal(t, 120, res.Scheme.Len())
		assert.NotEmpty(t, res.JSON)
		assert.NotEmpty(t, res.CSS)
	}
}

func TestMalformedSeeds(t *testing.T) {
	for _, bad := range []string{"0051e0", "#051e0", "#0051e0ff", "#gg51e0", "blue"} {
		_, err := GenerateFromColors([]string{bad}, Options{})
		assert.ErrorIs(t, err, colors.ErrMalformedHex, bad)
		_, err = GenerateFromColors([]string{"#0051e0", bad}, Options{})
		assert.ErrorIs(t, err, colors.ErrMalformedHex, bad)
		assert.ErrorContains(t, err, "secondary seed")
	}
	_, err := Generate(Seeds{}, Options{})
	assert.ErrorIs(t, err, colors.ErrMalformedHex)

	cfg := matcolor.DefaultConfig()
	cfg.DarkTones.On = 101
	_, err = Generate(Seeds{Primary: "#0051e0"}, Options{Config: cfg})
	assert.ErrorContains(t, err, "dark_tones.on")
}

func TestScenarios(t *testing.T) {
	s := generate(t, Options{}, "#0051e0")
	light, ok := s.Value("light__primary_hlv")
	require.True(t, ok)
	dark, ok := s.Value("dark__primary_hlv")
	require.True(t, ok)
	assert.Regexp(t, hexRegexp, light)
	assert.Regexp(t, hexRegexp, dark)
	assert.NotEqual(t, light, dark)

	four := generate(t, Options{}, "#0051e0", "#40617f", "#FF00FF", "#FF0000")
	derived := s.Role(matcolor.Light, "secondary")
	explicit := four.Role(matcolor.Light, "secondary")
	assert.NotEqual(t, derived, explicit)

	// the explicit secondary seed has a hue near 240
	sec, err := matcolor.ColorFromHex(explicit)
	require.NoError(t, err)
	seed, err := matcolor.ColorFromHex("#40617f")
	require.NoError(t, err)
	assert.InDelta(t, seed.Hue, sec.Hue, 5)
	assert.InDelta(t, 40, sec.Tone, 1)

	// strategies agree on the secondary hue offset, but not the tertiary one
	comp := generate(t, Options{Strategy: matcolor.Complementary}, "#0051e0")
	anal := generate(t, Options{Strategy: matcolor.Analogous}, "#0051e0")
	assert.Equal(t, comp.Role(matcolor.Light, "secondary"), anal.Role(matcolor.Light, "secondary"))
	assert.NotEqual(t, comp.Role(matcolor.Light, "tertiary"), anal.Role(matcolor.Light, "tertiary"))

	// semantic roles are independent of the seeds
	other := generate(t, Options{}, "#ff8800")
	assert.Equal(t, s.Role(matcolor.Dark, "warning"), other.Role(matcolor.Dark, "warning"))
	assert.Equal(t, s.Role(matcolor.Light, "oninfocontainer"), other.Role(matcolor.Light, "oninfocontainer"))
	assert.Equal(t, s.Role(matcolor.Light, "error"), other.Role(matcolor.Light, "error"))
}

func TestSurfacesAndFixed(t *testing.T) {
	s := generate(t, Options{}, "#0051e0")
	assert.Equal(t, "#e1e1e1", s.Role(matcolor.Light, "background"))
	assert.Equal(t, "#080808", s.Role(matcolor.Dark, "background"))
	assert.Equal(t, s.Role(matcolor.Light, "inversePrimary"), s.Role(matcolor.Dark, "inversePrimary"))

	for _, r := range []string{"primary", "secondary", "tertiary"} {
		for _, p := range []string{r + "fixed", r + "fixeddim", "on" + r + "fixed", "on" + r + "fixedvariant"} {
			assert.Equal(t, s.Role(matcolor.Light, p), s.Role(matcolor.Dark, p), p)
		}
	}

	cfg := matcolor.DefaultConfig()
	cfg.ThemedSurfaces = true
	th := generate(t, Options{Config: cfg}, "#0051e0")
	assert.NotEqual(t, "#e1e1e1", th.Role(matcolor.Light, "background"))
	assert.Equal(t, s.Role(matcolor.Light, "primary"), th.Role(matcolor.Light, "primary"))
}

func TestSeedsFromColors(t *testing.T) {
	s, err := SeedsFromColors([]string{"#111111", "#222222", "#333333", "#444444"})
	require.NoError(t, err)
	assert.Equal(t, Seeds{"#111111", "#222222", "#333333", "#444444"}, s)
	s, err = SeedsFromColors([]string{"#111111"})
	require.NoError(t, err)
	assert.Equal(t, Seeds{Primary: "#111111"}, s)
	_, err = SeedsFromColors(make([]string, 5))
	assert.ErrorIs(t, err, ErrInvalidColorCount)
	assert.ErrorContains(t, err, fmt.Sprint(5))
}

func TestString(t *testing.T) {
	s := generate(t, Options{}, "#0051e0")
	assert.True(t, strings.HasPrefix(s.String(), ":root {\n"))
}

func TestEqual(t *testing.T) {
	var none *Scheme
	zero := &Scheme{}
	assert.True(t, none.Equal(nil))
	assert.True(t, zero.Equal(&Scheme{}))
	assert.True(t, zero.Equal(none))
	assert.True(t, none.Equal(newScheme()))
	assert.Equal(t, 0, zero.Len())
	assert.Empty(t, zero.Keys())
	assert.Equal(t, "", none.Role(matcolor.Light, "primary"))

	a := newScheme()
	a.add("light__primary_hlv", "#0051e0")
	a.add("light__onprimary_hlv", "#ffffff")
	assert.False(t, a.Equal(nil))
	assert.False(t, none.Equal(a))

	b := newScheme()
	b.add("light__onprimary_hlv", "#ffffff")
	b.add("light__primary_hlv", "#0051e0")
	assert.False(t, a.Equal(b))

	c := newScheme()
	c.add("light__primary_hlv", "#0051e0")
	c.add("light__onprimary_hlv", "#fffffe")
	assert.False(t, a.Equal(c))

	c.add("light__onprimary_hlv", "#ffffff")
	assert.True(t, a.Equal(c))
}
