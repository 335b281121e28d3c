// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHex(t *testing.T) {
	c, err := FromHex("#6750A4")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x67, 0x50, 0xa4, 0xff}, c)

	c, err = FromHex("#b3261e")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xb3, 0x26, 0x1e, 0xff}, c)

	for _, bad := range []string{"", "#", "#fff", "6750a4", "#6750a4ff", "#67 0a4", "#zz0000", "##6750a"} {
		_, err := FromHex(bad)
		assert.ErrorIs(t, err, ErrMalformedHex, bad)
	}
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#6750a4", AsHex(color.RGBA{0x67, 0x50, 0xa4, 0xff}))
	assert.Equal(t, "#000000", AsHex(color.Black))
	assert.Equal(t, "#ffffff", AsHex(color.White))

	h, err := NormalizeHex("#ABCDEF")
	require.NoError(t, err)
	assert.Equal(t, "#abcdef", h)

	_, err = NormalizeHex("#abc")
	assert.ErrorIs(t, err, ErrMalformedHex)
}

func TestFromString(t *testing.T) {
	type data struct {
		in   string
		want string
		err  bool
	}
	tests := []data{
		{"#FF0000", "#ff0000", false},
		{"red", "#ff0000", false},
		{"CornflowerBlue", "#6495ed", false},
		{"  teal ", "#008080", false},
		{"notacolor", "", true},
		{"#12345", "", true},
	}
	for _, test := range tests {
		got, err := ToHexString(test.in)
		if test.err {
			assert.ErrorIs(t, err, ErrMalformedHex, test.in)
			continue
		}
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, got, test.in)
	}
}

func TestToHexStrings(t *testing.T) {
	hexes, err := ToHexStrings([]string{"#FF5733", "rebeccapurple", "navy"})
	require.NoError(t, err)
	assert.Equal(t, []string{"#ff5733", "#663399", "#000080"}, hexes)

	_, err = ToHexStrings([]string{"#ff5733", "mauvish"})
	assert.ErrorIs(t, err, ErrMalformedHex)
	assert.ErrorContains(t, err, "color 2")
}
