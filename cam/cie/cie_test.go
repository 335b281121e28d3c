// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"heavylift.dev/hlcolor/base/tolassert"
)

func TestSRGB(t *testing.T) {
	tolassert.Equal(t, float32(0.00015479876), SRGBToLinearComp(0.002))
	tolassert.Equal(t, float32(0.23302202), SRGBToLinearComp(0.52))

	tolassert.Equal(t, float32(0.012920001), SRGBFromLinearComp(0.001))
	tolassert.Equal(t, float32(0.84338915), SRGBFromLinearComp(0.68))
	assert.Equal(t, float32(1), SRGBFromLinearComp(1.3))

	rl, gl, bl := SRGBToLinear(0.3, 0.2, 0.6)
	tolassert.Equal(t, float32(0.07323897), rl)
	tolassert.Equal(t, float32(0.033104762), gl)
	tolassert.Equal(t, float32(0.31854683), bl)

	r, g, b := SRGBFromLinear(0.12, 0.34, 0.78)
	tolassert.Equal(t, float32(0.38109186), r)
	tolassert.Equal(t, float32(0.61803144), g)
	tolassert.Equal(t, float32(0.8962438), b)

	r, g, b = SRGBFromLinear100(12, 34, 78)
	tolassert.Equal(t, float32(0.38109186), r)
	tolassert.Equal(t, float32(0.61803144), g)
	tolassert.Equal(t, float32(0.8962438), b)

	ur, ug, ub, ua := SRGBFloatToUint8(0.36, 0.81, 0.41, 0.9)
	assert.Equal(t, uint8(0x53), ur)
	assert.Equal(t, uint8(0xba), ug)
	assert.Equal(t, uint8(0x5e), ub)
	assert.Equal(t, uint8(0xe6), ua)

	ur32, ug32, ub32, ua32 := SRGBFloatToUint32(0.36, 0.81, 0.41, 0.9)
	assert.Equal(t, uint32(0x52f1), ur32)
	assert.Equal(t, uint32(0xba9f), ug32)
	assert.Equal(t, uint32(0x5e76), ub32)
	assert.Equal(t, uint32(0xe666), ua32)
}

func TestXYZ(t *testing.T) {
	x, y, z := SRGBLinToXYZ(0.5, 0.6, 0.7)
	tolassert.Equal(t, float32(0.5470991), x)
	tolassert.Equal(t, float32(0.58596003), y)
	tolassert.Equal(t, float32(0.74640036), z)

	rl, gl, bl := XYZToSRGBLin(x, y, z)
	tolassert.EqualTol(t, float32(0.5), rl, 0.0002)
	tolassert.EqualTol(t, float32(0.6), gl, 0.0002)
	tolassert.EqualTol(t, float32(0.7), bl, 0.0002)

	x, y, z = SRGBToXYZ(1, 1, 1)
	tolassert.EqualTol(t, WhiteD65.X/100, x, 0.001)
	tolassert.EqualTol(t, float32(1), y, 0.0001)
	tolassert.EqualTol(t, WhiteD65.Z/100, z, 0.001)

	r, g, b := XYZ100ToSRGB(SRGBToXYZ100(0.2, 0.4, 0.9))
	tolassert.EqualTol(t, float32(0.2), r, 0.0005)
	tolassert.EqualTol(t, float32(0.4), g, 0.0005)
	tolassert.EqualTol(t, float32(0.9), b, 0.0005)
}

func TestLAB(t *testing.T) {
	tolassert.Equal(t, float32(0.887904), LABCompress(0.7))
	tolassert.Equal(t, float32(0.1379544), LABCompress(0.000003))
	tolassert.Equal(t, float32(0.21600002), LABUncompress(0.6))

	l, a, b := XYZToLAB(0.1, 0.3, 0.5)
	tolassert.EqualTol(t, float32(61.65422), l, 0.001)
	tolassert.EqualTol(t, float32(-98.673805), a, 0.01)
	tolassert.EqualTol(t, float32(-20.413673), b, 0.01)

	tolassert.EqualTol(t, float32(2.3023312), LToY(17), 0.001)
}
