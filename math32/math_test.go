// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{370, 10},
		{-30, 330},
		{-720, 0},
		{725, 5},
	}
	for _, test := range tests {
		assert.InDelta(t, test.want, WrapDegrees(test.in), 1e-4, "%g", test.in)
	}
	assert.Less(t, WrapDegrees(-1e-7), float32(360))
}

func TestSign(t *testing.T) {
	assert.Equal(t, float32(-1), Sign(-0.5))
	assert.Equal(t, float32(0), Sign(0))
	assert.Equal(t, float32(1), Sign(3))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0), Clamp(float32(-2), 0, 100))
	assert.Equal(t, float32(100), Clamp(float32(120), 0, 100))
	assert.Equal(t, 5, Clamp(5, 0, 10))
}

func TestDegRad(t *testing.T) {
	assert.InDelta(t, float32(Pi), DegToRad(180), 1e-6)
	assert.InDelta(t, float32(90), RadToDeg(Pi/2), 1e-4)
	assert.InDelta(t, float32(Pi/2), WrapRadians(-3*Pi/2), 1e-5)
}

func TestVector3(t *testing.T) {
	v := Vec3(1, 2, 3)
	assert.Equal(t, float32(2), v.Dim(1))
	assert.Equal(t, float32(3), v.Dim(2))
	assert.Equal(t, float32(14), v.Dot(v))
	assert.Equal(t, Vec3(2, 3, 4), v.Midpoint(Vec3(3, 4, 5)))
	assert.Equal(t, Vec3(1.5, 2.5, 3.5), v.Lerp(Vec3(2, 3, 4), 0.5))

	id := [3][3]float32{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}}
	assert.Equal(t, Vec3(1, 4, 9), v.MulMatrix(&id))
	assert.Equal(t, "(1, 2, 3)", v.String())
}
