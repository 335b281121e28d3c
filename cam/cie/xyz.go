// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "heavylift.dev/hlcolor/math32"

// WhiteD65 is the standard white color for midday sun
// in the 100-base XYZ space.
var WhiteD65 = math32.Vec3(95.047, 100.0, 108.883)

// srgbToXYZ is the matrix from linear sRGB to XYZ (D65).
var srgbToXYZ = [3][3]float32{
	{0.41233895, 0.35762064, 0.18051042},
	{0.2126, 0.7152, 0.0722},
	{0.01932141, 0.11916382, 0.95034478},
}

// xyzToSRGB is the inverse of srgbToXYZ.
var xyzToSRGB = [3][3]float32{
	{3.2413774792388685, -1.5376652402851851, -0.49885366846268053},
	{-0.9691452513005321, 1.8758853451067872, 0.04156585616912061},
	{0.05562093689691305, -0.20395524564742123, 1.0571799111220335},
}

// SRGBLinToXYZ converts sRGB linear into XYZ CIE standard color space
func SRGBLinToXYZ(rl, gl, bl float32) (x, y, z float32) {
	v := math32.Vec3(rl, gl, bl).MulMatrix(&srgbToXYZ)
	return v.X, v.Y, v.Z
}

// XYZToSRGBLin converts XYZ CIE standard color space to sRGB linear
func XYZToSRGBLin(x, y, z float32) (rl, gl, bl float32) {
	v := math32.Vec3(x, y, z).MulMatrix(&xyzToSRGB)
	return v.X, v.Y, v.Z
}

// SRGBToXYZ converts sRGB into XYZ CIE standard color space
func SRGBToXYZ(r, g, b float32) (x, y, z float32) {
	rl, gl, bl := SRGBToLinear(r, g, b)
	return SRGBLinToXYZ(rl, gl, bl)
}

// SRGBToXYZ100 converts sRGB into XYZ CIE standard color space
// with 100-base sRGB values -- used for CAM16 but not CAM02
func SRGBToXYZ100(r, g, b float32) (x, y, z float32) {
	x, y, z = SRGBToXYZ(r, g, b)
	x *= 100
	y *= 100
	z *= 100
	return
}

// XYZToSRGB converts XYZ CIE standard color space into sRGB
func XYZToSRGB(x, y, z float32) (r, g, b float32) {
	rl, gl, bl := XYZToSRGBLin(x, y, z)
	return SRGBFromLinear(rl, gl, bl)
}

// XYZ100ToSRGB converts XYZ CIE standard color space, 100-base values,
// into sRGB standard
func XYZ100ToSRGB(x, y, z float32) (r, g, b float32) {
	return XYZToSRGB(x/100, y/100, z/100)
}

// XYZNormD65 normalizes XZY values relative to the D65 outdoor white light values
func XYZNormD65(x, y, z float32) (xr, yr, zr float32) {
	xr = x / (WhiteD65.X / 100)
	yr = y / (WhiteD65.Y / 100)
	zr = z / (WhiteD65.Z / 100)
	return
}
