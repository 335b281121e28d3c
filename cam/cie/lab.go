// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "heavylift.dev/hlcolor/math32"

const (
	// labEpsilon is the cube of 6/29, where the compression
	// function switches from cube root to linear.
	labEpsilon = float32(216.0 / 24389.0)

	// labKappa is (29/3)^3.
	labKappa = float32(24389.0 / 27.0)
)

// LABCompress does cube-root compression of the X, Y, Z components
// prior to performing the LAB conversion
func LABCompress(t float32) float32 {
	if t > labEpsilon {
		return math32.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// LABUncompress is the inverse of [LABCompress].
func LABUncompress(ft float32) float32 {
	ft3 := ft * ft * ft
	if ft3 > labEpsilon {
		return ft3
	}
	return (116*ft - 16) / labKappa
}

// XYZToLAB converts a color from XYZ to L*a*b* coordinates
// using the standard D65 illuminant.
// The XYZ values are in the 0-1 range.
func XYZToLAB(x, y, z float32) (l, a, b float32) {
	x, y, z = XYZNormD65(x, y, z)
	fx := LABCompress(x)
	fy := LABCompress(y)
	fz := LABCompress(z)
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LToY converts an L* lightness value to a Y luminance value
// on the 0-100 scale.
func LToY(l float32) float32 {
	return 100 * LABUncompress((l+16)/116)
}
