// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cam16

import "heavylift.dev/hlcolor/math32"

var xyzToLMS = [3][3]float32{
	{0.401288, 0.650173, -0.051461},
	{-0.250268, 1.204414, 0.045854},
	{-0.002079, 0.048952, 0.953127},
}

var lmsToXYZ = [3][3]float32{
	{1.86206786, -1.01125463, 0.14918677},
	{0.38752654, 0.62144744, -0.00897398},
	{-0.01584150, -0.03412294, 1.04996444},
}

// XYZToLMS converts XYZ to Long, Medium, Short cone-based responses,
// using the CAM16 transform
func XYZToLMS(x, y, z float32) (l, m, s float32) {
	v := math32.Vec3(x, y, z).MulMatrix(&xyzToLMS)
	return v.X, v.Y, v.Z
}

// LMSToXYZ converts Long, Medium, Short cone-based responses to XYZ,
// using the CAM16 transform
func LMSToXYZ(l, m, s float32) (x, y, z float32) {
	v := math32.Vec3(l, m, s).MulMatrix(&lmsToXYZ)
	return v.X, v.Y, v.Z
}

// LuminanceAdaptComp performs luminance adaptation
// of a single cone response, given the discounting factor d
// and the luminance-level adaptation factor fl scaled to a 0-1 range.
func LuminanceAdaptComp(v, d, fl float32) float32 {
	f := math32.Pow(fl*math32.Abs(d*v), 0.42)
	return math32.Sign(v) * 400 * f / (f + 27.13)
}

// InverseChromaticAdapt is the inverse of [LuminanceAdaptComp]
// with unit d and fl factors.
func InverseChromaticAdapt(adapted float32) float32 {
	adaptedAbs := math32.Abs(adapted)
	base := max(0, 27.13*adaptedAbs/(400-adaptedAbs))
	return math32.Sign(adapted) * math32.Pow(base, 1/0.42)
}

// LuminanceAdapt performs luminance adaptation
// based on color responses, using the discounting
// and adaptation factors of the given view.
func LuminanceAdapt(l, m, s float32, vw *View) (lA, mA, sA float32) {
	fl := vw.FL / 100
	lA = LuminanceAdaptComp(l, vw.RGBD.X, fl)
	mA = LuminanceAdaptComp(m, vw.RGBD.Y, fl)
	sA = LuminanceAdaptComp(s, vw.RGBD.Z, fl)
	return
}

// LMSToOps converts Long, Medium, Short cone-based values to
// opponent redVgreen (a) and yellowVblue (b), and grey (achromatic) values,
// that more closely reflect neural responses.
// greyNorm is a normalizing grey factor used in the CAM16 model.
// l, m, s values must be in 100-base units.
// Uses the CAM16 color appearance model.
func LMSToOps(l, m, s float32, vw *View) (redVgreen, yellowVblue, grey, greyNorm float32) {
	lA, mA, sA := LuminanceAdapt(l, m, s, vw)
	redVgreen = (11*lA + -12*mA + sA) / 11
	yellowVblue = (lA + mA - 2*sA) / 9
	grey = (40*lA + 20*mA + sA) / 20
	greyNorm = (20*lA + 20*mA + 21*sA) / 20
	return
}

// SanitizeDegrees ensures that the given degree value
// is in the range [0, 360).
func SanitizeDegrees(deg float32) float32 {
	return math32.WrapDegrees(deg)
}

// SanitizeRadians ensures that the given radian value
// is in the range [0, 2π).
func SanitizeRadians(angle float32) float32 {
	return math32.WrapRadians(angle)
}

// InCyclicOrder returns whether b is strictly between a and c
// when going around the circle in the positive direction.
// All angles are in radians.
func InCyclicOrder(a, b, c float32) bool {
	deltaAB := SanitizeRadians(b - a)
	deltaAC := SanitizeRadians(c - a)
	return deltaAB < deltaAC
}
