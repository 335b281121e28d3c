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

package hct

import (
	"heavylift.dev/hlcolor/cam/cam16"
	"heavylift.dev/hlcolor/cam/cie"
	"heavylift.dev/hlcolor/math32"
)

// SolveToRGB returns the sRGB color (gamma corrected, 0-1 range) with the
// given hue, chroma and tone. If the requested chroma is not achievable at
// the given hue and tone, the closest in-gamut color with the same hue and
// tone is returned, which has a lower chroma.
func SolveToRGB(hue, chroma, tone float32) (r, g, b float32) {
	lin := SolveToRGBLin(hue, chroma, tone)
	return cie.SRGBFromLinear100(lin.X, lin.Y, lin.Z)
}

// SolveToRGBLin is like [SolveToRGB] but returns linear RGB
// in the 0-100 range.
func SolveToRGBLin(hue, chroma, tone float32) math32.Vector3 {
	if chroma < 0.0001 || tone < 0.0001 || tone > 99.9999 {
		y := cie.LToY(math32.Clamp(tone, 0, 100))
		return math32.Vec3(y, y, y)
	}
	hueRad := math32.DegToRad(cam16.SanitizeDegrees(hue))
	y := cie.LToY(tone)
	if lin, ok := findResultByJ(hueRad, chroma, y); ok {
		return lin
	}
	return BisectToLimit(y, hueRad)
}

// findResultByJ finds a color with the given hue (in radians), chroma and
// Y by Newton iteration on the CAM16 lightness J, using 2 * fn(j) / j as
// the derivative. It returns false when the result is out of gamut.
func findResultByJ(hueRad, chroma, y float32) (math32.Vector3, bool) {
	vw := cam16.NewStdView()

	// initial estimate of j
	j := math32.Sqrt(y) * 11
	tInnerCoeff := 1 / math32.Pow(1.64-math32.Pow(0.29, vw.BgYToWhiteY), 0.73)
	eHue := 0.25 * (math32.Cos(hueRad+2) + 3.8)
	p1 := eHue * (50000 / 13) * vw.NC * vw.NCB
	hSin := math32.Sin(hueRad)
	hCos := math32.Cos(hueRad)

	for round := range 5 {
		jNorm := j / 100
		alpha := float32(0)
		if chroma != 0 && j != 0 {
			alpha = chroma / math32.Sqrt(jNorm)
		}
		t := math32.Pow(alpha*tInnerCoeff, 1/0.9)
		ac := vw.AW * math32.Pow(jNorm, 1/vw.C/vw.Z)
		p2 := ac / vw.NBB
		gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
		a := gamma * hCos
		b := gamma * hSin
		rA := (460*p2 + 451*a + 288*b) / 1403
		gA := (460*p2 - 891*a - 261*b) / 1403
		bA := (460*p2 - 220*a - 6300*b) / 1403

		scaled := math32.Vec3(cam16.InverseChromaticAdapt(rA), cam16.InverseChromaticAdapt(gA), cam16.InverseChromaticAdapt(bA))
		lin := scaled.MulMatrix(&linrgbFromScaledDiscount)
		if lin.X < 0 || lin.Y < 0 || lin.Z < 0 {
			return lin, false
		}
		fnj := lin.Dot(math32.Vec3(yFromLinrgb[0], yFromLinrgb[1], yFromLinrgb[2]))
		if fnj <= 0 {
			return lin, false
		}
		if round == 4 || math32.Abs(fnj-y) < 0.002 {
			if lin.X > 100.01 || lin.Y > 100.01 || lin.Z > 100.01 {
				return lin, false
			}
			return lin, true
		}
		j -= (fnj - y) * j / (2 * fnj)
	}
	return math32.Vector3{}, false
}
