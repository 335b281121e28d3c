// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheme

import "heavylift.dev/hlcolor/matcolor"

// accentRole is a role with base, on, container and on-container colors.
type accentRole struct {
	name   string
	accent func(s *matcolor.Scheme) matcolor.Accent
}

// fixedRole is a role with theme-invariant fixed colors.
type fixedRole struct {
	name  string
	fixed func(s *matcolor.Scheme) matcolor.Fixed
}

// surfaceRole is a role with exactly one color.
type surfaceRole struct {
	name  string
	color func(s *matcolor.Surface) string
}

// part is one sub-role of a role, whose key name
// is prefix + role + suffix.
type part[T any] struct {
	prefix, suffix string
	color          func(v T) string
}

var coreRoles = []accentRole{
	{"primary", func(s *matcolor.Scheme) matcolor.Accent { return s.Primary }},
	{"secondary", func(s *matcolor.Scheme) matcolor.Accent { return s.Secondary }},
	{"tertiary", func(s *matcolor.Scheme) matcolor.Accent { return s.Tertiary }},
	{"error", func(s *matcolor.Scheme) matcolor.Accent { return s.Error }},
}

var semanticRoles = []accentRole{
	{"warning", func(s *matcolor.Scheme) matcolor.Accent { return s.Warning }},
	{"success", func(s *matcolor.Scheme) matcolor.Accent { return s.Success }},
	{"info", func(s *matcolor.Scheme) matcolor.Accent { return s.Info }},
}

var fixedRoles = []fixedRole{
	{"primary", func(s *matcolor.Scheme) matcolor.Fixed { return s.PrimaryFixed }},
	{"secondary", func(s *matcolor.Scheme) matcolor.Fixed { return s.SecondaryFixed }},
	{"tertiary", func(s *matcolor.Scheme) matcolor.Fixed { return s.TertiaryFixed }},
}

var surfaceRoles = []surfaceRole{
	{"background", func(s *matcolor.Surface) string { return s.Background }},
	{"onBackground", func(s *matcolor.Surface) string { return s.OnBackground }},
	{"surface", func(s *matcolor.Surface) string { return s.Surface }},
	{"onSurface", func(s *matcolor.Surface) string { return s.OnSurface }},
	{"surfaceVariant", func(s *matcolor.Surface) string { return s.SurfaceVariant }},
	{"onSurfaceVariant", func(s *matcolor.Surface) string { return s.OnSurfaceVariant }},
	{"outline", func(s *matcolor.Surface) string { return s.Outline }},
	{"outlineVariant", func(s *matcolor.Surface) string { return s.OutlineVariant }},
	{"shadow", func(s *matcolor.Surface) string { return s.Shadow }},
	{"scrim", func(s *matcolor.Surface) string { return s.Scrim }},
	{"inverseSurface", func(s *matcolor.Surface) string { return s.InverseSurface }},
	{"inverseOnSurface", func(s *matcolor.Surface) string { return s.InverseOnSurface }},
	{"inversePrimary", func(s *matcolor.Surface) string { return s.InversePrimary }},
	{"surfaceContainerLowest", func(s *matcolor.Surface) string { return s.SurfaceContainerLowest }},
	{"surfaceContainerLow", func(s *matcolor.Surface) string { return s.SurfaceContainerLow }},
	{"surfaceContainer", func(s *matcolor.Surface) string { return s.SurfaceContainer }},
	{"surfaceContainerHigh", func(s *matcolor.Surface) string { return s.SurfaceContainerHigh }},
	{"surfaceContainerHighest", func(s *matcolor.Surface) string { return s.SurfaceContainerHighest }},
	{"surfaceDim", func(s *matcolor.Surface) string { return s.SurfaceDim }},
	{"surfaceBright", func(s *matcolor.Surface) string { return s.SurfaceBright }},
}

var accentParts = []part[matcolor.Accent]{
	{"", "", func(a matcolor.Accent) string { return a.Base }},
	{"on", "", func(a matcolor.Accent) string { return a.On }},
	{"", "container", func(a matcolor.Accent) string { return a.Container }},
	{"on", "container", func(a matcolor.Accent) string { return a.OnContainer }},
}

var fixedParts = []part[matcolor.Fixed]{
	{"", "fixed", func(f matcolor.Fixed) string { return f.Fixed }},
	{"", "fixeddim", func(f matcolor.Fixed) string { return f.FixedDim }},
	{"on", "fixed", func(f matcolor.Fixed) string { return f.OnFixed }},
	{"on", "fixedvariant", func(f matcolor.Fixed) string { return f.OnFixedVariant }},
}

// AccentRoles returns the names of the roles that have base, on,
// container and on-container colors, in scheme order.
func AccentRoles() []string {
	names := make([]string, 0, len(coreRoles)+len(semanticRoles))
	for _, r := range coreRoles {
		names = append(names, r.name)
	}
	for _, r := range semanticRoles {
		names = append(names, r.name)
	}
	return names
}

// KeysPerTheme is the number of keys of each theme in a scheme.
var KeysPerTheme = (len(coreRoles)+len(semanticRoles))*len(accentParts) + len(surfaceRoles) + len(fixedRoles)*len(fixedParts)
