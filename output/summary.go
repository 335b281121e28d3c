// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package output

import (
	"fmt"
	"strings"
	"time"

	"heavylift.dev/hlcolor/scheme"
)

var seedRoles = []string{"Primary", "Secondary", "Tertiary", "Error"}

// Summary returns the human readable summary of the given run,
// whose files have the given base name.
func Summary(r *Run, base string) string {
	var b strings.Builder
	b.WriteString("Color Scheme Generation Summary\n")
	fmt.Fprintf(&b, "Generated at: %s\n", r.Time.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "Input colors: %s\n", strings.Join(r.Colors, ", "))
	fmt.Fprintf(&b, "Variant: %s\n", r.Options.Variant)
	fmt.Fprintf(&b, "Strategy: %s\n", r.Options.Strategy)
	fmt.Fprintf(&b, "Fingerprint: %s\n", scheme.Fingerprint(r.Scheme))

	b.WriteString("\nFiles generated:\n")
	for _, f := range r.Formats {
		fmt.Fprintf(&b, "- %s.%s (%s)\n", base, f.Ext(), formatDescription(f))
	}

	b.WriteString("\nSeed colors used:\n")
	for i, role := range seedRoles {
		c := "Generated automatically"
		if i < len(r.Colors) && r.Colors[i] != "" {
			c = r.Colors[i]
		}
		fmt.Fprintf(&b, "- %s: %s\n", role, c)
	}

	light, dark := 0, 0
	for k := range r.Scheme.All() {
		switch {
		case strings.HasPrefix(k, "light__"):
			light++
		case strings.HasPrefix(k, "dark__"):
			dark++
		}
	}
	b.WriteString("\nThe color scheme includes:\n")
	fmt.Fprintf(&b, "- Light theme colors (%d properties)\n", light)
	fmt.Fprintf(&b, "- Dark theme colors (%d properties)\n", dark)
	b.WriteString("- Fixed colors for both themes\n")
	b.WriteString("- Semantic colors (warning, success, info, error)\n")
	b.WriteString("- Surface and container variants\n")

	b.WriteString("\nTo use in your project:\n")
	b.WriteString("1. Copy the CSS custom properties to your stylesheet\n")
	b.WriteString("2. Import the JSON in your JavaScript/TypeScript code\n")
	b.WriteString("3. Apply the colors using the CSS variables (e.g., var(--light__primary_hlv))\n")
	return b.String()
}

func formatDescription(f scheme.Format) string {
	switch f {
	case scheme.FormatJSON:
		return "Complete color scheme object"
	case scheme.FormatCSS:
		return "CSS custom properties"
	}
	return "YAML color scheme mapping"
}
