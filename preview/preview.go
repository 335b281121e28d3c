// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preview renders the accent roles of a scheme as color
// swatches in the terminal.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"heavylift.dev/hlcolor/matcolor"
	"heavylift.dev/hlcolor/scheme"
)

// HeaderWidth is the width of the theme headers.
const HeaderWidth = 60

// Previewer renders previews for one output.
type Previewer struct {
	r   *lipgloss.Renderer
	cfg *matcolor.Config
}

// New returns a new [Previewer] writing for the terminal of the given
// writer. The config provides the contrast colors used for roles that
// have no "on" color in the scheme; if it is nil, the default is used.
func New(w io.Writer, cfg *matcolor.Config) *Previewer {
	if cfg == nil {
		cfg = matcolor.DefaultConfig()
	}
	return &Previewer{r: lipgloss.NewRenderer(w), cfg: cfg}
}

// Render writes the preview of the given scheme: for each theme, a
// header and one line per accent role, in [scheme.AccentRoles] order,
// with its base and container swatches. Roles missing from the scheme
// are skipped.
func (p *Previewer) Render(w io.Writer, s *scheme.Scheme) error {
	header := p.r.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#ffffff")).Width(HeaderWidth)
	var b strings.Builder
	for _, theme := range matcolor.Themes {
		b.WriteString(header.Render("  " + strings.ToUpper(theme.String()) + " THEME"))
		b.WriteByte('\n')
		for _, role := range scheme.AccentRoles() {
			hex := s.Role(theme, role)
			if hex == "" {
				continue
			}
			on := p.onColor(s, theme, "on"+role, hex)
			b.WriteString(p.swatch(fmt.Sprintf(" %-10s %s ", role, hex), hex, on))
			if c := s.Role(theme, role+"container"); c != "" {
				onc := p.onColor(s, theme, "on"+role+"container", c)
				b.WriteString("  ")
				b.WriteString(p.swatch(fmt.Sprintf(" %-20s %s ", role+" container", c), c, onc))
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// onColor returns the color of the given role, or else the contrast
// color of the given background.
func (p *Previewer) onColor(s *scheme.Scheme, theme matcolor.Theme, role, bg string) string {
	if on := s.Role(theme, role); on != "" {
		return on
	}
	c, err := matcolor.ColorFromHex(bg)
	if err != nil {
		return p.cfg.ContrastDark
	}
	return c.ContrastColor(p.cfg)
}

func (p *Previewer) swatch(text, bg, fg string) string {
	return p.r.NewStyle().Background(lipgloss.Color(bg)).Foreground(lipgloss.Color(fg)).Render(text)
}

// Render writes the preview of the given scheme to the given writer,
// with the default config.
func Render(w io.Writer, s *scheme.Scheme) error {
	return New(w, nil).Render(w, s)
}
