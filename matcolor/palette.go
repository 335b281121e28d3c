// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

// Palette contains a tonal palette with key colors
// for each of the different types of colors of a scheme.
// It is built for one scheme generation and not shared.
type Palette struct {

	// the tones for the primary key color
	Primary *Tones

	// the tones for the secondary key color
	Secondary *Tones

	// the tones for the tertiary key color
	Tertiary *Tones

	// the tones for the error key color
	Error *Tones

	// the tones for the warning key color
	Warning *Tones

	// the tones for the success key color
	Success *Tones

	// the tones for the info key color
	Info *Tones

	// the tones for the neutral key color
	Neutral *Tones

	// the tones for the neutral variant key color
	NeutralVariant *Tones
}

// NewPalette creates a new [Palette] from the given key colors.
func NewPalette(key *Key) *Palette {
	return &Palette{
		Primary:        NewTones(key.Primary),
		Secondary:      NewTones(key.Secondary),
		Tertiary:       NewTones(key.Tertiary),
		Error:          NewTones(key.Error),
		Warning:        NewTones(key.Warning),
		Success:        NewTones(key.Success),
		Info:           NewTones(key.Info),
		Neutral:        NewTones(key.Neutral),
		NeutralVariant: NewTones(key.NeutralVariant),
	}
}
