// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scheme assembles the role colors of the light and dark
// themes of a set of seed colors into one flat, ordered scheme of
// design tokens, and exports it as JSON, CSS custom properties and YAML.
package scheme

import (
	"fmt"
	"iter"
	"strings"

	"heavylift.dev/hlcolor/base/ordmap"
	"heavylift.dev/hlcolor/matcolor"
)

// Scheme is an ordered mapping from role keys to #rrggbb hex colors.
// Keys are of the form {theme}__{role}_hlv, as returned by [Key].
// A Scheme returned by this package is never modified afterward.
type Scheme struct {
	roles *ordmap.Map[string, string]
}

func newScheme() *Scheme {
	return &Scheme{roles: ordmap.New[string, string]()}
}

// Key returns the scheme key of the given role name in the given theme.
// The name is lowercased, so "onPrimaryContainer" and "onprimarycontainer"
// give the same key.
func Key(theme matcolor.Theme, name string) string {
	return fmt.Sprintf("%s__%s_hlv", theme, strings.ToLower(name))
}

func (s *Scheme) add(key, value string) {
	s.roles.Add(key, value)
}

// ordered returns the roles of the scheme, which are nil
// for a nil or zero Scheme.
func (s *Scheme) ordered() *ordmap.Map[string, string] {
	if s == nil {
		return nil
	}
	return s.roles
}

// Value returns the color of the given key, and whether it exists.
func (s *Scheme) Value(key string) (string, bool) {
	return s.ordered().ValueByKeyTry(key)
}

// Role returns the color of the given role name in the given theme,
// or "" if there is no such role.
func (s *Scheme) Role(theme matcolor.Theme, name string) string {
	return s.ordered().ValueByKey(Key(theme, name))
}

// Len returns the number of keys in the scheme.
func (s *Scheme) Len() int {
	return s.ordered().Len()
}

// Keys returns the keys of the scheme in order.
func (s *Scheme) Keys() []string {
	return s.ordered().Keys()
}

// All returns an iterator over the keys and colors of the scheme in order.
func (s *Scheme) All() iter.Seq2[string, string] {
	return s.ordered().All()
}

// Equal returns whether the two schemes have the same
// keys with the same colors in the same order. Nil and
// empty schemes are equal.
func (s *Scheme) Equal(o *Scheme) bool {
	if s.Len() != o.Len() {
		return false
	}
	next, stop := iter.Pull2(o.All())
	defer stop()
	for k, v := range s.All() {
		ok, ov, _ := next()
		if k != ok || v != ov {
			return false
		}
	}
	return true
}

// String returns the scheme in the CSS custom properties format.
func (s *Scheme) String() string {
	return CSS(s)
}
