// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	failed bool
}

func (r *recorder) Errorf(format string, args ...any) {
	r.failed = true
}

func TestEqual(t *testing.T) {
	Equal(t, float32(3.2), 3.20001)
	EqualTol(t, 5.0, 5.4, 0.5)

	r := &recorder{}
	assert.False(t, Equal(r, 1.0, 1.1))
	assert.True(t, r.failed)

	r = &recorder{}
	assert.False(t, EqualTol(r, float32(2), 3, 0.5))
	assert.True(t, r.failed)
}
