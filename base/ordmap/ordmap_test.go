// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Add("key0", 0)
	om.Add("key1", 1)
	om.Add("key2", 2)

	v, ok := om.ValueByKeyTry("key1")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 0, om.ValueByKey("missing"))

	om.Add("key1", 10)
	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []string{"key0", "key1", "key2"}, om.Keys())
	assert.Equal(t, 10, om.ValueByKey("key1"))
}

func TestAll(t *testing.T) {
	om := New[string, int]()
	om.Add("a", 1)
	om.Add("b", 2)
	om.Add("c", 3)

	var keys []string
	for k, v := range om.All() {
		keys = append(keys, k)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestNil(t *testing.T) {
	var om *Map[string, int]
	assert.Equal(t, 0, om.Len())
	assert.Empty(t, om.Keys())
	_, ok := om.ValueByKeyTry("a")
	assert.False(t, ok)
	for range om.All() {
		t.Fatal("nil map has no items")
	}

	var zero Map[string, int]
	zero.Add("x", 1)
	assert.Equal(t, 1, zero.ValueByKey("x"))
}
