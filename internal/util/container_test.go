package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeMap(t *testing.T) {
	dest := map[string]int{"a": 1, "b": 2}
	merged := MergeMap(dest, map[string]int{"b": 3, "c": 4})

	assert.Equal(t, map[string]int{"a": 1, "b": 3, "c": 4}, merged)
	assert.Equal(t, merged, dest)
}

func TestRemoveDuplicates(t *testing.T) {
	in := []string{"b.proto", "a.proto", "b.proto", "c.proto", "a.proto"}

	assert.Equal(t, []string{"b.proto", "a.proto", "c.proto"}, RemoveDuplicates(in))
	assert.Equal(t, []string{"b.proto", "a.proto", "b.proto", "c.proto", "a.proto"}, in)
	assert.Nil(t, RemoveDuplicates[string](nil))
	assert.Empty(t, RemoveDuplicates([]int{}))
}
