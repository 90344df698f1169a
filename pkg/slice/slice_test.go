// Copyright (c) 2026 Tigerlilly. All rights reserved.

package slice_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tigerlilly/api/pkg/slice"
)

/*
TestMap verifies element-wise transformation and nil passthrough.
*/
func TestMap(t *testing.T) {
	t.Run("transforms_elements", func(t *testing.T) {
		got := slice.Map([]int{1, 2, 3}, strconv.Itoa)
		assert.Equal(t, []string{"1", "2", "3"}, got)
	})

	t.Run("nil_input_stays_nil", func(t *testing.T) {
		assert.Nil(t, slice.Map(nil, strconv.Itoa))
	})
}

/*
TestFilter verifies predicate selection, including the stateful dedupe
predicate used by article search.
*/
func TestFilter(t *testing.T) {
	t.Run("keeps_matching_elements", func(t *testing.T) {
		got := slice.Filter([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 })
		assert.Equal(t, []int{2, 4}, got)
	})

	t.Run("deduplicates_with_stateful_predicate", func(t *testing.T) {
		seen := make(map[int]bool)
		got := slice.Filter([]int{1, 2, 2, 3, 1}, func(v int) bool {
			if seen[v] {
				return false
			}
			seen[v] = true
			return true
		})
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("nil_input_stays_nil", func(t *testing.T) {
		assert.Nil(t, slice.Filter(nil, func(int) bool { return true }))
	})
}
