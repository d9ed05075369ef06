// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupedFrom_RemovesDuplicates(t *testing.T) {
	tests := []struct {
		name     string
		raw      []Identifier
		expected []Identifier
	}{
		{name: "nil input", raw: nil, expected: []Identifier{}},
		{name: "no duplicates", raw: []Identifier{"b", "a"}, expected: []Identifier{"a", "b"}},
		{name: "adjacent duplicates", raw: []Identifier{"x", "x", "y"}, expected: []Identifier{"x", "y"}},
		{name: "scattered duplicates", raw: []Identifier{"x", "y", "x", "z", "y", "x"}, expected: []Identifier{"x", "y", "z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := DedupedFrom(tt.raw)

			snapshot := set.Snapshot()
			assert.Equal(t, tt.expected, snapshot)
			assert.Equal(t, len(tt.expected), set.Len())

			seen := make(map[Identifier]bool)
			for _, id := range snapshot {
				require.False(t, seen[id], "identifier %q yielded twice", id)
				seen[id] = true
			}
		})
	}
}

func TestIdentifierSet_ZeroValueIsUsable(t *testing.T) {
	var set IdentifierSet

	assert.False(t, set.Contains("a"))
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.Snapshot())

	set.Add("a")
	assert.True(t, set.Contains("a"))
}

func TestIdentifierSet_AddRemoveAreIdempotent(t *testing.T) {
	set := NewIdentifierSet("a")

	set.Add("a")
	set.Add("a")
	assert.Equal(t, 1, set.Len())

	set.Remove("b")
	assert.Equal(t, 1, set.Len())

	set.Remove("a")
	set.Remove("a")
	assert.Equal(t, 0, set.Len())
}

func TestIdentifierSet_ToggleMembership(t *testing.T) {
	set := NewIdentifierSet("a")

	assert.False(t, set.ToggleMembership("a"))
	assert.False(t, set.Contains("a"))

	assert.True(t, set.ToggleMembership("a"))
	assert.True(t, set.Contains("a"))

	assert.True(t, set.ToggleMembership("b"))
	assert.Equal(t, []Identifier{"a", "b"}, set.Snapshot())
}

func TestIdentifierSet_CloneIsIndependent(t *testing.T) {
	set := NewIdentifierSet("a", "b")
	clone := set.Clone()

	clone.Add("c")
	set.Remove("a")

	assert.Equal(t, []Identifier{"b"}, set.Snapshot())
	assert.Equal(t, []Identifier{"a", "b", "c"}, clone.Snapshot())
}

func TestIdentifierSet_SnapshotDoesNotAlias(t *testing.T) {
	set := NewIdentifierSet("a", "b")
	snapshot := set.Snapshot()

	set.Add("c")
	snapshot[0] = "z"

	assert.Equal(t, []Identifier{"a", "b", "c"}, set.Snapshot())
}

func TestIdentifierSet_SnapshotIsSortedAscending(t *testing.T) {
	set := NewIdentifierSet("10", "2", "b", "A", "a", "1")

	assert.Equal(t, []Identifier{"1", "10", "2", "A", "a", "b"}, set.Snapshot(), "byte-wise order")
}

func TestNFTCollection_CountsDistinctMembers(t *testing.T) {
	c := NFTCollection{ID: "c1", NFTs: []Identifier{"n1", "n2", "n1", "n3", "n2"}}

	assert.Equal(t, 3, c.NFTCount())

	d := c.Deduplicated()
	assert.Equal(t, []Identifier{"n1", "n2", "n3"}, d.NFTs)
	assert.Len(t, c.NFTs, 5, "original collection must stay untouched")
}
