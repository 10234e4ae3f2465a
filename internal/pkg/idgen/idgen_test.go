package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/storynest/storynest-api/internal/pkg/idgen"
)

func TestPrefixedGenerator_UniqueBackToBack(t *testing.T) {
	g := idgen.NewPrefixed("oneoff")

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := g.Generate()
		assert.True(t, strings.HasPrefix(id, "oneoff_"))
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestSequentialGenerator(t *testing.T) {
	g := idgen.NewSequential("test")

	assert.Equal(t, "test_1", g.Generate())
	assert.Equal(t, "test_2", g.Generate())

	unprefixed := idgen.NewSequential("")
	assert.Equal(t, "1", unprefixed.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	g := idgen.NewUUID("story")

	first := g.Generate()
	second := g.Generate()

	assert.True(t, strings.HasPrefix(first, "story_"))
	assert.NotEqual(t, first, second)
}
