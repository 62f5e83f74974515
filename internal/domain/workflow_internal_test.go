package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/luarename/internal/model"
)

func TestShardSources(t *testing.T) {
	sources := []m.Source{sourceAt("a"), sourceAt("b"), sourceAt("c"), sourceAt("d"), sourceAt("e")}

	assert.Equal(t, sources, shardSources(sources, 0, 1))
	assert.Equal(t, []m.Source{sources[0], sources[2], sources[4]}, shardSources(sources, 0, 2))
	assert.Equal(t, []m.Source{sources[1], sources[3]}, shardSources(sources, 1, 2))
	assert.Empty(t, shardSources(sources, 5, 6))
}
