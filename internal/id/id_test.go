package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 1000 {
		got := New()
		assert.NotEmpty(t, got)
		assert.False(t, seen[got], "duplicate id %s", got)
		seen[got] = true
	}
}
