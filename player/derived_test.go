package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDerived(t *testing.T) {
	tests := []struct {
		name           string
		experience     uint32
		level          uint32
		untilNextLevel uint32
	}{
		{"zero experience", 0, 0, 100},
		{"just below first level", 99, 0, 1},
		{"first level boundary", 100, 1, 200},
		{"second level boundary", 300, 2, 300},
		{"mid level", 1500, 5, 600},
		{"maximum experience", MaxExperience, 446, 12800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, untilNextLevel := ComputeDerived(tt.experience)
			assert.Equal(t, tt.level, level)
			assert.Equal(t, tt.untilNextLevel, untilNextLevel)
		})
	}
}

func TestComputeDerived_LevelBoundaries(t *testing.T) {
	for l := uint32(1); l <= 446; l++ {
		start := 50 * l * (l + 1)

		level, untilNextLevel := ComputeDerived(start)
		assert.Equal(t, l, level, "experience %d", start)
		assert.Equal(t, 100*(l+1), untilNextLevel, "experience %d", start)

		level, untilNextLevel = ComputeDerived(start - 1)
		assert.Equal(t, l-1, level, "experience %d", start-1)
		assert.Equal(t, uint32(1), untilNextLevel, "experience %d", start-1)
	}
}

func TestComputeDerived_Monotonic(t *testing.T) {
	prev, _ := ComputeDerived(0)
	for e := uint32(1); e <= 200_000; e += 7 {
		level, untilNextLevel := ComputeDerived(e)
		assert.GreaterOrEqual(t, level, prev)
		assert.Positive(t, untilNextLevel)
		prev = level
	}
}
