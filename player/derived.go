package player

import "math"

const (
	MinExperience = 0
	MaxExperience = 10_000_000
)

// ComputeDerived returns the level reached with the given experience and the
// experience still missing before the next level.
//
// Level L starts at 50*L*(L+1) experience, so level is the largest L with
// 50*L*(L+1) <= experience.
func ComputeDerived(experience uint32) (level uint32, untilNextLevel uint32) {
	e := uint64(experience)
	l := uint64((math.Sqrt(float64(2500+200*e)) - 50) / 100)

	// 2500+200*e is a perfect square exactly at level boundaries, where the
	// float result is exact. Correct for any rounding elsewhere.
	for l > 0 && levelStart(l) > e {
		l--
	}
	for levelStart(l+1) <= e {
		l++
	}
	return uint32(l), uint32(levelStart(l+1) - e)
}

// levelStart returns the experience at which the given level begins.
func levelStart(level uint64) uint64 {
	return 50 * level * (level + 1)
}
