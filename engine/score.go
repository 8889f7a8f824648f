package engine

// Score constants, grounded on the teacher's mate-scoring idiom
// (pkg/engine/utils.go's winIn/lossIn/valueToTT/valueFromTT) but using
// spec's exact mate value rather than the teacher's.
const (
	ValueMate      = 32000
	ValueInfinity  = ValueMate + 1
	ValueDraw      = 0
	maxPly         = 128
	mateThreshold  = ValueMate - maxPly
)

// IsMateScore reports whether v represents a forced mate (for or against)
// within the searched horizon.
func IsMateScore(v int) bool {
	return v >= mateThreshold || v <= -mateThreshold
}

// matedIn returns the score for being mated at the given search height.
func matedIn(ply int) int {
	return -ValueMate + ply
}

// valueToTT/valueFromTT re-express a mate score relative to the root
// instead of the current search height, and back again, so that a mate
// score stored from a shallower height is still correct when probed from
// a deeper one (and vice versa). Per spec, adjusting mate scores in the TT
// is optional but must be done consistently on store and probe if done at
// all; this implementation does both.
func valueToTT(v, height int) int {
	if v >= mateThreshold {
		return v + height
	}
	if v <= -mateThreshold {
		return v - height
	}
	return v
}

func valueFromTT(v, height int) int {
	if v >= mateThreshold {
		return v - height
	}
	if v <= -mateThreshold {
		return v + height
	}
	return v
}
