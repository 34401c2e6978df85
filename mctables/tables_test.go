package mctables_test

import (
	"testing"

	"github.com/katalvlaran/smcoctree/mctables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriTableTerminatesAndStaysInRange(t *testing.T) {
	for cfg := 0; cfg < 256; cfg++ {
		row := mctables.TriTable[cfg]
		sawTerminator := false
		for i, e := range row {
			if e == -1 {
				sawTerminator = true
				continue
			}
			require.False(t, sawTerminator, "cfg %d: non-terminator %d after -1 at index %d", cfg, e, i)
			require.GreaterOrEqual(t, e, 0)
			require.Less(t, e, 12)
		}
		assert.True(t, sawTerminator, "cfg %d row never terminates", cfg)
	}
}

func TestTriTableEmptyCasesAreTrivial(t *testing.T) {
	assert.Equal(t, -1, mctables.TriTable[0][0])
	assert.Equal(t, -1, mctables.TriTable[255][0])
}

func TestRemapCfgToMCMovesEachBitToItsPermutedCorner(t *testing.T) {
	// CsToMcCorner is a permutation of 0..7, so remapping a singleton bit
	// must produce a singleton bit at the permuted position.
	for i := 0; i < 8; i++ {
		got := mctables.RemapCfgToMC(1 << uint(i))
		want := uint8(1) << uint(mctables.CsToMcCorner[i])
		assert.Equal(t, want, got)
	}
}

func TestNormalTypeSimpleFlagMatchesSentinel(t *testing.T) {
	for cfg := 0; cfg < 256; cfg++ {
		id, simple := mctables.NormalType(uint8(cfg))
		assert.Equal(t, id != mctables.NormalNotSimple, simple)
	}
}

func TestDIsUndefinedForNotSimpleEqType(t *testing.T) {
	found := false
	for cfg := 0; cfg < 256; cfg++ {
		if mctables.ConfigToEqType[cfg] >= mctables.EqNotSimple {
			found = true
			_, ok := mctables.D(0, 0, 0, uint8(cfg))
			assert.False(t, ok)
		}
	}
	require.True(t, found, "expected at least one NotSimple equation type among 256 configs")
}

func TestDIsLinearInCellOrigin(t *testing.T) {
	// Find a simple cfg and check d is affine in (cx,cy,cz) as specified.
	var cfg uint8
	for c := 0; c < 256; c++ {
		if mctables.ConfigToEqType[c] < mctables.EqNotSimple {
			cfg = uint8(c)
			break
		}
	}
	d0, ok := mctables.D(0, 0, 0, cfg)
	require.True(t, ok)
	d1, ok := mctables.D(1, 0, 0, cfg)
	require.True(t, ok)
	q := mctables.EqTypeToEqQuad[mctables.ConfigToEqType[cfg]]
	assert.Equal(t, q.A, d1-d0)
}
