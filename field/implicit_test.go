package field_test

import (
	"testing"

	"github.com/katalvlaran/smcoctree/field"
	"github.com/katalvlaran/smcoctree/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sphereField(p vec.Point) float64 {
	return p.Norm() // distance from origin
}

func TestImplicitOracleInside(t *testing.T) {
	o := field.NewImplicitOracle(sphereField, 1.0)

	assert.True(t, o.Inside(vec.New(0, 0, 0)))
	assert.True(t, o.Inside(vec.New(0.5, 0, 0)))
	assert.False(t, o.Inside(vec.New(2, 0, 0)))
}

func TestImplicitOracleValue(t *testing.T) {
	o := field.NewImplicitOracle(sphereField, 1.0)

	v, ok := o.Value(vec.New(3, 4, 0))
	require.True(t, ok)
	assert.InDelta(t, 5.0, v, 1e-9)
}

func TestImplicitOracleGradientPointsOutward(t *testing.T) {
	o := field.NewImplicitOracle(sphereField, 1.0)

	g, ok := o.Gradient(vec.New(1, 0, 0))
	require.True(t, ok)
	assert.Greater(t, g.X, 0.0)
	assert.InDelta(t, 0.0, g.Y, 1e-4)
	assert.InDelta(t, 0.0, g.Z, 1e-4)
}
