// SPDX-License-Identifier: MIT
package transform

import (
	"testing"

	"github.com/katalvlaran/eigenplay/matrix"
	"github.com/stretchr/testify/require"
)

// TestRecomputeFromEigenData_DependentPairIsRefused fills the selection
// directly, since SelectBasisVector never admits a dependent pair.
func TestRecomputeFromEigenData_DependentPairIsRefused(t *testing.T) {
	m, err := New()
	require.NoError(t, err)
	require.NoError(t, m.SetBasisComponent(0, 100, 0))
	before := m.A()
	dec := m.Decomposition()

	m.selection.add(0)
	m.selection.add(8)
	err = m.RecomputeFromEigenData()
	require.ErrorIs(t, err, ErrSingularBasis)
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.True(t, m.Unstable())
	require.Equal(t, before, m.A())
	require.Equal(t, dec, m.Decomposition())

	m.Reset()
	require.False(t, m.Unstable())
}
