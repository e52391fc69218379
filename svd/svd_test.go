// SPDX-License-Identifier: MIT
package svd_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/eigenplay/matrix"
	"github.com/katalvlaran/eigenplay/svd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func providers(t *testing.T) map[string]svd.Provider {
	t.Helper()
	out := make(map[string]svd.Provider)
	for _, name := range svd.Backends() {
		p, err := svd.ByName(name)
		require.NoError(t, err)
		out[name] = p
	}

	return out
}

func TestByName(t *testing.T) {
	require.Equal(t, []string{svd.BackendClosed, svd.BackendGoMatrix}, svd.Backends())

	p, err := svd.ByName(svd.BackendClosed)
	require.NoError(t, err)
	require.IsType(t, svd.Closed{}, p)

	_, err = svd.ByName("lapack")
	require.ErrorIs(t, err, svd.ErrUnknownBackend)
}

func TestDecompose_Conventions(t *testing.T) {
	inputs := []matrix.Mat2{
		matrix.Identity(),
		matrix.Diag(2, 3),
		matrix.Diag(-1, 4),
		{{1, 1}, {0, 1}},
		{{0.5, -2}, {1.25, 0.75}},
		{{-3, 1}, {2, 2}},
		// rank-deficient: det(A) = 0 keeps Det = +1
		{{0, 0}, {0, 0}},
		{{1, 0}, {0, 0}},
		{{0, 0}, {0, 1}},
		{{1, 2}, {2, 4}},
		{{0, 1}, {0, 0}},
		{{-1, 0}, {0, 0}},
	}
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			for _, a := range inputs {
				d, err := p.Decompose(a)
				require.NoError(t, err)

				assert.True(t, matrix.AllClose(matrix.Identity(), d.U.Transpose().Mul(d.U), tol), "U not orthonormal for %v", a)
				assert.True(t, matrix.AllClose(matrix.Identity(), d.V.Transpose().Mul(d.V), tol), "V not orthonormal for %v", a)
				assert.GreaterOrEqual(t, d.S[0], d.S[1])
				assert.GreaterOrEqual(t, d.S[1], 0.0)
				assert.InDelta(t, 1, d.V.Det(), tol)
				assert.InDelta(t, d.Det, d.U.Det(), tol)
				assert.Equal(t, a.Det() < 0, d.Det < 0, "orientation of %v", a)
				assert.True(t, matrix.AllClose(a, d.Reconstruct(), tol), "round trip of %v gave %v", a, d.Reconstruct())
			}
		})
	}
}

func TestDecompose_BackendsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	closed := svd.Closed{}
	general := svd.GoMatrix{}
	var k int
	for k = 0; k < 200; k++ {
		a := matrix.Mat2{
			{rng.NormFloat64(), rng.NormFloat64()},
			{rng.NormFloat64(), rng.NormFloat64()},
		}
		dc, err := closed.Decompose(a)
		require.NoError(t, err)
		dg, err := general.Decompose(a)
		require.NoError(t, err)

		require.InDelta(t, dc.S[0], dg.S[0], tol)
		require.InDelta(t, dc.S[1], dg.S[1], tol)
		require.Equal(t, dc.Det, dg.Det)

		// Singular vectors agree up to a simultaneous sign flip of U and V.
		same := matrix.AllClose(dc.U, dg.U, 1e-6) && matrix.AllClose(dc.V, dg.V, 1e-6)
		flipped := matrix.AllClose(dc.U, dg.U.Scale(-1), 1e-6) && matrix.AllClose(dc.V, dg.V.Scale(-1), 1e-6)
		require.True(t, same || flipped, "U/V disagree for %v", a)
	}
}

func TestDecompose_RankDeficientOrientation(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			for _, a := range []matrix.Mat2{{{1, 0}, {0, 0}}, {{0, 0}, {0, 1}}, {{0, 1}, {0, 0}}} {
				d, err := p.Decompose(a)
				require.NoError(t, err)
				require.Equal(t, 1.0, d.Det, "Det of %v", a)
				require.InDelta(t, 1, d.U.Det(), tol, "det U of %v", a)
				require.InDelta(t, 0, d.S[1], tol)
			}
		})
	}
}

func TestDecompose_RejectsNonFinite(t *testing.T) {
	bad := matrix.Mat2{{1, math.Inf(1)}, {0, 1}}
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			_, err := p.Decompose(bad)
			require.ErrorIs(t, err, matrix.ErrNaNInf)
		})
	}
}

func TestDecomposition_Axis(t *testing.T) {
	d, err := svd.Closed{}.Decompose(matrix.Diag(2, 3))
	require.NoError(t, err)

	major, err := d.Axis(0)
	require.NoError(t, err)
	require.InDelta(t, 3, major.Len(), tol)

	minor, err := d.Axis(1)
	require.NoError(t, err)
	require.InDelta(t, 2, minor.Len(), tol)

	_, err = d.Axis(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestIdentityDecomposition(t *testing.T) {
	d, err := svd.Closed{}.Decompose(matrix.Identity())
	require.NoError(t, err)
	require.Equal(t, svd.Identity(), d)
}
