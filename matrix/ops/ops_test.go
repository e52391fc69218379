// SPDX-License-Identifier: MIT
package ops_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/eigenplay/matrix"
	"github.com/katalvlaran/eigenplay/matrix/ops"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// requireOrthonormal asserts QᵀQ = I within tol.
func requireOrthonormal(t *testing.T, q matrix.Mat2) {
	t.Helper()
	require.True(t, matrix.AllClose(matrix.Identity(), q.Transpose().Mul(q), tol), "QᵀQ != I: %v", q)
}

func TestSVD_KnownMatrices(t *testing.T) {
	tests := []struct {
		name string
		a    matrix.Mat2
		s    [2]float64
		detU float64
	}{
		{"identity", matrix.Identity(), [2]float64{1, 1}, 1},
		{"diag", matrix.Diag(2, 3), [2]float64{3, 2}, 1},
		{"reflection", matrix.Diag(1, -1), [2]float64{1, 1}, -1},
		{"shear", matrix.Mat2{{1, 1}, {0, 1}}, [2]float64{(1 + math.Sqrt(5)) / 2, (math.Sqrt(5) - 1) / 2}, 1},
		{"rank1", matrix.Mat2{{1, 1}, {1, 1}}, [2]float64{2, 0}, 1},
		{"zero", matrix.Mat2{}, [2]float64{0, 0}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, s, v, err := ops.SVD(tc.a)
			require.NoError(t, err)
			require.InDelta(t, tc.s[0], s[0], tol)
			require.InDelta(t, tc.s[1], s[1], tol)
			requireOrthonormal(t, u)
			requireOrthonormal(t, v)
			require.InDelta(t, tc.detU, u.Det(), tol)

			back := u.Mul(matrix.Diag(s[0], s[1])).Mul(v.Transpose())
			require.True(t, matrix.AllClose(tc.a, back, tol), "U·S·Vᵀ = %v, want %v", back, tc.a)
		})
	}
}

func TestSVD_RandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var k int
	for k = 0; k < 500; k++ {
		a := matrix.Mat2{
			{rng.Float64()*20 - 10, rng.Float64()*20 - 10},
			{rng.Float64()*20 - 10, rng.Float64()*20 - 10},
		}
		u, s, v, err := ops.SVD(a)
		require.NoError(t, err)
		require.GreaterOrEqual(t, s[0], s[1])
		require.GreaterOrEqual(t, s[1], 0.0)
		requireOrthonormal(t, u)
		requireOrthonormal(t, v)
		require.InDelta(t, 1, v.Det(), tol, "V must be a proper rotation")
		require.Equal(t, math.Signbit(a.Det()), math.Signbit(u.Det()), "det(U) tracks orientation of A")

		back := u.Mul(matrix.Diag(s[0], s[1])).Mul(v.Transpose())
		require.True(t, matrix.AllClose(a, back, 1e-9*(1+a.FrobeniusNorm())))
		require.InDelta(t, math.Abs(a.Det()), s[0]*s[1], 1e-9*(1+a.FrobeniusNorm()*a.FrobeniusNorm()))
	}
}

func TestSVD_StableUnderSmallPerturbation(t *testing.T) {
	a := matrix.Mat2{{1.2, 0.4}, {-0.3, 0.9}}
	u0, _, v0, err := ops.SVD(a)
	require.NoError(t, err)

	b := a
	b[0][1] += 1e-7
	u1, _, v1, err := ops.SVD(b)
	require.NoError(t, err)

	require.True(t, matrix.AllClose(u0, u1, 1e-5), "U jumped: %v -> %v", u0, u1)
	require.True(t, matrix.AllClose(v0, v1, 1e-5), "V jumped: %v -> %v", v0, v1)
}

func TestSVD_Deterministic(t *testing.T) {
	a := matrix.Mat2{{0.3, -2}, {1.5, 0.7}}
	u0, s0, v0, _ := ops.SVD(a)
	u1, s1, v1, _ := ops.SVD(a)
	require.Equal(t, u0, u1)
	require.Equal(t, s0, s1)
	require.Equal(t, v0, v1)
}

func TestSVD_RejectsNaN(t *testing.T) {
	_, _, _, err := ops.SVD(matrix.Mat2{{math.NaN(), 0}, {0, 1}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestEigen_Diagonal(t *testing.T) {
	vals, vecs, err := ops.Eigen(matrix.Diag(2, 3), tol)
	require.NoError(t, err)
	require.Equal(t, [2]float64{3, 2}, vals)
	requireEigenPairs(t, matrix.Diag(2, 3), vals, vecs)
}

func TestEigen_General(t *testing.T) {
	a := matrix.Mat2{{4, 1}, {2, 3}} // eigenvalues 5 and 2
	vals, vecs, err := ops.Eigen(a, tol)
	require.NoError(t, err)
	require.InDelta(t, 5, vals[0], tol)
	require.InDelta(t, 2, vals[1], tol)
	requireEigenPairs(t, a, vals, vecs)
}

func TestEigen_Scalar(t *testing.T) {
	vals, vecs, err := ops.Eigen(matrix.Diag(2, 2), tol)
	require.NoError(t, err)
	require.Equal(t, [2]float64{2, 2}, vals)
	require.Equal(t, matrix.Vec2{X: 1}, vecs[0])
	require.Equal(t, matrix.Vec2{Y: 1}, vecs[1])
}

func TestEigen_Rotation_IsComplex(t *testing.T) {
	_, _, err := ops.Eigen(matrix.Rotation(math.Pi/3), tol)
	require.ErrorIs(t, err, matrix.ErrComplexEigen)
}

func TestEigen_BadTolerance(t *testing.T) {
	_, _, err := ops.Eigen(matrix.Identity(), -1)
	require.ErrorIs(t, err, matrix.ErrBadTolerance)
}

// requireEigenPairs asserts A·v = λ·v and |v| = 1 for both pairs.
func requireEigenPairs(t *testing.T, a matrix.Mat2, vals [2]float64, vecs [2]matrix.Vec2) {
	t.Helper()
	var k int
	for k = 0; k < 2; k++ {
		require.InDelta(t, 1, vecs[k].Len(), tol)
		av := a.MulVec(vecs[k])
		lv := vecs[k].Scale(vals[k])
		require.InDelta(t, lv.X, av.X, tol)
		require.InDelta(t, lv.Y, av.Y, tol)
	}
}

func TestFromEigenPairs_StandardBasis(t *testing.T) {
	a, err := ops.FromEigenPairs(matrix.Vec2{X: 1}, matrix.Vec2{Y: 1}, 2, 3, tol)
	require.NoError(t, err)
	require.Equal(t, matrix.Diag(2, 3), a)
}

func TestFromEigenPairs_ScaledBasis(t *testing.T) {
	a, err := ops.FromEigenPairs(matrix.Vec2{X: 50}, matrix.Vec2{Y: 50}, -1.5, 0.25, tol)
	require.NoError(t, err)
	require.Equal(t, matrix.Diag(-1.5, 0.25), a)
}

func TestFromEigenPairs_SkewBasis(t *testing.T) {
	u := matrix.Vec2{X: 1, Y: 1}
	v := matrix.Vec2{X: 1, Y: -2}
	a, err := ops.FromEigenPairs(u, v, 4, -0.5, tol)
	require.NoError(t, err)

	au := a.MulVec(u)
	av := a.MulVec(v)
	require.InDelta(t, 4*u.X, au.X, tol)
	require.InDelta(t, 4*u.Y, au.Y, tol)
	require.InDelta(t, -0.5*v.X, av.X, tol)
	require.InDelta(t, -0.5*v.Y, av.Y, tol)
}

func TestFromEigenPairs_Singular(t *testing.T) {
	tests := []struct {
		name string
		u, v matrix.Vec2
	}{
		{"equal", matrix.Vec2{X: 50}, matrix.Vec2{X: 50}},
		{"antiparallel", matrix.Vec2{X: 3, Y: 4}, matrix.Vec2{X: -6, Y: -8}},
		{"zero", matrix.Vec2{}, matrix.Vec2{Y: 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ops.FromEigenPairs(tc.u, tc.v, 2, 3, tol)
			require.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

func TestFromEigenPairs_Overflow(t *testing.T) {
	_, err := ops.FromEigenPairs(matrix.Vec2{X: 1}, matrix.Vec2{X: 1, Y: 1e-300}, 1e300, 1, 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
