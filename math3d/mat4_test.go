package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranslate4(t *testing.T) {
	m := Translate4(V3(1, 2, 3))
	got := m.MulVec3(V3(10, 10, 10))
	require.Equal(t, V3(11, 12, 13), got)
}

func TestTranslate4IgnoresDirections(t *testing.T) {
	m := Translate4(V3(1, 2, 3))
	got := m.MulVec3Dir(V3(10, 10, 10))
	require.Equal(t, V3(10, 10, 10), got)
}

func TestScale4(t *testing.T) {
	m := Scale4(2)
	got := m.MulVec3(V3(1, -2, 3))
	require.Equal(t, V3(2, -4, 6), got)
}

func TestRotateX4QuarterTurn(t *testing.T) {
	m := RotateX4(0, 1) // +90 degrees
	got := m.MulVec3(V3(0, 1, 0))
	require.InDelta(t, 0, got.X, 1e-12)
	require.InDelta(t, 0, got.Y, 1e-12)
	require.InDelta(t, 1, got.Z, 1e-12)
}

func TestRotateY4QuarterTurn(t *testing.T) {
	m := RotateY4(0, 1) // +90 degrees
	got := m.MulVec3(V3(1, 0, 0))
	require.InDelta(t, 0, got.X, 1e-12)
	require.InDelta(t, 0, got.Y, 1e-12)
	require.InDelta(t, -1, got.Z, 1e-12)
}

func TestRotateZ4QuarterTurn(t *testing.T) {
	m := RotateZ4(0, 1) // +90 degrees
	got := m.MulVec3(V3(1, 0, 0))
	require.InDelta(t, 0, got.X, 1e-12)
	require.InDelta(t, 1, got.Y, 1e-12)
	require.InDelta(t, 0, got.Z, 1e-12)
}

func TestMat4MulComposesTransforms(t *testing.T) {
	m := Translate4(V3(5, 0, 0)).Mul(Scale4(2))
	got := m.MulVec3(V3(1, 1, 1))
	// Scale applies first (rightmost), then translate.
	require.Equal(t, V3(7, 2, 2), got)
}

func TestMat4Identity(t *testing.T) {
	m := Identity4()
	v := V3(3.5, -2.25, 100)
	got := m.MulVec3(v)
	require.Equal(t, v, got)
}

func TestRotateFullCircleIsIdentity(t *testing.T) {
	cos, sin := math.Cos(2*math.Pi), math.Sin(2*math.Pi)
	m := RotateZ4(cos, sin)
	got := m.MulVec3(V3(3, 4, 5))
	require.InDelta(t, 3, got.X, 1e-9)
	require.InDelta(t, 4, got.Y, 1e-9)
	require.InDelta(t, 5, got.Z, 1e-9)
}
