package matrix_test

import (
	"testing"

	"github.com/giraldeau/vroom/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(4)
	require.NoError(t, err)
	require.Equal(t, 4, m.Rows())
	require.Equal(t, 4, m.Cols())
}

func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.Set(2, 0, 1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.Set(0, -1, 4)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 42))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestCloneIsIndependent(t *testing.T) {
	m, err := matrix.NewDense(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 7))

	clone := m.Clone()
	require.NoError(t, m.Set(0, 1, 99))

	v, err := clone.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 7, v, "clone must not observe mutations to the original")
}

func TestZeroDiagonal(t *testing.T) {
	m, err := matrix.NewDense(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, m.Set(i, i, 5))
	}
	m.ZeroDiagonal()
	for i := 0; i < 3; i++ {
		v, err := m.At(i, i)
		require.NoError(t, err)
		require.Zero(t, v)
	}
}

func TestValidateSymmetric(t *testing.T) {
	m, err := matrix.NewDense(3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 10))
	require.NoError(t, m.Set(1, 0, 10))
	require.NoError(t, m.ValidateSymmetric())

	require.NoError(t, m.Set(1, 0, 11))
	require.ErrorIs(t, m.ValidateSymmetric(), matrix.ErrAsymmetry)
}

func TestValidateSymmetricNonZeroDiagonal(t *testing.T) {
	m, err := matrix.NewDense(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))
	require.ErrorIs(t, m.ValidateSymmetric(), matrix.ErrNonZeroDiagonal)
}
