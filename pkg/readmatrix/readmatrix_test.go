package readmatrix

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestReadWithHeaderAndComments(t *testing.T) {
	in := `A B C
# transition probabilities
0.7 0.2 0.1

0.3	0.5	0.2
0.2 0.3 0.5
`
	m, err := Read(strings.NewReader(in))
	require.NoError(t, err)

	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 0.5, m.At(1, 1))
	assert.NoError(t, ValidateStochastic(m))
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("1 2\n3\n"))
	assert.ErrorContains(t, err, "inconsistent")

	_, err = Read(strings.NewReader("1 2\n3 x\n"))
	assert.ErrorContains(t, err, "line 2, column 2")

	_, err = Read(strings.NewReader("# nothing\n"))
	assert.Error(t, err)
}

func TestReadMatrixFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt")
	require.NoError(t, os.WriteFile(path, []byte("0.5 0.5\n1 0\n"), 0o644))

	m, err := ReadMatrix(path)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.At(1, 0))

	_, err = ReadMatrix(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestValidateStochasticCollectsRows(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		0.5, 0.5, 0,
		0.9, 0.2, -0.1,
		0.2, 0.2, 0.2,
	})
	err := ValidateStochastic(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2 has negative entries")
	assert.Contains(t, err.Error(), "row 3 sums to")

	assert.Error(t, ValidateStochastic(mat.NewDense(2, 3, nil)))
}
