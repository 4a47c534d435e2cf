package model

import "gonum.org/v1/gonum/mat"

// DistanceTable holds the pairwise station distances in kilometers. It is
// indexed by station id, which the dataset keeps dense and zero-based.
type DistanceTable struct {
	dist *mat.SymDense
}

func NewDistanceTable(n int) *DistanceTable {
	return &DistanceTable{
		dist: mat.NewSymDense(n, nil),
	}
}

func (t *DistanceTable) Len() int {
	return t.dist.SymmetricDim()
}

func (t *DistanceTable) At(i, j int) float64 {
	return t.dist.At(i, j)
}

func (t *DistanceTable) SetSym(i, j int, d float64) {
	t.dist.SetSym(i, j, d)
}

// Row copies row i into dst, allocating when dst is nil.
func (t *DistanceTable) Row(dst []float64, i int) []float64 {
	return mat.Row(dst, i, t.dist)
}
