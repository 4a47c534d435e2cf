package utils

import "gonum.org/v1/gonum/mat"

func SAddVec(a, b *mat.VecDense) {
	a.AddVec(a, b)
}

func ScaleVec(s float64, a *mat.VecDense) *mat.VecDense {
	ret := mat.NewVecDense(a.Len(), nil)
	ret.ScaleVec(s, a)

	return ret
}

func SqDist(a, b *mat.VecDense) float64 {
	if a.Len() != b.Len() {
		panic("Two vectors should have the same length.")
	}

	var ret float64
	for i := 0; i < a.Len(); i++ {
		d := a.AtVec(i) - b.AtVec(i)
		ret += d * d
	}

	return ret
}
