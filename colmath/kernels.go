package colmath

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Function variables are swapped by selectKernels.
var (
	scaleImpl     = scaleGeneric
	addImpl       = addGeneric
	mulImpl       = mulGeneric
	magnitudeImpl = magnitudeGeneric
	powerImpl     = powerGeneric
)

func selectKernels(isa ISA) {
	if isa == Generic {
		scaleImpl = scaleGeneric
		addImpl = addGeneric
		mulImpl = mulGeneric
		magnitudeImpl = magnitudeGeneric
		powerImpl = powerGeneric
		return
	}

	scaleImpl = scaleVec
	addImpl = addVec
	mulImpl = mulVec
	magnitudeImpl = magnitudeVec
	powerImpl = powerVec
}

func scaleVec(dst []float64, factor float64) {
	vecmath.ScaleBlock(dst, dst, factor)
}

func addVec(dst, src []float64) {
	vecmath.AddBlockInPlace(dst, src)
}

func mulVec(dst, src []float64) {
	vecmath.MulBlockInPlace(dst, src)
}

func magnitudeVec(out, re, im []float64) {
	vecmath.Magnitude(out, re, im)
}

func powerVec(out, re, im []float64) {
	vecmath.Power(out, re, im)
}

func scaleGeneric(dst []float64, factor float64) {
	for i := range dst {
		dst[i] *= factor
	}
}

func addGeneric(dst, src []float64) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] += src[i]
	}
}

func mulGeneric(dst, src []float64) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] *= src[i]
	}
}

func magnitudeGeneric(out, re, im []float64) {
	re, im = re[:len(out)], im[:len(out)]
	for i := range out {
		out[i] = math.Sqrt(re[i]*re[i] + im[i]*im[i])
	}
}

func powerGeneric(out, re, im []float64) {
	re, im = re[:len(out)], im[:len(out)]
	for i := range out {
		out[i] = re[i]*re[i] + im[i]*im[i]
	}
}

// sum adds v with four independent accumulators.
func sum(v []float64) float64 {
	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= len(v); i += 4 {
		s0 += v[i]
		s1 += v[i+1]
		s2 += v[i+2]
		s3 += v[i+3]
	}
	for ; i < len(v); i++ {
		s0 += v[i]
	}
	return (s0 + s1) + (s2 + s3)
}
