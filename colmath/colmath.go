package colmath

import "github.com/hupe1980/soa"

// Scale multiplies every value of f in s by factor.
func Scale[R any](s soa.SlicesMut[R], f *soa.Field[R, float64], factor float64) {
	if s.IsEmpty() {
		return
	}
	scaleImpl(f.ColumnMut(s), factor)
}

// Add adds the values of src to dst, row by row. dst and src may be the same
// field.
func Add[R any](s soa.SlicesMut[R], dst, src *soa.Field[R, float64]) {
	if s.IsEmpty() {
		return
	}
	addImpl(dst.ColumnMut(s), src.Column(s.Slices))
}

// Mul multiplies the values of dst by those of src, row by row.
func Mul[R any](s soa.SlicesMut[R], dst, src *soa.Field[R, float64]) {
	if s.IsEmpty() {
		return
	}
	mulImpl(dst.ColumnMut(s), src.Column(s.Slices))
}

// Magnitude stores sqrt(re² + im²) of every row into out.
func Magnitude[R any](s soa.SlicesMut[R], out, re, im *soa.Field[R, float64]) {
	if s.IsEmpty() {
		return
	}
	magnitudeImpl(out.ColumnMut(s), re.Column(s.Slices), im.Column(s.Slices))
}

// Power stores re² + im² of every row into out.
func Power[R any](s soa.SlicesMut[R], out, re, im *soa.Field[R, float64]) {
	if s.IsEmpty() {
		return
	}
	powerImpl(out.ColumnMut(s), re.Column(s.Slices), im.Column(s.Slices))
}

// Sum returns the sum of the values of f in s.
func Sum[R any](s soa.Slices[R], f *soa.Field[R, float64]) float64 {
	return sum(f.Column(s))
}

// Mean returns the arithmetic mean of the values of f in s, or false if s is
// empty.
func Mean[R any](s soa.Slices[R], f *soa.Field[R, float64]) (float64, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	return sum(f.Column(s)) / float64(s.Len()), true
}
