package soa

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsPtr(t *testing.T) {
	tb := tableOf(0, 1, 2)
	p := tb.AsPtr(AcknowledgeUnsafe)

	require.Equal(t, 3, p.Len())
	assert.Equal(t, unsafe.Pointer(&timestamp.Column(tb.AsSlice())[0]), timestamp.Raw(p))
	assert.Equal(t, p.At(timestamp.Position()), timestamp.Raw(p))
	assert.Equal(t, []uint64{0, 1, 2}, timestamp.RawSlice(p))
	assert.Equal(t, []float64{0.5, 1.5, 2.5}, temperature.RawSlice(p))
}

func TestAsMutPtr(t *testing.T) {
	tb := tableOf(0, 1, 2)
	p := tb.AsMutPtr(AcknowledgeUnsafe)

	pressures := pressure.RawSliceMut(p)
	for i := range pressures {
		pressures[i] = 0
	}
	assert.Equal(t, []float64{0, 0, 0}, pressure.Column(tb.AsSlice()))
}

func TestAsPtrEmpty(t *testing.T) {
	tb := New(readingSchema)
	p := tb.AsPtr(AcknowledgeUnsafe)

	assert.Equal(t, 0, p.Len())
	for i := range readingSchema.NumFields() {
		assert.NotNil(t, p.At(i), "column %d", i)
	}
	assert.Nil(t, timestamp.RawSlice(p))
}

func TestAsPtrRequiresAcknowledgment(t *testing.T) {
	tb := tableOf(0)
	assert.Equal(t, ErrUnsafeNotAcknowledged, panicValue(func() { tb.AsPtr(UnsafeAccess{}) }))
	assert.Equal(t, ErrUnsafeNotAcknowledged, panicValue(func() { tb.AsMutPtr(UnsafeAccess{}) }))
}

func TestRawForeignSchema(t *testing.T) {
	other := NewField("timestamp", func(r *reading) *uint64 { return &r.Timestamp })
	_ = NewSchema[reading](other)

	p := tableOf(0).AsPtr(AcknowledgeUnsafe)
	requirePanicAs[*SchemaError](t, func() { other.Raw(p) })
}
