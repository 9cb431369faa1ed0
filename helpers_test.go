package soa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/soa/testutil"
)

type reading = testutil.Reading

var (
	temperature = NewAlignedField("temperature", func(r *reading) *float64 { return &r.Temperature })
	pressure    = NewAlignedField("pressure", func(r *reading) *float64 { return &r.Pressure })
	timestamp   = NewField("timestamp", func(r *reading) *uint64 { return &r.Timestamp })

	readingSchema = NewSchema[reading](temperature, pressure, timestamp)
)

// row builds a reading whose members are all derived from ts, so a row's
// identity can be checked from any one column.
func row(ts uint64) reading {
	return reading{Temperature: float64(ts) + 0.5, Pressure: 1000 + float64(ts), Timestamp: ts}
}

func tableOf(stamps ...uint64) *Table[reading] {
	tb := New(readingSchema)
	for _, ts := range stamps {
		tb.Push(row(ts))
	}
	return tb
}

func stampsOf(tb *Table[reading]) []uint64 {
	return append([]uint64{}, timestamp.Column(tb.AsSlice())...)
}

// requireLockstep asserts that every column has the table's length and
// capacity and that each row is internally consistent.
func requireLockstep(t *testing.T, tb *Table[reading]) {
	t.Helper()
	n, c := tb.Len(), tb.Cap()
	for k, col := range tb.cols {
		require.Equal(t, n, col.len(), "column %d length", k)
		require.Equal(t, c, col.cap(), "column %d capacity", k)
	}
	for i, r := range tb.Rows() {
		require.Equal(t, row(r.Timestamp), r, "row %d is torn", i)
	}
}

func panicValue(f func()) (v any) {
	defer func() { v = recover() }()
	f()
	return nil
}

// requirePanicAs runs f, requires it to panic with an error matching E and
// returns that error.
func requirePanicAs[E error](t *testing.T, f func()) E {
	t.Helper()
	v := panicValue(f)
	require.NotNil(t, v, "expected a panic")
	err, ok := v.(error)
	require.True(t, ok, "panic value %v is not an error", v)
	var target E
	require.ErrorAs(t, err, &target)
	return target
}
