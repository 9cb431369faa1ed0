package soa

import "unsafe"

// column is the type-erased storage of one field. Every operation a Table
// performs is fanned out as one call per column.
//
// Columns never reallocate on their own: the table reserves capacity on all
// columns before any call that appends, so appends below stay within cap and
// all columns keep identical capacity.
type column[R any] interface {
	len() int
	cap() int
	realloc(capacity int)

	push(row *R)
	pushFrom(src column[R], i int)
	appendRange(src column[R], lo, hi int)
	insert(i int, row *R)
	remove(i int, row *R)
	swapRemove(i int, row *R)
	replace(i int, row *R)
	load(i int, row *R)
	store(i int, row *R)
	swap(i, j int)
	move(dst, src int)
	truncate(n int)
	ptr() unsafe.Pointer
}

type fieldColumn[R, T any] struct {
	field *Field[R, T]
	data  []T
}

func (c *fieldColumn[R, T]) len() int { return len(c.data) }

func (c *fieldColumn[R, T]) cap() int { return cap(c.data) }

func (c *fieldColumn[R, T]) realloc(capacity int) {
	if capacity == 0 {
		c.data = nil
		return
	}
	data := c.field.alloc(capacity)[:len(c.data)]
	copy(data, c.data)
	c.data = data
}

func (c *fieldColumn[R, T]) push(row *R) {
	c.data = append(c.data, *c.field.access(row))
}

func (c *fieldColumn[R, T]) pushFrom(src column[R], i int) {
	c.data = append(c.data, src.(*fieldColumn[R, T]).data[i])
}

func (c *fieldColumn[R, T]) appendRange(src column[R], lo, hi int) {
	c.data = append(c.data, src.(*fieldColumn[R, T]).data[lo:hi]...)
}

func (c *fieldColumn[R, T]) insert(i int, row *R) {
	var zero T
	c.data = append(c.data, zero)
	copy(c.data[i+1:], c.data[i:])
	c.data[i] = *c.field.access(row)
}

func (c *fieldColumn[R, T]) remove(i int, row *R) {
	*c.field.access(row) = c.data[i]
	n := len(c.data) - 1
	copy(c.data[i:], c.data[i+1:])
	clear(c.data[n:])
	c.data = c.data[:n]
}

func (c *fieldColumn[R, T]) swapRemove(i int, row *R) {
	*c.field.access(row) = c.data[i]
	n := len(c.data) - 1
	c.data[i] = c.data[n]
	clear(c.data[n:])
	c.data = c.data[:n]
}

func (c *fieldColumn[R, T]) replace(i int, row *R) {
	p := c.field.access(row)
	c.data[i], *p = *p, c.data[i]
}

func (c *fieldColumn[R, T]) load(i int, row *R) {
	*c.field.access(row) = c.data[i]
}

func (c *fieldColumn[R, T]) store(i int, row *R) {
	c.data[i] = *c.field.access(row)
}

func (c *fieldColumn[R, T]) swap(i, j int) {
	c.data[i], c.data[j] = c.data[j], c.data[i]
}

func (c *fieldColumn[R, T]) move(dst, src int) {
	c.data[dst] = c.data[src]
}

func (c *fieldColumn[R, T]) truncate(n int) {
	clear(c.data[n:])
	c.data = c.data[:n]
}

// danglingBase backs the pointer handed out for columns without storage.
// It is never dereferenced: the accompanying length is zero.
var danglingBase struct{}

func (c *fieldColumn[R, T]) ptr() unsafe.Pointer {
	if p := unsafe.SliceData(c.data); p != nil {
		return unsafe.Pointer(p)
	}
	return unsafe.Pointer(&danglingBase)
}
