package iterators

import "github.com/adamluzsi/sequences"

// NewStub wraps an iterator so individual methods can be overridden in tests,
// for example to inject a Close failure into an otherwise well behaving iterator.
func NewStub[T any](i sequences.Iterator[T]) *Stub[T] {
	return &Stub[T]{
		Iterator:  i,
		StubValue: i.Value,
		StubClose: i.Close,
		StubNext:  i.Next,
		StubErr:   i.Err,
	}
}

type Stub[T any] struct {
	Iterator  sequences.Iterator[T]
	StubValue func() T
	StubClose func() error
	StubNext  func() bool
	StubErr   func() error
}

// wrapper

func (m *Stub[T]) Close() error {
	return m.StubClose()
}

func (m *Stub[T]) Next() bool {
	return m.StubNext()
}

func (m *Stub[T]) Err() error {
	return m.StubErr()
}

func (m *Stub[T]) Value() T {
	return m.StubValue()
}

// resetting stubs

func (m *Stub[T]) ResetClose() {
	m.StubClose = m.Iterator.Close
}

func (m *Stub[T]) ResetNext() {
	m.StubNext = m.Iterator.Next
}

func (m *Stub[T]) ResetErr() {
	m.StubErr = m.Iterator.Err
}

func (m *Stub[T]) ResetValue() {
	m.StubValue = m.Iterator.Value
}
