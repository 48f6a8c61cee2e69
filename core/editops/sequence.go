package editops

// Sequence is a random-access, read-only view of elements.
type Sequence[T any] interface {
	Len() int
	At(i int) T
}

// Slice adapts a Go slice to Sequence.
type Slice[T any] []T

func (s Slice[T]) Len() int   { return len(s) }
func (s Slice[T]) At(i int) T { return s[i] }

// Runes returns the code points of s as a Sequence.
func Runes(s string) Slice[rune] { return Slice[rune]([]rune(s)) }

// appendRange appends seq[begin:end] to out.
func appendRange[T any](out []T, seq Sequence[T], begin, end int) []T {
	if s, ok := seq.(Slice[T]); ok {
		return append(out, s[begin:end]...)
	}
	for i := begin; i < end; i++ {
		out = append(out, seq.At(i))
	}
	return out
}
