// Package holder provides a minimal value holder.
package holder

// Holder carries a single value set at construction.
type Holder[T any] struct {
	// Attribute contains the value passed to New.
	Attribute T
}

// New creates a Holder whose Attribute is value.
func New[T any](value T) *Holder[T] {
	return &Holder[T]{Attribute: value}
}
