// Package options implements the functional option pattern shared by the
// record generator and the benchmark runner.
package options

import "fmt"

// Option represents a functional option for configuring any type T.
type Option[T any] interface {
	apply(T) error
}

// Validator is implemented by option targets that check their final state
// after all options were applied.
type Validator interface {
	Validate() error
}

// funcOption wraps a function as an Option.
type funcOption[T any] struct {
	applyFunc func(T) error
}

func (f funcOption[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates a new functional option from a function.
func New[T any](fn func(T) error) Option[T] {
	return funcOption[T]{applyFunc: fn}
}

// NoError creates a functional option from a function that cannot fail.
func NoError[T any](fn func(T)) Option[T] {
	return funcOption[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first failing option.
//
// If target implements Validator, Validate runs once after the last option,
// so options may be given in any order without tripping intermediate checks.
func Apply[T any](target T, opts ...Option[T]) error {
	for i, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return fmt.Errorf("option %d: %w", i, err)
		}
	}

	if v, ok := any(target).(Validator); ok {
		return v.Validate()
	}

	return nil
}
