// Package options implements generic functional options.
//
// Packages define a private config struct and expose constructors returning
// Option[*config]:
//
//	type DecodeOption = options.Option[*decodeConfig]
//
//	func WithLogger(l log.Logger) DecodeOption {
//	    return options.NoError(func(c *decodeConfig) { c.logger = l })
//	}
package options

// Option represents a functional option for configuring any type T.
type Option[T any] interface {
	apply(T) error
}

// Func is a generic functional option that wraps a function.
type Func[T any] struct {
	applyFunc func(T) error
}

// apply implements the Option interface.
func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies options to target in order and stops at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// Build applies opts on top of the value returned by defaults.
func Build[T any](defaults func() T, opts ...Option[T]) (T, error) {
	target := defaults()
	if err := Apply(target, opts...); err != nil {
		var zero T
		return zero, err
	}

	return target, nil
}
