// Package coerce normalizes attribute values at the moment they are assigned.
//
// Every function here is total and idempotent: it accepts any value of its
// type, never fails, and applying it twice gives the same result as applying
// it once. Out-of-range input is clamped, not rejected.
package coerce

import "cmp"

// Clamp bounds v to [lo, hi]. A NaN input yields lo.
// If lo > hi the bounds are swapped.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v != v {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AtLeast bounds v below by lo. A NaN input yields lo.
func AtLeast[T cmp.Ordered](v, lo T) T {
	if v != v || v < lo {
		return lo
	}
	return v
}

// AtMost bounds v above by hi. A NaN input yields hi.
func AtMost[T cmp.Ordered](v, hi T) T {
	if v != v || v > hi {
		return hi
	}
	return v
}

// Signed is the set of numeric types that can be negated.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Symmetric bounds v to [-limit, limit].
func Symmetric[T Signed](v, limit T) T {
	var zero T
	if limit < zero {
		limit = zero - limit
	}
	return Clamp(v, zero-limit, limit)
}

// Force ignores the requested value and returns fixed.
func Force[T any](_ T, fixed T) T {
	return fixed
}

// Coalesce returns fallback when v is the zero value of its type.
func Coalesce[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}

// Func is a coercion hook for a single attribute.
type Func[T any] func(T) T

// Chain composes coercions left to right.
func Chain[T any](fns ...Func[T]) Func[T] {
	return func(v T) T {
		for _, fn := range fns {
			if fn != nil {
				v = fn(v)
			}
		}
		return v
	}
}

// Range returns a Func that clamps to [lo, hi].
func Range[T cmp.Ordered](lo, hi T) Func[T] {
	return func(v T) T { return Clamp(v, lo, hi) }
}

// Fixed returns a Func that always yields value.
func Fixed[T any](value T) Func[T] {
	return func(v T) T { return Force(v, value) }
}
