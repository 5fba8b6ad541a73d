// Package optx extends [mo.Option] with type-changing transforms, which
// methods on the generic type cannot express.
package optx

import "github.com/samber/mo"

// Map applies transform to the present value, or short-circuits to None.
func Map[T, U any](o mo.Option[T], transform func(T) U) mo.Option[U] {
	val, ok := o.Get()
	if !ok {
		return mo.None[U]()
	}

	return mo.Some(transform(val))
}

// FlatMap applies transform to the present value, or short-circuits to None.
// The transform itself may produce an absent result.
func FlatMap[T, U any](o mo.Option[T], transform func(T) mo.Option[U]) mo.Option[U] {
	val, ok := o.Get()
	if !ok {
		return mo.None[U]()
	}

	return transform(val)
}
