// Package equal implements the value comparisons used to decide whether a
// change is worth propagating.
//
// Same follows SameValue semantics: NaN equals NaN, +0 and -0 differ and
// reference kinds compare by identity. Shallow relaxes that by one level so a
// freshly built projection with unchanged fields is not treated as a change.
package equal

import (
	"math"
	"reflect"
)

// Same reports whether a and b are the same value.
//
// Pointers, maps, channels and slices are the same only when they refer to
// the same memory. Funcs have no identity in Go and are only the same when
// both are nil. Arrays and structs are values, so they are compared element by
// element with the same rules.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return sameValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

// Shallow reports whether a and b are Same, or are both non-nil objects with
// identical keys whose values are pairwise Same. Maps are keyed by their keys,
// structs and pointers to structs by their fields, slices and arrays by index.
// Nothing is compared below the first level.
func Shallow(a, b any) bool {
	if Same(a, b) {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return shallowValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

// DepsChanged reports whether a dependency list differs from the previous one,
// either in length or in any pairwise Same comparison.
func DepsChanged(prev, next []any) bool {
	if len(prev) != len(next) {
		return true
	}
	for i := range prev {
		if !Same(prev[i], next[i]) {
			return true
		}
	}
	return false
}

func sameFloat(x, y float64) bool {
	if x != x && y != y {
		return true
	}
	if x == 0 && y == 0 {
		return math.Signbit(x) == math.Signbit(y)
	}
	return x == y
}

func sameValue(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.Float32, reflect.Float64:
		return sameFloat(a.Float(), b.Float())
	case reflect.Complex64, reflect.Complex128:
		ca, cb := a.Complex(), b.Complex()
		return sameFloat(real(ca), real(cb)) && sameFloat(imag(ca), imag(cb))
	case reflect.String:
		return a.String() == b.String()
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Slice:
		return a.Pointer() == b.Pointer() && a.Len() == b.Len() && a.Cap() == b.Cap()
	case reflect.Func:
		return a.IsNil() && b.IsNil()
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return sameValue(a.Elem(), b.Elem())
	case reflect.Array:
		return sameElems(a, b)
	case reflect.Struct:
		return sameFields(a, b)
	}
	return false
}

func sameElems(a, b reflect.Value) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !sameValue(a.Index(i), b.Index(i)) {
			return false
		}
	}
	return true
}

func sameFields(a, b reflect.Value) bool {
	for i := 0; i < a.NumField(); i++ {
		if !sameValue(a.Field(i), b.Field(i)) {
			return false
		}
	}
	return true
}

func shallowValue(a, b reflect.Value) bool {
	if a.Type() != b.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return false
		}
		return shallowValue(a.Elem(), b.Elem())
	case reflect.Pointer:
		if a.IsNil() || b.IsNil() || a.Elem().Kind() != reflect.Struct {
			return false
		}
		return sameFields(a.Elem(), b.Elem())
	case reflect.Struct:
		return sameFields(a, b)
	case reflect.Map:
		if a.IsNil() || b.IsNil() || a.Len() != b.Len() {
			return false
		}
		iter := a.MapRange()
		for iter.Next() {
			other := b.MapIndex(iter.Key())
			if !other.IsValid() || !sameValue(iter.Value(), other) {
				return false
			}
		}
		return true
	case reflect.Slice:
		if a.IsNil() || b.IsNil() {
			return false
		}
		return sameElems(a, b)
	case reflect.Array:
		return sameElems(a, b)
	}
	return false
}
