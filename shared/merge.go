package shared

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrNotMergeable = errors.New("value is not mergeable")

// Update shallow merges partial onto the current value and stores the result.
//
// For structs and pointers to structs every exported, non-zero field of
// partial replaces the current one; a pointer value gets a freshly allocated
// struct. A zero field reads as absent, so Update can't reset a field to its
// zero value; use Set for that. For maps every entry of partial is copied
// into a new map holding the current entries. The merged value always notifies
// observers, even when no field actually changed.
func (s *State[T]) Update(partial T) error {
	merged, err := shallowMerge(s.value, partial)
	if err != nil {
		return fmt.Errorf("can't update state: %w", err)
	}
	s.store(merged, true)
	return nil
}

func shallowMerge[T any](current, partial T) (T, error) {
	cur := reflect.ValueOf(&current).Elem()
	part := reflect.ValueOf(&partial).Elem()

	switch cur.Kind() {
	case reflect.Struct:
		next := current
		overlayFields(reflect.ValueOf(&next).Elem(), part)
		return next, nil

	case reflect.Pointer:
		if cur.IsNil() || cur.Elem().Kind() != reflect.Struct {
			return current, fmt.Errorf("%w: %s", ErrNotMergeable, cur.Type())
		}
		fresh := reflect.New(cur.Elem().Type())
		fresh.Elem().Set(cur.Elem())
		if !part.IsNil() {
			overlayFields(fresh.Elem(), part.Elem())
		}
		return fresh.Interface().(T), nil

	case reflect.Map:
		fresh := reflect.MakeMapWithSize(cur.Type(), cur.Len()+part.Len())
		for _, src := range []reflect.Value{cur, part} {
			iter := src.MapRange()
			for iter.Next() {
				fresh.SetMapIndex(iter.Key(), iter.Value())
			}
		}
		return fresh.Interface().(T), nil
	}

	return current, fmt.Errorf("%w: %s", ErrNotMergeable, cur.Type())
}

func overlayFields(dst, src reflect.Value) {
	typ := dst.Type()
	for i := 0; i < typ.NumField(); i++ {
		if !typ.Field(i).IsExported() {
			continue
		}
		field := src.Field(i)
		if field.IsZero() {
			continue
		}
		dst.Field(i).Set(field)
	}
}
