package di

import "reflect"

// Key identifies a registered type.
//
// Keys are comparable and derived from a type parameter on every call, so two
// requests for the same T always produce equal keys. Interface types are keyed
// by the interface itself, not by whatever dynamic type a factory returns.
type Key struct {
	t reflect.Type
}

// KeyOf returns the Key for T.
func KeyOf[T any]() Key {
	return Key{t: reflect.TypeFor[T]()}
}

// String returns the Go type string, e.g. "*widgets.Gear".
func (k Key) String() string {
	if k.t == nil {
		return "<nil>"
	}
	return k.t.String()
}

// Type returns the underlying reflect.Type (nil for the zero Key).
func (k Key) Type() reflect.Type { return k.t }

// nilable reports whether the zero value of t can be the untyped nil.
func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}
