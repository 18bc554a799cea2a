package guard

import "reflect"

// NotNil returns value unchanged unless it is nil. Untyped nil interfaces and
// nil pointers, maps, slices, channels, funcs and interfaces all count as nil.
//
//	svc, err := guard.NotNil("svc", svc)
func NotNil[T any](name string, value T, opts ...Option) (T, error) {
	if !isNil(value) {
		return value, nil
	}
	return value, failNull(identify(name, "NotNil"), opts)
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
