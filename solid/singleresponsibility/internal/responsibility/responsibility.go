// Package responsibility counts the operations a type is responsible for.
package responsibility

import (
	"context"
	"reflect"

	"golang.org/x/exp/slices"
)

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// Operations returns the sorted names of the exported methods of v that look like
// an operation, i.e. take a context.Context as first argument and return a single error.
// Accessors such as Name() or Email() are not operations.
func Operations(v any) []string {
	if v == nil {
		return nil
	}
	return operations(reflect.TypeOf(v))
}

// Count returns the number of operations v exposes.
func Count(v any) int {
	return len(Operations(v))
}

// OperationsOf is like Operations but inspects the method set of T, which may be an interface type.
func OperationsOf[T any]() []string {
	return operations(reflect.TypeOf((*T)(nil)).Elem())
}

func operations(typ reflect.Type) []string {
	names := make([]string, 0, typ.NumMethod())
	for i := 0; i < typ.NumMethod(); i++ {
		method := typ.Method(i)
		if !isOperation(typ, method) {
			continue
		}
		names = append(names, method.Name)
	}
	slices.Sort(names)
	return names
}

func isOperation(typ reflect.Type, method reflect.Method) bool {
	if !method.IsExported() {
		return false
	}
	methodType := method.Type
	// concrete methods carry the receiver as the first argument, interface methods don't.
	offset := 0
	if typ.Kind() != reflect.Interface {
		offset = 1
	}
	if methodType.NumIn() <= offset {
		return false
	}
	if !methodType.In(offset).Implements(contextType) {
		return false
	}
	if methodType.NumOut() != 1 {
		return false
	}
	return methodType.Out(0).Implements(errorType)
}
