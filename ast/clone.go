package ast

import (
	"reflect"

	"github.com/t14raptor/go-lower/token"
)

var (
	tokenPtrType = reflect.TypeOf((*token.Token)(nil))
	rangePtrType = reflect.TypeOf((*token.Range)(nil))
)

// Clone returns a deep copy of the tree rooted at n. Tokens and source
// ranges are immutable and shared between the original and the copy.
func Clone[T Node](n T) T {
	v := reflect.ValueOf(n)
	if !v.IsValid() {
		return n
	}
	return cloneValue(v).Interface().(T)
}

func cloneValue(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() || v.Type() == tokenPtrType || v.Type() == rangePtrType {
			return v
		}
		c := reflect.New(v.Type().Elem())
		c.Elem().Set(cloneValue(v.Elem()))
		return c
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		return cloneValue(v.Elem())
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		c := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			c.Index(i).Set(cloneValue(v.Index(i)))
		}
		return c
	case reflect.Struct:
		c := reflect.New(v.Type()).Elem()
		for i := 0; i < v.NumField(); i++ {
			c.Field(i).Set(cloneValue(v.Field(i)))
		}
		return c
	}
	return v
}
