package rop

import (
	"errors"
	"reflect"
)

// ErrNoValue is the panic value wrapped by Unwrap on an absent Option or a failed Result.
var ErrNoValue = errors.New("rop: no value")

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}
