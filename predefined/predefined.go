// Package predefined holds the well-known names synthesized trees refer to.
package predefined

import "strconv"

const (
	Bind              = "bind"
	Call              = "call"
	Create            = "create"
	DefineProperty    = "defineProperty"
	Freeze            = "freeze"
	Object            = "Object"
	PreventExtensions = "preventExtensions"
	State             = "$state"
	Undefined         = "undefined"
	This              = "this"
	UseStrict         = "use strict"
)

// Property descriptor attribute names.
const (
	Value        = "value"
	Get          = "get"
	Set          = "set"
	Writable     = "writable"
	Enumerable   = "enumerable"
	Configurable = "configurable"
)

// ParameterName returns the name of the index-th synthesized parameter.
func ParameterName(index int) string {
	return "$" + strconv.Itoa(index)
}
