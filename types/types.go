// Package types provides the built-in TypeHandlers: scalars, temporal
// values, arrays, unions and literals, plus Define for user types. Importing
// the package preloads the default registry with every built-in.
package types

import (
	sieve "github.com/sievekit/sieve"
	"github.com/sievekit/sieve/i18n"
)

// typeErr builds the standard type_error collection for a handler name.
func typeErr(name string) sieve.ErrorCollection {
	params := map[string]any{"type": name}
	return sieve.ErrorCollection{sieve.Error{
		Code:    sieve.CodeTypeError,
		Message: i18n.T(sieve.CodeTypeError, params),
		Params:  params,
	}}
}

// Lookup fetches a built-in or user-registered handler from the default
// registry, panicking with an ArgumentError when the name is unknown.
func Lookup(name string) sieve.TypeHandler {
	h, ok := sieve.DefaultRegistry().Lookup(name)
	if !ok {
		panic(sieve.NewArgumentError("unknown type %q", name))
	}
	return h
}

func init() {
	r := sieve.DefaultRegistry()
	r.Register(String())
	r.Register(Integer())
	r.Register(Float())
	r.Register(Boolean())
	r.Register(Decimal())
	r.Register(Date())
	r.Register(DateTime())
	r.Register(Time())
}
