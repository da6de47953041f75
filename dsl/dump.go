package dsl

import (
	sieve "github.com/sievekit/sieve"
	"github.com/sievekit/sieve/codec"
)

// Dump parses input and lowers the validated output to a primitive tree.
func (s *Schema) Dump(ctx sieve.Context, input any) (any, error) {
	out, err := s.Parse(ctx, input)
	if err != nil {
		return nil, err
	}
	return codec.Lower(out), nil
}

// SafeDump parses input and lowers the Result: the primitive data tree on
// success, the error report on failure.
func (s *Schema) SafeDump(ctx sieve.Context, input any) any {
	return codec.DumpResult(s.SafeParse(ctx, input))
}

// ParseJSON decodes a JSON document and parses it. Numbers are decoded as
// json.Number so integer precision survives the trip into coercion.
func (s *Schema) ParseJSON(ctx sieve.Context, data []byte) (*sieve.OrderedMap, error) {
	v, err := codec.ParseJSON(data)
	if err != nil {
		return nil, err
	}
	return s.Parse(ctx, v)
}

// SafeParseJSON is ParseJSON with a Result. Malformed JSON surfaces as a
// type_error failure at the root.
func (s *Schema) SafeParseJSON(ctx sieve.Context, data []byte) sieve.Result {
	v, err := codec.ParseJSON(data)
	if err != nil {
		return sieve.Failure(sieve.ErrorCollection{{
			Code:    sieve.CodeTypeError,
			Message: err.Error(),
		}})
	}
	return s.SafeParse(ctx, v)
}

// ParseYAML decodes a YAML document and parses it.
func (s *Schema) ParseYAML(ctx sieve.Context, data []byte) (*sieve.OrderedMap, error) {
	v, err := codec.ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return s.Parse(ctx, v)
}
