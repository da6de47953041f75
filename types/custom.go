package types

import (
	sieve "github.com/sievekit/sieve"
	js "github.com/sievekit/sieve/jsonschema"
)

// Config describes a user-defined type. All members are optional: a nil
// Coerce accepts the raw value as-is, a nil Validate skips post-coercion
// validation, and an empty ErrorMessage falls back to the default
// type_error message.
type Config struct {
	Coerce       func(ctx sieve.Context, v any) (any, error)
	Validate     func(ctx sieve.Context, v any) error
	ErrorMessage string
}

// Define builds a custom handler and registers it in the default registry.
// Tests that define a type must deregister it on teardown:
//
//	defer sieve.DefaultRegistry().Deregister("money")
func Define(name string, cfg Config) sieve.TypeHandler {
	h := DefineIn(sieve.DefaultRegistry(), name, cfg)
	return h
}

// DefineIn builds a custom handler and registers it in reg.
func DefineIn(reg *sieve.TypeRegistry, name string, cfg Config) sieve.TypeHandler {
	if name == "" {
		panic(sieve.NewArgumentError("custom type requires a name"))
	}
	h := customHandler{name: name, cfg: cfg}
	reg.Register(h)
	return h
}

type customHandler struct {
	name string
	cfg  Config
}

func (h customHandler) Name() string { return h.name }

func (h customHandler) fail() sieve.ErrorCollection {
	errs := typeErr(h.name)
	if h.cfg.ErrorMessage != "" {
		errs[0].Message = h.cfg.ErrorMessage
	}
	return errs
}

func (h customHandler) Coerce(ctx sieve.Context, v any) (any, error) {
	out := v
	if h.cfg.Coerce != nil {
		coerced, err := h.cfg.Coerce(ctx, v)
		if err != nil {
			return nil, h.fail()
		}
		out = coerced
	}
	if h.cfg.Validate != nil {
		if err := h.cfg.Validate(ctx, out); err != nil {
			return nil, h.fail()
		}
	}
	return out, nil
}

func (h customHandler) Check(v any) error {
	if h.cfg.Validate != nil {
		if err := h.cfg.Validate(sieve.EmptyContext, v); err != nil {
			return h.fail()
		}
	}
	return nil
}

func (customHandler) JSONSchema() *js.Schema { return &js.Schema{} }
