package dsl

import (
	sieve "github.com/sievekit/sieve"
	"github.com/sievekit/sieve/i18n"
)

// ValidatorFunc is a cross-field validator over the validated output
// mapping. Validators run only when no field errors were collected, so they
// may assume every field's type and range. They report findings through the
// collector and cannot modify the output.
type ValidatorFunc func(data *sieve.OrderedMap, errs *ValidatorErrors)

// ValidatorCtxFunc is the context-aware validator form.
type ValidatorCtxFunc func(data *sieve.OrderedMap, ctx sieve.Context, errs *ValidatorErrors)

type validator struct {
	name  string
	fn    ValidatorFunc
	fnCtx ValidatorCtxFunc
}

// ValidatorErrors collects errors emitted by one cross-field validator run.
// Field-targeted entries are qualified under the schema's path prefix; base
// entries carry the prefix itself (empty relative path).
type ValidatorErrors struct {
	prefix sieve.Path
	errs   sieve.ErrorCollection
}

// Add records a custom error targeted at a field.
func (ve *ValidatorErrors) Add(field, message string) {
	ve.errs.Push(sieve.Error{
		Path:    ve.prefix.Child(field),
		Code:    sieve.CodeCustom,
		Message: message,
	})
}

// AddBase records a schema-level error with no field path.
func (ve *ValidatorErrors) AddBase(message string) {
	ve.errs.Push(sieve.Error{
		Path:    ve.prefix,
		Code:    sieve.CodeCustom,
		Message: message,
	})
}

// AddError records a fully formed error; its path is qualified under the
// schema's prefix.
func (ve *ValidatorErrors) AddError(e sieve.Error) {
	e.Path = ve.prefix.Join(e.Path)
	if e.Code == "" {
		e.Code = sieve.CodeCustom
	}
	if e.Message == "" {
		e.Message = i18n.T(e.Code, e.Params)
	}
	ve.errs.Push(e)
}
