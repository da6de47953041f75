package dsl

import (
	"fmt"

	sieve "github.com/sievekit/sieve"
	"github.com/sievekit/sieve/i18n"
)

// Hook signatures. Each hook exists in a context-free and a context-aware
// form; the engine invokes whichever slot the field declares, so a hook that
// never asked for the Context never sees one.
type (
	// PreprocessFunc runs before coercion and may return any value.
	PreprocessFunc func(v any) (any, error)
	// PreprocessCtxFunc is the context-aware preprocess form.
	PreprocessCtxFunc func(v any, ctx sieve.Context) (any, error)
	// TransformFunc runs after all validation; its result replaces the output.
	TransformFunc func(v any) (any, error)
	// TransformCtxFunc is the context-aware transform form.
	TransformCtxFunc func(v any, ctx sieve.Context) (any, error)
	// RefineFunc is a user predicate applied after constraints.
	RefineFunc func(v any) bool
	// RefineCtxFunc is the context-aware refinement form.
	RefineCtxFunc func(v any, ctx sieve.Context) bool
	// Predicate gates a conditional field on the full input mapping.
	Predicate func(input *sieve.OrderedMap, ctx sieve.Context) bool
)

type refinement struct {
	fn        RefineFunc
	fnCtx     RefineCtxFunc
	message   string
	messageFn func(v any) string
}

// Field is one named slot in a Schema with its full validation and coercion
// pipeline. Fields are immutable once their schema is built.
type Field struct {
	name     string
	typ      sieve.TypeHandler
	optional bool
	nullable bool
	coerce   bool

	hasDefault   bool
	defaultValue any
	defaultFunc  func() any

	pre     PreprocessFunc
	preCtx  PreprocessCtxFunc
	post    TransformFunc
	postCtx TransformCtxFunc

	when   Predicate
	unless Predicate

	literals      []any
	refinements   []refinement
	constraints   []sieve.Constraint
	customMessage string
}

// Name returns the field's key in its schema.
func (f *Field) Name() string { return f.name }

func (f *Field) clone() *Field {
	out := *f
	out.literals = append([]any(nil), f.literals...)
	out.refinements = append([]refinement(nil), f.refinements...)
	out.constraints = append([]sieve.Constraint(nil), f.constraints...)
	return &out
}

func requiredError(path sieve.Path) sieve.Error {
	return sieve.Error{Path: path, Code: sieve.CodeRequired, Message: i18n.T(sieve.CodeRequired, nil)}
}

// run executes the per-field state machine. present reports whether the key
// existed in the input. The returned emit flag is true when the value
// belongs in the output mapping.
func (f *Field) run(input *sieve.OrderedMap, raw any, present bool, ctx sieve.Context, prefix sieve.Path) (any, bool, sieve.ErrorCollection) {
	fieldPath := prefix.Child(f.name)

	// Conditional gate. A false predicate marks the field skipped: absent
	// values produce no required error, but explicitly supplied values are
	// still normalized through the rest of the pipeline.
	skipped := false
	if f.when != nil || f.unless != nil {
		cond := true
		if f.when != nil {
			cond = f.when(input, ctx)
		}
		if cond && f.unless != nil {
			cond = !f.unless(input, ctx)
		}
		skipped = !cond
	}

	// Missing-value handling.
	if !present {
		switch {
		case f.hasDefault && !skipped:
			raw = f.materializeDefault()
		case f.optional || skipped:
			return nil, false, nil
		default:
			return nil, false, sieve.ErrorCollection{requiredError(fieldPath)}
		}
	}

	// Null handling. Explicit null on a non-nullable field reports required,
	// matching the missing-key code.
	if raw == nil {
		if !f.nullable {
			return nil, false, sieve.ErrorCollection{requiredError(fieldPath)}
		}
		return f.runNull(ctx, fieldPath)
	}

	v, errs := f.pipeline(raw, ctx, fieldPath)
	if len(errs) > 0 {
		return nil, false, errs
	}
	return v, true, nil
}

// runNull handles a nullable field whose value is explicit null. Preprocess
// still runs when defined; when it yields a non-null value the rest of the
// pipeline resumes, otherwise coercion and validation are skipped and only
// transform may observe the null.
func (f *Field) runNull(ctx sieve.Context, fieldPath sieve.Path) (any, bool, sieve.ErrorCollection) {
	v := any(nil)
	if f.pre != nil || f.preCtx != nil {
		pv, errs := f.runPreprocess(nil, ctx, fieldPath)
		if len(errs) > 0 {
			return nil, false, errs
		}
		v = pv
	}
	if v != nil {
		out, errs := f.pipelineAfterPreprocess(v, ctx, fieldPath)
		if len(errs) > 0 {
			return nil, false, errs
		}
		return out, true, nil
	}
	if f.post != nil || f.postCtx != nil {
		out, errs := f.runTransform(nil, ctx, fieldPath)
		if len(errs) > 0 {
			return nil, false, errs
		}
		return out, true, nil
	}
	return nil, true, nil
}

func (f *Field) materializeDefault() any {
	if f.defaultFunc != nil {
		return f.defaultFunc()
	}
	return sieve.DeepClone(f.defaultValue)
}

// pipeline runs steps 4-9: preprocess, coerce, literal, constraints,
// refinements, transform.
func (f *Field) pipeline(v any, ctx sieve.Context, fieldPath sieve.Path) (any, sieve.ErrorCollection) {
	if f.pre != nil || f.preCtx != nil {
		pv, errs := f.runPreprocess(v, ctx, fieldPath)
		if len(errs) > 0 {
			return nil, errs
		}
		if pv == nil {
			// Preprocess normalized the value away; the nullable flag alone
			// decides acceptance.
			if f.nullable {
				return nil, nil
			}
			return nil, sieve.ErrorCollection{requiredError(fieldPath)}
		}
		v = pv
	}
	return f.pipelineAfterPreprocess(v, ctx, fieldPath)
}

func (f *Field) pipelineAfterPreprocess(v any, ctx sieve.Context, fieldPath sieve.Path) (any, sieve.ErrorCollection) {
	// Coerce or type-check.
	if f.typ != nil {
		if f.coerce {
			coerced, err := f.typ.Coerce(ctx, v)
			if err != nil {
				return nil, f.typeErrors(err, fieldPath)
			}
			v = coerced
		} else if err := f.typ.Check(v); err != nil {
			return nil, f.typeErrors(err, fieldPath)
		}
	}

	// Literal set membership, identity comparison.
	if len(f.literals) > 0 && !literalMember(v, f.literals) {
		msg := f.customMessage
		if msg == "" {
			msg = i18n.T(sieve.CodeLiteralMismatch, nil)
		}
		return nil, sieve.ErrorCollection{{Path: fieldPath, Code: sieve.CodeLiteralMismatch, Message: msg}}
	}

	// Constraints: every one is evaluated so the caller sees all violations.
	var errs sieve.ErrorCollection
	for _, c := range f.constraints {
		if e := c.Check(v); e != nil {
			e.Path = fieldPath
			if f.customMessage != "" {
				e.Message = f.customMessage
			}
			errs.Push(*e)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	// Refinements: stop at the first failure.
	for _, r := range f.refinements {
		ok := runRefinement(r, v, ctx)
		if !ok {
			msg := r.message
			if r.messageFn != nil {
				msg = r.messageFn(v)
			}
			if msg == "" {
				msg = i18n.T(sieve.CodeRefinement, nil)
			}
			return nil, sieve.ErrorCollection{{Path: fieldPath, Code: sieve.CodeRefinement, Message: msg}}
		}
	}

	if f.post != nil || f.postCtx != nil {
		return f.runTransform(v, ctx, fieldPath)
	}
	return v, nil
}

func literalMember(v any, set []any) bool {
	for _, want := range set {
		if sieve.DeepEqual(v, want) {
			return true
		}
	}
	return false
}

// typeErrors rebases handler errors under the field path and applies the
// field's custom message to type-category failures.
func (f *Field) typeErrors(err error, fieldPath sieve.Path) sieve.ErrorCollection {
	child, ok := sieve.AsErrors(err)
	if !ok {
		child = sieve.ErrorCollection{{Code: sieve.CodeTypeError, Message: err.Error()}}
	}
	out := child.Rebase(fieldPath)
	if f.customMessage != "" {
		for i := range out {
			if out[i].Path.Equal(fieldPath) {
				out[i].Message = f.customMessage
			}
		}
	}
	return out
}

func (f *Field) runPreprocess(v any, ctx sieve.Context, fieldPath sieve.Path) (out any, errs sieve.ErrorCollection) {
	defer func() {
		if r := recover(); r != nil {
			errs = hookErrors(fieldPath, sieve.CodePreprocessError, fmt.Sprint(r))
		}
	}()
	var err error
	if f.preCtx != nil {
		out, err = f.preCtx(v, ctx)
	} else {
		out, err = f.pre(v)
	}
	if err != nil {
		return nil, hookErrors(fieldPath, sieve.CodePreprocessError, err.Error())
	}
	return out, nil
}

func (f *Field) runTransform(v any, ctx sieve.Context, fieldPath sieve.Path) (out any, errs sieve.ErrorCollection) {
	defer func() {
		if r := recover(); r != nil {
			errs = hookErrors(fieldPath, sieve.CodeTransformError, fmt.Sprint(r))
		}
	}()
	var err error
	if f.postCtx != nil {
		out, err = f.postCtx(v, ctx)
	} else {
		out, err = f.post(v)
	}
	if err != nil {
		return nil, hookErrors(fieldPath, sieve.CodeTransformError, err.Error())
	}
	return out, nil
}

// runRefinement evaluates one refinement predicate; a panicking predicate
// counts as a failure.
func runRefinement(r refinement, v any, ctx sieve.Context) (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			ok = false
		}
	}()
	if r.fnCtx != nil {
		return r.fnCtx(v, ctx)
	}
	return r.fn(v)
}

func hookErrors(path sieve.Path, code, reason string) sieve.ErrorCollection {
	params := map[string]any{"reason": reason}
	return sieve.ErrorCollection{{
		Path:    path,
		Code:    code,
		Message: i18n.T(code, params),
		Params:  params,
	}}
}
