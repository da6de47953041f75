package sieve

// Result is the outcome of a safe parse: Success carrying the validated
// output mapping, or Failure carrying the ordered error collection.
type Result struct {
	ok   bool
	data *OrderedMap
	errs ErrorCollection
}

// Success wraps a validated output mapping.
func Success(data *OrderedMap) Result {
	if data == nil {
		data = NewOrderedMap()
	}
	return Result{ok: true, data: data}
}

// Failure wraps an error collection.
func Failure(errs ErrorCollection) Result {
	return Result{errs: errs}
}

// IsSuccess reports whether the parse produced output.
func (r Result) IsSuccess() bool { return r.ok }

// IsFailure reports whether the parse produced errors.
func (r Result) IsFailure() bool { return !r.ok }

// Data returns the output mapping; nil on Failure.
func (r Result) Data() *OrderedMap {
	if !r.ok {
		return nil
	}
	return r.data
}

// Errors returns the error collection; empty on Success.
func (r Result) Errors() ErrorCollection { return r.errs }

// Err converts a Failure into a *ValidationError; nil on Success.
func (r Result) Err() error {
	if r.ok {
		return nil
	}
	return &ValidationError{Errors: r.errs}
}
