// Package errs defines the error vocabulary shared by the bakery's domain
// model, use cases and adapters. Every validation failure, range violation
// and missing lookup in the codebase is expressed through one of its types
// so callers can classify errors with errors.Is instead of matching strings.
//
// Four error kinds cover the application's needs:
//   - ValueIsRequiredError: a mandatory parameter was empty or absent
//   - ValueIsInvalidError: a parameter was present but unusable
//   - ValueIsOutOfRangeError: a numeric parameter fell outside its bounds
//   - ObjectNotFoundError: a lookup by identifier matched nothing
//
// Each kind pairs a sentinel (e.g. ErrObjectNotFound) with a struct that
// carries the offending parameter's name, plus a WithCause constructor that
// records an underlying error. Error() renders a single-line message with
// the cause appended when present, and Unwrap() yields the sentinel so
// errors.Is can classify the kind. HTTP handlers rely on this to map
// ObjectNotFoundError to 404 without inspecting message text.
package errs
