// Package pipeline sequences the read -> validate -> enrich -> write stages
// of a single processing run.
package pipeline

// InputError reports a failure reading or decoding the input document.
type InputError struct {
	Msg string
	Err error
}

func (e *InputError) Error() string {
	return e.Msg
}

// Unwrap returns the underlying error, if any.
func (e *InputError) Unwrap() error {
	return e.Err
}

// OutputError reports a failure serializing or writing the output document.
type OutputError struct {
	Msg string
	Err error
}

func (e *OutputError) Error() string {
	return e.Msg
}

// Unwrap returns the underlying error, if any.
func (e *OutputError) Unwrap() error {
	return e.Err
}
