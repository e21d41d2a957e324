package task

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidateAgainstSchema checks a decoded JSON document against the JSON
// Schema at schemaPath. Violations are reported as *SchemaError with the
// failing instance location rendered as a dot path; compile and load
// failures are returned as plain errors for the caller to classify.
func ValidateAgainstSchema(data any, schemaPath string) error {
	absPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("invalid schema path: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	schema, err := compiler.Compile(absPath)
	if err != nil {
		return fmt.Errorf("compile schema %s: %w", schemaPath, err)
	}

	if err := schema.Validate(data); err != nil {
		return schemaErrorFrom(err)
	}
	return nil
}

// schemaErrorFrom converts a jsonschema validation error to a *SchemaError,
// keeping only the first leaf cause to preserve fail-fast reporting.
func schemaErrorFrom(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &SchemaError{Msg: err.Error()}
	}

	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}

	loc := pointerToPath(leaf.InstanceLocation)
	if loc == "" {
		loc = "input"
	}
	return &SchemaError{Msg: fmt.Sprintf("%s: %s", loc, leaf.Message)}
}

// pointerToPath converts a JSON Pointer (RFC 6901) like "/0/id" to the
// dot-and-bracket form "[0].id" used in diagnostics.
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		// Unescape JSON Pointer reserved characters.
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
