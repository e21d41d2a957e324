package task

import (
	"encoding/json"
	"fmt"
	"strings"
)

// requiredFields are checked in this order; the first missing field wins.
var requiredFields = []string{"id", "name", "value"}

// ValidateRecord checks one decoded JSON value against the record schema.
// index is the 0-based position of the value in the input array, used only
// for error messages. Rules are checked in a fixed order and the first
// violation is returned as a *SchemaError.
//
// The value must come from a decoder with UseNumber enabled (see
// pipeline.ReadInput), otherwise numbers cannot be told apart from floats.
func ValidateRecord(value any, index int) (Record, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return Record{}, &SchemaError{Msg: fmt.Sprintf("Item at index %d is not an object", index)}
	}

	for _, field := range requiredFields {
		if _, ok := obj[field]; !ok {
			return Record{}, &SchemaError{Msg: fmt.Sprintf("Item at index %d is missing required field '%s'", index, field)}
		}
	}

	id, ok := intValue(obj["id"])
	if !ok {
		return Record{}, &SchemaError{Msg: fmt.Sprintf("Item at index %d: 'id' must be an integer, got %s", index, typeName(obj["id"]))}
	}

	name, ok := obj["name"].(string)
	if !ok {
		return Record{}, &SchemaError{Msg: fmt.Sprintf("Item at index %d: 'name' must be a string, got %s", index, typeName(obj["name"]))}
	}
	if strings.TrimSpace(name) == "" {
		return Record{}, &SchemaError{Msg: fmt.Sprintf("Item at index %d: 'name' must be a non-empty string", index)}
	}

	val, ok := obj["value"].(json.Number)
	if !ok {
		return Record{}, &SchemaError{Msg: fmt.Sprintf("Item at index %d: 'value' must be numeric, got %s", index, typeName(obj["value"]))}
	}

	return Record{ID: id, Name: name, Value: val}, nil
}

// ValidateCollection validates a whole decoded input document. The top-level
// value must be an array; each element is validated at its original index and
// ids must be unique across the collection. The duplicate check runs only
// after an element individually passes, and the first duplicate wins.
func ValidateCollection(data any) ([]Record, error) {
	items, ok := data.([]any)
	if !ok {
		return nil, &SchemaError{Msg: "Input must be a JSON array"}
	}

	records := make([]Record, 0, len(items))
	seen := make(map[int64]struct{}, len(items))

	for i, item := range items {
		rec, err := ValidateRecord(item, i)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[rec.ID]; dup {
			return nil, &SchemaError{Msg: fmt.Sprintf("Duplicate id found: %d", rec.ID)}
		}
		seen[rec.ID] = struct{}{}
		records = append(records, rec)
	}

	return records, nil
}

// intValue extracts an integer from a decoded JSON value. Booleans and
// numbers with fractional form ("1.5", but also "1.0" and "1e2") are
// rejected.
func intValue(v any) (int64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	if !integralLiteral(n) {
		return 0, false
	}
	i, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}

// integralLiteral reports whether a JSON number literal has integer form.
func integralLiteral(n json.Number) bool {
	return !strings.ContainsAny(n.String(), ".eE")
}

// typeName names a decoded JSON value's type the way error messages report it.
func typeName(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case string:
		return "string"
	case json.Number:
		if integralLiteral(t) {
			return "int"
		}
		return "float"
	case float64:
		// Decoded without UseNumber; integer form is already lost.
		return "float"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
