// Package task defines task records and the schema rules they must satisfy.
package task

import "encoding/json"

// Record is a single task record that passed all schema rules. The three
// fields are carried exactly as they appeared in the input; Value keeps its
// original literal form so serialization does not reformat it.
type Record struct {
	ID    int64       `json:"id"`
	Name  string      `json:"name"`
	Value json.Number `json:"value"`
}

// OutputRecord is a Record enriched with derived metadata. Field order here
// fixes the key order in the output document.
type OutputRecord struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Value      json.Number `json:"value"`
	Processed  bool        `json:"processed"`
	NameLength int         `json:"name_length"`
}

// SchemaError reports the first schema rule an input document violates.
// Validation is fail-fast: one run produces at most one SchemaError.
type SchemaError struct {
	Msg string
}

func (e *SchemaError) Error() string {
	return e.Msg
}
