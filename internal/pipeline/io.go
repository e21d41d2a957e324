package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rekhak/taskproc/internal/task"
)

// ReadInput reads and decodes the JSON document at path. Numbers are decoded
// with UseNumber so integer and float literals stay distinguishable and
// round-trip unchanged. All failures are reported as *InputError.
func ReadInput(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return nil, &InputError{Msg: fmt.Sprintf("Input file not found: %s", path), Err: err}
		case os.IsPermission(err):
			return nil, &InputError{Msg: fmt.Sprintf("Permission denied reading file: %s", path), Err: err}
		default:
			return nil, &InputError{Msg: fmt.Sprintf("Error reading input file: %v", err), Err: err}
		}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, &InputError{Msg: fmt.Sprintf("Invalid JSON in input file: %v", err), Err: err}
	}
	if dec.More() {
		return nil, &InputError{Msg: "Invalid JSON in input file: trailing data after top-level value"}
	}

	return data, nil
}

// WriteOutput serializes records to path as an indented JSON array with a
// trailing newline. All failures are reported as *OutputError.
func WriteOutput(path string, records []task.OutputRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &OutputError{Msg: fmt.Sprintf("Error writing output file: %v", err), Err: err}
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		if os.IsPermission(err) {
			return &OutputError{Msg: fmt.Sprintf("Permission denied writing to file: %s", path), Err: err}
		}
		return &OutputError{Msg: fmt.Sprintf("Error writing output file: %v", err), Err: err}
	}
	return nil
}
