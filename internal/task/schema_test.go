package task

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const recordsSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "name", "value"],
    "properties": {
      "id": {"type": "integer"},
      "name": {"type": "string"},
      "value": {"type": "number"}
    }
  }
}`

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.schema.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile(schema) failed: %v", err)
	}
	return path
}

func TestValidateAgainstSchema(t *testing.T) {
	schemaPath := writeSchema(t, recordsSchema)

	t.Run("valid document passes", func(t *testing.T) {
		data := decode(t, `[{"id": 1, "name": "Alpha", "value": 10}]`)
		if err := ValidateAgainstSchema(data, schemaPath); err != nil {
			t.Errorf("ValidateAgainstSchema() unexpected error: %v", err)
		}
	})

	t.Run("empty array passes", func(t *testing.T) {
		if err := ValidateAgainstSchema(decode(t, `[]`), schemaPath); err != nil {
			t.Errorf("ValidateAgainstSchema() unexpected error: %v", err)
		}
	})

	t.Run("violation maps to SchemaError with dot path", func(t *testing.T) {
		data := decode(t, `[{"id": "oops", "name": "Alpha", "value": 10}]`)
		err := ValidateAgainstSchema(data, schemaPath)
		if err == nil {
			t.Fatal("ValidateAgainstSchema() expected error, got nil")
		}
		se, ok := err.(*SchemaError)
		if !ok {
			t.Fatalf("ValidateAgainstSchema() error type = %T, want *SchemaError", err)
		}
		if !strings.Contains(se.Error(), "[0].id") {
			t.Errorf("ValidateAgainstSchema() error = %q, want mention of [0].id", se.Error())
		}
	})

	t.Run("missing schema file is not a SchemaError", func(t *testing.T) {
		err := ValidateAgainstSchema(decode(t, `[]`), filepath.Join(t.TempDir(), "nope.schema.json"))
		if err == nil {
			t.Fatal("ValidateAgainstSchema() expected error, got nil")
		}
		if _, ok := err.(*SchemaError); ok {
			t.Errorf("ValidateAgainstSchema() returned *SchemaError for missing schema file")
		}
	})

	t.Run("invalid schema document is not a SchemaError", func(t *testing.T) {
		badPath := writeSchema(t, `{"type": 42}`)
		err := ValidateAgainstSchema(decode(t, `[]`), badPath)
		if err == nil {
			t.Fatal("ValidateAgainstSchema() expected error, got nil")
		}
		if _, ok := err.(*SchemaError); ok {
			t.Errorf("ValidateAgainstSchema() returned *SchemaError for uncompilable schema")
		}
	})
}

func TestPointerToPath(t *testing.T) {
	tests := []struct {
		ptr  string
		want string
	}{
		{"", ""},
		{"/", ""},
		{"#/0", "[0]"},
		{"/0/id", "[0].id"},
		{"/foo/bar", "foo.bar"},
		{"/foo/0/bar", "foo[0].bar"},
		{"/a~1b/c~0d", "a/b.c~d"},
	}

	for _, tt := range tests {
		t.Run(tt.ptr, func(t *testing.T) {
			got := pointerToPath(tt.ptr)
			if got != tt.want {
				t.Errorf("pointerToPath(%q) = %q, want %q", tt.ptr, got, tt.want)
			}
		})
	}
}
