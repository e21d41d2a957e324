package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# taskproc configuration file
# Values can be overridden by environment variables or CLI flags

# Log level: debug, info, warn, or error
log_level = "info"

# Log format: text, json, or logfmt
log_format = "text"

# Optional JSON Schema applied to the input document before the built-in
# record checks (also settable per run with -schema)
# schema_file = "tasks.schema.json"
`
}
