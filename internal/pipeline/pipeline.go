package pipeline

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/rekhak/taskproc/internal/task"
)

// Pipeline orchestrates one processing run. The Read and Write collaborators
// default to the real file implementations; tests may replace them. A
// Pipeline carries no state across runs, so separate invocations are
// independent.
type Pipeline struct {
	Logger     *log.Logger
	SchemaFile string

	Read  func(path string) (any, error)
	Write func(path string, records []task.OutputRecord) error
}

// New returns a Pipeline wired to the file reader and writer collaborators.
// schemaFile may be empty, in which case only the built-in checks run.
func New(logger *log.Logger, schemaFile string) *Pipeline {
	return &Pipeline{
		Logger:     logger,
		SchemaFile: schemaFile,
		Read:       ReadInput,
		Write:      WriteOutput,
	}
}

// Run processes inputPath into outputPath. Any failure short-circuits the
// remaining stages, so the output file is never touched unless every prior
// stage succeeded. All failures come back as error values; Run never panics.
func (p *Pipeline) Run(inputPath, outputPath string) error {
	records, err := p.validate(inputPath)
	if err != nil {
		return err
	}

	out := task.Enrich(records)

	if err := p.Write(outputPath, out); err != nil {
		return err
	}
	p.Logger.Info("wrote output file", "path", outputPath)
	p.Logger.Info("processing complete", "records", len(out))
	return nil
}

// Validate runs the read and validation stages without writing anything and
// reports how many records passed.
func (p *Pipeline) Validate(inputPath string) (int, error) {
	records, err := p.validate(inputPath)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

func (p *Pipeline) validate(inputPath string) ([]task.Record, error) {
	data, err := p.Read(inputPath)
	if err != nil {
		return nil, err
	}
	p.Logger.Info("read input file", "path", inputPath)

	if p.SchemaFile != "" {
		if err := task.ValidateAgainstSchema(data, p.SchemaFile); err != nil {
			var se *task.SchemaError
			if errors.As(err, &se) {
				return nil, err
			}
			// Schema could not be loaded or compiled.
			return nil, &InputError{Msg: fmt.Sprintf("Error reading schema file: %v", err), Err: err}
		}
		p.Logger.Debug("schema validation passed", "schema", p.SchemaFile)
	}

	records, err := task.ValidateCollection(data)
	if err != nil {
		return nil, err
	}
	p.Logger.Debug("validated records", "count", len(records))
	return records, nil
}
