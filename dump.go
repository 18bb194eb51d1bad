package typedform

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Azhovan/typedform/internal/pathfmt"
)

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

// dumpConfig holds options for DumpErrors.
type dumpConfig struct {
	asJSON bool   // Output as JSON instead of text format
	asYAML bool   // Output as YAML instead of text format
	indent string // Indentation for JSON output (default: "  ")
}

// AsJSON outputs field errors as a JSON array.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.asJSON = true
		cfg.asYAML = false
	}
}

// AsYAML outputs field errors as a YAML sequence.
func AsYAML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.asYAML = true
		cfg.asJSON = false
	}
}

// WithIndent sets the indentation for JSON output.
// Default is two spaces ("  ").
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// dumpRecord is the serialized form of a FieldError. Symbols are rendered as text.
type dumpRecord struct {
	Path    []string `json:"path" yaml:"path"`
	Message string   `json:"message" yaml:"message"`
}

// DumpErrors writes field errors in order.
// The default text format is one "path: message" line per error.
func DumpErrors(w io.Writer, errs []FieldError, opts ...DumpOption) error {
	config := dumpConfig{
		indent: "  ",
	}
	for _, opt := range opts {
		opt(&config)
	}

	switch {
	case config.asJSON:
		return dumpAsJSON(w, errs, config)
	case config.asYAML:
		return dumpAsYAML(w, errs)
	default:
		return dumpAsText(w, errs)
	}
}

func dumpAsText(w io.Writer, errs []FieldError) error {
	for _, fe := range errs {
		if _, err := fmt.Fprintf(w, "%s: %s\n", pathfmt.Dotted(fe.Path), fe.Message); err != nil {
			return fmt.Errorf("write error: %w", err)
		}
	}
	return nil
}

func dumpAsJSON(w io.Writer, errs []FieldError, config dumpConfig) error {
	records := toRecords(errs)

	var data []byte
	var err error
	if config.indent != "" {
		data, err = json.MarshalIndent(records, "", config.indent)
	} else {
		data, err = json.Marshal(records)
	}
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

func dumpAsYAML(w io.Writer, errs []FieldError) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toRecords(errs)); err != nil {
		return fmt.Errorf("yaml encode error: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("yaml encode error: %w", err)
	}
	return nil
}

func toRecords(errs []FieldError) []dumpRecord {
	records := make([]dumpRecord, len(errs))
	for i, fe := range errs {
		records[i] = dumpRecord{
			Path:    pathfmt.Segments(fe.Path),
			Message: fe.Message,
		}
	}
	return records
}
