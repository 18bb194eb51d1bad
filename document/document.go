package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Options configures Load.
type Options struct {
	// Format: "yaml", "json", or "toml". Auto-detected from extension if empty.
	Format string

	// Required: if true, missing files cause an error. Default: false (returns empty map).
	Required bool
}

// Load reads and decodes the document at path.
func Load(path string, opts Options) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if opts.Required {
				return nil, fmt.Errorf("required document not found: %s: %w", path, err)
			}
			return make(map[string]any), nil
		}
		return nil, fmt.Errorf("read document %s: %w", path, err)
	}

	format := opts.Format
	if format == "" {
		format = inferFormat(path)
	}

	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode parses data in the given format.
// Nested mappings are always returned as map[string]any; an empty document yields an empty map.
func Decode(data []byte, format string) (map[string]any, error) {
	var raw map[string]any
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse YAML document: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse JSON document: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse TOML document: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported document format: %q (supported: yaml, json, toml)", format)
	}

	if raw == nil {
		return make(map[string]any), nil
	}
	return normalizeMap(raw), nil
}

// normalizeMap converts nested map[any]any values (YAML with non-string keys) to map[string]any.
func normalizeMap(m map[string]any) map[string]any {
	for key, val := range m {
		m[key] = normalizeValue(val)
	}
	return m
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return normalizeMap(v)
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[fmt.Sprint(key)] = normalizeValue(val)
		}
		return out
	case []any:
		for i, val := range v {
			v[i] = normalizeValue(val)
		}
		return v
	default:
		return value
	}
}

func inferFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}
