// Package document decodes YAML, JSON, or TOML form submissions into nested
// map[string]any values ready for structural validation.
//
// Format is auto-detected from extension (.yaml, .yml, .json, .toml) when loading files.
//
// Example:
//
//	value, err := document.Load("submission.yaml", document.Options{Required: true})
//	err = typedform.Validator(typedform.FromType[any](UserType), typedform.ConvertOptions{})(value)
package document
