package typedform

import (
	"io"
	"log/slog"
)

// DispatchOption configures ValidateSubfields using the functional options pattern.
type DispatchOption func(*dispatchConfig)

type dispatchConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report failed validations.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) DispatchOption {
	return func(cfg *dispatchConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

func newDispatchConfig(opts []DispatchOption) dispatchConfig {
	cfg := dispatchConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ValidateSubfields turns a field error producer into a value validator.
//
// The validator returns nil when fn yields nothing, and a *ValidationError holding every
// field error in order otherwise. A contract violation reported by fn (such as an
// *InvalidPathSegmentError) is returned as is and never folded into the aggregate.
func ValidateSubfields[T any](fn FieldErrorFunc[T], opts ...DispatchOption) func(T) error {
	cfg := newDispatchConfig(opts)
	return func(value T) error {
		fieldErrors, err := CollectFieldErrors(fn(value))
		if err != nil {
			cfg.logger.Warn("validation result rejected", "error", err)
			return err
		}
		if len(fieldErrors) == 0 {
			return nil
		}
		cfg.logger.Debug("validation failed", "errors", len(fieldErrors))
		return &ValidationError{FieldErrors: fieldErrors}
	}
}

// Valid turns a field error producer into a boolean check.
// It stops at the first field error. The error result is only set on contract violations.
func Valid[T any](fn FieldErrorFunc[T]) func(T) (bool, error) {
	return func(value T) (bool, error) {
		for _, err := range fn(value) {
			if err != nil {
				return false, err
			}
			return false, nil
		}
		return true, nil
	}
}

// Validator adapts src and wraps it with ValidateSubfields.
func Validator[T any](src Source[T], opts ConvertOptions, dopts ...DispatchOption) func(T) error {
	return ValidateSubfields(Adapt(src, opts), dopts...)
}
