package types

import "fmt"

// MissingFeatureError reports that a required strength column is absent from
// the entire input (or carries no usable values at all). It aborts the
// pipeline before any simulation runs.
type MissingFeatureError struct {
	Column string
	Reason string
}

func (e *MissingFeatureError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("required feature %q: %s", e.Column, e.Reason)
	}
	return fmt.Sprintf("required feature %q is missing from the team stats input", e.Column)
}

// InvalidConfigurationError reports a configuration value the simulator
// cannot run with. It aborts before any simulation runs.
type InvalidConfigurationError struct {
	Param  string
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Param, e.Reason)
}
