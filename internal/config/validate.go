package config

import (
	"fmt"
	"strings"

	"github.com/re-cinq/fsd/internal/slice"
)

// Validate checks a resolved Config for semantic errors.
// Returns a list of human/agent-readable error strings, one per issue.
func Validate(cfg *Config) []string {
	var errs []string

	if cfg.TSConfig == "" {
		errs = append(errs, "tsconfig: required field is empty")
	}

	switch {
	case cfg.Extension == "":
		errs = append(errs, "extension: required field is empty")
	case strings.HasPrefix(cfg.Extension, "."):
		errs = append(errs, fmt.Sprintf("extension: %q must not start with a dot", cfg.Extension))
	case strings.ContainsAny(cfg.Extension, `/\`):
		errs = append(errs, fmt.Sprintf("extension: %q must not contain path separators", cfg.Extension))
	}

	if len(cfg.Layers) == 0 {
		errs = append(errs, "layers: at least one layer is required")
	}
	seen := make(map[string]bool)
	for i, l := range cfg.Layers {
		if strings.TrimSpace(l) == "" {
			errs = append(errs, fmt.Sprintf("layers[%d]: required field is empty", i))
		} else if seen[l] {
			errs = append(errs, fmt.Sprintf("layers[%d]: duplicate layer %q", i, l))
		} else {
			seen[l] = true
		}
	}

	for i, s := range cfg.Segments {
		if !slice.Segment(s).Valid() {
			errs = append(errs, fmt.Sprintf("segments[%d]: unknown segment %q (expected one of: %s)",
				i, s, strings.Join(slice.SegmentNames(), ", ")))
		}
	}

	return errs
}
