package config

import (
	"encoding/json"

	"github.com/re-cinq/fsd/internal/slice"
)

// Schema returns a JSON Schema describing .fsd.yaml as indented JSON.
func Schema() []byte {
	schema := map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"title":                FileName,
		"description":          "Configuration for fsd, which scaffolds Feature-Sliced Design slices under layers resolved from tsconfig path aliases. Every key is optional.",
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"tsconfig": map[string]any{
				"type":        "string",
				"default":     "tsconfig.json",
				"description": "Path of the file holding compilerOptions.paths, relative to the workspace root. Comments are allowed in that file.",
			},
			"extension": map[string]any{
				"type":        "string",
				"default":     "ts",
				"description": "Extension of the empty index files created in a slice and its segments, without the leading dot (e.g. \"ts\", \"tsx\", \"js\").",
			},
			"layers": map[string]any{
				"type":        "array",
				"default":     DefaultLayers,
				"description": "Layer names offered by the layer picker. Each name N resolves through the \"@N/*\" alias.",
				"items":       map[string]any{"type": "string"},
			},
			"segments": map[string]any{
				"type":        "array",
				"description": "Segments preselected in the segment picker.",
				"items": map[string]any{
					"type": "string",
					"enum": slice.SegmentNames(),
				},
			},
		},
	}

	out, _ := json.MarshalIndent(schema, "", "  ")
	return out
}
