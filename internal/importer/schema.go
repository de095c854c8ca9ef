package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	yaml "go.yaml.in/yaml/v3"
)

// PlanSchema is the top-level structure of a plan file (JSON or YAML).
type PlanSchema struct {
	BaseDate         string            `json:"base_date,omitempty" yaml:"base_date"`
	BusinessDaysOnly *bool             `json:"business_days_only,omitempty" yaml:"business_days_only"`
	Milestones       []MilestoneImport `json:"milestones" yaml:"milestones"`
}

// MilestoneImport defines one milestone in the plan file.
type MilestoneImport struct {
	Name       string `json:"name" yaml:"name"`
	OffsetDays *int   `json:"offset_days" yaml:"offset_days"`
}

// LoadPlanSchema reads and parses a plan file. Files ending in .yaml or .yml
// are parsed as YAML; anything else as JSON. Unknown fields are rejected in
// both formats.
func LoadPlanSchema(path string) (*PlanSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePlanSchema(path, data)
}

// ParsePlanSchema parses plan file contents; path only selects the format.
// An empty document yields an empty schema, which validation then rejects.
func ParsePlanSchema(path string, data []byte) (*PlanSchema, error) {
	format := planFormat(path)

	var schema PlanSchema
	var err error
	switch format {
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&schema)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&schema)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing plan file (%s): %w", format, err)
	}
	return &schema, nil
}

func planFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}
