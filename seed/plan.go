package seed

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Plan is a declarative description of entities to seed.
type Plan struct {
	// Name identifies the plan in logs and reports.
	Name string `yaml:"name"`

	// Description explains what the seeded data set is for.
	Description string `yaml:"description,omitempty"`

	// Steps are executed strictly in order.
	Steps []Step `yaml:"steps"`
}

// Step persists Count instances of one catalog entity.
type Step struct {
	// Entity is the catalog name of the entity to persist.
	// Matched after NFC normalization, so plan files written with composed or
	// decomposed Unicode both resolve.
	Entity string `yaml:"entity"`

	// Count is the number of instances to persist. Defaults to 1.
	Count int `yaml:"count,omitempty"`

	// Overrides supplies per-field values; absent fields use the factory's
	// defaults. Applied identically to every instance the step creates.
	Overrides map[string]any `yaml:"overrides,omitempty"`
}

// PlanError reports a plan that failed to load or validate.
type PlanError struct {
	// Path is the plan file path, empty when parsing from memory.
	Path string

	// Message describes the failure, including CUE schema details when the
	// document parsed but did not conform.
	Message string
}

// Error implements the error interface.
func (e *PlanError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// LoadPlan reads, validates, and decodes a plan file.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &PlanError{Path: path, Message: fmt.Sprintf("read plan: %v", err)}
	}

	plan, err := ParsePlan(data)
	if err != nil {
		var perr *PlanError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return plan, nil
}

// ParsePlan validates and decodes a YAML plan document.
//
// Validation happens against the raw document, before defaults are applied,
// so the schema sees exactly what the author wrote.
func ParsePlan(data []byte) (*Plan, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &PlanError{Message: fmt.Sprintf("parse plan: %v", err)}
	}
	if raw == nil {
		return nil, &PlanError{Message: "parse plan: document is empty"}
	}

	if err := validatePlan(raw); err != nil {
		return nil, err
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, &PlanError{Message: fmt.Sprintf("decode plan: %v", err)}
	}

	for i := range plan.Steps {
		if plan.Steps[i].Count == 0 {
			plan.Steps[i].Count = 1
		}
		plan.Steps[i].Entity = norm.NFC.String(plan.Steps[i].Entity)
	}

	return &plan, nil
}
