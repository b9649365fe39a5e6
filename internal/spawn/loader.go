package spawn

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrPlanNotFound is returned by PlanFile.Find for an unknown name.
var ErrPlanNotFound = errors.New("plan not found")

// PlanFile is the root of a YAML plan file.
type PlanFile struct {
	Plans []Plan `yaml:"plans"`
}

// LoadPlans reads and decodes the plan file at path. Plans without a name
// take their enemy name.
func LoadPlans(path string) (*PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}
	return ParsePlans(data)
}

// ParsePlans decodes YAML plan file contents.
func ParsePlans(data []byte) (*PlanFile, error) {
	var pf PlanFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan file: %w", err)
	}
	for i := range pf.Plans {
		if pf.Plans[i].Name == "" {
			pf.Plans[i].Name = pf.Plans[i].Enemy
		}
	}
	return &pf, nil
}

// Find returns the plan with the given name.
func (pf *PlanFile) Find(name string) (Plan, error) {
	for _, p := range pf.Plans {
		if p.Name == name {
			return p, nil
		}
	}
	return Plan{}, fmt.Errorf("%w: %q", ErrPlanNotFound, name)
}
