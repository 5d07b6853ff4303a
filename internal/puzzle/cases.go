package puzzle

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Case is one verification input pair. Both values must be non-negative
// and have the same number of decimal digits once constructed.
type Case struct {
	A int64 `yaml:"a"`
	B int64 `yaml:"b"`
}

// CaseFile is the on-disk shape of a verification case file:
//
//	cases:
//	  - a: 1234
//	    b: 5678
type CaseFile struct {
	Cases []Case `yaml:"cases"`
}

// LoadCases reads verification cases from a YAML file. Negative values
// are rejected here so the solver only ever sees contract-conforming
// input; digit-count mismatches are left to the solver, which reports
// them per case.
func LoadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is a user-supplied case file
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}

	var file CaseFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse case file %s: %w", path, err)
	}
	if len(file.Cases) == 0 {
		return nil, fmt.Errorf("case file %s contains no cases", path)
	}

	for i, c := range file.Cases {
		if c.A < 0 || c.B < 0 {
			return nil, fmt.Errorf("case %d in %s has a negative value", i, path)
		}
	}
	return file.Cases, nil
}
