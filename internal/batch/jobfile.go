// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// JobFile is the on-disk representation of a batch job list. A surveyor
// can describe a whole set of conversions once and rerun them as new
// instrument dumps arrive.
type JobFile struct {
	Jobs []Job `yaml:"jobs"`
}

// ReadJobFile loads a batch job list from a YAML file. Every job is
// validated before any conversion runs.
func ReadJobFile(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	var jf JobFile
	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, fmt.Errorf("parsing job file: %w", err)
	}
	if len(jf.Jobs) == 0 {
		return nil, fmt.Errorf("job file %s lists no jobs", path)
	}
	for i, job := range jf.Jobs {
		if err := job.Validate(); err != nil {
			return nil, fmt.Errorf("job %d: %w", i+1, err)
		}
	}
	return jf.Jobs, nil
}

// WriteJobFile saves a job list to a YAML file.
func WriteJobFile(path string, jobs []Job) error {
	data, err := yaml.Marshal(&JobFile{Jobs: jobs})
	if err != nil {
		return fmt.Errorf("marshaling job file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
