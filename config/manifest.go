package config

import (
	"github.com/jf-tech/go-corelib/strs"
)

// ParseMode enumerates the two RecordParser entry points a Job can request.
type ParseMode string

const (
	ModeSingle ParseMode = "single"
	ModeGraph  ParseMode = "graph"
)

// Job describes one manifest entry: an input glob, the layout to decode it
// with, the mode to decode in, and the target entity name. Persistence,
// scheduling and file enumeration belong to whatever orchestrator reads a
// manifest; Job is just the declarative description it reads.
type Job struct {
	Name         string    `yaml:"name"`
	InputGlob    string    `yaml:"inputGlob"`
	LayoutPath   string    `yaml:"layoutPath"`
	Mode         ParseMode `yaml:"mode"`
	TargetEntity string    `yaml:"targetEntity"`
	SourceSystem string    `yaml:"sourceSystem"`
	BatchID      string    `yaml:"batchId"`
}

// Manifest is the top-level shape of a manifest YAML file: a list of jobs.
type Manifest struct {
	Jobs []Job `yaml:"jobs"`
}

// ValidateJob checks the non-empty/membership invariants a manifest job
// must satisfy.
func ValidateJob(j Job) error {
	if strs.FirstNonBlank(j.Name, "") == "" {
		return configErrorf("job: name must not be blank")
	}
	if strs.FirstNonBlank(j.InputGlob, "") == "" {
		return configErrorf("job '%s': inputGlob must not be blank", j.Name)
	}
	if strs.FirstNonBlank(j.LayoutPath, "") == "" {
		return configErrorf("job '%s': layoutPath must not be blank", j.Name)
	}
	switch j.Mode {
	case ModeSingle, ModeGraph:
	default:
		return configErrorf("job '%s': unknown mode '%s'", j.Name, j.Mode)
	}
	if strs.FirstNonBlank(j.TargetEntity, "") == "" {
		return configErrorf("job '%s': targetEntity must not be blank", j.Name)
	}
	return nil
}
