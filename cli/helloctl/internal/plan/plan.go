package plan

import (
	"os"

	yaml "gopkg.in/yaml.v3"
)

// Rule declares one sweep: files under Target whose names contain Keyword
// move into Target/Keyword.
type Rule struct {
	Target  string `yaml:"target"`
	Keyword string `yaml:"keyword"`
	DryRun  bool   `yaml:"dry_run"`
	Table   bool   `yaml:"table"`
}

// File is a sweep plan, applied rule by rule in order.
type File struct {
	Rules []Rule `yaml:"rules"`
}

func Read(p string) (File, error) {
	var f File
	b, err := os.ReadFile(p)
	if err != nil {
		return f, err
	}
	if err := yaml.Unmarshal(b, &f); err != nil {
		return f, err
	}
	return f, nil
}
