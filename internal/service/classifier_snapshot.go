package service

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fikryfauzn/icarus/internal/model"
)

// weightsSnapshot is the on-disk YAML shape of the classifier state.
type weightsSnapshot struct {
	Weights map[string]map[string]float64 `yaml:"weights"`
}

// SaveWeights writes the classifier's keyword weights to a YAML file so
// learned corrections survive process restarts.
func (c *Classifier) SaveWeights(path string) error {
	snapshot := weightsSnapshot{Weights: make(map[string]map[string]float64, len(c.weights))}
	for workType, table := range c.weights {
		copied := make(map[string]float64, len(table))
		for kw, w := range table {
			copied[kw] = w
		}
		snapshot.Weights[string(workType)] = copied
	}

	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal classifier weights: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write classifier weights to %q: %w", path, err)
	}
	return nil
}

// LoadClassifier restores a classifier from a weights file. A missing
// file is not an error: it yields a fresh classifier with default
// weights. Stored weights overlay the defaults, so keywords added since
// the snapshot keep their 1.0 starting weight.
func LoadClassifier(path string) (*Classifier, error) {
	c := NewClassifier()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read classifier weights from %q: %w", path, err)
	}

	var snapshot weightsSnapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parse classifier weights %q: %w", path, err)
	}

	for workType, stored := range snapshot.Weights {
		table, ok := c.weights[model.WorkType(workType)]
		if !ok {
			continue
		}
		for kw, w := range stored {
			if _, known := table[kw]; known {
				table[kw] = w
			}
		}
	}
	return c, nil
}
