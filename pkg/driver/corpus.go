// Package driver loads the YAML fixture corpora exercised by the parser
// and analysis tests.
package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Corpus is a named collection of fixture cases.
type Corpus struct {
	Path  string
	Cases []*Case
}

// Case is one fixture: a source expression plus the expectations the test
// harness checks. Zero-valued expectations are skipped, except Canonical,
// whose absence means rendering must reproduce Source verbatim.
type Case struct {
	Name      string
	Source    string
	Canonical string
	Targets   []string
	ParseErr  bool
}

type corpusDisk struct {
	Cases []caseDisk `yaml:"cases"`
}

type caseDisk struct {
	Name      string   `yaml:"name"`
	Source    string   `yaml:"source"`
	Canonical string   `yaml:"canonical,omitempty"`
	Targets   []string `yaml:"targets,omitempty"`
	ParseErr  bool     `yaml:"parse_error,omitempty"`
}

// LoadCorpus parses a fixture corpus from disk.
func LoadCorpus(path string) (*Corpus, error) {
	if path == "" {
		return nil, fmt.Errorf("corpus: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var raw corpusDisk
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("corpus: parse %s: %w", abs, err)
	}

	corpus := &Corpus{Path: abs}
	seen := make(map[string]struct{}, len(raw.Cases))
	for i, entry := range raw.Cases {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, fmt.Errorf("corpus: %s: case %d has no name", abs, i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("corpus: %s: duplicate case name %q", abs, name)
		}
		seen[name] = struct{}{}
		if strings.TrimSpace(entry.Source) == "" {
			return nil, fmt.Errorf("corpus: %s: case %q has no source", abs, name)
		}
		corpus.Cases = append(corpus.Cases, &Case{
			Name:      name,
			Source:    entry.Source,
			Canonical: entry.Canonical,
			Targets:   entry.Targets,
			ParseErr:  entry.ParseErr,
		})
	}
	if len(corpus.Cases) == 0 {
		return nil, fmt.Errorf("corpus: %s: no cases", abs)
	}
	return corpus, nil
}

// WantRender reports the text rendering is expected to produce for the
// case: the explicit canonical form when present, the source otherwise.
func (c *Case) WantRender() string {
	if c.Canonical != "" {
		return c.Canonical
	}
	return strings.TrimSpace(c.Source)
}
