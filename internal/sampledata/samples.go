// Package sampledata embeds the demo documents shipped with the CLI:
// one for each conversion kind, described by a YAML manifest. The TUI
// cycles through them and `markbridge sample` lists and converts them.
package sampledata

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/auroranest/markbridge/internal/util"
	"github.com/auroranest/markbridge/pkg/api"
)

//go:embed manifest.yaml samples
var content embed.FS

// Sample describes one embedded demo document.
type Sample struct {
	Name    string `yaml:"name" json:"name"`
	Kind    string `yaml:"kind" json:"kind"`
	File    string `yaml:"file" json:"file"`
	Summary string `yaml:"summary" json:"summary"`
}

// APIKind resolves the manifest kind string.
func (s Sample) APIKind() api.Kind {
	k, err := api.ParseKind(s.Kind)
	if err != nil {
		return api.KindText
	}
	return k
}

type manifest struct {
	Samples []Sample `yaml:"samples"`
}

var (
	loadOnce sync.Once
	loaded   []Sample
	loadErr  error
)

// All returns the manifest entries in declaration order.
func All() ([]Sample, error) {
	loadOnce.Do(func() {
		raw, err := content.ReadFile("manifest.yaml")
		if err != nil {
			loadErr = fmt.Errorf("read sample manifest: %w", err)
			return
		}
		var m manifest
		if err := yaml.Unmarshal(raw, &m); err != nil {
			loadErr = fmt.Errorf("parse sample manifest: %w", err)
			return
		}
		loaded = m.Samples
	})
	return loaded, loadErr
}

// Names returns the sample names in manifest order.
func Names() []string {
	all, err := All()
	if err != nil {
		return nil
	}
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	return names
}

// Find resolves a name to a sample, trying an exact match first and a
// fuzzy match second.
func Find(name string) (Sample, error) {
	all, err := All()
	if err != nil {
		return Sample{}, err
	}
	for _, s := range all {
		if s.Name == name {
			return s, nil
		}
	}
	ranked := util.Rank(name, Names(), 1)
	if len(ranked) == 1 {
		for _, s := range all {
			if s.Name == ranked[0] {
				return s, nil
			}
		}
	}
	return Sample{}, fmt.Errorf("no sample named %q (try `markbridge sample list`)", name)
}

// Text loads the sample's document text.
func Text(s Sample) (string, error) {
	raw, err := content.ReadFile("samples/" + s.File)
	if err != nil {
		return "", fmt.Errorf("read sample %s: %w", s.Name, err)
	}
	return string(raw), nil
}

// Load resolves a name and returns the sample with its text.
func Load(name string) (Sample, string, error) {
	s, err := Find(name)
	if err != nil {
		return Sample{}, "", err
	}
	text, err := Text(s)
	if err != nil {
		return Sample{}, "", err
	}
	return s, text, nil
}
