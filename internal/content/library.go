// Package content holds the canned dilemma and perspective tables. The three
// "minds" never infer anything: each response is fixed text keyed by dilemma.
// The tables are data, parsed once at startup, not executable branches.
package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed dilemmas.yaml
var dilemmasYAML []byte

// CustomKey is the response set used for user-authored dilemmas.
const CustomKey = "custom"

type Dilemma struct {
	Key   string `yaml:"key" json:"key"`
	Title string `yaml:"title" json:"title"`
	Text  string `yaml:"text" json:"text"`
}

// PerspectiveSet is one canned response per philosophical viewpoint, as
// rich-text fragments.
type PerspectiveSet struct {
	Utilitarian    string `yaml:"utilitarian" json:"utilitarian_html"`
	Deontologist   string `yaml:"deontologist" json:"deontologist_html"`
	VirtueEthicist string `yaml:"virtue_ethicist" json:"virtue_ethicist_html"`
}

type Library struct {
	dilemmas  []Dilemma
	byKey     map[string]Dilemma
	responses map[string]PerspectiveSet
}

func Load() (*Library, error) {
	var raw struct {
		Dilemmas  []Dilemma                 `yaml:"dilemmas"`
		Responses map[string]PerspectiveSet `yaml:"responses"`
	}
	if err := yaml.Unmarshal(dilemmasYAML, &raw); err != nil {
		return nil, fmt.Errorf("parse dilemma tables: %w", err)
	}

	lib := &Library{
		dilemmas:  raw.Dilemmas,
		byKey:     make(map[string]Dilemma, len(raw.Dilemmas)),
		responses: raw.Responses,
	}
	for _, d := range raw.Dilemmas {
		if d.Key == "" || d.Title == "" || d.Text == "" {
			return nil, fmt.Errorf("dilemma entry %q incomplete", d.Key)
		}
		if _, dup := lib.byKey[d.Key]; dup {
			return nil, fmt.Errorf("duplicate dilemma key %q", d.Key)
		}
		lib.byKey[d.Key] = d

		rs, ok := raw.Responses[d.Key]
		if !ok {
			return nil, fmt.Errorf("dilemma %q has no response set", d.Key)
		}
		if rs.Utilitarian == "" || rs.Deontologist == "" || rs.VirtueEthicist == "" {
			return nil, fmt.Errorf("dilemma %q response set incomplete", d.Key)
		}
	}
	if _, ok := raw.Responses[CustomKey]; !ok {
		return nil, fmt.Errorf("response table missing %q entry", CustomKey)
	}
	return lib, nil
}

func (l *Library) Dilemmas() []Dilemma {
	out := make([]Dilemma, len(l.dilemmas))
	copy(out, l.dilemmas)
	return out
}

func (l *Library) Dilemma(key string) (Dilemma, bool) {
	d, ok := l.byKey[key]
	return d, ok
}

func (l *Library) Responses(key string) (PerspectiveSet, bool) {
	rs, ok := l.responses[key]
	return rs, ok
}
