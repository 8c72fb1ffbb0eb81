package shelter

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed/roster.yaml
var seedFS embed.FS

type rosterFile struct {
	Pets []rosterEntry `yaml:"pets"`
}

type rosterEntry struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Breed string `yaml:"breed"`
}

// DefaultRoster returns the pets from the embedded starter roster, in file
// order, all available for adoption.
func DefaultRoster() ([]Pet, error) {
	data, err := seedFS.ReadFile("seed/roster.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded roster: %w", err)
	}

	var roster rosterFile
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}

	pets := make([]Pet, 0, len(roster.Pets))
	for _, e := range roster.Pets {
		pets = append(pets, NewPet(e.Name, e.Type, e.Breed))
	}
	return pets, nil
}

// NewSeeded returns a shelter populated with the embedded starter roster.
func NewSeeded() (*Shelter, error) {
	pets, err := DefaultRoster()
	if err != nil {
		return nil, err
	}

	s := New()
	for _, p := range pets {
		s.Add(p)
	}
	return s, nil
}
