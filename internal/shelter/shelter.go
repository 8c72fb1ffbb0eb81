package shelter

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Shelter is an ordered, in-memory collection of pets. Registration order is
// preserved in every listing and search result. The zero value is not usable;
// create shelters with New or NewSeeded. Shelter is safe for concurrent use.
type Shelter struct {
	mu   sync.RWMutex
	pets []Pet
}

// New returns an empty shelter.
func New() *Shelter {
	return &Shelter{pets: []Pet{}}
}

// Add registers a pet at the end of the roster. Duplicate names are allowed;
// the roster never shrinks. Pets without an ID get one assigned.
func (s *Shelter) Add(p Pet) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pets = append(s.pets, p)
}

// Len returns the number of registered pets, adopted ones included.
func (s *Shelter) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pets)
}

// ListAvailable returns the pets currently available for adoption, in
// registration order. The result is never nil and is a copy; callers may
// mutate it freely.
func (s *Shelter) ListAvailable() []Pet {
	return s.Search("", "")
}

// Search returns the available pets matching the given type and breed
// filters, in registration order. Filters are exact and case-sensitive; an
// empty filter matches any value. Adopted pets are never returned. The
// result is never nil.
func (s *Shelter) Search(petType, breed string) []Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []Pet{}
	for _, p := range s.pets {
		if !p.Available {
			continue
		}
		if petType != "" && p.Type != petType {
			continue
		}
		if breed != "" && p.Breed != breed {
			continue
		}
		matches = append(matches, p)
	}
	return matches
}

// Adopt marks every available pet whose name matches the given name as
// adopted. The name comparison ignores case. It returns true if at least one
// pet was adopted; an empty name always fails without touching the roster.
func (s *Shelter) Adopt(name string) bool {
	if name == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	adopted := false
	for i := range s.pets {
		if !s.pets[i].Available {
			continue
		}
		if !strings.EqualFold(s.pets[i].Name, name) {
			continue
		}
		s.pets[i].Available = false
		adopted = true
	}
	return adopted
}
