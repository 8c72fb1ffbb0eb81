// Package shelter implements the in-memory adoption roster: the Pet model,
// the ordered Shelter store with its search and adopt operations, and the
// embedded starter roster used to seed a new shelter.
package shelter

import (
	"fmt"

	"github.com/google/uuid"
)

// Pet represents a single animal in the shelter's roster.
type Pet struct {
	// ID is a unique identifier assigned when the pet is registered.
	ID string
	// Name is the pet's given name. Names are not enforced unique; adopting
	// by a shared name adopts every available pet carrying it.
	Name string
	// Type is the kind of animal, conventionally "dog" or "cat".
	Type string
	// Breed is the pet's breed.
	Breed string
	// Available reports whether the pet can still be adopted.
	Available bool
}

// NewPet registers a new pet that is available for adoption.
func NewPet(name, petType, breed string) Pet {
	return Pet{
		ID:        uuid.NewString(),
		Name:      name,
		Type:      petType,
		Breed:     breed,
		Available: true,
	}
}

// String renders the pet as a single roster listing line.
func (p Pet) String() string {
	return fmt.Sprintf("%s, %s, %s", p.Name, p.Type, p.Breed)
}
