// Package session implements the adoption dialogue as an explicit state
// machine: one line of input in, a batch of typed replies out. It owns every
// piece of text the user sees, so the CLI and TUI frontends render the same
// conversation. The session holds no goroutines and performs no I/O; the
// frontend decides when to read the next line.
package session

import (
	"fmt"
	"strings"

	"github.com/alexander-akhmetov/petshelter/internal/debug"
	"github.com/alexander-akhmetov/petshelter/internal/shelter"
)

// State identifies where the dialogue currently is.
type State int

const (
	// StateMenu is the initial state: the main menu is shown and the next
	// input line picks an option.
	StateMenu State = iota
	// StateAwaitType waits for the pet type to search for.
	StateAwaitType
	// StateAwaitBreed waits for the breed to search for, then runs the search.
	StateAwaitBreed
	// StateAwaitAdoptName waits for the name of the pet to adopt.
	StateAwaitAdoptName
	// StateExit is terminal: the session is over.
	StateExit
)

const defaultShelterName = "the pet shelter"

const menuText = `* Enter 1 to see available pets
* Enter 2 to search for a pet by type and breed
* Enter 3 to adopt the pet by name
* Enter 4 to exit`

const (
	msgNoPets        = "There are no pets currently available."
	msgNoneAvailable = "Sorry, no pets are available right now."
	msgNameRequired  = "A name is required to adopt a pet."
	msgFarewell      = "Thank you for visiting. Goodbye!"

	promptType  = "Enter the type of pet to search for (dog or cat):"
	promptBreed = "Enter the breed to search for (press enter to skip):"
	promptName  = "Enter the name of the pet you would like to adopt:"
)

// MenuText returns the main menu exactly as shown to the user.
func MenuText() string { return menuText }

// Session drives the adoption dialogue over a shelter. It is not safe for
// concurrent use; frontends feed it one line at a time.
type Session struct {
	shelter     *shelter.Shelter
	state       State
	typeFilter  string
	shelterName string
}

// New returns a session over the given shelter, positioned at the main menu.
func New(sh *shelter.Shelter) *Session {
	return &Session{shelter: sh, shelterName: defaultShelterName}
}

// SetShelterName overrides the shelter name used in the welcome banner.
// Empty names are ignored.
func (s *Session) SetShelterName(name string) {
	if name != "" {
		s.shelterName = name
	}
}

// State returns the current dialogue state.
func (s *Session) State() State { return s.state }

// Done reports whether the session has ended.
func (s *Session) Done() bool { return s.state == StateExit }

// Prompt returns the input prompt for the current state, or an empty string
// when the session is at the main menu or over.
func (s *Session) Prompt() string {
	switch s.state {
	case StateAwaitType:
		return promptType
	case StateAwaitBreed:
		return promptBreed
	case StateAwaitAdoptName:
		return promptName
	default:
		return ""
	}
}

// Start returns the opening replies: the welcome banner and the main menu.
func (s *Session) Start() []Reply {
	return []Reply{Banner(fmt.Sprintf("Welcome to %s!", s.shelterName)), Menu()}
}

// Handle feeds one line of user input to the session and returns the replies
// to render plus whether the session is over. Input is trimmed of surrounding
// whitespace before interpretation.
func (s *Session) Handle(line string) ([]Reply, bool) {
	line = strings.TrimSpace(line)

	switch s.state {
	case StateAwaitType:
		return s.handleType(line)
	case StateAwaitBreed:
		return s.handleBreed(line)
	case StateAwaitAdoptName:
		return s.handleAdoptName(line)
	case StateExit:
		return nil, true
	default:
		return s.handleMenu(line)
	}
}

// Quit ends the session from any state, as when the input stream closes or
// the user interrupts. It is a no-op if the session is already over.
func (s *Session) Quit() []Reply {
	if s.state == StateExit {
		return nil
	}
	s.state = StateExit
	debug.Logf("session: quit")
	return []Reply{Farewell(msgFarewell)}
}

func (s *Session) handleMenu(choice string) ([]Reply, bool) {
	switch choice {
	case "1":
		return append(s.listAvailable(), Menu()), false
	case "2":
		s.state = StateAwaitType
		debug.Logf("session: menu -> await type")
		return []Reply{Prompt(promptType)}, false
	case "3":
		s.state = StateAwaitAdoptName
		debug.Logf("session: menu -> await adopt name")
		return []Reply{Prompt(promptName)}, false
	case "4":
		s.state = StateExit
		debug.Logf("session: exit selected")
		return []Reply{Farewell(msgFarewell)}, true
	default:
		// Anything else just shows the menu again.
		return []Reply{Menu()}, false
	}
}

func (s *Session) listAvailable() []Reply {
	pets := s.shelter.ListAvailable()
	debug.Logf("session: list -> %d available", len(pets))
	if len(pets) == 0 {
		return []Reply{Info(msgNoPets)}
	}

	replies := make([]Reply, 0, len(pets))
	for _, p := range pets {
		replies = append(replies, PetLine(p.String()))
	}
	return replies
}

// handleType records the type filter. Only the exact strings "dog" and "cat"
// count; anything else means no type filter.
func (s *Session) handleType(line string) ([]Reply, bool) {
	s.typeFilter = ""
	if line == "dog" || line == "cat" {
		s.typeFilter = line
	}
	s.state = StateAwaitBreed
	return []Reply{Prompt(promptBreed)}, false
}

func (s *Session) handleBreed(breed string) ([]Reply, bool) {
	petType := s.typeFilter
	s.typeFilter = ""
	s.state = StateMenu

	pets := s.shelter.Search(petType, breed)
	debug.Logf("session: search type=%q breed=%q -> %d match(es)", petType, breed, len(pets))
	if len(pets) == 0 {
		return []Reply{Info(noResultsMessage(petType, breed)), Menu()}, false
	}

	replies := make([]Reply, 0, len(pets)+1)
	for _, p := range pets {
		replies = append(replies, PetLine(p.String()))
	}
	return append(replies, Menu()), false
}

func (s *Session) handleAdoptName(name string) ([]Reply, bool) {
	s.state = StateMenu

	if name == "" {
		return []Reply{Error(msgNameRequired), Menu()}, false
	}

	if s.shelter.Adopt(name) {
		debug.Logf("session: adopted %q", name)
		msg := fmt.Sprintf("Congratulations! You have adopted %s.", name)
		return []Reply{Info(msg), Menu()}, false
	}

	debug.Logf("session: adoption failed for %q", name)
	msg := fmt.Sprintf("Sorry, we could not find %s. Please check the spelling and try again.", name)
	return []Reply{Error(msg), Menu()}, false
}

// noResultsMessage picks the empty-search wording based on which filters the
// user actually supplied.
func noResultsMessage(petType, breed string) string {
	switch {
	case petType != "" && breed != "":
		return fmt.Sprintf("Sorry, no %s pets of the %s breed are available right now.", petType, breed)
	case petType != "":
		return fmt.Sprintf("Sorry, no %s pets are available right now.", petType)
	case breed != "":
		return fmt.Sprintf("Sorry, no pets of the %s breed are available right now.", breed)
	default:
		return msgNoneAvailable
	}
}
