package session

// Kind identifies the type of reply.
type Kind int

const (
	// KindBanner is the one-time welcome line shown at session start.
	KindBanner Kind = iota
	// KindMenu is the main menu text.
	KindMenu
	// KindPrompt asks the user for the next line of input.
	KindPrompt
	// KindPet is a single pet listing line.
	KindPet
	// KindInfo is an informational outcome message.
	KindInfo
	// KindError is a validation or lookup failure message.
	KindError
	// KindFarewell is the goodbye line printed when the session ends.
	KindFarewell
)

// Reply is a single piece of output produced by the session in response to
// user input. Frontends decide how each kind is rendered.
type Reply struct {
	Kind Kind
	Text string
}

// Banner creates a KindBanner reply.
func Banner(text string) Reply { return Reply{Kind: KindBanner, Text: text} }

// Menu creates a KindMenu reply carrying the main menu text.
func Menu() Reply { return Reply{Kind: KindMenu, Text: MenuText()} }

// Prompt creates a KindPrompt reply.
func Prompt(text string) Reply { return Reply{Kind: KindPrompt, Text: text} }

// PetLine creates a KindPet reply for one roster listing line.
func PetLine(text string) Reply { return Reply{Kind: KindPet, Text: text} }

// Info creates a KindInfo reply.
func Info(text string) Reply { return Reply{Kind: KindInfo, Text: text} }

// Error creates a KindError reply.
func Error(text string) Reply { return Reply{Kind: KindError, Text: text} }

// Farewell creates a KindFarewell reply.
func Farewell(text string) Reply { return Reply{Kind: KindFarewell, Text: text} }
