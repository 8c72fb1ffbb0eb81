package cli

import (
	"fmt"
	"io"

	"github.com/alexander-akhmetov/petshelter/internal/session"
)

// ANSI color codes matching the TUI lipgloss styles.
const (
	colorGreen   = 42  // adoption success
	colorRed     = 196 // validation and lookup failures
	colorCyan    = 117 // pet listing lines
	colorDim     = 241 // input prompts
	colorMagenta = 205 // welcome banner, farewell
)

// Writer prints session replies to an output stream. In TTY mode replies are
// colored per kind; in non-TTY mode (pipes, CI) output is plain text without
// ANSI escapes.
type Writer struct {
	out   io.Writer
	isTTY bool
}

// NewWriter creates a Writer.
func NewWriter(out io.Writer, isTTY bool) *Writer {
	return &Writer{out: out, isTTY: isTTY}
}

// WriteReplies prints a batch of replies in order.
func (w *Writer) WriteReplies(replies []session.Reply) {
	for _, r := range replies {
		w.WriteReply(r)
	}
}

// WriteReply prints a single reply to the output stream.
func (w *Writer) WriteReply(r session.Reply) {
	var line string
	switch r.Kind {
	case session.KindBanner:
		line = w.formatBanner(r.Text)
	case session.KindMenu:
		line = r.Text
	case session.KindPrompt:
		line = w.formatPrompt(r.Text)
	case session.KindPet:
		line = w.formatPet(r.Text)
	case session.KindInfo:
		line = w.formatInfo(r.Text)
	case session.KindError:
		line = w.formatError(r.Text)
	case session.KindFarewell:
		line = w.formatFarewell(r.Text)
	default:
		line = r.Text
	}
	fmt.Fprintln(w.out, line)
}

// Formatting methods per reply kind.

func (w *Writer) formatBanner(text string) string {
	if w.isTTY {
		return fgBold(colorMagenta, text)
	}
	return text
}

func (w *Writer) formatPrompt(text string) string {
	if w.isTTY {
		return fg(colorDim, text)
	}
	return text
}

func (w *Writer) formatPet(text string) string {
	if w.isTTY {
		return fg(colorCyan, text)
	}
	return text
}

func (w *Writer) formatInfo(text string) string {
	if w.isTTY {
		return fg(colorGreen, text)
	}
	return text
}

func (w *Writer) formatError(text string) string {
	if w.isTTY {
		return fg(colorRed, text)
	}
	return text
}

func (w *Writer) formatFarewell(text string) string {
	if w.isTTY {
		return fgBold(colorMagenta, text)
	}
	return text
}
