package cli

import (
	"bufio"
	"io"

	"github.com/alexander-akhmetov/petshelter/internal/debug"
	"github.com/alexander-akhmetov/petshelter/internal/session"
)

// RunSession drives the plain line-based frontend: it prints the session's
// replies to w and feeds it lines read from in until the user exits or the
// input stream ends. A closed or failing input stream is an ordinary
// goodbye, not an error.
func RunSession(in io.Reader, w *Writer, sess *session.Session) error {
	w.WriteReplies(sess.Start())

	reader := bufio.NewReader(in)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			// A final line without a trailing newline still counts.
			if line != "" {
				replies, done := sess.Handle(line)
				w.WriteReplies(replies)
				if done {
					return nil
				}
			}
			debug.Logf("cli: input stream closed: %v", err)
			w.WriteReplies(sess.Quit())
			return nil
		}

		replies, done := sess.Handle(line)
		w.WriteReplies(replies)
		if done {
			return nil
		}
	}
}
