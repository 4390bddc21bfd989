package chatgpt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// sentinel terminates the interactive loop. Compared after trimming,
// exact match only.
const sentinel = "exit"

// Completer is the narrow client surface the session depends on.
// *Client satisfies it; tests substitute stubs.
type Completer interface {
	Complete(ctx context.Context, model string, messages []Message) (Message, error)
}

// Session owns the conversation transcript and drives turns against a
// Completer. The transcript grows by two messages per successful turn
// and by one (the unanswered user message) per failed turn; the system
// message at index 0 is never touched.
type Session struct {
	client     Completer
	model      string
	transcript []Message

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewSession creates a session with a fresh transcript seeded from
// cfg.SystemPrompt. in may be nil for single-shot use; nil writers are
// discarded.
func NewSession(client Completer, cfg Config, in io.Reader, out, errOut io.Writer) *Session {
	cfg = Normalize(cfg)
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	return &Session{
		client:     client,
		model:      cfg.Model,
		transcript: NewTranscript(cfg.SystemPrompt),
		in:         in,
		out:        out,
		errOut:     errOut,
	}
}

// Transcript returns a copy of the conversation so far.
func (s *Session) Transcript() []Message {
	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// RunOnce performs one turn: append the user message, request a
// completion over the full transcript, print the reply. On failure the
// error is written to the error stream and the user message is left in
// place unanswered; nothing reaches the output stream.
func (s *Session) RunOnce(ctx context.Context, input string) error {
	s.transcript = append(s.transcript, Message{Role: RoleUser, Content: input})

	reply, err := s.client.Complete(ctx, s.model, s.transcript)
	if err != nil {
		_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
		return err
	}

	_, _ = fmt.Fprintln(s.out, reply.Content)
	s.transcript = append(s.transcript, reply)
	return nil
}

// RunInteractive reads lines until the exit sentinel or end of input,
// running one turn per line. Lines are trimmed before the sentinel
// comparison; everything else, including empty lines, is forwarded
// verbatim. End of input is treated as an implicit exit.
func (s *Session) RunInteractive(ctx context.Context) error {
	if s.in == nil {
		return fmt.Errorf("input reader is required")
	}

	scanner := bufio.NewScanner(s.in)
	for {
		_, _ = fmt.Fprint(s.out, "You: ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == sentinel {
			return nil
		}

		_, _ = fmt.Fprint(s.out, "ChatGPT: ")
		// Per-turn errors are already reported; the loop continues.
		_ = s.RunOnce(ctx, input)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
