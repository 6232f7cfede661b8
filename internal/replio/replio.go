// Package replio reads lines for "jsonnetlex repl" from a TTY using GNU
// readline semantics, or from any other input stream when not attached to
// one.
package replio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// LineReader is the shared interface between the readline-backed and
// plain-stream-backed readers, so "jsonnetlex repl" doesn't need to know
// which one it got.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

// DirectLineReader reads lines from any io.Reader without sanitizing
// control or escape sequences. Use it when stdin isn't a TTY.
type DirectLineReader struct {
	r *bufio.Reader
}

// InteractiveLineReader reads lines from stdin via chzyer/readline, giving
// history and line editing. Use it when directly attached to a TTY.
type InteractiveLineReader struct {
	rl *readline.Instance
}

// NewDirectReader wraps r for line-at-a-time reading.
func NewDirectReader(r io.Reader) *DirectLineReader {
	return &DirectLineReader{r: bufio.NewReader(r)}
}

// NewInteractiveReader starts a readline session with the given prompt.
// The returned reader must have Close called on it before disposal.
func NewInteractiveReader(prompt string) (*InteractiveLineReader, error) {
	rl, err := readline.NewEx(&readline.Config{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return &InteractiveLineReader{rl: rl}, nil
}

func (d *DirectLineReader) ReadLine() (string, error) {
	line, err := d.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return line, nil
}

func (d *DirectLineReader) Close() error {
	return nil
}

func (i *InteractiveLineReader) ReadLine() (string, error) {
	return i.rl.Readline()
}

func (i *InteractiveLineReader) Close() error {
	return i.rl.Close()
}

// SetPrompt updates the interactive prompt, e.g. to show a continuation
// marker while a text block is still open.
func (i *InteractiveLineReader) SetPrompt(p string) {
	i.rl.SetPrompt(p)
}
