package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// LineReader yields one line of user input per call. Implementations show
// prompt first. io.EOF ends the session.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// ScannerReader reads lines from any io.Reader. Prompts go to w.
type ScannerReader struct {
	sc *bufio.Scanner
	w  io.Writer
}

func NewScannerReader(r io.Reader, w io.Writer) *ScannerReader {
	return &ScannerReader{sc: bufio.NewScanner(r), w: w}
}

func (s *ScannerReader) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(s.w, prompt); err != nil {
		return "", err
	}
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.sc.Text(), nil
}

// ReadlineReader is the terminal LineReader with line editing and history.
type ReadlineReader struct {
	rl *readline.Instance
}

// NewReadlineReader opens a readline instance. An empty historyFile
// disables history.
func NewReadlineReader(historyFile string) (*ReadlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return &ReadlineReader{rl: rl}, nil
}

// ReadLine returns readline.ErrInterrupt on Ctrl-C.
func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	return r.rl.Readline()
}

func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}

// Seams for password input.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSimpleText prints prompt to w and reads a single trimmed line.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(in LineReader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintln(w, prompt); err != nil {
		return "", err
	}
	line, err := in.ReadLine("> ")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads a password without echo when stdin is a terminal and
// falls back to a plain line otherwise. The value is not checked anywhere;
// it is read so the prompt matches what users expect from a login.
func GetPassword(in LineReader, w io.Writer) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		line, err := in.ReadLine("Enter password: ")
		return []byte(line), err
	}

	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// confirm asks a yes/no question; only "y" or "yes" count as yes.
func confirm(in LineReader, question string) (bool, error) {
	answer, err := in.ReadLine(question + " [y/N]: ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
