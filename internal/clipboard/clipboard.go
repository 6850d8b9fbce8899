// Package clipboard copies filled prompts to the system clipboard, falling
// back to printing the text for manual selection
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnsupported is returned when no clipboard command is available
var ErrUnsupported = errors.New("clipboard not supported")

// fallback markers frame the text for manual selection
const (
	BeginMarker = "----- BEGIN PROMPT -----"
	EndMarker   = "----- END PROMPT -----"
)

// Writer writes text to a clipboard
type Writer interface {
	Write(text string) error
}

// Outcome reports how the text reached the user
type Outcome int

const (
	Copied Outcome = iota
	ManualSelection
)

func (o Outcome) String() string {
	if o == Copied {
		return "copied"
	}
	return "manual selection"
}

// System writes through a platform clipboard command
type System struct {
	Command string
	Args    []string

	lookPath func(string) (string, error)
	goos     string
	getenv   func(string) string
}

// NewSystem creates a system clipboard writer; an empty command picks the
// platform default
func NewSystem(command string, args ...string) *System {
	return &System{
		Command:  command,
		Args:     args,
		lookPath: exec.LookPath,
		goos:     runtime.GOOS,
		getenv:   os.Getenv,
	}
}

// Write pipes text to the clipboard command via stdin
func (s *System) Write(text string) error {
	name, args := s.resolve()
	if name == "" {
		return fmt.Errorf("%w on %s", ErrUnsupported, s.goos)
	}
	path, err := s.lookPath(name)
	if err != nil {
		return fmt.Errorf("%w: %s not found: %v", ErrUnsupported, name, err)
	}

	c := exec.Command(path, args...)
	c.Stdin = strings.NewReader(text)
	if out, err := c.CombinedOutput(); err != nil {
		return fmt.Errorf("clipboard command %s failed: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// resolve returns the clipboard command and arguments to use
func (s *System) resolve() (string, []string) {
	if s.Command != "" {
		return s.Command, s.Args
	}

	switch s.goos {
	case "darwin":
		return "pbcopy", nil
	case "linux", "freebsd", "openbsd":
		if s.getenv("WAYLAND_DISPLAY") != "" {
			return "wl-copy", nil
		}
		return "xclip", []string{"-selection", "clipboard"}
	case "windows":
		return "clip", nil
	default:
		return "", nil
	}
}

// Copy writes text to w; when that fails the text is printed to fallback
// between markers so it can be selected by hand
func Copy(w Writer, text string, fallback io.Writer) (Outcome, error) {
	var err error
	if w != nil {
		if err = w.Write(text); err == nil {
			return Copied, nil
		}
	} else {
		err = ErrUnsupported
	}

	if fallback != nil {
		fmt.Fprintln(fallback, BeginMarker)
		fmt.Fprintln(fallback, text)
		fmt.Fprintln(fallback, EndMarker)
	}
	return ManualSelection, err
}
