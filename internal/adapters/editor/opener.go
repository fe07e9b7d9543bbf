package editor

import (
	"errors"
	"os"
	"os/exec"
)

// ErrNoEditor is returned when neither $VISUAL nor $EDITOR is set and no
// fallback editor is on PATH
var ErrNoEditor = errors.New("no editor found: set $EDITOR")

var fallbacks = []string{"nvim", "vim", "vi", "nano"}

// Opener builds commands that open a file in the user's editor
type Opener struct {
	getenv   func(string) string
	lookPath func(string) (string, error)
}

// NewOpener creates an opener reading the process environment
func NewOpener() *Opener {
	return &Opener{getenv: os.Getenv, lookPath: exec.LookPath}
}

// Command returns an exec.Cmd opening path in the editor. Stdio is left
// unset for tea.ExecProcess to attach.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	ed := o.find()
	if ed == "" {
		return nil, ErrNoEditor
	}
	return exec.Command(ed, path), nil
}

func (o *Opener) find() string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if ed := o.getenv(env); ed != "" {
			return ed
		}
	}
	for _, name := range fallbacks {
		if p, err := o.lookPath(name); err == nil {
			return p
		}
	}
	return ""
}
