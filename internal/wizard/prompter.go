package wizard

import (
	"errors"

	"github.com/vbb-change-positions/internal/directory/colors"
	"github.com/vbb-change-positions/pkg/positions/models"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("aborted by user")

// LineChoice is one entry of the line multi-select. HasColor is false when
// the colour table knows nothing about the line.
type LineChoice struct {
	Line     models.Line
	Color    colors.Color
	HasColor bool
}

// Prompter asks the user questions. Implementations return ErrAborted
// (possibly wrapped) on interrupt.
type Prompter interface {
	// Station asks for a station, offering completions from suggest.
	Station(msg string, suggest func(input string) []string) (string, error)
	Lines(msg string, choices []LineChoice) (models.Selection, error)
	Text(msg string) (string, error)
	Confirm(msg string) (bool, error)
}
