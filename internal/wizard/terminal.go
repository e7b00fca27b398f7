package wizard

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/lipgloss"

	"github.com/vbb-change-positions/pkg/positions/models"
)

// Terminal is the interactive Prompter backed by survey.
type Terminal struct {
	opts []survey.AskOpt
}

func NewTerminal(opts ...survey.AskOpt) *Terminal {
	return &Terminal{opts: opts}
}

func (t *Terminal) Station(msg string, suggest func(input string) []string) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: lipgloss.NewStyle().Bold(true).Render(msg),
		Suggest: suggest,
	}
	if err := survey.AskOne(prompt, &answer, t.opts...); err != nil {
		return "", promptError(err)
	}
	return answer, nil
}

func (t *Terminal) Lines(msg string, choices []LineChoice) (models.Selection, error) {
	options := make([]string, len(choices))
	for i, c := range choices {
		options[i] = c.Line.Name
	}

	var picked []string
	prompt := &survey.MultiSelect{
		Message:  msg,
		Options:  options,
		PageSize: 15,
		Description: func(value string, index int) string {
			return swatch(choices[index])
		},
	}
	if err := survey.AskOne(prompt, &picked, t.opts...); err != nil {
		return nil, promptError(err)
	}

	sel := make(models.Selection, len(choices))
	for _, c := range choices {
		sel[c.Line.Name] = false
	}
	for _, name := range picked {
		sel[name] = true
	}
	return sel, nil
}

func (t *Terminal) Text(msg string) (string, error) {
	var answer string
	if err := survey.AskOne(&survey.Input{Message: msg}, &answer, t.opts...); err != nil {
		return "", promptError(err)
	}
	return answer, nil
}

func (t *Terminal) Confirm(msg string) (bool, error) {
	var answer bool
	if err := survey.AskOne(&survey.Confirm{Message: msg, Default: false}, &answer, t.opts...); err != nil {
		return false, promptError(err)
	}
	return answer, nil
}

// swatch renders the line's colour; lines without a known colour get none.
func swatch(c LineChoice) string {
	if !c.HasColor {
		return ""
	}
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Color.BG)).
		Padding(0, 1)
	if c.Color.FG != "" {
		style = style.Foreground(lipgloss.Color(c.Color.FG))
	}
	return style.Render(c.Line.Name)
}

func promptError(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return fmt.Errorf("prompt failed: %w", err)
}
