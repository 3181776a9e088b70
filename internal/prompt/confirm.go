// Package prompt provides the operator confirmation channel.
package prompt

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"

	"mergeflow.dev/mergeflow/internal/output"
)

// Confirmer asks the operator a yes/no question
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// NewConfirmer returns a terminal-backed Confirmer. In a non-interactive
// session the answer is always no, so an unattended run aborts instead of
// hanging on a prompt.
func NewConfirmer(log *output.Splog) Confirmer {
	return &surveyConfirmer{log: log}
}

type surveyConfirmer struct {
	log *output.Splog
}

func (c *surveyConfirmer) Confirm(question string) (bool, error) {
	if !interactive() {
		c.log.Warn("non-interactive session, answering no: %s", question)
		return false, nil
	}

	answer := false
	prompt := &survey.Confirm{
		Message: question,
		Default: false,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, err
	}
	return answer, nil
}

func interactive() bool {
	return (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}
