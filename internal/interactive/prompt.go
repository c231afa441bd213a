// Package interactive provides terminal prompts for running without
// arguments.
package interactive

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
)

// ErrExit is returned when the user aborts a prompt.
var ErrExit = errors.New("exit")

// AskInputPath prompts for the k6 results file to convert.
func AskInputPath() (string, error) {
	var path string
	prompt := &survey.Input{
		Message: "Path to the k6 results file:",
	}

	if err := survey.AskOne(prompt, &path, survey.WithValidator(survey.Required)); err != nil {
		return "", ErrExit
	}

	return path, nil
}

// AskOutputPath prompts for the report destination, pre-filled with the
// default derived from the input path.
func AskOutputPath(defaultPath string) (string, error) {
	var path string
	prompt := &survey.Input{
		Message: "Where to write the Markdown report:",
		Default: defaultPath,
	}

	if err := survey.AskOne(prompt, &path); err != nil {
		return "", ErrExit
	}

	return path, nil
}

// Confirm asks for user confirmation
func Confirm(message string) bool {
	confirmed := false
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	_ = survey.AskOne(prompt, &confirmed)

	return confirmed
}
