package mini

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/anisan-cli/animedex/color"
	"github.com/anisan-cli/animedex/icon"
	"github.com/anisan-cli/animedex/key"
	"github.com/anisan-cli/animedex/style"
	"github.com/spf13/viper"
)

// prompter asks the user questions. The survey implementation is swapped out in tests.
type prompter interface {
	choose(message string, options []string) (int, error)
	input(message string, validate func(string) error) (string, error)
	confirm(message string) (bool, error)
}

type surveyPrompter struct{}

func (surveyPrompter) choose(message string, options []string) (int, error) {
	var index int
	err := survey.AskOne(&survey.Select{
		Message: message,
		Options: options,
	}, &index, survey.WithPageSize(max(viper.GetInt(key.MiniPageSize), 1)))
	return index, err
}

func (surveyPrompter) input(message string, validate func(string) error) (string, error) {
	var response string
	err := survey.AskOne(&survey.Input{Message: message}, &response, survey.WithValidator(func(ans interface{}) error {
		s, _ := ans.(string)
		return validate(s)
	}))
	return response, err
}

func (surveyPrompter) confirm(message string) (bool, error) {
	var response bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: true}, &response)
	return response, err
}

func (m *mini) title(text string) {
	fmt.Fprintln(m.out, style.Fg(color.HiPurple)(style.Bold(text)))
}

func (m *mini) fail(text string) {
	fmt.Fprintln(m.out, style.Fg(color.Red)(icon.Get(icon.Fail)+" "+text))
}

func (m *mini) line(text string) {
	fmt.Fprintln(m.out, text)
}

// progress prints text until the returned func is called.
func (m *mini) progress(text string) (erase func()) {
	msg := icon.Get(icon.Progress) + " " + text
	fmt.Fprintf(m.out, "\r%s", msg)
	return func() {
		fmt.Fprintf(m.out, "\r%*s\r", len(msg), "")
	}
}
