package console

import (
	survey "github.com/AlecAivazis/survey/v2"
)

// Asker has the signature of survey.AskOne.
type Asker func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// PromptMissing asks for the query and filename when they are absent from args.
// args excludes the program name. Answers are appended in positional order.
func PromptMissing(args []string, ask Asker) ([]string, error) {
	if ask == nil {
		ask = survey.AskOne
	}
	out := append([]string{}, args...)
	if len(out) < 1 {
		var q string
		if err := ask(&survey.Input{Message: messageQuery}, &q); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if len(out) < 2 {
		var f string
		if err := ask(&survey.Input{Message: messageFilename}, &f, survey.WithValidator(survey.Required)); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

const (
	messageQuery    = "Search for:"
	messageFilename = "In file:"
)
