package main

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

var errAborted = errors.New("metaviewer: selection aborted")

type picker interface {
	Select(ctx context.Context, message string, options []string) (int, error)
}

type surveyPicker struct{}

func (surveyPicker) Select(ctx context.Context, message string, options []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	var out string
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return -1, errAborted
		}
		return -1, err
	}
	for i, option := range options {
		if option == out {
			return i, nil
		}
	}
	return -1, nil
}
