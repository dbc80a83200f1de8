package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// ask reads one line from the terminal. Tests replace it.
var ask = linerAsk

func linerAsk(prompt string) (string, error) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	answer, err := line.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", errAborted
		}
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// askRequired repeats the prompt until the answer is non-empty.
func askRequired(prompt string) (string, error) {
	for {
		answer, err := ask(prompt)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
	}
}

// confirm asks a yes/no question; anything but y or yes is no.
func confirm(format string, args ...any) (bool, error) {
	answer, err := ask(fmt.Sprintf(format, args...) + " [y/N] ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
