package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// ErrAborted is returned when input ends before a phrase was entered.
var ErrAborted = errors.New("aborted")

// promptPhrase asks for a phrase until a non-empty line is read.
// Only the line terminator is stripped; surrounding white space is kept.
func promptPhrase(in io.Reader, out io.Writer, label string, logger *zap.Logger) (string, error) {
	style := lipgloss.NewRenderer(out).NewStyle().Bold(true)
	reader := bufio.NewReader(in)

	for {
		if _, err := fmt.Fprint(out, style.Render(label)+": "); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read phrase: %w", err)
		}
		eof := errors.Is(err, io.EOF)

		line = strings.TrimRight(line, "\r\n")
		if line != "" {
			if eof {
				// Keep the terminal tidy when input lacked a trailing newline
				fmt.Fprintln(out)
			}
			return line, nil
		}
		if eof {
			fmt.Fprintln(out)
			return "", ErrAborted
		}
		logger.Debug("Empty phrase, prompting again")
	}
}
