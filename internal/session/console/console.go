// Package console adapts the session prompt and display ports to an
// interactive terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/retailops/inventory-manager/internal/session"
)

type Console struct {
	scanner *bufio.Scanner
	w       io.Writer
}

func New(r io.Reader, w io.Writer) *Console {
	return &Console{scanner: bufio.NewScanner(r), w: w}
}

// Ask prints the prompt and reads lines until one validates. Choice prompts
// accept either the choice text or its 1-based number.
func (c *Console) Ask(p session.Prompt) (string, error) {
	for {
		fmt.Fprintln(c.w, p.Message)
		for i, choice := range p.Choices {
			fmt.Fprintf(c.w, "  %d) %s\n", i+1, choice)
		}
		fmt.Fprint(c.w, "> ")

		if !c.scanner.Scan() {
			if err := c.scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		input := strings.TrimSpace(c.scanner.Text())

		if p.AllowQuit && strings.EqualFold(input, session.QuitSentinel) {
			return "", session.ErrAborted
		}

		if len(p.Choices) > 0 {
			if answer, ok := matchChoice(p.Choices, input); ok {
				return answer, nil
			}
			fmt.Fprintln(c.w, "Please select one of the listed options.")
			continue
		}

		if p.Validate != nil {
			if err := p.Validate(input); err != nil {
				fmt.Fprintln(c.w, err.Error())
				continue
			}
		}
		return input, nil
	}
}

func matchChoice(choices []string, input string) (string, bool) {
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(choices) {
		return choices[n-1], true
	}
	for _, choice := range choices {
		if choice == input {
			return choice, true
		}
	}
	return "", false
}

func (c *Console) Table(header []string, rows [][]string) {
	tw := tabwriter.NewWriter(c.w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()
	fmt.Fprintln(c.w)
}

func (c *Console) Message(format string, args ...any) {
	fmt.Fprintf(c.w, format+"\n", args...)
}
