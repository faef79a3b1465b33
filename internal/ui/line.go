// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LinePrompter reads answers one line at a time. Only the trailing newline
// is stripped, so confirmation phrases are compared exactly as typed.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				fmt.Fprintln(p.out)
				return "", ErrCancelled
			}
		} else {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Input prints "Label [initial]: " and re-prompts until Validate passes.
// An empty answer keeps the initial value.
func (p *LinePrompter) Input(ip InputPrompt) (string, error) {
	for {
		if ip.Initial != "" {
			fmt.Fprintf(p.out, "%s %s: ", titleStyle.Render(ip.Label), initialStyle.Render("["+ip.Initial+"]"))
		} else {
			fmt.Fprintf(p.out, "%s: ", titleStyle.Render(ip.Label))
		}

		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" {
			answer = ip.Initial
		}
		if ip.Validate != nil {
			if err := ip.Validate(answer); err != nil {
				fmt.Fprintln(p.out, errorStyle.Render("  ✗ "+err.Error()))
				continue
			}
		}
		return answer, nil
	}
}

// Select prints a numbered menu and reads the chosen number. Headers are
// printed unnumbered. An empty answer picks Initial when one is set.
func (p *LinePrompter) Select(sp SelectPrompt) (string, error) {
	choices := selectable(sp.Options)
	if len(choices) == 0 {
		return "", errNoOptions
	}

	fmt.Fprintln(p.out, titleStyle.Render(sp.Label))
	n := 0
	defaultIndex := 0
	for _, o := range sp.Options {
		if o.Header {
			fmt.Fprintln(p.out, headerStyle.Render(displayLabel(o)))
			continue
		}
		n++
		if sp.Initial != "" && o.Value == sp.Initial {
			defaultIndex = n
		}
		fmt.Fprintf(p.out, "  %2d) %s\n", n, displayLabel(o))
	}

	for {
		if defaultIndex > 0 {
			fmt.Fprintf(p.out, "Choose 1-%d %s: ", n, initialStyle.Render(fmt.Sprintf("[%d]", defaultIndex)))
		} else {
			fmt.Fprintf(p.out, "Choose 1-%d: ", n)
		}

		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" && defaultIndex > 0 {
			return choices[defaultIndex-1].Value, nil
		}

		idx, err := strconv.Atoi(answer)
		if err == nil && idx >= 1 && idx <= n {
			return choices[idx-1].Value, nil
		}
		for _, o := range choices {
			if answer != "" && o.Value == answer {
				return o.Value, nil
			}
		}
		fmt.Fprintln(p.out, errorStyle.Render(fmt.Sprintf("  ✗ Please enter a number between 1 and %d", n)))
	}
}
