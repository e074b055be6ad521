// Package console implements the interactive question-and-answer flow of the
// calculator.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/iwvelando/goal-planner/pkg/mathutil"
	"go.uber.org/zap"
)

// ErrInputClosed is returned when the input ends before a question is answered.
var ErrInputClosed = errors.New("input closed before an answer was given")

// Choice is one entry of a numbered menu.
type Choice struct {
	Key   string
	Label string
}

// Console reads answers from in and writes prompts and results to out.
type Console struct {
	scanner  *bufio.Scanner
	out      io.Writer
	currency string
	logger   *zap.Logger
}

// New creates a console. currency is printed after every amount.
func New(in io.Reader, out io.Writer, currency string, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		scanner:  bufio.NewScanner(in),
		out:      out,
		currency: currency,
		logger:   logger,
	}
}

// ParseNumber accepts a decimal number written with either '.' or ',' as the
// decimal separator and with spaces between digit groups ("1 000 000", "7,5").
func ParseNumber(raw string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		if r == ',' {
			return '.'
		}
		return r
	}, raw)

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	if !mathutil.IsFinite(value) {
		return 0, fmt.Errorf("not a finite number: %q", raw)
	}
	return value, nil
}

func (c *Console) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *Console) readLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return c.scanner.Text(), nil
}

// AskFloat asks until a number is entered.
func (c *Console) AskFloat(prompt string) (float64, error) {
	for {
		c.printf("%s ", prompt)
		raw, err := c.readLine()
		if err != nil {
			return 0, err
		}

		value, err := ParseNumber(raw)
		if err == nil {
			return value, nil
		}
		c.logger.Debug("rejected numeric input",
			zap.String("op", "console.AskFloat"),
			zap.String("input", raw),
		)
		c.printf("Please enter a number (e.g. 100000 or 7.5).\n")
	}
}

// AskChoice prints a numbered menu and asks until one of its keys is entered.
func (c *Console) AskChoice(prompt string, choices []Choice) (string, error) {
	c.printf("%s\n", prompt)
	for _, choice := range choices {
		c.printf("  %s) %s\n", choice.Key, choice.Label)
	}

	for {
		c.printf("Your choice: ")
		raw, err := c.readLine()
		if err != nil {
			return "", err
		}

		answer := strings.TrimSpace(raw)
		for _, choice := range choices {
			if answer == choice.Key {
				return answer, nil
			}
		}
		c.printf("Invalid choice, please try again.\n")
	}
}

// AskPercent asks for a rate in percent and returns it as a decimal fraction.
func (c *Console) AskPercent(prompt string) (float64, error) {
	percent, err := c.AskFloat(prompt)
	if err != nil {
		return 0, err
	}
	return mathutil.PercentToDecimal(percent), nil
}
