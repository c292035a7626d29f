// Package console is the presentation boundary: a synchronous text menu
// over the use cases. Every read blocks until the user answers; every
// action error is displayed and the loop continues.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrClosed is returned when the input stream ends mid-prompt.
var ErrClosed = errors.New("console input closed")

// Console bundles the prompt and rendering primitives the screens use.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", ErrClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// Println writes a plain line.
func (c *Console) Println(msg string) {
	fmt.Fprintln(c.out, msg)
}

// Printf writes a formatted line.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Warn displays an error-style message.
func (c *Console) Warn(msg string) {
	fmt.Fprintf(c.out, "! %s\n", msg)
}

// Choose renders a numbered list of options under a title and returns the
// zero-based index of the picked one.
func (c *Console) Choose(title string, options []string) (int, error) {
	c.Println("")
	c.Println(title)
	for i, opt := range options {
		c.Printf("  %d. %s", i+1, opt)
	}
	for {
		fmt.Fprint(c.out, "> ")
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		c.Warn(fmt.Sprintf("enter a number between 1 and %d", len(options)))
	}
}

// Confirm asks a yes/no question.
func (c *Console) Confirm(prompt string) (bool, error) {
	for {
		fmt.Fprintf(c.out, "%s [y/n]: ", prompt)
		line, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		c.Warn("answer y or n")
	}
}

// PromptString asks for a non-empty string.
func (c *Console) PromptString(label string) (string, error) {
	for {
		fmt.Fprintf(c.out, "%s: ", label)
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		c.Warn("value must not be blank")
	}
}

// PromptOptional asks for a string that may be empty.
func (c *Console) PromptOptional(label string) (string, error) {
	fmt.Fprintf(c.out, "%s (optional): ", label)
	return c.readLine()
}

// PromptDecimal asks for a decimal satisfying the validity predicate.
func (c *Console) PromptDecimal(label string, valid func(decimal.Decimal) bool) (decimal.Decimal, error) {
	for {
		fmt.Fprintf(c.out, "%s: ", label)
		line, err := c.readLine()
		if err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(line)
		if err != nil {
			c.Warn("enter a decimal number")
			continue
		}
		if valid != nil && !valid(d) {
			c.Warn("value out of range")
			continue
		}
		return d, nil
	}
}

// PromptDate asks for a calendar date in YYYY-MM-DD form.
func (c *Console) PromptDate(label string) (time.Time, error) {
	for {
		fmt.Fprintf(c.out, "%s (YYYY-MM-DD): ", label)
		line, err := c.readLine()
		if err != nil {
			return time.Time{}, err
		}
		t, err := time.Parse("2006-01-02", line)
		if err != nil {
			c.Warn("enter a date like 2024-01-31")
			continue
		}
		return t, nil
	}
}

// PromptOptionalDate asks for a calendar date; an empty answer returns nil.
func (c *Console) PromptOptionalDate(label string) (*time.Time, error) {
	for {
		fmt.Fprintf(c.out, "%s (YYYY-MM-DD, empty for none): ", label)
		line, err := c.readLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			return nil, nil
		}
		t, err := time.Parse("2006-01-02", line)
		if err != nil {
			c.Warn("enter a date like 2024-01-31")
			continue
		}
		return &t, nil
	}
}

// Table renders rows under a header with columns padded to equal width.
func (c *Console) Table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	line := func(cells []string) {
		var b strings.Builder
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			if i < len(widths) {
				b.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
			}
		}
		c.Println(b.String())
	}

	line(headers)
	for _, row := range rows {
		line(row)
	}
}
