package console_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/fintrack/internal/adapter/console"
)

func newConsole(input string) (*console.Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return console.New(strings.NewReader(input), out), out
}

func TestConsole_Choose(t *testing.T) {
	t.Run("valid pick", func(t *testing.T) {
		c, _ := newConsole("2\n")
		choice, err := c.Choose("Menu", []string{"first", "second"})
		require.NoError(t, err)
		assert.Equal(t, 1, choice)
	})

	t.Run("reprompts on junk and out-of-range input", func(t *testing.T) {
		c, out := newConsole("zero\n9\n1\n")
		choice, err := c.Choose("Menu", []string{"first", "second"})
		require.NoError(t, err)
		assert.Equal(t, 0, choice)
		assert.Contains(t, out.String(), "enter a number between 1 and 2")
	})

	t.Run("closed input", func(t *testing.T) {
		c, _ := newConsole("")
		_, err := c.Choose("Menu", []string{"first"})
		assert.ErrorIs(t, err, console.ErrClosed)
	})
}

func TestConsole_Confirm(t *testing.T) {
	c, _ := newConsole("maybe\nY\n")
	ok, err := c.Confirm("Proceed?")
	require.NoError(t, err)
	assert.True(t, ok)

	c, _ = newConsole("no\n")
	ok, err = c.Confirm("Proceed?")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConsole_PromptString(t *testing.T) {
	c, out := newConsole("\n  \n  Checking  \n")
	got, err := c.PromptString("Name")
	require.NoError(t, err)
	assert.Equal(t, "Checking", got)
	assert.Contains(t, out.String(), "must not be blank")
}

func TestConsole_PromptDecimal(t *testing.T) {
	positive := func(d decimal.Decimal) bool { return d.IsPositive() }

	c, _ := newConsole("abc\n-5\n12.50\n")
	got, err := c.PromptDecimal("Amount", positive)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("12.50")))
}

func TestConsole_PromptDate(t *testing.T) {
	c, _ := newConsole("yesterday\n2024-05-02\n")
	got, err := c.PromptDate("Date")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-02", got.Format("2006-01-02"))

	c, _ = newConsole("\n")
	opt, err := c.PromptOptionalDate("From")
	require.NoError(t, err)
	assert.Nil(t, opt)
}

func TestConsole_Table(t *testing.T) {
	c, out := newConsole("")
	c.Table([]string{"NAME", "BALANCE"}, [][]string{
		{"Checking", "98500"},
		{"S", "1"},
	})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	// columns line up regardless of cell width
	assert.Equal(t, strings.Index(lines[0], "BALANCE"), strings.Index(lines[1], "98500"))
}
