package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrompter(input string) (prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return prompter{r: bufio.NewReader(strings.NewReader(input)), w: &out}, &out
}

func TestPrompter_Line(t *testing.T) {
	p, out := newPrompter("hello world\n")
	got, err := p.line("Name?")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestPrompter_LineEOF(t *testing.T) {
	p, _ := newPrompter("lastline")
	got, err := p.line("Name?")
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	p, _ = newPrompter("")
	_, err = p.line("Name?")
	assert.Error(t, err)
}

func TestPrompter_Text(t *testing.T) {
	p, _ := newPrompter("a\nb\n\n\n")
	got, err := p.text("Enter text")
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)

	p, _ = newPrompter("only line")
	got, err = p.text("Enter text")
	require.NoError(t, err)
	assert.Equal(t, "only line", got)
}

func TestPrompter_Password(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	readPassword = func(int) ([]byte, error) { return []byte("secret"), nil }
	p, out := newPrompter("")
	pw, err := p.password()
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), pw)
	assert.Equal(t, "Enter password: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = p.password()
	assert.Error(t, err)
}

func TestPrompter_LineIfEmpty(t *testing.T) {
	p, out := newPrompter("typed\n")
	got, err := p.lineIfEmpty("given", "Email?")
	require.NoError(t, err)
	assert.Equal(t, "given", got)
	assert.Empty(t, out.String())

	got, err = p.lineIfEmpty("  ", "Email?")
	require.NoError(t, err)
	assert.Equal(t, "typed", got)
}
