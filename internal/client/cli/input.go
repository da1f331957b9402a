package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// prompter asks the user for input on w and reads answers from r.
type prompter struct {
	r *bufio.Reader
	w io.Writer
}

func (a *App) prompt() prompter {
	return prompter{r: a.reader, w: a.out}
}

// line prints label and reads one trimmed line. A final line without a
// newline is accepted; EOF before any input is an error.
//
//	Label
//	> _
func (p prompter) line(label string) (string, error) {
	if _, err := fmt.Fprint(p.w, label+"\n> "); err != nil {
		return "", err
	}
	s, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// lineIfEmpty returns value unless it is blank, in which case it asks.
func (p prompter) lineIfEmpty(value, label string) (string, error) {
	if strings.TrimSpace(value) != "" {
		return value, nil
	}
	return p.line(label)
}

// password reads a password from the terminal without echo. The caller
// should wipe the result when done.
func (p prompter) password() ([]byte, error) {
	if _, err := fmt.Fprint(p.w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(p.w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// text reads lines until an empty one or EOF and joins them with '\n'.
func (p prompter) text(label string) (string, error) {
	if _, err := fmt.Fprint(p.w, label+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		s, err := p.r.ReadString('\n')
		s = strings.TrimRight(s, "\r\n")
		if s == "" {
			break
		}
		lines = append(lines, s)
		if err != nil {
			break
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
