package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/plantpal/internal/models"
)

const (
	chatGreeting = "Hello! How can I help you with your plants today? Ask me anything or choose from a common question below."
	chatFallback = "Sorry, I'm having trouble connecting right now. Please try again in a moment."

	// chatHistoryLimit caps the turns sent back with each question. It is
	// even so the window always starts with a user turn.
	chatHistoryLimit = 20
)

var commonQuestions = []string{
	"Why are my plant's leaves turning yellow?",
	"How often should I water my plants?",
	"What type of light does my plant need?",
	"How do I know if my plant needs fertilizer?",
}

// chatter is the assistant call the REPL needs.
type chatter interface {
	Chat(ctx context.Context, prompt string, history []models.ChatTurn) (string, error)
}

// conversation keeps the rolling chat history.
type conversation struct {
	api     chatter
	history []models.ChatTurn
}

// ask sends question with the earlier turns and records both sides. A
// failed call is answered with the fallback text, which is kept in the
// history like any other reply.
func (c *conversation) ask(ctx context.Context, question string) (string, error) {
	reply, err := c.api.Chat(ctx, question, c.history)
	if err != nil {
		reply = chatFallback
	}

	c.history = append(c.history,
		models.ChatTurn{Role: "user", Text: question},
		models.ChatTurn{Role: "model", Text: reply},
	)
	if len(c.history) > chatHistoryLimit {
		c.history = c.history[len(c.history)-chatHistoryLimit:]
	}
	return reply, err
}

// runChat is a read–eval–print loop over the assistant.
//
// Each non-empty line is sent as a question; a number picks one of the
// common questions. The loop exits on EOF or when the user types "exit" or
// "quit". Errors from the assistant are shown as the fallback reply and do
// not stop the loop; only an unauthorized response is returned.
func runChat(ctx context.Context, conv *conversation, scanner *bufio.Scanner, w io.Writer, check func(error) error) error {
	fmt.Fprintln(w, terminalMarkup.render(chatGreeting))
	for i, q := range commonQuestions {
		fmt.Fprintf(w, "  %d. %s\n", i+1, q)
	}

	for {
		fmt.Fprint(w, "you> ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}

		question := strings.TrimSpace(scanner.Text())
		switch question {
		case "":
			continue
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return nil
		}
		if n, err := strconv.Atoi(question); err == nil && n >= 1 && n <= len(commonQuestions) {
			question = commonQuestions[n-1]
			fmt.Fprintf(w, "you> %s\n", question)
		}

		reply, err := conv.ask(ctx, question)
		if err := check(err); err != nil && !errors.Is(err, errChatFailed) {
			return err
		}
		fmt.Fprintf(w, "%s %s\n", titleStyle.Render("plantpal>"), terminalMarkup.render(reply))
	}
}
