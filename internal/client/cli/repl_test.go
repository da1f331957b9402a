package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/plantpal/internal/client/api"
	"github.com/dmitrijs2005/plantpal/internal/models"
)

type fakeChatter struct {
	err      error
	prompts  []string
	lastSent []models.ChatTurn
}

func (f *fakeChatter) Chat(ctx context.Context, prompt string, history []models.ChatTurn) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.lastSent = append([]models.ChatTurn(nil), history...)
	if f.err != nil {
		return "", f.err
	}
	return "answer to " + prompt, nil
}

func passThrough(err error) error {
	if err != nil {
		return errChatFailed
	}
	return nil
}

func TestConversation_RollingHistory(t *testing.T) {
	f := &fakeChatter{}
	conv := &conversation{api: f}

	for i := range 15 {
		_, err := conv.ask(context.Background(), fmt.Sprintf("q%d", i))
		require.NoError(t, err)
	}

	require.Len(t, conv.history, chatHistoryLimit)
	assert.Equal(t, "user", conv.history[0].Role)
	assert.Equal(t, "q5", conv.history[0].Text)
	assert.Equal(t, "answer to q14", conv.history[len(conv.history)-1].Text)

	// the question being asked is not part of the history sent with it
	assert.Len(t, f.lastSent, chatHistoryLimit)
	assert.Equal(t, "answer to q13", f.lastSent[len(f.lastSent)-1].Text)
}

func TestConversation_FailureKeepsFallbackReply(t *testing.T) {
	conv := &conversation{api: &fakeChatter{err: errors.New("down")}}

	reply, err := conv.ask(context.Background(), "hi")
	assert.Error(t, err)
	assert.Equal(t, chatFallback, reply)
	assert.Equal(t, []models.ChatTurn{{Role: "user", Text: "hi"}, {Role: "model", Text: chatFallback}}, conv.history)
}

func TestRunChat(t *testing.T) {
	f := &fakeChatter{}
	var out bytes.Buffer
	input := "  \n1\nis this thing on?\nquit\nnever read\n"

	err := runChat(context.Background(), &conversation{api: f}, bufio.NewScanner(strings.NewReader(input)), &out, passThrough)
	require.NoError(t, err)

	assert.Equal(t, []string{commonQuestions[0], "is this thing on?"}, f.prompts)
	assert.Contains(t, out.String(), "  4. "+commonQuestions[3])
	assert.Contains(t, out.String(), "answer to is this thing on?")
	assert.True(t, strings.HasSuffix(out.String(), "Bye!\n"))
}

func TestRunChat_ContinuesAfterFailure(t *testing.T) {
	f := &fakeChatter{err: errors.New("down")}
	var out bytes.Buffer

	err := runChat(context.Background(), &conversation{api: f}, bufio.NewScanner(strings.NewReader("a\nb\n")), &out, passThrough)
	require.NoError(t, err)

	assert.Len(t, f.prompts, 2)
	assert.Equal(t, 2, strings.Count(out.String(), chatFallback))
}

func TestRunChat_StopsOnUnauthorized(t *testing.T) {
	f := &fakeChatter{err: &api.APIError{Status: 401, Message: "invalid token"}}
	var out bytes.Buffer

	check := func(err error) error {
		if api.IsUnauthorized(err) {
			return ErrSessionExpired
		}
		return passThrough(err)
	}
	err := runChat(context.Background(), &conversation{api: f}, bufio.NewScanner(strings.NewReader("a\nb\n")), &out, check)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Len(t, f.prompts, 1)
}
