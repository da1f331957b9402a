package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/plantpal/internal/client/api"
)

const (
	IdentifyFailedMessage   = "Sorry, I couldn't identify that plant. Please try another photo."
	SuggestionFailedMessage = "Sorry, couldn't fetch a suggestion at this time."
)

// errChatFailed marks an assistant failure the chat loop survives.
var errChatFailed = errors.New(chatFallback)

type ChatCmd struct {
	Question string `arg:"" optional:"" help:"Ask one question and exit; starts an interactive chat when omitted."`
}

func (c *ChatCmd) Run(ctx context.Context, a *App) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	conv := &conversation{api: a.api}
	check := func(err error) error {
		if err == nil {
			return nil
		}
		if api.IsUnauthorized(err) {
			return a.check(ctx, err)
		}
		return errChatFailed
	}

	if c.Question != "" {
		reply, err := conv.ask(ctx, c.Question)
		if err := check(err); err != nil && !errors.Is(err, errChatFailed) {
			return err
		}
		a.println(terminalMarkup.render(reply))
		return nil
	}

	return runChat(ctx, conv, bufio.NewScanner(a.reader), a.out, check)
}

type IdentifyCmd struct {
	Photo string `arg:"" help:"Photo of the plant." type:"existingfile"`
}

func (c *IdentifyCmd) Run(ctx context.Context, a *App) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	photo, err := loadPhoto(c.Photo)
	if err != nil {
		return err
	}

	id, err := a.api.Identify(ctx, *photo)
	if err := a.check(ctx, err); err != nil {
		if errors.Is(err, ErrSessionExpired) {
			return err
		}
		return errors.New(IdentifyFailedMessage)
	}

	a.printf("%s %s\n", titleStyle.Render(id.Name), mutedStyle.Render(fmt.Sprintf("(%d%% match)", id.Match)))
	return nil
}

type FertilizerCmd struct {
	ID   string `arg:"" help:"Plant ID or unique prefix."`
	Save bool   `help:"Store the suggestion as the plant's fertilizer details."`
}

func (c *FertilizerCmd) Run(ctx context.Context, a *App) error {
	if err := a.load(ctx); err != nil {
		return err
	}
	p, err := a.plantByPrefix(c.ID)
	if err != nil {
		return err
	}

	suggestion, err := a.api.FertilizerSuggestion(ctx, p.Name, p.ScientificName)
	if err := a.check(ctx, err); err != nil {
		if errors.Is(err, ErrSessionExpired) {
			return err
		}
		return errors.New(SuggestionFailedMessage)
	}

	a.println(terminalMarkup.render(suggestion))

	if c.Save {
		p.FertilizerDetails = suggestion
		if err := a.check(ctx, a.dash.UpdatePlant(ctx, p)); err != nil {
			return err
		}
		a.printf("Saved to %s.\n", p.Name)
	}
	return nil
}
