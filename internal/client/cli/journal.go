package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/plantpal/internal/models"
)

type JournalListCmd struct{}

func (c *JournalListCmd) Run(ctx context.Context, a *App) error {
	if err := a.load(ctx); err != nil {
		return err
	}
	a.printf("%s", renderJournal(a.dash.Journal(), a.now()))
	return nil
}

type JournalAddCmd struct {
	Title   string `help:"Entry title; prompted when omitted." short:"t"`
	Content string `help:"Entry text; prompted when omitted."`
	File    string `help:"Image or document to attach." type:"existingfile" short:"f"`
}

func (c *JournalAddCmd) Run(ctx context.Context, a *App) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	title, err := a.prompt().lineIfEmpty(c.Title, "Enter title")
	if err != nil {
		return err
	}
	if strings.TrimSpace(title) == "" {
		return errors.New("a title is required")
	}

	content := c.Content
	if content == "" {
		if content, err = a.prompt().text("Enter text"); err != nil {
			return err
		}
	}

	var file *models.Photo
	if c.File != "" {
		if file, err = loadPhoto(c.File); err != nil {
			return err
		}
	}

	e, err := a.dash.AddJournalEntry(ctx, title, content, file)
	if err := a.check(ctx, err); err != nil {
		return err
	}
	a.printf("Saved %q %s\n", e.Title, mutedStyle.Render(shortID(e.ID)))
	return nil
}

type JournalDeleteCmd struct {
	ID string `arg:"" help:"Entry ID or unique prefix."`
}

func (c *JournalDeleteCmd) Run(ctx context.Context, a *App) error {
	if err := a.load(ctx); err != nil {
		return err
	}
	e, err := a.entryByPrefix(c.ID)
	if err != nil {
		return err
	}
	if err := a.check(ctx, a.dash.DeleteJournalEntry(ctx, e.ID)); err != nil {
		return err
	}
	a.printf("Deleted %q.\n", e.Title)
	return nil
}

type ArticlesListCmd struct {
	Category string `help:"Only articles in this category."`
}

func (c *ArticlesListCmd) Run(ctx context.Context, a *App) error {
	if err := a.load(ctx); err != nil {
		return err
	}

	var articles []models.Article
	for _, art := range a.dash.Articles() {
		if c.Category == "" || strings.EqualFold(art.Category, c.Category) {
			articles = append(articles, art)
		}
	}
	if len(articles) == 0 {
		a.println("No articles found.")
		return nil
	}
	a.println(renderArticles(articles))
	return nil
}

type ArticlesReadCmd struct {
	ID string `arg:"" help:"Article ID."`
}

func (c *ArticlesReadCmd) Run(ctx context.Context, a *App) error {
	if err := a.load(ctx); err != nil {
		return err
	}
	for _, art := range a.dash.Articles() {
		if art.ID == c.ID {
			a.printf("%s", renderArticle(art))
			return nil
		}
	}
	return errors.New("article not found")
}
