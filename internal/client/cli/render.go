package cli

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/plantpal/internal/care"
	"github.com/dmitrijs2005/plantpal/internal/models"
)

// shortIDLen is how much of an ID the tables show.
const shortIDLen = 8

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("34"))
	headerStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle      = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	attentionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dueStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	barStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	boldStyle      = lipgloss.NewStyle().Bold(true)
	italicStyle    = lipgloss.NewStyle().Italic(true)
)

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// relDay describes t relative to today in whole calendar days.
func relDay(t, today time.Time) string {
	if t.IsZero() {
		return "never"
	}
	if care.SameDay(t, today) {
		return "today"
	}
	return humanize.RelTime(care.StartOfDay(t.In(today.Location())), care.StartOfDay(today), "ago", "from now")
}

// dueLabel is the "next" column for one cycle.
func dueLabel(last time.Time, freq int, today time.Time) string {
	if care.IsDue(last, freq, today) {
		return dueStyle.Render("due")
	}
	return relDay(care.NextDue(last, freq), today)
}

func healthLabel(h models.Health) string {
	if h == models.HealthAttention {
		return attentionStyle.Render("needs attention")
	}
	return string(h)
}

func renderPlants(plants []models.Plant, today time.Time) string {
	t := newTable("ID", "Name", "Location", "Light", "Health", "Water", "Care due")
	for _, p := range plants {
		cycles := care.DueCycles(p, today)
		names := make([]string, len(cycles))
		for i, c := range cycles {
			names[i] = string(c)
		}
		t.Row(
			shortID(p.ID),
			p.Name,
			p.Location,
			string(p.Light),
			healthLabel(p.Health),
			dueLabel(p.LastWatered, p.WateringFrequency, today),
			strings.Join(names, ", "),
		)
	}
	return t.String()
}

func renderPlant(p models.Plant, today time.Time) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(p.Name))
	if p.ScientificName != "" {
		b.WriteString(" " + italicStyle.Render(p.ScientificName))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n\n", mutedStyle.Render(p.ID))

	fmt.Fprintf(&b, "Location:  %s\n", p.Location)
	fmt.Fprintf(&b, "Light:     %s (%s)\n", p.Light, p.Sunlight)
	fmt.Fprintf(&b, "Humidity:  %s\n", p.Humidity)
	fmt.Fprintf(&b, "Health:    %s\n", healthLabel(p.Health))
	fmt.Fprintf(&b, "Image:     %s\n\n", p.Image)

	t := newTable("Care", "Every", "Last done", "Next")
	for _, c := range care.Cycles {
		last, freq := care.Schedule(p, c)
		t.Row(string(c), fmt.Sprintf("%d days", freq), relDay(last, today), dueLabel(last, freq, today))
	}
	b.WriteString(t.String())
	b.WriteString("\n")

	if p.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s\n", p.Notes)
	}
	if p.FertilizerDetails != "" {
		fmt.Fprintf(&b, "Fertilizer: %s\n", p.FertilizerDetails)
	}
	return b.String()
}

func renderStats(s models.Stats) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Your collection") + "\n")
	fmt.Fprintf(&b, "Total plants:     %d\n", s.Total)
	fmt.Fprintf(&b, "Healthy:          %d\n", s.Healthy)
	fmt.Fprintf(&b, "Needs attention:  %d\n", s.Attention)
	fmt.Fprintf(&b, "Needs water:      %d\n\n", s.NeedsWater)

	b.WriteString(titleStyle.Render("By light") + "\n")
	for _, l := range []models.Light{models.LightLow, models.LightMedium, models.LightBright} {
		fmt.Fprintf(&b, "  %-8s %d\n", l, s.ByLight[l])
	}

	if len(s.ByLocation) > 0 {
		b.WriteString("\n" + titleStyle.Render("By location") + "\n")
		locations := make([]string, 0, len(s.ByLocation))
		for l := range s.ByLocation {
			locations = append(locations, l)
		}
		sort.Strings(locations)
		for _, l := range locations {
			name := l
			if name == "" {
				name = "(none)"
			}
			fmt.Fprintf(&b, "  %-14s %d\n", name, s.ByLocation[l])
		}
	}

	b.WriteString("\n" + titleStyle.Render("Upcoming care") + "\n")
	for _, d := range s.Upcoming {
		fmt.Fprintf(&b, "  %s  %s %d\n", d.Date.Format("Mon 02 Jan"), barStyle.Render(strings.Repeat("█", d.Count)), d.Count)
	}
	return b.String()
}

func renderJournal(entries []models.JournalEntry, today time.Time) string {
	if len(entries) == 0 {
		return "Your journal is empty.\n"
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  %s\n", titleStyle.Render(e.Title), mutedStyle.Render(shortID(e.ID)))
		fmt.Fprintf(&b, "%s\n", mutedStyle.Render(e.Date.Format("Jan 2, 2006")+" · "+relDay(e.Date, today)))
		if e.Content != "" {
			fmt.Fprintf(&b, "%s\n", e.Content)
		}
		if e.File != nil {
			fmt.Fprintf(&b, "📎 %s (%s) %s\n", e.File.Name, e.File.Type, e.File.URL)
		}
	}
	return b.String()
}

func renderArticles(articles []models.Article) string {
	t := newTable("ID", "Title", "Category", "Type")
	for _, a := range articles {
		t.Row(a.ID, a.Title, a.Category, string(a.Type))
	}
	return t.String()
}

func renderArticle(a models.Article) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.Title) + "\n")
	b.WriteString(mutedStyle.Render(a.Category+" · "+string(a.Type)) + "\n")
	if a.Description != "" {
		b.WriteString(italicStyle.Render(a.Description) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(terminalMarkup.render(a.Content))
	b.WriteString("\n")
	return b.String()
}

var (
	boldRe   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.*?)\*`)
)

// markup renders the article subset: **bold**, *italic* and lines starting
// with "*" followed by spaces as bullets.
type markup struct {
	bold   func(string) string
	italic func(string) string
	bullet string
}

var terminalMarkup = markup{
	bold:   func(s string) string { return boldStyle.Render(s) },
	italic: func(s string) string { return italicStyle.Render(s) },
	bullet: "•",
}

func (m markup) render(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
		trimmed := strings.TrimLeft(line, " ")
		if rest, ok := strings.CutPrefix(trimmed, "* "); ok {
			lines[i] = indent + "  " + m.bullet + " " + m.inline(strings.TrimLeft(rest, " "))
			continue
		}
		lines[i] = m.inline(line)
	}
	return strings.Join(lines, "\n")
}

func (m markup) inline(s string) string {
	s = boldRe.ReplaceAllStringFunc(s, func(match string) string {
		return m.bold(match[2 : len(match)-2])
	})
	return italicRe.ReplaceAllStringFunc(s, func(match string) string {
		return m.italic(match[1 : len(match)-1])
	})
}
