package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/repogallery/internal/gallery"
)

var (
	cardNameStyle     = lipgloss.NewStyle().PaddingLeft(2).Bold(true)
	cardSelectedStyle = lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(lipgloss.Color("170")).
				Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("170"))
	cardTextStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("252"))
	cardMetaStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("244"))
	forkTagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	starStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type cardItem struct {
	card gallery.Card
}

func (i cardItem) FilterValue() string { return i.card.Name }

// cardDelegate renders a card as name, description, and a meta line
type cardDelegate struct{}

func (d cardDelegate) Height() int                             { return 3 }
func (d cardDelegate) Spacing() int                            { return 1 }
func (d cardDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d cardDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(cardItem)
	if !ok {
		return
	}

	name := i.card.Name
	if i.card.Fork {
		name += " " + forkTagStyle.Render("(fork)")
	}

	nameStyle := cardNameStyle
	if index == m.Index() {
		nameStyle = cardSelectedStyle
	}

	desc := i.card.Description
	if width := m.Width() - 4; width > 3 {
		if runes := []rune(desc); len(runes) > width {
			desc = string(runes[:width-3]) + "..."
		}
	}

	_, _ = fmt.Fprintf(w, "%s\n%s\n%s",
		nameStyle.Render(name),
		cardTextStyle.Render(desc),
		cardMetaStyle.Render(metaLine(i.card)),
	)
}

// metaLine joins stars, language and update time; language is left out when absent
func metaLine(c gallery.Card) string {
	parts := []string{starStyle.Render("★ " + c.Stars)}

	if c.Language != "" {
		parts = append(parts, c.Language)
	}

	if c.Updated != "" {
		parts = append(parts, "updated "+c.Updated)
	}

	parts = append(parts, c.URL)

	return strings.Join(parts, " · ")
}
