package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cli/browser"
	"github.com/inovacc/repogallery/internal/derive"
	"github.com/inovacc/repogallery/internal/gallery"
	"github.com/inovacc/repogallery/internal/loader"
	"github.com/inovacc/repogallery/internal/logging"
	"github.com/inovacc/repogallery/internal/model"
)

var (
	docStyle     = lipgloss.NewStyle().Margin(1, 2)
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	filterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// header and footer lines around the card list
const chromeHeight = 6

type loadedMsg struct {
	generation int
	records    []model.Repository
	err        error
}

type openedMsg struct {
	url string
	err error
}

// GalleryConfig wires a GalleryModel to its collaborators
type GalleryConfig struct {
	Source  loader.Source
	Owner   string
	Logger  *slog.Logger
	OpenURL func(url string) error
}

// GalleryModel is the interactive gallery: a loading, ready, error state
// machine over one account's repositories.
type GalleryModel struct {
	parent  context.Context
	ctx     context.Context
	cancel  context.CancelFunc
	source  loader.Source
	owner   string
	logger  *slog.Logger
	openURL func(string) error

	generation int
	phase      gallery.Phase
	problem    gallery.Problem
	state      gallery.State
	memo       *derive.Memo
	view       []model.Repository

	spinner  spinner.Model
	list     list.Model
	status   string
	quitting bool
}

// NewGalleryModel creates a gallery in the loading phase. The load starts
// when the program calls Init and is cancelled when the user quits.
func NewGalleryModel(ctx context.Context, cfg GalleryConfig) GalleryModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	l := list.New(nil, cardDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	openURL := cfg.OpenURL
	if openURL == nil {
		openURL = browser.OpenURL
	}

	m := GalleryModel{
		parent:  ctx,
		source:  cfg.Source,
		owner:   cfg.Owner,
		logger:  logger,
		openURL: openURL,
		phase:   gallery.PhaseLoading,
		state:   gallery.DefaultState(),
		spinner: s,
		list:    l,
	}
	m.ctx, m.cancel = context.WithCancel(ctx)

	return m
}

func (m GalleryModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m GalleryModel) load() tea.Cmd {
	ctx, generation, source, owner := m.ctx, m.generation, m.source, m.owner

	return func() tea.Msg {
		records, err := source.LoadAll(ctx, owner)
		return loadedMsg{generation: generation, records: records, err: err}
	}
}

func (m GalleryModel) open(url string) tea.Cmd {
	openURL := m.openURL

	return func() tea.Msg {
		return openedMsg{url: url, err: openURL(url)}
	}
}

// reload throws the session away and starts over, like reloading the page
func (m GalleryModel) reload() (GalleryModel, tea.Cmd) {
	m.cancel()
	m.ctx, m.cancel = context.WithCancel(m.parent)

	m.generation++
	m.phase = gallery.PhaseLoading
	m.problem = gallery.Problem{}
	m.state = gallery.DefaultState()
	m.memo = nil
	m.view = nil
	m.status = ""
	m.list.SetItems(nil)

	m.logger.Info("reloading gallery", slog.String("owner", m.owner), slog.Int("generation", m.generation))

	return m, tea.Batch(m.spinner.Tick, m.load())
}

// project recomputes the visible cards from the current state
func (m GalleryModel) project() (GalleryModel, tea.Cmd) {
	m.view = m.memo.View(m.state.Filter())

	cards := gallery.NewCards(m.view)

	items := make([]list.Item, len(cards))
	for i, c := range cards {
		items[i] = cardItem{card: c}
	}

	cmd := m.list.SetItems(items)
	m.list.ResetSelected()

	return m, cmd
}

func (m GalleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, max(msg.Height-v-chromeHeight, 0))

		return m, nil

	case loadedMsg:
		if msg.generation != m.generation {
			return m, nil
		}

		m.phase, m.problem = gallery.Classify(m.owner, msg.records, msg.err)
		if m.phase != gallery.PhaseReady {
			m.logger.Warn("gallery has nothing to show",
				slog.String("owner", m.owner),
				slog.String("problem", m.problem.Title),
			)

			return m, nil
		}

		m.memo = derive.NewMemo(msg.records)

		return m.project()

	case openedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Could not open %s: %v", msg.url, msg.err)
		} else {
			m.status = "Opened " + msg.url
		}

		return m, nil

	case spinner.TickMsg:
		if m.phase != gallery.PhaseLoading {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			m.cancel()

			return m, tea.Quit
		}

		switch m.phase {
		case gallery.PhaseError:
			if msg.String() == "r" {
				return m.reload()
			}

			return m, nil

		case gallery.PhaseReady:
			return m.handleReadyKey(msg)
		}

		return m, nil
	}

	if m.phase == gallery.PhaseReady {
		var cmd tea.Cmd

		m.list, cmd = m.list.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m GalleryModel) handleReadyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s":
		m.state = m.state.CycleSort()
		return m.project()

	case "l":
		m.state = m.state.CycleLanguage(m.memo.Languages())
		return m.project()

	case "f":
		m.state = m.state.ToggleForks()
		return m.project()

	case "enter":
		if i, ok := m.list.SelectedItem().(cardItem); ok {
			return m, m.open(i.card.URL)
		}

		return m, nil
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m GalleryModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case gallery.PhaseLoading:
		return fmt.Sprintf("\n  %s Loading repositories of %s...\n\n", m.spinner.View(), headerStyle.Render(m.owner))

	case gallery.PhaseError:
		var b strings.Builder

		b.WriteString(errorStyle.Render("✗ "+m.problem.Title) + "\n\n")
		b.WriteString(detailStyle.Render(m.problem.Detail) + "\n\n")
		b.WriteString(helpStyle.Render("r: reload • q: quit"))

		return docStyle.Render(b.String())
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render(m.owner+"'s repositories") + "\n")
	b.WriteString(summaryStyle.Render(gallery.Summary(len(m.memo.Records()), len(m.view))) + "\n")
	b.WriteString(filterStyle.Render(m.filterLine()) + "\n\n")

	if len(m.view) == 0 {
		b.WriteString(emptyStyle.Render(gallery.NoMatches) + "\n")
	} else {
		b.WriteString(m.list.View() + "\n")
	}

	if m.status != "" {
		b.WriteString(filterStyle.Render(m.status) + "\n")
	}

	b.WriteString(helpStyle.Render("s: sort • l: language • f: forks • enter: open • ↑/↓: move • q: quit"))

	return docStyle.Render(b.String())
}

func (m GalleryModel) filterLine() string {
	forks := "shown"
	if m.state.HideForks {
		forks = "hidden"
	}

	return fmt.Sprintf("Sort: %s • Language: %s • Forks: %s", m.state.Sort.Label(), m.state.Language, forks)
}

// Phase returns the current load phase.
func (m GalleryModel) Phase() gallery.Phase {
	return m.phase
}

// State returns the current filter and sort selection.
func (m GalleryModel) State() gallery.State {
	return m.state
}

// Problem returns the error panel content when in the error phase.
func (m GalleryModel) Problem() gallery.Problem {
	return m.problem
}

// Visible returns the repositories currently shown, in display order.
func (m GalleryModel) Visible() []model.Repository {
	return m.view
}
