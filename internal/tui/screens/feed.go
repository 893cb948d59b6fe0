package screens

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MuusmannMedia/liguster/internal/domain/model"
	"github.com/MuusmannMedia/liguster/internal/tui/common"
	"github.com/MuusmannMedia/liguster/internal/usecase"
)

// FeedState represents the current state of the feed screen
type FeedState int

const (
	FeedStateLoading FeedState = iota
	FeedStateReady
)

// Feed screen messages
type (
	// PostsFetchedMsg is sent when a fetch cycle has completed. The posts
	// themselves are read back from the usecase.
	PostsFetchedMsg struct{}

	// NavigateMsg asks the app to switch screen
	NavigateMsg struct {
		Screen string
		Data   interface{}
	}
)

// FeedModel is the model for the neighborhood feed screen
type FeedModel struct {
	feed    *usecase.FeedUseCase
	spinner spinner.Model
	help    help.Model
	keys    common.FeedKeyMap

	state  FeedState
	cursor int
	width  int
	height int

	searchInput  textinput.Model
	searchActive bool

	kategoriIdx int
	detail      *model.Post
	showHelp    bool
}

// NewFeedModel creates a new feed screen model
func NewFeedModel(feed *usecase.FeedUseCase) FeedModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(common.ColorPrimary)

	si := textinput.New()
	si.Placeholder = "Søg i opslag..."
	si.CharLimit = 64
	si.Width = 40
	si.PromptStyle = lipgloss.NewStyle().Foreground(common.ColorSecondary)

	return FeedModel{
		feed:        feed,
		spinner:     sp,
		help:        help.New(),
		keys:        common.DefaultFeedKeyMap(),
		state:       FeedStateLoading,
		searchInput: si,
	}
}

// Init initializes the feed model
func (m FeedModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.initFeed())
}

// Update handles messages for the feed screen
func (m FeedModel) Update(msg tea.Msg) (FeedModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case PostsFetchedMsg:
		m.state = FeedStateReady
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.state == FeedStateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m FeedModel) handleKey(msg tea.KeyMsg) (FeedModel, tea.Cmd) {
	// Search input mode: every keystroke refilters live.
	if m.searchActive {
		switch msg.String() {
		case "esc":
			m.searchActive = false
			m.searchInput.Blur()
			m.searchInput.SetValue("")
			m.feed.SetSearchQuery("")
			m.clampCursor()
			return m, nil
		case "enter":
			m.searchActive = false
			m.searchInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			m.feed.SetSearchQuery(m.searchInput.Value())
			m.clampCursor()
			return m, cmd
		}
	}

	// Detail mode only listens for back/quit.
	if m.detail != nil {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.detail = nil
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.feed.FilteredPosts())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		posts := m.feed.FilteredPosts()
		if m.state == FeedStateReady && m.cursor < len(posts) {
			post := posts[m.cursor]
			m.detail = &post
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		if m.state == FeedStateReady {
			m.searchActive = true
			m.searchInput.Focus()
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.Kategori):
		m.kategoriIdx = (m.kategoriIdx + 1) % len(model.Kategorier)
		m.feed.SetKategoriFilter(model.Kategorier[m.kategoriIdx])
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.RadiusUp):
		m.feed.HandleRadiusChange(m.feed.Radius() + 1)
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.RadiusDown):
		if r := m.feed.Radius() - 1; r >= 1 {
			m.feed.HandleRadiusChange(r)
			m.clampCursor()
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.state == FeedStateReady {
			m.state = FeedStateLoading
			return m, tea.Batch(m.spinner.Tick, m.refresh())
		}

	case key.Matches(msg, m.keys.New):
		if m.state == FeedStateReady {
			return m, func() tea.Msg {
				return NavigateMsg{Screen: "compose"}
			}
		}

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	return m, nil
}

// View renders the feed screen
func (m FeedModel) View() string {
	var content strings.Builder

	content.WriteString(common.TitleStyle.Render("Liguster"))
	content.WriteString("\n")
	content.WriteString(common.SubtitleStyle.Render("Opslag fra dit nabolag"))
	content.WriteString("\n\n")

	if m.detail != nil {
		return m.renderDetail(&content)
	}

	content.WriteString(m.renderStatusLine())
	content.WriteString("\n\n")

	if m.searchActive {
		content.WriteString(common.PrimaryTextStyle.Render("Søg: "))
		content.WriteString(m.searchInput.View())
		content.WriteString("\n\n")
	} else if q := m.feed.SearchQuery(); q != "" {
		content.WriteString(common.MutedTextStyle.Render(fmt.Sprintf("Søg: %q", q)))
		content.WriteString("\n\n")
	}

	switch m.state {
	case FeedStateLoading:
		content.WriteString(fmt.Sprintf("%s Henter opslag...", m.spinner.View()))

	case FeedStateReady:
		posts := m.feed.FilteredPosts()
		if len(posts) == 0 {
			content.WriteString(common.MutedTextStyle.Render("Ingen opslag matcher dine filtre."))
		} else {
			for i, post := range posts {
				content.WriteString(m.renderPostLine(i, &post))
				content.WriteString("\n")
			}
		}
	}

	content.WriteString("\n\n")
	if m.showHelp {
		content.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		content.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}

	style := lipgloss.NewStyle().
		Width(m.width).
		Padding(1, 2)

	return style.Render(content.String())
}

func (m FeedModel) renderStatusLine() string {
	parts := []string{
		fmt.Sprintf("Radius: %.0f km", m.feed.Radius()),
		"Kategori: " + m.feed.KategoriFilter(),
	}
	if m.feed.UserLocation() == nil {
		parts = append(parts, "Lokation: ukendt")
	}
	if m.feed.UserID() == "" {
		parts = append(parts, common.AccentTextStyle.Render("Ikke logget ind"))
	}
	return common.MutedTextStyle.Render(strings.Join(parts, "   "))
}

func (m FeedModel) renderPostLine(i int, post *model.Post) string {
	line := fmt.Sprintf("%s  %s", post.Overskrift, common.MutedTextStyle.Render(post.Omraade))
	if k := post.KategoriValue(); k != "" {
		line += "  " + common.AccentTextStyle.Render("["+k+"]")
	}
	if i == m.cursor {
		return common.SelectedStyle.Render("› " + line)
	}
	return common.UnselectedStyle.Render("  " + line)
}

func (m FeedModel) renderDetail(content *strings.Builder) string {
	post := m.detail

	var box strings.Builder
	box.WriteString(common.PrimaryTextStyle.Bold(true).Render(post.Overskrift))
	box.WriteString("\n")
	box.WriteString(common.MutedTextStyle.Render(post.Omraade))
	if k := post.KategoriValue(); k != "" {
		box.WriteString("  " + common.AccentTextStyle.Render("["+k+"]"))
	}
	box.WriteString("\n\n")
	box.WriteString(common.TextStyle.Render(post.Text))
	box.WriteString("\n\n")
	if !post.CreatedAt.IsZero() {
		box.WriteString(common.MutedTextStyle.Render("Oprettet " + post.CreatedAt.Format("2006-01-02 15:04")))
		box.WriteString("\n")
	}
	if post.HasLocation() {
		box.WriteString(common.MutedTextStyle.Render(fmt.Sprintf("Position: %.4f, %.4f", *post.Latitude, *post.Longitude)))
		box.WriteString("\n")
	}

	content.WriteString(common.BoxStyle.Render(box.String()))
	content.WriteString("\n\n")
	content.WriteString(common.FormatHelp("esc", "tilbage") + "  " + common.FormatHelp("q", "afslut"))

	style := lipgloss.NewStyle().
		Width(m.width).
		Padding(1, 2)

	return style.Render(content.String())
}

func (m *FeedModel) clampCursor() {
	n := len(m.feed.FilteredPosts())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m FeedModel) initFeed() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		m.feed.Initialize(ctx)
		m.feed.FetchPosts(ctx)
		return PostsFetchedMsg{}
	}
}

func (m FeedModel) refresh() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		m.feed.Refresh(ctx)
		return PostsFetchedMsg{}
	}
}
