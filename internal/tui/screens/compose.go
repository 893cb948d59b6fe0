package screens

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MuusmannMedia/liguster/internal/domain/model"
	"github.com/MuusmannMedia/liguster/internal/tui/common"
	"github.com/MuusmannMedia/liguster/internal/usecase"
)

// Compose form fields, in tab order
const (
	fieldOverskrift = iota
	fieldOmraade
	fieldText
	fieldCount
)

// Compose screen messages
type (
	// PostCreatedMsg is sent when the new post has been stored
	PostCreatedMsg struct{}

	// PostCreateErrorMsg is sent when creation fails
	PostCreateErrorMsg struct {
		Err error
	}
)

// ComposeModel is the model for the new-post form
type ComposeModel struct {
	feed    *usecase.FeedUseCase
	inputs  []textinput.Model
	focus   int
	keys    common.ComposeKeyMap
	spinner spinner.Model

	// kategoriIdx indexes model.Kategorier; 0 (the sentinel) means no
	// category on the draft.
	kategoriIdx int

	submitting bool
	err        error
	width      int
	height     int
}

// NewComposeModel creates a new post form
func NewComposeModel(feed *usecase.FeedUseCase) ComposeModel {
	mk := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		ti.Width = 48
		ti.PromptStyle = lipgloss.NewStyle().Foreground(common.ColorSecondary)
		return ti
	}

	inputs := make([]textinput.Model, fieldCount)
	inputs[fieldOverskrift] = mk("Overskrift", 80)
	inputs[fieldOmraade] = mk("Område, fx Vesterbro", 64)
	inputs[fieldText] = mk("Beskrivelse", 280)
	inputs[fieldOverskrift].Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(common.ColorPrimary)

	return ComposeModel{
		feed:    feed,
		inputs:  inputs,
		keys:    common.DefaultComposeKeyMap(),
		spinner: sp,
	}
}

// Init initializes the compose model
func (m ComposeModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the new-post form
func (m ComposeModel) Update(msg tea.Msg) (ComposeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case PostCreatedMsg:
		return m, func() tea.Msg {
			return NavigateMsg{Screen: "feed"}
		}

	case PostCreateErrorMsg:
		m.submitting = false
		m.err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.submitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Cancel):
			return m, func() tea.Msg {
				return NavigateMsg{Screen: "feed"}
			}

		case key.Matches(msg, m.keys.Next):
			m.setFocus((m.focus + 1) % fieldCount)
			return m, textinput.Blink

		case key.Matches(msg, m.keys.Prev):
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, textinput.Blink

		case key.Matches(msg, m.keys.Kategori):
			m.kategoriIdx = (m.kategoriIdx + 1) % len(model.Kategorier)
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			m.submitting = true
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, m.submit())
		}

		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the new-post form
func (m ComposeModel) View() string {
	var content strings.Builder

	content.WriteString(common.TitleStyle.Render("Nyt opslag"))
	content.WriteString("\n\n")

	labels := []string{"Overskrift", "Område", "Tekst"}
	for i, input := range m.inputs {
		label := labels[i]
		if i == m.focus {
			content.WriteString(common.PrimaryTextStyle.Render(label))
		} else {
			content.WriteString(common.MutedTextStyle.Render(label))
		}
		content.WriteString("\n")
		content.WriteString(input.View())
		content.WriteString("\n\n")
	}

	kategori := model.Kategorier[m.kategoriIdx]
	content.WriteString(common.MutedTextStyle.Render("Kategori (ctrl+k): "))
	if m.kategoriIdx == 0 {
		content.WriteString(common.MutedTextStyle.Render("ingen"))
	} else {
		content.WriteString(common.AccentTextStyle.Render(kategori))
	}
	content.WriteString("\n\n")

	if m.submitting {
		content.WriteString(fmt.Sprintf("%s Opretter opslag...", m.spinner.View()))
		content.WriteString("\n\n")
	} else if m.err != nil {
		content.WriteString(common.ErrorTextStyle.Render("Fejl: " + m.err.Error()))
		content.WriteString("\n\n")
	}

	content.WriteString(strings.Join([]string{
		common.FormatHelp("tab", "næste felt"),
		common.FormatHelp("ctrl+k", "kategori"),
		common.FormatHelp("enter", "opret"),
		common.FormatHelp("esc", "fortryd"),
	}, "  "))

	style := lipgloss.NewStyle().
		Width(m.width).
		Padding(1, 2)

	return style.Render(content.String())
}

func (m *ComposeModel) setFocus(focus int) {
	m.inputs[m.focus].Blur()
	m.focus = focus
	m.inputs[m.focus].Focus()
}

// Draft assembles the form content into a post draft
func (m ComposeModel) Draft() *model.PostDraft {
	draft := &model.PostDraft{
		Overskrift: strings.TrimSpace(m.inputs[fieldOverskrift].Value()),
		Omraade:    strings.TrimSpace(m.inputs[fieldOmraade].Value()),
		Text:       strings.TrimSpace(m.inputs[fieldText].Value()),
	}
	if m.kategoriIdx > 0 {
		kategori := model.Kategorier[m.kategoriIdx]
		draft.Kategori = &kategori
	}
	if loc := m.feed.UserLocation(); loc != nil {
		lat, lng := loc.Latitude, loc.Longitude
		draft.Latitude = &lat
		draft.Longitude = &lng
	}
	return draft
}

func (m ComposeModel) submit() tea.Cmd {
	draft := m.Draft()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := m.feed.CreatePost(ctx, draft); err != nil {
			return PostCreateErrorMsg{Err: err}
		}
		return PostCreatedMsg{}
	}
}
