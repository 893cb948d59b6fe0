package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MuusmannMedia/liguster/internal/tui/common"
	"github.com/MuusmannMedia/liguster/internal/tui/screens"
	"github.com/MuusmannMedia/liguster/internal/usecase"
)

// Screen represents the current screen in the TUI.
type Screen int

const (
	ScreenFeed Screen = iota
	ScreenCompose
)

// App is the main application model.
type App struct {
	screen   Screen
	width    int
	height   int
	feed     *usecase.FeedUseCase
	notifier *StatusNotifier

	feedModel    screens.FeedModel
	composeModel screens.ComposeModel
}

// NewApp creates a new application instance around a wired feed usecase.
// The usecase's notifier should be the app's StatusNotifier so in-app
// errors end up in the status bar.
func NewApp(feed *usecase.FeedUseCase, notifier *StatusNotifier) *App {
	return &App{
		screen:    ScreenFeed,
		feed:      feed,
		notifier:  notifier,
		feedModel: screens.NewFeedModel(feed),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.feedModel.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, a.forwardToCurrentScreen(msg)

	case screens.NavigateMsg:
		return a.handleNavigation(msg.Screen)
	}

	return a, a.forwardToCurrentScreen(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	var content string
	switch a.screen {
	case ScreenFeed:
		content = a.feedModel.View()
	case ScreenCompose:
		content = a.composeModel.View()
	}

	if notice := a.notifier.Last(); notice != "" {
		content += "\n" + common.StatusBarStyle.Render(notice)
	}
	return content
}

func (a *App) forwardToCurrentScreen(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.screen {
	case ScreenFeed:
		a.feedModel, cmd = a.feedModel.Update(msg)
	case ScreenCompose:
		a.composeModel, cmd = a.composeModel.Update(msg)
	}
	return cmd
}

func (a *App) handleNavigation(screen string) (tea.Model, tea.Cmd) {
	var initCmd tea.Cmd

	switch screen {
	case "compose":
		a.screen = ScreenCompose
		a.composeModel = screens.NewComposeModel(a.feed)
		initCmd = a.composeModel.Init()
	case "feed":
		a.screen = ScreenFeed
		// Returning from compose: refetch so a new post shows up.
		a.feedModel = screens.NewFeedModel(a.feed)
		initCmd = a.feedModel.Init()
	}

	sizeCmd := a.forwardToCurrentScreen(tea.WindowSizeMsg{
		Width:  a.width,
		Height: a.height,
	})

	if initCmd != nil {
		return a, tea.Batch(initCmd, sizeCmd)
	}
	return a, sizeCmd
}

// StatusNotifier is a usecase.Notifier that keeps the most recent
// notification for the status bar.
type StatusNotifier struct {
	mu   sync.Mutex
	last string
}

func NewStatusNotifier() *StatusNotifier {
	return &StatusNotifier{}
}

// Notify implements usecase.Notifier.
func (n *StatusNotifier) Notify(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.last = title + ": " + message
}

// Last returns the most recent notification, or the empty string.
func (n *StatusNotifier) Last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.last
}
