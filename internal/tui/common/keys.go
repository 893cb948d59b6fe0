package common

import "github.com/charmbracelet/bubbles/key"

// FeedKeyMap defines key bindings for the feed screen
type FeedKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Back       key.Binding
	Refresh    key.Binding
	Search     key.Binding
	Kategori   key.Binding
	RadiusUp   key.Binding
	RadiusDown key.Binding
	New        key.Binding
	Quit       key.Binding
	Help       key.Binding
}

// DefaultFeedKeyMap returns key bindings for the feed screen
func DefaultFeedKeyMap() FeedKeyMap {
	return FeedKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "op"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "ned"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "vis opslag"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "tilbage"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "opdater"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "søg"),
		),
		Kategori: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "kategori"),
		),
		RadiusUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "radius op"),
		),
		RadiusDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "radius ned"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "nyt opslag"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "afslut"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "hjælp"),
		),
	}
}

// ShortHelp returns a short help text for the feed screen
func (k FeedKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Search, k.Kategori, k.Refresh, k.Quit}
}

// FullHelp returns full help for the feed screen
func (k FeedKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back},
		{k.Search, k.Kategori, k.RadiusUp, k.RadiusDown},
		{k.New, k.Refresh, k.Quit, k.Help},
	}
}

// ComposeKeyMap defines key bindings for the new-post form
type ComposeKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Submit   key.Binding
	Cancel   key.Binding
	Kategori key.Binding
}

// DefaultComposeKeyMap returns key bindings for the new-post form
func DefaultComposeKeyMap() ComposeKeyMap {
	return ComposeKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "næste felt"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "forrige felt"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "opret"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "fortryd"),
		),
		Kategori: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "kategori"),
		),
	}
}
