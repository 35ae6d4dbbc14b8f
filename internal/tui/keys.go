package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Filter   key.Binding
	Category key.Binding
	Play     key.Binding
	Reset    key.Binding
	Target   key.Binding
	Sequence key.Binding
	Switch   key.Binding
	Theme    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		Play:     key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "play/pause")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Target:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "target")),
		Sequence: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sequence")),
		Switch:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "algorithm")),
		Theme:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "theme")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// visualizerKeys is the help.KeyMap shown under the visualizer.
type visualizerKeys keyMap

func (k visualizerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Reset, k.Target, k.Sequence, k.Switch, k.Theme, k.Back, k.Quit}
}

func (k visualizerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type menuKeys keyMap

func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Filter, k.Category, k.Quit}
}

func (k menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
