package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Back       key.Binding
	Forward    key.Binding
	PageBack   key.Binding
	PageFwd    key.Binding
	Home       key.Binding
	End        key.Binding
	Container  key.Binding
	Axis       key.Binding
	Position   key.Binding
	Style      key.Binding
	Inverted   key.Binding
	Persistent key.Binding
	Trace      key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Back:       key.NewBinding(key.WithKeys("up", "k", "left", "h"), key.WithHelp("↑/←", "scroll back")),
		Forward:    key.NewBinding(key.WithKeys("down", "j", "right", "l"), key.WithHelp("↓/→", "scroll forward")),
		PageBack:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page back")),
		PageFwd:    key.NewBinding(key.WithKeys("pgdown", " ", "f"), key.WithHelp("pgdn", "page forward")),
		Home:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "start")),
		End:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "end")),
		Container:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "container")),
		Axis:       key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "orientation")),
		Position:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "position")),
		Style:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "style")),
		Inverted:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "inverted")),
		Persistent: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "persistent")),
		Trace:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "trace")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Forward, k.Container, k.Axis, k.Position, k.Style, k.Inverted, k.Persistent, k.Trace, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Back, k.Forward, k.PageBack, k.PageFwd, k.Home, k.End},
		{k.Container, k.Axis, k.Position, k.Style, k.Inverted, k.Persistent, k.Trace, k.Quit},
	}
}
