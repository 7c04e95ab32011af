package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps keys to commands, remembering registration order for help.
// Keys use tea.KeyMsg.String() notation ("left", "shift+tab", "1"); " " is written "space".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	order        []string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key to a command.
// Overwrites any existing binding for the key.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key with a description for the help bar.
// Keys sharing a description are shown together ("←/h").
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	n := normalizeSeq(seq)
	if _, exists := r.bindings[n]; !exists {
		r.order = append(r.order, n)
	}
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
}

// Lookup returns the command for a key, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// Handle runs the binding for msg. Returns (consumed, cmd).
func (r *KeybindRegistry) Handle(msg tea.KeyMsg) (bool, tea.Cmd) {
	if c := r.Lookup(msg.String()); c != nil {
		return true, c
	}
	return false, nil
}

// Bindings returns help bindings, one per description, in registration order.
func (r *KeybindRegistry) Bindings() []key.Binding {
	var (
		out   []key.Binding
		index = make(map[string]int)
		keys  [][]string
	)
	for _, seq := range r.order {
		desc, ok := r.descriptions[seq]
		if !ok || r.bindings[seq] == nil {
			continue
		}
		i, seen := index[desc]
		if !seen {
			i = len(keys)
			index[desc] = i
			keys = append(keys, nil)
			out = append(out, key.Binding{})
		}
		keys[i] = append(keys[i], seq)
		out[i] = key.NewBinding(
			key.WithKeys(keys[i]...),
			key.WithHelp(strings.Join(keys[i], "/"), desc),
		)
	}
	return out
}

// normalizeSeq maps Bubble Tea's " " to "space".
func normalizeSeq(seq string) string {
	if seq == " " {
		return "space"
	}
	return strings.TrimSpace(seq)
}

// KeyMap implements help.KeyMap over a registry.
type KeyMap struct {
	registry *KeybindRegistry
}

// NewKeyMap creates a KeyMap for registry.
func NewKeyMap(registry *KeybindRegistry) help.KeyMap {
	return &KeyMap{registry: registry}
}

// ShortHelp returns bindings for the short help view.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	return km.registry.Bindings()
}

// FullHelp returns a single column with the same bindings as ShortHelp.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
