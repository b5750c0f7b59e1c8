package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps keys to commands.
// Keys use tea.KeyMsg.String() notation: "h", "left", "ctrl+c", "?".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	order        []string // registration order, for help display
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
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDesc(k, cmd, "")
}

// BindWithDesc registers a key with a description for the help view.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	if _, exists := r.bindings[k]; !exists {
		r.order = append(r.order, k)
	}
	r.bindings[k] = cmd
	if desc != "" {
		r.descriptions[k] = desc
	}
}

// Lookup returns the command for a key, or nil if not bound.
func (r *KeybindRegistry) Lookup(k string) tea.Cmd {
	return r.bindings[k]
}

// Handle looks up msg. Returns (consumed, cmd).
func (r *KeybindRegistry) Handle(msg tea.KeyMsg) (bool, tea.Cmd) {
	if c := r.Lookup(msg.String()); c != nil {
		return true, c
	}
	return false, nil
}

// Hints returns described bindings grouped by description, keys in
// registration order. Bindings without a description are omitted.
func (r *KeybindRegistry) Hints() map[string][]string {
	out := make(map[string][]string)
	for _, k := range r.order {
		if r.bindings[k] == nil {
			continue
		}
		if d, ok := r.descriptions[k]; ok && d != "" {
			out[d] = append(out[d], k)
		}
	}
	return out
}

// KeyMap implements help.KeyMap over a KeybindRegistry.
type KeyMap struct {
	registry *KeybindRegistry
}

// NewKeyMap creates a KeyMap for the given registry.
func NewKeyMap(registry *KeybindRegistry) help.KeyMap {
	return &KeyMap{registry: registry}
}

// ShortHelp returns one binding per description, in first-registration order.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	hints := km.registry.Hints()
	if len(hints) == 0 {
		return nil
	}

	first := make(map[string]int, len(hints))
	for i, k := range km.registry.order {
		if d := km.registry.descriptions[k]; d != "" {
			if _, seen := first[d]; !seen {
				first[d] = i
			}
		}
	}
	descs := make([]string, 0, len(hints))
	for d := range hints {
		descs = append(descs, d)
	}
	sort.Slice(descs, func(i, j int) bool { return first[descs[i]] < first[descs[j]] })

	bindings := make([]key.Binding, 0, len(descs))
	for _, d := range descs {
		keys := hints[d]
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(joinKeys(keys), d),
		))
	}
	return bindings
}

// FullHelp returns a single column with the same bindings as ShortHelp.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}

func joinKeys(keys []string) string {
	shown := make([]string, len(keys))
	for i, k := range keys {
		shown[i] = displayKey(k)
	}
	return strings.Join(shown, "/")
}

// displayKey shortens arrow key names for the help bar.
func displayKey(k string) string {
	switch k {
	case "left":
		return "←"
	case "right":
		return "→"
	default:
		return k
	}
}
