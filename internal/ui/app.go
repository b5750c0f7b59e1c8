package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// AppModel is the root model: the carousel plus keybindings and the help overlay.
type AppModel struct {
	Carousel *CarouselView
	Keys     *KeybindRegistry
	Overlays *OverlayStack
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model around v.
func NewAppModel(v *CarouselView) *AppModel {
	reg := NewKeybindRegistry()
	prev := func() tea.Msg { return prevMsg{} }
	next := func() tea.Msg { return nextMsg{} }
	reg.BindWithDesc("left", prev, "Previous")
	reg.BindWithDesc("h", prev, "Previous")
	reg.BindWithDesc("right", next, "Next")
	reg.BindWithDesc("l", next, "Next")
	for i := 0; i < v.deck.Len() && i < 9; i++ {
		reg.BindWithDesc(fmt.Sprintf("%d", i+1), jumpTo(i), "Jump")
	}
	reg.BindWithDesc("?", func() tea.Msg { return toggleHelpMsg{} }, "Help")
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")

	return &AppModel{
		Carousel: v,
		Keys:     reg,
		Overlays: &OverlayStack{},
	}
}

func jumpTo(i int) tea.Cmd {
	return func() tea.Msg { return jumpMsg{Index: i} }
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Carousel.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case toggleHelpMsg:
		if _, ok := a.Overlays.Pop(); !ok {
			a.Overlays.Push(Overlay{
				View:    &helpView{registry: a.Keys},
				Dismiss: []string{"esc", "?"},
			})
		}
		return a, nil
	case tea.KeyMsg:
		if top, ok := a.Overlays.Peek(); ok {
			if top.IsDismissKey(msg.String()) {
				a.Overlays.Pop()
				return a, nil
			}
		}
		if consumed, cmd := a.Keys.Handle(msg); consumed {
			return a, cmd
		}
		return a, nil
	}

	v, cmd := a.Carousel.Update(msg)
	if cv, ok := v.(*CarouselView); ok {
		a.Carousel = cv
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.Carousel.View()
	if top, ok := a.Overlays.Peek(); ok {
		base += "\n" + top.View.View()
	} else {
		base += "\n" + RenderKeybindHint(a.Keys, a.Carousel.geom.Viewport())
	}
	return a.Carousel.Zones().Scan(base)
}
