package ui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"slidenav/internal/carousel"
	"slidenav/internal/deck"
	"slidenav/internal/trace"
)

// Zone IDs for clickable navigation controls
const (
	zonePrev = "carousel-prev"
	zoneNext = "carousel-next"
)

func dotZone(i int) string { return fmt.Sprintf("carousel-dot-%d", i) }

// stripTop is the first terminal row of the strip (row 0 is the deck title).
const stripTop = 1

// Message types for carousel updates
type (
	reflowMsg     struct{ run func() }
	prevMsg       struct{}
	nextMsg       struct{}
	jumpMsg       struct{ Index int }
	toggleHelpMsg struct{}
)

// CarouselOptions configures NewCarouselView.
type CarouselOptions struct {
	PanelWidth  int
	PanelHeight int
	Gap         int
	CellWidth   float64
	Carousel    []carousel.Option
	Recorder    *trace.Recorder // optional
	Logger      *slog.Logger    // optional
}

// CarouselView draws a deck as a horizontally dragged strip and feeds mouse
// and resize input into a carousel.Controller.
type CarouselView struct {
	deck     *deck.Deck
	geom     *TermGeometry
	renderer *TermRenderer
	ctrl     *carousel.Controller
	controls *carousel.DefaultControls
	prev     *carousel.Button
	next     *carousel.Button
	recorder *trace.Recorder
	zones    *zone.Manager
	log      *slog.Logger

	reflowCh    chan func() // debounced reflows handed back to Update
	panelWidth  int
	panelHeight int
	gap         int

	width  int
	height int
	sized  bool
}

var _ View = (*CarouselView)(nil)

// NewCarouselView builds the controller for d and wires arrows and controls.
func NewCarouselView(d *deck.Deck, opts CarouselOptions) (*CarouselView, error) {
	if d == nil || d.Len() == 0 {
		return nil, &carousel.ConfigError{Element: "deck"}
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	v := &CarouselView{
		deck:        d,
		geom:        NewTermGeometry(d.Len(), opts.PanelWidth, opts.Gap, opts.CellWidth),
		renderer:    NewTermRenderer(),
		prev:        &carousel.Button{Name: "prev"},
		next:        &carousel.Button{Name: "next"},
		recorder:    opts.Recorder,
		zones:       zone.New(),
		log:         log,
		reflowCh:    make(chan func(), 1),
		panelWidth:  opts.PanelWidth,
		panelHeight: opts.PanelHeight,
		gap:         opts.Gap,
		width:       80,
	}

	copts := append([]carousel.Option{}, opts.Carousel...)
	copts = append(copts,
		carousel.WithPost(v.post),
		carousel.WithLogger(log),
	)
	if v.recorder != nil {
		copts = append(copts, carousel.WithGestureObserver(v.recorder))
	}

	ctrl, err := carousel.New(v.geom, v.renderer, copts...).Init()
	if err != nil {
		return nil, fmt.Errorf("init carousel: %w", err)
	}
	v.ctrl = ctrl

	if err := ctrl.AddArrows(v.prev, v.next); err != nil {
		return nil, fmt.Errorf("wire arrows: %w", err)
	}
	list, err := ctrl.AddControls(nil)
	if err != nil {
		return nil, fmt.Errorf("wire controls: %w", err)
	}
	v.controls = list.(*carousel.DefaultControls)

	if v.recorder != nil {
		v.recorder.Bind(ctrl.ID())
		ctrl.Subscribe(v.recorder)
	}
	return v, nil
}

// Controller returns the underlying carousel.
func (v *CarouselView) Controller() *carousel.Controller { return v.ctrl }

// Renderer returns the drawing surface state.
func (v *CarouselView) Renderer() *TermRenderer { return v.renderer }

// Zones returns the zone manager; the outermost model scans with it.
func (v *CarouselView) Zones() *zone.Manager { return v.zones }

// Close stops pending reflows and the zone worker.
func (v *CarouselView) Close() {
	v.ctrl.Close()
	v.zones.Close()
}

// post hands deferred carousel work to the Update loop. A reflow already
// queued covers a newer one since Reflow always reads current geometry.
func (v *CarouselView) post(fn func()) {
	select {
	case v.reflowCh <- fn:
	default:
	}
}

func waitForReflow(ch <-chan func()) tea.Cmd {
	return func() tea.Msg {
		return reflowMsg{run: <-ch}
	}
}

// Init implements View.
func (v *CarouselView) Init() tea.Cmd {
	return waitForReflow(v.reflowCh)
}

// Update implements View.
func (v *CarouselView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		v.geom.SetViewport(msg.Width)
		if !v.sized {
			// nothing has been drawn at the old width yet
			v.sized = true
			v.ctrl.Reflow()
			return v, nil
		}
		v.ctrl.ViewportChanged()
		return v, nil
	case reflowMsg:
		if msg.run != nil {
			msg.run()
		}
		return v, waitForReflow(v.reflowCh)
	case tea.MouseMsg:
		v.handleMouse(msg)
		return v, nil
	case prevMsg:
		v.prev.Activate()
	case nextMsg:
		v.next.Activate()
	case jumpMsg:
		if item := v.controls.Item(msg.Index); item != nil {
			item.Activate()
		}
	}
	return v, nil
}

func (v *CarouselView) handleMouse(msg tea.MouseMsg) {
	s := carousel.Sample{Family: carousel.Mouse, X: v.geom.ToUnits(msg.X)}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if t := v.hitControl(msg); t != nil {
			t.Activate()
			return
		}
		if v.inStrip(msg.Y) {
			v.ctrl.Press(s)
		}
	case tea.MouseActionMotion:
		v.ctrl.Move(s)
	case tea.MouseActionRelease:
		v.ctrl.Release(s)
	}
}

// hitControl returns the arrow or control item under the pointer.
func (v *CarouselView) hitControl(msg tea.MouseMsg) *carousel.Button {
	if inZone(v.zones, zonePrev, msg) {
		return v.prev
	}
	if inZone(v.zones, zoneNext, msg) {
		return v.next
	}
	for i := 0; i < v.controls.Len(); i++ {
		if inZone(v.zones, dotZone(i), msg) {
			return &v.controls.Item(i).Button
		}
	}
	return nil
}

func inZone(zm *zone.Manager, id string, msg tea.MouseMsg) bool {
	z := zm.Get(id)
	return z != nil && z.InBounds(msg)
}

func (v *CarouselView) inStrip(y int) bool {
	return y >= stripTop && y < stripTop+v.panelHeight
}

// View implements View.
func (v *CarouselView) View() string {
	title := Styles.Title.Render(v.deck.Title)
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		v.renderStrip(),
		v.renderNav(),
		v.renderStatus(),
	)
}

func (v *CarouselView) renderPanel(i int) string {
	style := Styles.Panel
	if i == v.renderer.Current() {
		style = Styles.PanelCurrent
	}
	s := v.deck.Slides[i]
	content := Styles.PanelTitle.Render(s.Title)
	if s.Body != "" {
		content += "\n\n" + Styles.PanelBody.Render(s.Body)
	}
	// Width/Height exclude the border
	return style.
		Width(v.panelWidth - 2).
		Height(v.panelHeight - 2).
		MaxHeight(v.panelHeight).
		Render(content)
}

// renderStrip draws every panel side by side and crops the result to the
// viewport at the renderer's offset.
func (v *CarouselView) renderStrip() string {
	parts := make([]string, 0, 2*v.deck.Len())
	spacer := strings.Repeat(" ", v.gap)
	for i := range v.deck.Slides {
		if i > 0 && v.gap > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, v.renderPanel(i))
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return cropStrip(strip, v.geom.ToCells(v.renderer.Offset()), v.geom.Viewport())
}

// cropStrip shows columns [-shift, -shift+width) of strip.
func cropStrip(strip string, shift, width int) string {
	lines := strings.Split(strip, "\n")
	left := 0
	if shift < 0 {
		left = -shift
	}
	for i, line := range lines {
		if shift > 0 {
			line = strings.Repeat(" ", shift) + line
		}
		lines[i] = ansi.Cut(line, left, left+width)
	}
	return strings.Join(lines, "\n")
}

func (v *CarouselView) renderNav() string {
	idx := v.ctrl.Current()

	prevStyle, nextStyle := Styles.Arrow, Styles.Arrow
	if !idx.HasPrev() {
		prevStyle = Styles.ArrowDim
	}
	if !idx.HasNext() {
		nextStyle = Styles.ArrowDim
	}

	items := make([]string, 0, v.controls.Len()+2)
	items = append(items, v.zones.Mark(zonePrev, prevStyle.Render("‹")))
	for i := 0; i < v.controls.Len(); i++ {
		style := Styles.Dot
		label := v.controls.Item(i).Label
		if i == v.controls.Current() {
			style = Styles.DotCurrent
			label = "[" + label + "]"
		}
		items = append(items, v.zones.Mark(dotZone(i), style.Render(label)))
	}
	items = append(items, v.zones.Mark(zoneNext, nextStyle.Render("›")))

	return lipgloss.PlaceHorizontal(v.geom.Viewport(), lipgloss.Center, strings.Join(items, " "))
}

func (v *CarouselView) renderStatus() string {
	idx := v.ctrl.Current()
	parts := []string{
		fmt.Sprintf("slide %d/%d", idx.Active+1, v.deck.Len()),
		fmt.Sprintf("offset %.0f", v.renderer.Offset()),
	}
	if v.renderer.Transition() {
		parts = append(parts, "transition on")
	} else {
		parts = append(parts, "transition off")
	}
	if s, ok := v.ctrl.Session(); ok {
		parts = append(parts, fmt.Sprintf("dragging %+.0f", s.Movement))
	} else if v.recorder != nil {
		if e, ok := v.recorder.Last(); ok {
			parts = append(parts, e.Summary())
		}
	}
	return Styles.Status.Render(strings.Join(parts, " · "))
}
