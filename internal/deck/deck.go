// Package deck loads the slides shown by the terminal carousel.
package deck

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Slide is one panel's content.
type Slide struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Deck is an ordered, fixed list of slides.
type Deck struct {
	Title  string  `yaml:"title"`
	Slides []Slide `yaml:"slides"`
}

// Load reads a YAML deck file.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck file: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("deck %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes and validates a YAML deck.
func Parse(data []byte) (*Deck, error) {
	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if len(d.Slides) == 0 {
		return nil, fmt.Errorf("deck has no slides")
	}
	for i := range d.Slides {
		d.Slides[i].Title = strings.TrimSpace(d.Slides[i].Title)
		d.Slides[i].Body = strings.TrimSpace(d.Slides[i].Body)
		if d.Slides[i].Title == "" {
			d.Slides[i].Title = fmt.Sprintf("Slide %d", i+1)
		}
	}
	return &d, nil
}

// Len returns the number of slides.
func (d *Deck) Len() int {
	return len(d.Slides)
}

// Demo returns the built-in five-slide deck.
func Demo() *Deck {
	return &Deck{
		Title: "slidenav",
		Slides: []Slide{
			{Title: "Drag", Body: "Press and drag with the mouse.\nRelease past the threshold to change slides."},
			{Title: "Snap back", Body: "Short drags return to the current slide."},
			{Title: "Arrows", Body: "Click ‹ › or use ←/→ (h/l)."},
			{Title: "Dots", Body: "Click a dot or press 1-9 to jump."},
			{Title: "Resize", Body: "Resize the terminal; the active slide\nre-centers once resizing settles."},
		},
	}
}
