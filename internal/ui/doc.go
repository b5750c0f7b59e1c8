// Package ui hosts a carousel.Controller inside a Bubble Tea program.
//
// Pieces:
//   - TermGeometry: panel boxes measured in cells, scaled to carousel units
//   - TermRenderer: records offset/transition/current for the next frame
//   - CarouselView: translates mouse and window-size messages into carousel
//     input and draws the visible window of the strip
//   - AppModel: keybindings, help overlay and the tea.Model adapter
package ui
