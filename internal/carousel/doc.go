// Package carousel implements the gesture-to-navigation core of a horizontal
// panel carousel.
//
// Core pieces:
//   - Layout: resting offsets that center each panel in the viewport
//   - Navigator: previous/active/next bookkeeping over a fixed panel sequence
//   - GestureTracker: press/move/release drag sessions over a MoveHub
//   - CommitPolicy: advance, retreat, or snap back at release
//   - Broadcaster: synchronous index-change fan-out to observers
//   - Debouncer: cancel-and-reschedule timer for viewport changes
//
// Controller wires them together. Rendering, geometry measurement and input
// delivery are supplied by the host through the Renderer, Geometry and
// Trigger interfaces; the core never draws anything itself.
package carousel
