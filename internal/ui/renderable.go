// Package ui holds the minimal contracts shared by terminal components.
package ui

// Renderable is anything that can produce its terminal representation.
type Renderable interface {
	View() string
}
