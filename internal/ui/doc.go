// Package ui holds window overlays drawn on top of the canvas. It is only
// populated in builds with the ebiten tag.
package ui
