// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// DialogWidth is the outer width of the task dialogs and overlays
const DialogWidth = 64

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// OverlayWidth fits an overlay to the screen, leaving a margin on both sides
func OverlayWidth(screenWidth int) int {
	return max(min(DialogWidth, screenWidth-4), 20)
}
