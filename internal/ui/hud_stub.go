//go:build !ebiten

package ui

import "contagion/internal/core"

// HUD is a placeholder that satisfies the API expected by the GUI build.
type HUD struct{}

// NewHUD returns an inert HUD in headless builds.
func NewHUD(core.Sim) *HUD { return &HUD{} }

// Draw is a no-op placeholder to satisfy the interface shape.
func (h *HUD) Draw(any, FrameStats) {}
