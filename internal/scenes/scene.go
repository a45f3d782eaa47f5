// Package scenes implements the two demo scenes and the manager that drives
// whichever one is active.
package scenes

import (
	"github.com/Faultbox/trajectory/internal/engine/input"
)

// Scene is one demo: it owns its GPU resources between Enter and Exit.
type Scene interface {
	// Enter loads assets and uploads GPU resources.
	Enter() error

	// Exit releases everything acquired in Enter.
	Exit() error

	// Update advances the scene by dt seconds.
	Update(dt float64) error

	// Render draws the scene.
	Render() error

	// HandleEvent applies one input event.
	HandleEvent(e input.Event) error

	// QuitRequested reports whether the scene asked the loop to stop.
	QuitRequested() bool
}

// Viewport reports the current drawable aspect ratio.
type Viewport interface {
	Aspect() float32
}

// Manager manages scene transitions.
type Manager struct {
	current Scene
	next    Scene
}

// NewManager creates a new scene manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the active scene.
func (m *Manager) Current() Scene {
	return m.current
}

// Change schedules a scene change for the next Update.
func (m *Manager) Change(next Scene) {
	m.next = next
}

// Update processes pending transitions and updates the active scene.
func (m *Manager) Update(dt float64) error {
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		m.current = m.next
		m.next = nil
		if err := m.current.Enter(); err != nil {
			return err
		}
	}

	if m.current != nil {
		return m.current.Update(dt)
	}
	return nil
}

// Render renders the active scene.
func (m *Manager) Render() error {
	if m.current != nil {
		return m.current.Render()
	}
	return nil
}

// HandleEvent forwards an event to the active scene.
func (m *Manager) HandleEvent(e input.Event) error {
	if m.current != nil {
		return m.current.HandleEvent(e)
	}
	return nil
}

// QuitRequested reports whether the active scene wants to stop.
func (m *Manager) QuitRequested() bool {
	return m.current != nil && m.current.QuitRequested()
}

// Close exits the active scene.
func (m *Manager) Close() error {
	m.next = nil
	if m.current == nil {
		return nil
	}
	err := m.current.Exit()
	m.current = nil
	return err
}
