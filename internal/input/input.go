package input

import (
	"sync"

	"gltut/internal/camera"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical camera or session action, not a physical key.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionQuit
	ActionCount // sentinel for array sizing
)

// Manager maps physical keys to actions and tracks their state per frame.
type Manager struct {
	mu sync.RWMutex

	// one key can drive several actions and several keys the same action
	keyToActions map[glfw.Key][]Action

	// number of bound keys currently held, per action
	held         [ActionCount]int
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewManager returns a manager with WASD, arrow keys and Escape bound.
func NewManager() *Manager {
	m := &Manager{keyToActions: make(map[glfw.Key][]Action)}

	m.Bind(glfw.KeyW, ActionMoveForward)
	m.Bind(glfw.KeyS, ActionMoveBackward)
	m.Bind(glfw.KeyA, ActionMoveLeft)
	m.Bind(glfw.KeyD, ActionMoveRight)
	m.Bind(glfw.KeyUp, ActionMoveForward)
	m.Bind(glfw.KeyDown, ActionMoveBackward)
	m.Bind(glfw.KeyLeft, ActionMoveLeft)
	m.Bind(glfw.KeyRight, ActionMoveRight)
	m.Bind(glfw.KeyEscape, ActionQuit)

	return m
}

// Bind adds action to the actions triggered by key.
func (m *Manager) Bind(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// Unbind removes every action bound to key.
func (m *Manager) Unbind(key glfw.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keyToActions, key)
}

// HandleKeyEvent updates action state from a GLFW key event. Repeats are
// ignored.
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	if action == glfw.Repeat {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, act := range m.keyToActions[key] {
		switch action {
		case glfw.Press:
			if m.held[act] == 0 {
				m.justPressed[act] = true
			}
			m.held[act]++
		case glfw.Release:
			if m.held[act] == 0 {
				continue
			}
			m.held[act]--
			if m.held[act] == 0 {
				m.justReleased[act] = true
			}
		}
	}
}

// Attach installs the manager as the window's key callback.
func (m *Manager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		m.HandleKeyEvent(key, action)
	})
}

// PostUpdate clears edge flags. Call once at the end of each frame.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range ActionCount {
		m.justPressed[i] = false
		m.justReleased[i] = false
	}
}

// IsActive reports whether action is held.
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.held[action] > 0
}

// JustPressed reports whether action went down during the current frame.
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[action]
}

// JustReleased reports whether action went up during the current frame.
func (m *Manager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justReleased[action]
}

// Movement returns the camera directions currently held.
func (m *Manager) Movement() camera.Movement {
	return camera.Movement{
		Forward:  m.IsActive(ActionMoveForward),
		Backward: m.IsActive(ActionMoveBackward),
		Left:     m.IsActive(ActionMoveLeft),
		Right:    m.IsActive(ActionMoveRight),
	}
}
