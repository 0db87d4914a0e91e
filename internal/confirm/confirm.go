package confirm

import "sync"

// Kind names the resource a destructive action targets.
type Kind string

const (
	KindEmployee  Kind = "employee"
	KindTimesheet Kind = "timesheet"
)

// Target describes the action as data, so tests can assert what was staged
// without executing anything.
type Target struct {
	Kind Kind
	ID   int64
}

// Action is one staged destructive operation.
type Action struct {
	Message string
	Target  Target
	execute func()
}

func NewAction(message string, target Target, execute func()) Action {
	return Action{Message: message, Target: target, execute: execute}
}

// Manager holds at most one pending destructive action. Every delete in the
// system goes through Stage; nothing calls the remote delete directly.
type Manager struct {
	mu      sync.Mutex
	pending *Action
}

func NewManager() *Manager {
	return &Manager{}
}

// Stage replaces any prior pending action with a. There is no queue.
func (m *Manager) Stage(a Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = &a
}

// Pending returns the staged action's message and target, if any.
func (m *Manager) Pending() (string, Target, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pending == nil {
		return "", Target{}, false
	}
	return m.pending.Message, m.pending.Target, true
}

// Confirm executes the staged action exactly once and clears the slot. The
// slot is cleared before the action runs, so a re-entrant Confirm is a no-op.
func (m *Manager) Confirm() {
	m.mu.Lock()
	pending := m.pending
	m.pending = nil
	m.mu.Unlock()

	if pending != nil && pending.execute != nil {
		pending.execute()
	}
}

// Cancel clears the slot without executing anything.
func (m *Manager) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = nil
}
