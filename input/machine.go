package input

import "github.com/gdamore/tcell/v2"

// Machine is the input state machine
// Parses tcell events into semantic Intents
type Machine struct {
	state    InputState
	keyTable *KeyTable

	count int

	// Command buffer for visual feedback
	cmdBuffer []rune
}

// NewMachine creates a machine over kt; nil selects the default bindings
func NewMachine(kt *KeyTable) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{
		state:     StateIdle,
		keyTable:  kt,
		cmdBuffer: make([]rune, 0, 8),
	}
}

// State returns the current parser state
func (m *Machine) State() InputState {
	return m.state
}

// GetPendingCommand returns the current command buffer for UI display
func (m *Machine) GetPendingCommand() string {
	if len(m.cmdBuffer) == 0 {
		return ""
	}
	return string(m.cmdBuffer)
}

// Reset clears all pending state
func (m *Machine) Reset() {
	m.state = StateIdle
	m.count = 0
	m.cmdBuffer = m.cmdBuffer[:0]
}

// Process parses a tcell event and returns an Intent
// Returns nil if input is incomplete or unbound
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() != tcell.KeyRune {
		// Esc cancels a pending prefix before it means quit
		if ev.Key() == tcell.KeyEscape && m.state != StateIdle {
			m.Reset()
			return nil
		}
		entry, ok := m.keyTable.SpecialKeys[ev.Key()]
		if !ok {
			m.Reset()
			return nil
		}
		// Shift+direction fires
		if entry.Behavior == BehaviorMove && ev.Modifiers()&tcell.ModShift != 0 {
			entry.Behavior = BehaviorShoot
		}
		return m.apply(entry)
	}

	r := ev.Rune()
	if m.state != StateFireWait && (r >= '1' && r <= '9' || r == '0' && m.state == StateCount) {
		m.count = min(m.count*10+int(r-'0'), maxCount)
		m.state = StateCount
		m.cmdBuffer = append(m.cmdBuffer, r)
		return nil
	}

	entry, ok := m.keyTable.Runes[r]
	if !ok {
		m.Reset()
		return nil
	}
	return m.apply(entry)
}

func (m *Machine) apply(entry KeyEntry) *Intent {
	switch entry.Behavior {
	case BehaviorSystem:
		m.Reset()
		return &Intent{Type: entry.IntentType}

	case BehaviorPrefix:
		if m.state == StateFireWait {
			m.Reset()
			return nil
		}
		m.state = StateFireWait
		m.cmdBuffer = append(m.cmdBuffer, 'f')
		return nil

	case BehaviorMove:
		if m.state == StateFireWait {
			return m.emit(IntentShoot, entry)
		}
		return m.emit(IntentMove, entry)

	case BehaviorShoot:
		return m.emit(IntentShoot, entry)

	case BehaviorWait:
		if m.state == StateFireWait {
			m.Reset()
			return nil
		}
		return m.emit(IntentWait, entry)
	}

	m.Reset()
	return nil
}

func (m *Machine) emit(t IntentType, entry KeyEntry) *Intent {
	count := max(m.count, 1)
	m.Reset()
	return &Intent{Type: t, Dir: entry.Dir, Count: count}
}
