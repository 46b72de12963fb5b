package input

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-rogue/vmath"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// feed processes each rune and returns the last intent
func feed(m *Machine, keys string) *Intent {
	var last *Intent
	for _, r := range keys {
		last = m.Process(runeKey(r))
	}
	return last
}

func TestMachineRunes(t *testing.T) {
	tests := []struct {
		name     string
		keys     string
		expected *Intent
	}{
		{"move left", "h", &Intent{Type: IntentMove, Dir: vmath.Left, Count: 1}},
		{"move down", "j", &Intent{Type: IntentMove, Dir: vmath.Down, Count: 1}},
		{"move up", "k", &Intent{Type: IntentMove, Dir: vmath.Up, Count: 1}},
		{"move right", "l", &Intent{Type: IntentMove, Dir: vmath.Right, Count: 1}},
		{"shoot capital", "K", &Intent{Type: IntentShoot, Dir: vmath.Up, Count: 1}},
		{"fire prefix", "fj", &Intent{Type: IntentShoot, Dir: vmath.Down, Count: 1}},
		{"wait dot", ".", &Intent{Type: IntentWait, Count: 1}},
		{"wait space", " ", &Intent{Type: IntentWait, Count: 1}},
		{"count", "5l", &Intent{Type: IntentMove, Dir: vmath.Right, Count: 5}},
		{"count with zero", "10h", &Intent{Type: IntentMove, Dir: vmath.Left, Count: 10}},
		{"count capped", "250j", &Intent{Type: IntentMove, Dir: vmath.Down, Count: maxCount}},
		{"count then fire", "3fl", &Intent{Type: IntentShoot, Dir: vmath.Right, Count: 3}},
		{"count ignored by system", "4q", &Intent{Type: IntentQuit}},
		{"pause", "p", &Intent{Type: IntentPause}},
		{"mute", "m", &Intent{Type: IntentMute}},
		{"regenerate", "r", &Intent{Type: IntentRegenerate}},
		{"leading zero unbound", "0", nil},
		{"unbound", "z", nil},
		{"fire pending", "f", nil},
		{"double fire cancels", "ff", nil},
		{"fire then wait cancels", "f.", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := feed(NewMachine(nil), tt.keys)
			if tt.expected == nil {
				if got != nil {
					t.Errorf("Expected nil intent, got %+v", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Expected %+v, got nil", *tt.expected)
			}
			if *got != *tt.expected {
				t.Errorf("Expected %+v, got %+v", *tt.expected, *got)
			}
		})
	}
}

func TestMachineSpecialKeys(t *testing.T) {
	tests := []struct {
		name     string
		key      tcell.Key
		mod      tcell.ModMask
		expected Intent
	}{
		{"arrow moves", tcell.KeyLeft, tcell.ModNone, Intent{Type: IntentMove, Dir: vmath.Left, Count: 1}},
		{"shift arrow shoots", tcell.KeyUp, tcell.ModShift, Intent{Type: IntentShoot, Dir: vmath.Up, Count: 1}},
		{"escape quits", tcell.KeyEscape, tcell.ModNone, Intent{Type: IntentQuit}},
		{"ctrl+c quits", tcell.KeyCtrlC, tcell.ModCtrl, Intent{Type: IntentQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMachine(nil).Process(tcell.NewEventKey(tt.key, 0, tt.mod))
			if got == nil || *got != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestMachineEscapeCancelsPending(t *testing.T) {
	m := NewMachine(nil)
	feed(m, "3f")
	if m.State() != StateFireWait {
		t.Fatalf("Expected fire wait, got %v", m.State())
	}
	if got := m.GetPendingCommand(); got != "3f" {
		t.Errorf("Expected pending \"3f\", got %q", got)
	}

	if got := m.Process(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); got != nil {
		t.Errorf("Expected Esc to cancel without quitting, got %+v", *got)
	}
	if m.State() != StateIdle || m.GetPendingCommand() != "" {
		t.Errorf("Expected idle machine, got %v %q", m.State(), m.GetPendingCommand())
	}

	// Count is gone after cancel
	if got := feed(m, "l"); got == nil || got.Count != 1 {
		t.Errorf("Expected fresh count of 1, got %+v", got)
	}
}

func TestMachineResize(t *testing.T) {
	got := NewMachine(nil).Process(tcell.NewEventResize(80, 24))
	if got == nil || got.Type != IntentResize {
		t.Errorf("Expected resize intent, got %+v", got)
	}
}

func TestIntentIsTurn(t *testing.T) {
	for _, it := range []IntentType{IntentMove, IntentShoot, IntentWait} {
		if !(Intent{Type: it}).IsTurn() {
			t.Errorf("Expected %v to be a turn", it)
		}
	}
	for _, it := range []IntentType{IntentNone, IntentQuit, IntentPause, IntentMute, IntentRegenerate, IntentResize} {
		if (Intent{Type: it}).IsTurn() {
			t.Errorf("Expected %v not to be a turn", it)
		}
	}
}

func TestLoadKeyConfig(t *testing.T) {
	override, err := LoadKeyConfig(
		map[string]string{"a": "move_left", "space": "fire", "h": "none"},
		map[string]string{"Enter": "wait"},
	)
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}

	kt := MergeKeyTable(DefaultKeyTable(), override)
	m := NewMachine(kt)

	if got := feed(m, "a"); got == nil || got.Type != IntentMove || got.Dir != vmath.Left {
		t.Errorf("Expected 'a' to move left, got %+v", got)
	}
	if got := feed(m, "h"); got != nil {
		t.Errorf("Expected 'h' unbound, got %+v", *got)
	}
	if got := feed(m, " k"); got == nil || got.Type != IntentShoot || got.Dir != vmath.Up {
		t.Errorf("Expected space to act as fire prefix, got %+v", got)
	}
	if got := m.Process(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)); got == nil || got.Type != IntentWait {
		t.Errorf("Expected Enter to wait, got %+v", got)
	}

	// Base table untouched
	if _, ok := DefaultKeyTable().Runes['h']; !ok {
		t.Error("Expected default table to keep 'h'")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		runes   map[string]string
		special map[string]string
		want    string
	}{
		{"unknown action", map[string]string{"a": "teleport"}, nil, "unknown action"},
		{"long rune key", map[string]string{"ab": "wait"}, nil, "invalid rune key"},
		{"unknown special", nil, map[string]string{"f13": "wait"}, "unknown key name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyConfig(tt.runes, tt.special)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestStringers(t *testing.T) {
	if IntentShoot.String() != "Shoot" || IntentType(200).String() != "Unknown" {
		t.Errorf("Unexpected intent names %q %q", IntentShoot, IntentType(200))
	}
	if StateFireWait.String() != "Fire" {
		t.Errorf("Expected \"Fire\", got %q", StateFireWait)
	}
}
