package input

import "testing"

func TestIsQuit(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{"window close", Event{Type: EventQuit}, true},
		{"escape", Press(KeyEscape), true},
		{"f5", Press(KeyF5), false},
		{"char", Char('q', 0, 0), false},
		{"escape released", Event{Type: EventKeyUp, Key: KeyEscape}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.IsQuit(); got != tt.want {
				t.Errorf("IsQuit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventTypeString(t *testing.T) {
	if EventChar.String() != "char" {
		t.Errorf("EventChar.String() = %q", EventChar.String())
	}
	if EventType(99).String() != "EventType(99)" {
		t.Errorf("unknown type = %q", EventType(99).String())
	}
}
