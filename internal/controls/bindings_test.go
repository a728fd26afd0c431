package controls

import "testing"

func TestDefaultBindingsCoverEveryAction(t *testing.T) {
	b := DefaultBindings()
	for _, a := range Actions() {
		key := b.KeyFor(a)
		if key == "" {
			t.Errorf("%v has no default key", a)
			continue
		}
		if got := b.Lookup(key); got != a {
			t.Errorf("Lookup(%q) = %v, want %v", key, got, a)
		}
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	b := DefaultBindings()

	tests := map[string]Action{
		"w":          ActionForward,
		"W":          ActionForward,
		"LEFT SHIFT": ActionDescend,
		" space ":    ActionAscend,
		"escape":     ActionQuit,
		"f3":         ActionDumpState,
		"Z":          ActionNone,
	}
	for key, want := range tests {
		if got := b.Lookup(key); got != want {
			t.Errorf("Lookup(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestNewBindingsOverride(t *testing.T) {
	b, err := NewBindings(map[string]string{
		"forward":  "Up",
		"quit":     "Q",
		"yaw_left": "Z",
	})
	if err != nil {
		t.Fatalf("NewBindings: %v", err)
	}

	if b.Lookup("up") != ActionForward {
		t.Error("override key should map to forward")
	}
	if b.Lookup("w") != ActionNone {
		t.Error("old forward key should be unbound")
	}
	// Q moves from yaw_left to quit once yaw_left is rebound.
	if b.Lookup("q") != ActionQuit {
		t.Errorf("Lookup(q) = %v, want quit", b.Lookup("q"))
	}
	if b.Lookup("z") != ActionYawLeft {
		t.Errorf("Lookup(z) = %v, want yaw_left", b.Lookup("z"))
	}
	if b.Lookup("escape") != ActionNone {
		t.Error("old quit key should be unbound")
	}
}

func TestNewBindingsSwap(t *testing.T) {
	b, err := NewBindings(map[string]string{
		"forward":  "S",
		"backward": "W",
	})
	if err != nil {
		t.Fatalf("NewBindings: %v", err)
	}
	if b.Lookup("s") != ActionForward || b.Lookup("w") != ActionBackward {
		t.Errorf("swap not applied: s=%v w=%v", b.Lookup("s"), b.Lookup("w"))
	}
}

func TestNewBindingsErrors(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
	}{
		{"unknown action", map[string]string{"jump": "Space"}},
		{"empty key", map[string]string{"forward": "  "}},
		{"key held by a default", map[string]string{"pitch_up": "W"}},
		{"key claimed twice", map[string]string{"pitch_up": "Z", "pitch_down": "z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBindings(tt.overrides); err == nil {
				t.Error("expected error")
			}
		})
	}
}
