package game

import "testing"

func TestIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Body
		expected bool
	}{
		{
			name:     "overlapping squares",
			a:        Body{X: 0, Y: 0, Size: 10},
			b:        Body{X: 5, Y: 5, Size: 10},
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        Body{X: 0, Y: 0, Size: 10},
			b:        Body{X: 20, Y: 0, Size: 10},
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        Body{X: 0, Y: 0, Size: 10},
			b:        Body{X: 0, Y: 20, Size: 10},
			expected: false,
		},
		{
			name:     "touching edges count as overlap",
			a:        Body{X: 0, Y: 0, Size: 10},
			b:        Body{X: 10, Y: 0, Size: 10},
			expected: true,
		},
		{
			name:     "touching corners count as overlap",
			a:        Body{X: 0, Y: 0, Size: 10},
			b:        Body{X: 10, Y: 10, Size: 10},
			expected: true,
		},
		{
			name:     "contained square",
			a:        Body{X: 0, Y: 0, Size: 20},
			b:        Body{X: 5, Y: 5, Size: 5},
			expected: true,
		},
		{
			name:     "just past the edge",
			a:        Body{X: 0, Y: 0, Size: 10},
			b:        Body{X: 10.5, Y: 0, Size: 10},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Intersects(&tc.a, &tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			// Symmetry
			if got := Intersects(&tc.b, &tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestIntersectsSelfExcludedByIdentity(t *testing.T) {
	b := Body{X: 50, Y: 50, Size: 15}
	if Intersects(&b, &b) {
		t.Error("a body must not intersect itself")
	}

	// Identical geometry in a distinct body still collides.
	other := b
	if !Intersects(&b, &other) {
		t.Error("two distinct bodies with identical bounds must intersect")
	}
}

func TestOnScreen(t *testing.T) {
	tests := []struct {
		name     string
		body     Body
		expected bool
	}{
		{"center of playfield", Body{X: 200, Y: 200, Size: 15}, true},
		{"just inside left margin", Body{X: -39, Y: 200, Size: 3}, true},
		{"outside left margin", Body{X: -45, Y: 200, Size: 3}, false},
		{"at left margin boundary", Body{X: -40, Y: 200, Size: 3}, false},
		{"just inside right margin", Body{X: 439, Y: 200, Size: 3}, true},
		{"outside right margin", Body{X: 441, Y: 200, Size: 3}, false},
		{"outside top margin", Body{X: 200, Y: -41, Size: 3}, false},
		{"outside bottom margin", Body{X: 200, Y: 445, Size: 3}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.body.OnScreen(); got != tc.expected {
				t.Errorf("OnScreen() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestNewWorldLayout(t *testing.T) {
	w := NewWorld()

	if w.Player.X != Width/2 || w.Player.Y != Height-2*PlayerSize {
		t.Errorf("player spawned at (%v, %v)", w.Player.X, w.Player.Y)
	}
	if w.Player.Dead {
		t.Error("player must spawn alive")
	}
	if len(w.Bullets) != 0 {
		t.Errorf("world must start with no bullets, got %d", len(w.Bullets))
	}
	if len(w.Invaders) != invaderCount {
		t.Fatalf("expected %d invaders, got %d", invaderCount, len(w.Invaders))
	}

	for i, inv := range w.Invaders {
		wantX := 30 + 30*float64(i%8)
		wantY := 30 + 30*float64(i%3)
		if inv.X != wantX || inv.Y != wantY {
			t.Errorf("invader %d at (%v, %v), expected (%v, %v)", i, inv.X, inv.Y, wantX, wantY)
		}
		if inv.PatrolOffset != 0 {
			t.Errorf("invader %d patrol offset = %v, expected 0", i, inv.PatrolOffset)
		}
		if inv.SpeedX != invaderSpeed {
			t.Errorf("invader %d speed = %v, expected %v", i, inv.SpeedX, invaderSpeed)
		}
	}
}
