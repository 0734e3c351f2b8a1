package format

import "testing"

func TestRescalerIdentity(t *testing.T) {
	tests := []struct {
		name string
		rs   Rescaler
	}{
		{"equal dimensions", NewRescaler(800, 600, 800, 600)},
		{"zero prepared width", NewRescaler(800, 600, 0, 600)},
		{"zero prepared height", NewRescaler(800, 600, 800, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rs.X(123.7); got != 123 {
				t.Errorf("X(123.7) = %d, want 123", got)
			}
			if got := tt.rs.Y(456.2); got != 456 {
				t.Errorf("Y(456.2) = %d, want 456", got)
			}
		})
	}
}

func TestRescalerScalesUp(t *testing.T) {
	// 3000x1000 original downsampled to 1920x640.
	rs := NewRescaler(3000, 1000, 1920, 640)

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"x at prepared edge", rs.X(1920), 3000},
		{"x midpoint", rs.X(960), 1500},
		{"y at prepared edge", rs.Y(640), 1000},
		{"y quarter", rs.Y(160), 250},
		{"origin", rs.X(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestRescalerRoundTrip(t *testing.T) {
	// Mapping prepared coordinates up to the original and back down
	// must recover the starting value. Each direction truncates once;
	// because the forward scale is above 1, the combined drift stays
	// within one pixel.
	tests := []struct {
		name         string
		origW, origH int
		prepW, prepH int
	}{
		{"3000x1000 to 1920x640", 3000, 1000, 1920, 640},
		{"1000x999 to 640x639", 1000, 999, 640, 639},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fwd := NewRescaler(tt.origW, tt.origH, tt.prepW, tt.prepH)
			inv := NewRescaler(tt.prepW, tt.prepH, tt.origW, tt.origH)

			for v := 0; v <= tt.prepW; v++ {
				back := inv.X(float64(fwd.X(float64(v))))
				if diff := back - v; diff < -1 || diff > 1 {
					t.Fatalf("x round trip: %d -> %d -> %d", v, fwd.X(float64(v)), back)
				}
			}
			for v := 0; v <= tt.prepH; v++ {
				back := inv.Y(float64(fwd.Y(float64(v))))
				if diff := back - v; diff < -1 || diff > 1 {
					t.Fatalf("y round trip: %d -> %d -> %d", v, fwd.Y(float64(v)), back)
				}
			}
		})
	}
}

func TestRescalerIndependentAxes(t *testing.T) {
	rs := NewRescaler(2000, 1000, 1000, 1000)

	if got := rs.X(500); got != 1000 {
		t.Errorf("X(500) = %d, want 1000", got)
	}
	if got := rs.Y(500); got != 500 {
		t.Errorf("Y(500) = %d, want 500", got)
	}
}
