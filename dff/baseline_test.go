package dff

import (
	"math"
	"testing"
)

func TestBaseline_TracksFloor(t *testing.T) {
	// Constant 100 with a short bump: the trailing minimum should hold the
	// baseline at the pre-bump level throughout.
	x := generateImpulse(100, 50, 300, 150, 160)

	f0 := baseline(x, 10, 60, 3)

	for i := 100; i < 300; i++ {
		if math.IsNaN(f0[i]) {
			t.Fatalf("index %d: baseline undefined after warm-up", i)
		}

		if math.Abs(f0[i]-100) > 1e-9 {
			t.Errorf("index %d: got %g, want ~100", i, f0[i])
		}
	}
}

func TestBaseline_WarmupUndefined(t *testing.T) {
	x := generateConstant(5, 100)

	f0 := baseline(x, 10, 60, 3)

	// Boxcar needs 10 samples, the minimum needs 3 valid ones on top.
	for i := 0; i <= 10; i++ {
		if !math.IsNaN(f0[i]) {
			t.Errorf("index %d: got %g, want NaN", i, f0[i])
		}
	}

	if math.IsNaN(f0[11]) {
		t.Error("index 11: got NaN, want defined")
	}
}

func TestBaseline_StrictlyPositiveOnZeroTrace(t *testing.T) {
	x := generateConstant(0, 200)

	f0 := baseline(x, 10, 60, 3)

	for i, v := range f0 {
		if math.IsNaN(v) {
			continue
		}

		if v <= 0 {
			t.Fatalf("index %d: got %g, want > 0", i, v)
		}
	}
}

func TestBaseline_WindowExceedsTrace(t *testing.T) {
	x := generateConstant(1, 50)

	f0 := baseline(x, 100, 60, 3)

	for i, v := range f0 {
		if !math.IsNaN(v) {
			t.Errorf("index %d: got %g, want NaN", i, v)
		}
	}
}

func TestRawRatio_UndefinedBecomesZero(t *testing.T) {
	x := []float64{1, 2, 3}
	f0 := []float64{math.NaN(), math.NaN(), 1}

	out := rawRatio(x, f0, false, 0.05)

	if out[0] != 0 || out[1] != 0 {
		t.Errorf("undefined baseline: got %g, %g, want 0, 0", out[0], out[1])
	}

	if math.Abs(out[2]-2) > 1e-12 {
		t.Errorf("defined sample: got %g, want 2", out[2])
	}
}

func TestRawRatio_LowBackgroundOffset(t *testing.T) {
	// (x + 2c - f0) / (f0 + c) with c = 0.05.
	x := []float64{0}
	f0 := []float64{0.01}

	out := rawRatio(x, f0, true, 0.05)

	want := (0 + 0.1 - 0.01) / (0.01 + 0.05)
	if math.Abs(out[0]-want) > 1e-12 {
		t.Errorf("got %g, want %g", out[0], want)
	}

	if out[0] < 0 {
		t.Errorf("zero trace sample: got negative ratio %g", out[0])
	}
}

func TestSmoothRatio_WarmupZeroed(t *testing.T) {
	raw := generateConstant(1, 20)

	out := smoothRatio(raw, 3, 5)

	for i := 0; i < 4; i++ {
		if out[i] != 0 {
			t.Errorf("index %d: got %g, want 0", i, out[i])
		}
	}

	for i := 4; i < 20; i++ {
		if math.Abs(out[i]-1) > 1e-9 {
			t.Errorf("index %d: got %g, want ~1", i, out[i])
		}
	}
}
