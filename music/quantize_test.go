package music

import (
	"math"
	"testing"
)

// TestQuantizeImmediateWindow verifies times within tolerance of a grid
// point fire immediately
func TestQuantizeImmediateWindow(t *testing.T) {
	// At 120 BPM one eighth is 0.25s; tolerance is min(15ms, 25ms) = 15ms
	executeAt, immediate := GridEighth.Quantize(0.26, 120)
	if !immediate {
		t.Fatal("expected immediate firing inside the tolerance window")
	}
	if executeAt != 0.26 {
		t.Errorf("immediate firing must keep the requested time, got %v", executeAt)
	}
}

// TestQuantizeDefersToFutureGridPoint verifies off-grid times schedule the
// nearest future grid point
func TestQuantizeDefersToFutureGridPoint(t *testing.T) {
	executeAt, immediate := GridEighth.Quantize(0.40, 120)
	if immediate {
		t.Fatal("expected deferred firing")
	}
	if math.Abs(executeAt-0.50) > 1e-9 {
		t.Errorf("expected execution at 0.50, got %v", executeAt)
	}
}

// TestQuantizePastRoundsToNext verifies a rounded time already in the past
// defers to the next grid step instead
func TestQuantizePastRoundsToNext(t *testing.T) {
	// 0.30 rounds to 0.25 which already passed; expect 0.50
	executeAt, immediate := GridEighth.Quantize(0.30, 120)
	if immediate {
		t.Fatal("expected deferred firing")
	}
	if math.Abs(executeAt-0.50) > 1e-9 {
		t.Errorf("expected execution at 0.50, got %v", executeAt)
	}
}

// TestQuantizeGridAlignment verifies the quantization property over many
// request times: the execution time is grid-aligned within tolerance and
// never earlier than t minus tolerance
func TestQuantizeGridAlignment(t *testing.T) {
	grids := []Grid{GridQuarter, GridEighth, GridEighthTriplet, GridSixteenth}
	bpms := []float64{60, 120, 174}

	for _, grid := range grids {
		for _, bpm := range bpms {
			interval := grid.Interval(bpm)
			tol := grid.Tolerance(bpm)
			for i := 0; i < 200; i++ {
				requested := float64(i) * 0.0137
				executeAt, _ := grid.Quantize(requested, bpm)

				if executeAt < requested-tol {
					t.Fatalf("grid %v bpm %v t=%v: execution %v earlier than tolerance allows",
						grid, bpm, requested, executeAt)
				}
				offset := math.Mod(executeAt, interval)
				if offset > interval/2 {
					offset = interval - offset
				}
				if offset > tol+1e-9 {
					t.Fatalf("grid %v bpm %v t=%v: execution %v off-grid by %v",
						grid, bpm, requested, executeAt, offset)
				}
			}
		}
	}
}

// TestTickConversionRoundTrip verifies seconds-ticks-seconds identity
func TestTickConversionRoundTrip(t *testing.T) {
	for _, bpm := range []float64{60, 120, 174} {
		for _, sec := range []float64{0, 0.1, 1.5, 33.33} {
			back := TicksToSeconds(SecondsToTicks(sec, bpm), bpm)
			if math.Abs(back-sec) > 1e-9 {
				t.Errorf("bpm %v: round trip %v -> %v", bpm, sec, back)
			}
		}
	}
}

// TestClampBPM verifies out-of-range tempos are bounded
func TestClampBPM(t *testing.T) {
	if got := ClampBPM(5); got != 20 {
		t.Errorf("expected floor 20, got %v", got)
	}
	if got := ClampBPM(1000); got != 300 {
		t.Errorf("expected ceiling 300, got %v", got)
	}
	if got := ClampBPM(120); got != 120 {
		t.Errorf("expected passthrough, got %v", got)
	}
}
