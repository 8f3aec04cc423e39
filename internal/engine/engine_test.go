package engine

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/arjndr/catena/internal/irt"
	"github.com/arjndr/catena/internal/itembank"
)

const epsilon = 1e-9

func testBank() *itembank.Bank {
	return &itembank.Bank{
		FormatVersion: itembank.FormatVersion,
		Name:          "engine-test",
		Items:         threeItemPool(),
	}
}

func newTestEngine() *Engine {
	return New(testBank(), irt.NewEstimator())
}

func TestStart_ServesNeutralItem(t *testing.T) {
	e := newTestEngine()
	first, err := e.Start()
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if first == nil || first.ID != "mid" {
		t.Fatalf("Start() served %+v, want the b=0 item", first)
	}
	if e.Phase() != PhaseInProgress {
		t.Errorf("Phase = %v, want in-progress", e.Phase())
	}
	if e.Theta() != 0 {
		t.Errorf("initial theta = %v, want 0", e.Theta())
	}
}

func TestStart_Twice(t *testing.T) {
	e := newTestEngine()
	if _, err := e.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if _, err := e.Start(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second Start() error = %v, want ErrInvalidState", err)
	}
}

func TestRecord_BeforeStart(t *testing.T) {
	e := newTestEngine()
	if _, err := e.Record("mid", true, time.Second); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Record before Start error = %v, want ErrInvalidState", err)
	}
}

// The concrete adaptive-walk scenario: miss the b=0 opener with alpha=0.4,
// theta drops to -0.2, and the selector funnels to the easy item.
func TestRecord_AdaptiveWalk(t *testing.T) {
	e := newTestEngine()
	if _, err := e.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	next, err := e.Record("mid", false, 8*time.Second)
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if math.Abs(e.Theta()-(-0.2)) > epsilon {
		t.Errorf("theta after miss = %v, want -0.2", e.Theta())
	}
	if next == nil || next.ID != "easy" {
		t.Fatalf("next item = %+v, want the easy item", next)
	}
}

func TestRecord_UnknownItem(t *testing.T) {
	e := newTestEngine()
	e.Start()
	if _, err := e.Record("ghost", true, time.Second); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("Record(unknown) error = %v, want ErrUnknownItem", err)
	}
}

func TestRecord_RepeatedItem(t *testing.T) {
	e := newTestEngine()
	e.Start()
	if _, err := e.Record("mid", true, time.Second); err != nil {
		t.Fatalf("first Record error: %v", err)
	}
	if _, err := e.Record("mid", false, time.Second); !errors.Is(err, ErrItemRepeated) {
		t.Errorf("repeat Record error = %v, want ErrItemRepeated", err)
	}
}

func TestRecord_NoRepeatAcrossSession(t *testing.T) {
	e := newTestEngine()
	item, _ := e.Start()

	served := map[string]bool{}
	for item != nil {
		if served[item.ID] {
			t.Fatalf("item %q served twice", item.ID)
		}
		served[item.ID] = true

		id := item.ID
		var err error
		item, err = e.Record(id, true, time.Second)
		if err != nil {
			t.Fatalf("Record(%q) error: %v", id, err)
		}
	}
	if len(served) != 3 {
		t.Errorf("served %d items, want 3", len(served))
	}
}

func TestRecord_ExhaustionThenFinish(t *testing.T) {
	e := newTestEngine()
	item, _ := e.Start()
	for item != nil {
		item, _ = e.Record(item.ID, false, time.Second)
	}

	if e.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", e.Remaining())
	}
	if err := e.Finish(); err != nil {
		t.Fatalf("Finish() error: %v", err)
	}
	if e.Phase() != PhaseCompleted {
		t.Errorf("Phase = %v, want completed", e.Phase())
	}
}

func TestFinish_IsTerminal(t *testing.T) {
	e := newTestEngine()
	e.Start()
	if err := e.Finish(); err != nil {
		t.Fatalf("Finish() error: %v", err)
	}

	if _, err := e.Record("mid", true, time.Second); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Record after Finish error = %v, want ErrInvalidState", err)
	}
	if err := e.Finish(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("double Finish error = %v, want ErrInvalidState", err)
	}
}

func TestFinish_BeforeStart(t *testing.T) {
	e := newTestEngine()
	if err := e.Finish(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Finish before Start error = %v, want ErrInvalidState", err)
	}
}

func TestTheta_StaysWithinBound(t *testing.T) {
	est := irt.NewEstimator()
	bank := &itembank.Bank{FormatVersion: itembank.FormatVersion, Name: "bound", Items: nil}
	for i := range 40 {
		bank.Items = append(bank.Items, itembank.Item{
			ID:         fmt.Sprintf("item-%d", i),
			Level:      itembank.AllLevels()[i%3],
			Difficulty: itembank.AllDifficulties()[i%3],
		})
	}

	e := New(bank, est)
	item, _ := e.Start()
	for item != nil {
		item, _ = e.Record(item.ID, true, time.Second)
		if e.Theta() > est.AbilityBound || e.Theta() < -est.AbilityBound {
			t.Fatalf("theta %v escaped clamp range", e.Theta())
		}
	}
}

func TestStandardError_NonIncreasingOnMatchedStream(t *testing.T) {
	// With max-information selection every served item is as close to
	// theta as the pool allows, so SE shrinks as responses accumulate.
	e := newTestEngine()
	item, _ := e.Start()

	prev := math.Inf(1)
	for item != nil {
		item, _ = e.Record(item.ID, true, time.Second)
		se := e.StandardError()
		if se > prev {
			t.Fatalf("SE increased: %v -> %v", prev, se)
		}
		prev = se
	}
}

func TestTrajectory_TracksEveryUpdate(t *testing.T) {
	e := newTestEngine()
	item, _ := e.Start()
	n := 0
	for item != nil {
		item, _ = e.Record(item.ID, n%2 == 0, time.Second)
		n++
	}

	traj := e.Trajectory()
	if len(traj) != n+1 {
		t.Fatalf("len(Trajectory) = %d, want %d", len(traj), n+1)
	}
	if traj[0] != 0 {
		t.Errorf("trajectory starts at %v, want 0", traj[0])
	}
	if traj[len(traj)-1] != e.Theta() {
		t.Errorf("trajectory end %v != theta %v", traj[len(traj)-1], e.Theta())
	}
}

func TestSnapshot_MatchesEngineState(t *testing.T) {
	e := newTestEngine()
	item, _ := e.Start()
	for item != nil {
		item, _ = e.Record(item.ID, true, 2*time.Second)
	}
	e.Finish()

	snap := e.Snapshot()
	if snap.AttemptID != e.AttemptID() {
		t.Errorf("snapshot attempt id %q != %q", snap.AttemptID, e.AttemptID())
	}
	if snap.Theta != e.Theta() {
		t.Errorf("snapshot theta %v != %v", snap.Theta, e.Theta())
	}
	if len(snap.Responses) != 3 {
		t.Errorf("snapshot responses = %d, want 3", len(snap.Responses))
	}
	if len(snap.Trajectory) != 4 {
		t.Errorf("snapshot trajectory = %d, want 4", len(snap.Trajectory))
	}
	if snap.Bank != "engine-test" {
		t.Errorf("snapshot bank = %q", snap.Bank)
	}
}

func TestAttemptID_UniquePerEngine(t *testing.T) {
	a := newTestEngine()
	b := newTestEngine()
	if a.AttemptID() == b.AttemptID() {
		t.Error("two engines share an attempt id")
	}
}
