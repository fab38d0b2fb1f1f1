package archive

import (
	"path/filepath"
	"testing"

	"github.com/hollowmoor/echoes/gamemath"
	"github.com/hollowmoor/echoes/loop"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoadRun(t *testing.T) {
	s := openTestStore(t)

	seq := loop.Sequence{
		{Timestamp: 0, Movement: 1, Position: gamemath.Vec2{X: 10, Y: 20}},
		{Timestamp: 0.02, Movement: 1, IsJumping: true, JumpHeld: true, Position: gamemath.Vec2{X: 12, Y: 20}},
	}

	runID, err := s.SaveRun("level1", 42.5, map[int]loop.Sequence{0: seq})
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	runs, err := s.BestRuns("level1", 10)
	if err != nil {
		t.Fatalf("BestRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Seconds != 42.5 || runs[0].CloneCount != 1 {
		t.Errorf("run = %+v", runs[0])
	}

	recs, err := s.Recordings(runID)
	if err != nil {
		t.Fatalf("Recordings: %v", err)
	}
	got, ok := recs[0]
	if !ok {
		t.Fatalf("identity 0 missing from %v", recs)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(got))
	}
	if !got[1].IsJumping || got[1].Position.X != 12 {
		t.Errorf("sample 1 = %+v", got[1])
	}
}

func TestBestRunsOrderedBySeconds(t *testing.T) {
	s := openTestStore(t)

	for _, secs := range []float64{60, 30, 45} {
		if _, err := s.SaveRun("level1", secs, nil); err != nil {
			t.Fatalf("SaveRun(%v): %v", secs, err)
		}
	}
	if _, err := s.SaveRun("level2", 5, nil); err != nil {
		t.Fatalf("SaveRun(level2): %v", err)
	}

	runs, err := s.BestRuns("level1", 2)
	if err != nil {
		t.Fatalf("BestRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Seconds != 30 || runs[1].Seconds != 45 {
		t.Errorf("order = %v, %v", runs[0].Seconds, runs[1].Seconds)
	}
}
