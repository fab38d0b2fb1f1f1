package loop

import (
	"math"
	"testing"

	"github.com/hollowmoor/echoes/gamemath"
)

const testInterval = 0.02

func recordFor(r *Recorder, duration float64) {
	for t := 0.0; t <= duration+1e-9; t += testInterval {
		r.RecordSample(t, CharacterState{Position: gamemath.Vec2{X: t * 10}})
	}
}

func TestSamplingRateInvariant(t *testing.T) {
	r := NewRecorder(testInterval, 30)
	r.StartRecording(0)

	const duration = 1.0
	recordFor(r, duration)
	r.StopRecording()

	want := int(duration / testInterval)
	got := r.Len()
	if got < want-1 || got > want+1 {
		t.Fatalf("sample count: got %d, want %d +/- 1", got, want)
	}

	seq := r.Sequence()
	for i := 1; i < len(seq); i++ {
		dt := seq[i].Timestamp - seq[i-1].Timestamp
		if math.Abs(dt-testInterval) > 1e-6 {
			t.Errorf("sample %d: timestamp delta %.6f, want ~%.2f", i, dt, testInterval)
		}
	}
}

func TestOneShotFlagsClearedAfterSample(t *testing.T) {
	r := NewRecorder(testInterval, 30)
	r.StartRecording(0)

	r.MarkJump()
	r.MarkDash(gamemath.Vec2{X: 1})
	r.MarkInteract()
	r.MarkAttack()
	r.RecordSample(0, CharacterState{})

	if r.jump || r.dash || r.interact || r.attack {
		t.Errorf("one-shot flags not cleared: jump=%v dash=%v interact=%v attack=%v",
			r.jump, r.dash, r.interact, r.attack)
	}
	if !r.dashDirection.IsZero() {
		t.Errorf("dash direction not cleared: %+v", r.dashDirection)
	}

	seq := r.Sequence()
	if len(seq) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(seq))
	}
	a := seq[0]
	if !a.IsJumping || !a.IsDashing || !a.IsInteracting || !a.IsAttacking {
		t.Errorf("sample missed one-shot flags: %+v", a)
	}

	// Next sample must not repeat the events.
	r.RecordSample(testInterval, CharacterState{})
	seq = r.Sequence()
	b := seq[1]
	if b.IsJumping || b.IsDashing || b.IsInteracting || b.IsAttacking {
		t.Errorf("one-shot flags leaked into next sample: %+v", b)
	}
}

func TestMaxDurationAutoStops(t *testing.T) {
	const ceiling = 0.1
	r := NewRecorder(testInterval, ceiling)
	r.StartRecording(0)

	recordFor(r, 0.5)

	if r.Recording() {
		t.Error("recorder still active past max duration")
	}
	if d := r.Duration(); d > ceiling+testInterval {
		t.Errorf("final timestamp %.4f exceeds ceiling %.2f by more than one interval", d, ceiling)
	}

	// Further samples are no-ops.
	n := r.Len()
	r.RecordSample(1.0, CharacterState{})
	if r.Len() != n {
		t.Error("sample captured after auto-stop")
	}
}

func TestPadToDuration(t *testing.T) {
	r := NewRecorder(testInterval, 30)
	r.StartRecording(0)
	r.SetMovement(0.5)
	r.RecordSample(0, CharacterState{Position: gamemath.Vec2{X: 3, Y: 4}})
	r.RecordSample(testInterval, CharacterState{Position: gamemath.Vec2{X: 5, Y: 4}})
	r.StopRecording()

	// Already long enough: no-op.
	before := r.Sequence()
	r.PadToDuration(testInterval)
	if r.Len() != len(before) {
		t.Fatalf("padding to a reached duration changed the sequence: %d -> %d", len(before), r.Len())
	}

	const target = 0.2
	r.PadToDuration(target)
	if d := r.Duration(); d < target {
		t.Fatalf("padded duration %.4f < target %.2f", d, target)
	}

	seq := r.Sequence()
	last := before[len(before)-1]
	for i := len(before); i < len(seq); i++ {
		pad := seq[i]
		if pad.Position != last.Position || pad.Movement != last.Movement {
			t.Errorf("pad %d differs from last sample beyond timestamp: %+v", i, pad)
		}
		if pad.IsJumping || pad.IsDashing || pad.IsInteracting || pad.IsAttacking {
			t.Errorf("pad %d repeats one-shot events: %+v", i, pad)
		}
		if dt := pad.Timestamp - seq[i-1].Timestamp; math.Abs(dt-testInterval) > 1e-6 {
			t.Errorf("pad %d: timestamp delta %.6f, want ~%.2f", i, dt, testInterval)
		}
	}
}

func TestPadEmptyBufferIsNoop(t *testing.T) {
	r := NewRecorder(testInterval, 30)
	r.PadToDuration(1.0)
	if r.Len() != 0 {
		t.Errorf("padding an empty buffer produced %d samples", r.Len())
	}
}

func TestSequenceReturnsDeepCopy(t *testing.T) {
	r := NewRecorder(testInterval, 30)
	r.StartRecording(0)
	r.RecordSample(0, CharacterState{Position: gamemath.Vec2{X: 1}})

	seq := r.Sequence()
	seq[0].Position.X = 99

	if got := r.Sequence()[0].Position.X; got != 1 {
		t.Errorf("caller mutated recorder buffer through returned sequence: %.0f", got)
	}
}

func TestStartWhileRecordingRestartsSession(t *testing.T) {
	r := NewRecorder(testInterval, 30)
	r.StartRecording(0)
	recordFor(r, 0.1)

	r.StartRecording(5.0)
	if !r.Recording() {
		t.Fatal("recorder not recording after restart")
	}
	if r.Len() != 0 {
		t.Errorf("restart kept %d stale samples", r.Len())
	}

	r.RecordSample(5.0, CharacterState{})
	if ts := r.Sequence()[0].Timestamp; ts != 0 {
		t.Errorf("clock epoch not reset: first timestamp %.2f", ts)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	r := NewRecorder(testInterval, 30)
	r.StopRecording()
	r.StopRecording()
	if r.Recording() {
		t.Error("recorder active after stop")
	}
}

func TestRecordSampleWhileStoppedIsNoop(t *testing.T) {
	r := NewRecorder(testInterval, 30)
	r.RecordSample(0, CharacterState{})
	if r.Len() != 0 {
		t.Errorf("captured %d samples while stopped", r.Len())
	}
}
