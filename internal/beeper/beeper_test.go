package beeper

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/faiface/beep"

	"tm/internal/tone"
)

// drainPlayer synchronously streams whatever it is handed, counting
// plays. Draining fires the completion callback just like the mixer
// eventually would.
func drainPlayer(plays *atomic.Int32) Player {
	return PlayerFunc(func(s beep.Streamer) {
		plays.Add(1)
		chunk := make([][2]float64, 512)
		for {
			if _, ok := s.Stream(chunk); !ok {
				return
			}
		}
	})
}

func testBuffer(t *testing.T) *beep.Buffer {
	t.Helper()
	return tone.Generate(tone.Params{
		Frequency:  2000,
		SampleRate: 8000, // small buffer keeps the test quick
		Volume:     0.8,
		Duration:   10 * time.Millisecond,
	})
}

func TestBeeperPlaysUntilStopped(t *testing.T) {
	var plays atomic.Int32
	b := New(testBuffer(t), drainPlayer(&plays), 5*time.Millisecond, 100*time.Millisecond)

	b.Start()
	time.Sleep(30 * time.Millisecond)
	if !b.Stop() {
		t.Fatal("worker did not exit within the stop wait")
	}

	got := plays.Load()
	if got < 2 {
		t.Errorf("tone played %d times, want at least 2", got)
	}

	// No further playback after Stop returns.
	time.Sleep(20 * time.Millisecond)
	if after := plays.Load(); after != got {
		t.Errorf("tone played %d more times after Stop", after-got)
	}
}

func TestBeeperStopIdempotent(t *testing.T) {
	var plays atomic.Int32
	b := New(testBuffer(t), drainPlayer(&plays), 5*time.Millisecond, 100*time.Millisecond)

	b.Start()
	if !b.Stop() {
		t.Fatal("first Stop timed out")
	}
	if !b.Stop() {
		t.Error("second Stop timed out")
	}
	b.Signal() // also fine after Stop
}

func TestBeeperStopBeforeStart(t *testing.T) {
	var plays atomic.Int32
	b := New(testBuffer(t), drainPlayer(&plays), 5*time.Millisecond, 50*time.Millisecond)

	if !b.Stop() {
		t.Error("Stop on a never-started beeper should not time out")
	}
	if plays.Load() != 0 {
		t.Error("tone played without Start")
	}
}

func TestBeeperDoubleStart(t *testing.T) {
	var plays atomic.Int32
	// Long interval: one play per worker at most.
	b := New(testBuffer(t), drainPlayer(&plays), time.Minute, 100*time.Millisecond)

	b.Start()
	b.Start()
	b.Start()
	time.Sleep(20 * time.Millisecond)
	b.Stop()

	if got := plays.Load(); got != 1 {
		t.Errorf("tone played %d times, want exactly 1 (single worker)", got)
	}
}

func TestBeeperRunning(t *testing.T) {
	var plays atomic.Int32
	b := New(testBuffer(t), drainPlayer(&plays), time.Minute, 100*time.Millisecond)

	if b.Running() {
		t.Error("Running before Start")
	}
	b.Start()
	if !b.Running() {
		t.Error("not Running after Start")
	}
	b.Stop()
	if b.Running() {
		t.Error("still Running after Stop")
	}
}

func TestBeeperStopInterruptsIntervalWait(t *testing.T) {
	var plays atomic.Int32
	// Interval far longer than the stop wait: Stop must still return
	// promptly because the worker polls the signal during the wait.
	b := New(testBuffer(t), drainPlayer(&plays), time.Hour, 100*time.Millisecond)

	b.Start()
	time.Sleep(10 * time.Millisecond)

	start := time.Now()
	if !b.Stop() {
		t.Fatal("worker did not exit within the stop wait")
	}
	if elapsed := time.Since(start); elapsed > 90*time.Millisecond {
		t.Errorf("Stop took %v, want prompt exit", elapsed)
	}
}
