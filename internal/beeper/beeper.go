// Package beeper runs the repeating alert beep on a background
// goroutine. The only state shared with the UI loop is the stop signal:
// a close-once channel the controller sets and the worker polls.
package beeper

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Player sends a streamer to the audio device. The speaker package
// satisfies it in production; tests substitute an in-process drain.
type Player interface {
	Play(s beep.Streamer)
}

// PlayerFunc adapts a function to the Player interface.
type PlayerFunc func(s beep.Streamer)

// Play calls f(s).
func (f PlayerFunc) Play(s beep.Streamer) { f(s) }

var speakerOnce sync.Once

// InitSpeaker initializes the audio device for the given format. Safe
// to call once per process; a failure here is fatal for the program
// since there is no degraded no-audio mode.
func InitSpeaker(format beep.Format) error {
	var err error
	speakerOnce.Do(func() {
		err = speaker.Init(format.SampleRate, format.SampleRate.N(100*time.Millisecond))
	})
	return err
}

// SpeakerPlayer plays through the initialized speaker.
func SpeakerPlayer() Player {
	return PlayerFunc(func(s beep.Streamer) { speaker.Play(s) })
}

// Beeper plays a tone buffer on a fixed interval until stopped. At most
// one worker runs per Beeper; Start on a running Beeper is a no-op.
type Beeper struct {
	buf      *beep.Buffer
	player   Player
	interval time.Duration
	stopWait time.Duration

	running  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// New returns a Beeper that plays buf, waits interval between plays,
// and bounds Stop's wait for worker teardown by stopWait.
func New(buf *beep.Buffer, player Player, interval, stopWait time.Duration) *Beeper {
	return &Beeper{
		buf:      buf,
		player:   player,
		interval: interval,
		stopWait: stopWait,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the beep worker. Calling Start again while the worker
// is running (or after it stopped) does nothing.
func (b *Beeper) Start() {
	if !b.running.CompareAndSwap(false, true) {
		return
	}
	go b.loop()
}

// Running reports whether the worker has been started and not yet
// observed the stop signal.
func (b *Beeper) Running() bool {
	if !b.running.Load() {
		return false
	}
	select {
	case <-b.doneCh:
		return false
	default:
		return true
	}
}

// Signal sets the stop flag without waiting for the worker. Used on
// window-close paths where process exit reclaims everything anyway.
func (b *Beeper) Signal() {
	b.stopOnce.Do(func() { close(b.stopCh) })
}

// Stop sets the stop flag and waits for the worker to exit, bounded by
// the configured stop wait so a slow audio teardown cannot hang the UI.
// It reports whether the worker was observed to exit in time.
func (b *Beeper) Stop() bool {
	b.Signal()
	if !b.running.Load() {
		return true
	}
	select {
	case <-b.doneCh:
		return true
	case <-time.After(b.stopWait):
		return false
	}
}

func (b *Beeper) loop() {
	defer close(b.doneCh)
	for {
		select {
		case <-b.stopCh:
			return
		default:
		}
		b.playOnce()
		select {
		case <-b.stopCh:
			return
		case <-time.After(b.interval):
		}
	}
}

// playOnce plays the buffer and waits for it to drain, or for the stop
// signal, whichever comes first. The in-flight tone is not cut short on
// stop; it just runs out its 0.3s tail on the mixer.
func (b *Beeper) playOnce() {
	drained := make(chan struct{})
	b.player.Play(beep.Seq(
		b.buf.Streamer(0, b.buf.Len()),
		beep.Callback(func() { close(drained) }),
	))
	select {
	case <-drained:
	case <-b.stopCh:
	}
}
