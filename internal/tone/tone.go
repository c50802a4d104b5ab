// Package tone synthesizes the alert tone. The waveform is a plain
// sine, quantized to 16-bit stereo by the beep buffer, generated once
// and replayed for every beep.
package tone

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Params describes a tone. Zero values are not usable; callers take
// them from config, which documents the defaults (2000 Hz, 44100 Hz
// sample rate, 0.8 volume, 300 ms).
type Params struct {
	// Frequency of the sine wave in Hz.
	Frequency float64
	// SampleRate in samples per second.
	SampleRate int
	// Volume scales the waveform, 0 silent to 1 full range.
	Volume float64
	// Duration of the tone.
	Duration time.Duration
}

// Format returns the audio format the tone is rendered in: stereo,
// 16-bit precision, at the configured sample rate.
func (p Params) Format() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(p.SampleRate),
		NumChannels: 2,
		Precision:   2,
	}
}

// Generate renders the tone into a buffer. The same sample goes to both
// channels. The buffer is immutable once built; stream it with
// buf.Streamer(0, buf.Len()) as many times as needed.
func Generate(p Params) *beep.Buffer {
	format := p.Format()
	total := format.SampleRate.N(p.Duration)

	pos := 0
	sine := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && pos < total {
			v := p.Volume * math.Sin(2*math.Pi*p.Frequency*float64(pos)/float64(p.SampleRate))
			samples[n][0] = v
			samples[n][1] = v
			pos++
			n++
		}
		return n, true
	})

	buf := beep.NewBuffer(format)
	buf.Append(sine)
	return buf
}
