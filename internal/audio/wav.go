package audio

import (
	"fmt"
	"io"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/san-kum/motionlab/internal/motion"
	"github.com/san-kum/motionlab/internal/trajectory"
)

// MaxRenderSeconds caps offline renders.
const MaxRenderSeconds = 600.0

var Format = beep.Format{SampleRate: beep.SampleRate(SampleRate), NumChannels: 2, Precision: 2}

// runStreamer replays a recorded run in simulation time: the tone follows
// the closed-form velocity and each sample clicks at its own timestamp.
type runStreamer struct {
	cfg     motion.Config
	samples []trajectory.Sample
	next    int
	pos     int
	total   int
	v       voice
}

// NewRunStreamer sonifies the first duration seconds of a run.
func NewRunStreamer(cfg motion.Config, duration float64, samples []trajectory.Sample) beep.Streamer {
	duration = math.Min(math.Max(duration, 0), MaxRenderSeconds)
	return &runStreamer{
		cfg:     cfg,
		samples: samples,
		total:   int(duration * SampleRate),
		v:       newVoice(),
	}
}

func (r *runStreamer) Stream(buf [][2]float64) (n int, ok bool) {
	for i := range buf {
		if r.pos >= r.total {
			return i, i > 0
		}
		t := float64(r.pos) / float64(SampleRate)
		for r.next < len(r.samples) && r.samples[r.next].Time <= t {
			r.v.click()
			r.next++
		}
		st := motion.Advance(r.cfg, t)
		val := r.v.next(Frequency(st.Velocity), toneGain)
		buf[i][0] = val
		buf[i][1] = val
		r.pos++
	}
	return len(buf), true
}

func (r *runStreamer) Err() error { return nil }

// WriteWAV renders a run to a 16-bit stereo WAV file.
func WriteWAV(w io.WriteSeeker, cfg motion.Config, duration float64, samples []trajectory.Sample) error {
	if err := wav.Encode(w, NewRunStreamer(cfg, duration, samples), Format); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	return nil
}
