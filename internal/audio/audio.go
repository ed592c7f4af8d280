package audio

import (
	"log"
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/san-kum/motionlab/internal/motion"
	"github.com/san-kum/motionlab/internal/session"
	"github.com/san-kum/motionlab/internal/trajectory"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	baseFreq   = 110.0
	freqPerMps = 6.0
	maxFreq    = 1200.0
	toneGain   = 0.12
	clickFreq  = 1760.0
	clickDecay = 0.9985 // per audio sample
)

// Sonifier plays a triangle tone whose pitch follows the object's speed and a
// short click for every recorded sample. It is driven as a session observer.
type Sonifier struct {
	Stream *portaudio.Stream

	mu         sync.Mutex
	targetFreq float64
	targetGain float64
	clicks     int

	v voice // audio thread only

	Active bool
}

func NewSonifier() *Sonifier {
	return &Sonifier{targetFreq: baseFreq, v: newVoice()}
}

func (s *Sonifier) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, s.Process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}

	log.Printf("audio: output stream started at %d Hz", SampleRate)
	s.Stream = stream
	s.Active = true
	return nil
}

func (s *Sonifier) Stop() {
	if s.Stream != nil {
		s.Stream.Stop()
		s.Stream.Close()
		s.Stream = nil
	}
	if s.Active {
		portaudio.Terminate()
	}
	s.Active = false
}

// Frequency maps a velocity to the tone pitch.
func Frequency(velocity float64) float64 {
	return math.Min(baseFreq+math.Abs(velocity)*freqPerMps, maxFreq)
}

func (s *Sonifier) OnTick(st motion.State, added []trajectory.Sample) {
	s.mu.Lock()
	s.targetFreq = Frequency(st.Velocity)
	s.clicks += len(added)
	s.mu.Unlock()
}

func (s *Sonifier) OnPhase(p session.Phase) {
	s.mu.Lock()
	if p == session.Running {
		s.targetGain = toneGain
	} else {
		s.targetGain = 0
	}
	s.mu.Unlock()
}

func (s *Sonifier) Process(in []float32, out [][]float32) {
	s.mu.Lock()
	targetFreq, targetGain := s.targetFreq, s.targetGain
	if s.clicks > 0 {
		s.v.click()
		s.clicks = 0
	}
	s.mu.Unlock()

	for i := range out[0] {
		v := float32(s.v.next(targetFreq, targetGain))
		for ch := range out {
			out[ch][i] = v
		}
	}
}
