package audio

import "math"

// voice is the synthesiser shared by live playback and offline rendering.
type voice struct {
	phase       float64
	freq        float64
	gain        float64
	clickEnv    float64
	clickPhase  float64
	filterState float64
}

func newVoice() voice {
	return voice{freq: baseFreq}
}

func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// One pole low pass.
func lpf(sample, cutoff, dt, state float64) float64 {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	return state + alpha*(sample-state)
}

func (v *voice) click() {
	v.clickEnv = 1
	v.clickPhase = 0
}

// next produces one sample, gliding toward the target pitch and level so
// neither ever jumps.
func (v *voice) next(targetFreq, targetGain float64) float64 {
	dt := 1.0 / float64(SampleRate)

	v.freq += (targetFreq - v.freq) * 0.0005
	v.gain += (targetGain - v.gain) * 0.001

	v.phase += v.freq * dt
	if v.phase > 1 {
		v.phase -= math.Floor(v.phase)
	}
	tone := lpf(triangle(v.phase)*v.gain, 2000, dt, v.filterState)
	v.filterState = tone

	click := 0.0
	if v.clickEnv > 1e-4 {
		v.clickPhase += clickFreq * dt
		click = math.Sin(2*math.Pi*v.clickPhase) * v.clickEnv * 0.2
		v.clickEnv *= clickDecay
	}
	return tone + click
}
