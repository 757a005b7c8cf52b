package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

const sfxVolume = 0.8

// AudioSystem plays procedural sound effects. Everything is synthesized at
// trigger time; there are no audio assets.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

// activeExplosions limits simultaneous explosion sounds to avoid speaker clipping.
var activeExplosions int32
var explosionVariantCounter uint64

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// AttachAudio wires the event bus to sound playback. Safe to call before
// InitAudio; triggers are dropped until the device is ready.
func AttachAudio(bus *EventBus) {
	bus.Subscribe(EventShoot, func(e Event) {
		if s, ok := e.Data.(SoundPayload); ok {
			play(genShoot(s.Weapon), s.Volume)
		}
	})
	bus.Subscribe(EventExplosion, func(e Event) {
		if s, ok := e.Data.(SoundPayload); ok {
			playExplosion(s.Size)
		}
	})
	bus.Subscribe(EventHit, func(e Event) {
		vol := 1.0
		if s, ok := e.Data.(SoundPayload); ok && s.Volume > 0 {
			vol = s.Volume
		}
		play(genHit(), vol)
	})
	bus.Subscribe(EventPowerup, func(Event) {
		play(genPowerup(), 1.0)
	})
	bus.Subscribe(EventGameOver, func(Event) {
		play(genGameOver(), 1.0)
	})
}

func play(samples []byte, gain float64) {
	if globalAudio == nil || gain <= 0 || len(samples) == 0 {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume * clampF(gain, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// playExplosion limits simultaneous explosions to 2 — more causes speaker
// clipping.
func playExplosion(size float64) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	if atomic.LoadInt32(&activeExplosions) >= 2 {
		return
	}
	atomic.AddInt32(&activeExplosions, 1)
	samples := genExplosion(size)
	if len(samples) == 0 {
		atomic.AddInt32(&activeExplosions, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&activeExplosions, -1)
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation — no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound effects -------------------------------------------------------

// genShoot: short FM zap; each weapon gets its own register.
func genShoot(weapon WeaponKind) []byte {
	base := 680.0
	dur := 0.07
	modIdx := 2.6
	switch weapon {
	case WeaponSpread:
		base = 420
		dur = 0.10
		modIdx = 3.4
	case WeaponRapid:
		base = 900
		dur = 0.045
		modIdx = 1.8
	case WeaponCharge:
		base = 180
		dur = 0.22
		modIdx = 4.5
	case WeaponSniper:
		base = 1400
		dur = 0.12
		modIdx = 2.0
	}
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.4, 0.15, 0.3)
		freq := base * (1.0 - 0.35*p)
		s := fm(t, freq, 1.5, modIdx*env) * env * 0.4
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genExplosion adapts timbre to blast size: larger blasts are deeper, longer,
// and rumblier; small blasts are snappier. size is the blast size factor in
// enemy-radius units.
func genExplosion(size float64) []byte {
	norm := clampF((size-0.5)/4.0, 0, 1)
	dur := 0.26 + 0.64*norm
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	seed := atomic.AddUint64(&explosionVariantCounter, 1) ^
		uint64(time.Now().UnixNano()) ^
		uint64(size*4096)
	lp1, lp2 := 0.0, 0.0 // two lowpasses for bandpass body
	rumLP := 0.0
	subPhase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)

		// Sub boom: deeper and longer for larger blasts.
		subStart := 155.0 - 65.0*norm
		subEnd := 34.0 - 18.0*norm
		if subEnd < 10 {
			subEnd = 10
		}
		subFreq := subStart * math.Pow(subEnd/subStart, p*(1.6+1.5*norm))
		subPhase += 2 * math.Pi * subFreq / SampleRate
		sub := math.Sin(subPhase) * math.Exp(-p*(7.0-3.8*norm)) * (0.44 + 0.34*norm)

		// Hard transient crack: stronger for small blasts.
		crack := 0.0
		crackWin := 0.038 - 0.020*norm
		if crackWin < 0.010 {
			crackWin = 0.010
		}
		if p < crackWin {
			crack = lcg(&seed) * (1 - p/crackWin) * (0.88 - 0.28*norm)
		}

		// Bandpassed body (~120–2200 Hz).
		raw := lcg(&seed)
		lp1 = lp1*0.76 + raw*0.24   // upper lowpass
		lp2 = lp2*0.975 + raw*0.025 // lower lowpass
		body := (lp1 - lp2) * math.Exp(-p*(6.2-2.2*norm)) * (0.30 + 0.17*norm)

		// Low rumble tail becomes more prominent with size.
		rumLP = rumLP*0.95 + lcg(&seed)*0.05
		rumble := rumLP * math.Exp(-p*(3.0-1.5*norm)) * (0.06 + 0.20*norm)

		s := sub + crack + body + rumble
		putStereoF32(buf, i, softSat(s*0.86))
	}
	return buf
}

// genHit: dull thud with a pinch of noise.
func genHit() []byte {
	n := int(0.08 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(7321)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 12)
		lp = lp*0.85 + lcg(&seed)*0.15
		thump := fm(t, 110, 0.5, 1.0) * math.Exp(-p*18)
		s := (lp*0.35 + thump*0.6) * env
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genPowerup: ascending FM bell arpeggio.
func genPowerup() []byte {
	freqs := []float64{523.25, 659.25, 783.99, 1046.5} // C5 E5 G5 C6
	noteLen := SampleRate * 70 / 1000
	tail := int(0.15 * SampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)
	for fi, freq := range freqs {
		start := fi * noteLen
		for i := start; i < total; i++ {
			t := float64(i-start) / SampleRate
			p := float64(i-start) / float64(total-start)
			env := math.Exp(-p * 6)
			mix[i] += fm(t, freq, 2.0, 2.0*env) * env * 0.22
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: descending minor sweep with a long noise tail.
func genGameOver() []byte {
	n := int(1.1 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(9001)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 2.2)
		freq := 330.0 * math.Pow(0.25, p)
		tone := fm(t, freq, 0.5, 2.5) * env * 0.45
		lp = lp*0.97 + lcg(&seed)*0.03
		s := tone + lp*env*0.18
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
