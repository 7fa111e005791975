package game

import (
	"bytes"
	"math"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const audioSampleRate = 44100

type SoundData struct {
	raw []byte
}

// AudioManager synthesizes every cabinet tone as 16-bit PCM at startup; no
// sound assets ship with the game.
type AudioManager struct {
	ctx     *audio.Context
	enabled bool

	waka1      *SoundData
	waka2      *SoundData
	wakaToggle bool

	ghostEaten *SoundData
	startup    *SoundData
	deathNotes []*SoundData

	current *audio.Player
}

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

func getAudioContext() *audio.Context {
	// Audio is disabled by default; enable explicitly with
	// PACMAN_ENABLE_AUDIO=1.
	if os.Getenv("PACMAN_DISABLE_AUDIO") == "1" {
		return nil
	}
	if os.Getenv("PACMAN_ENABLE_AUDIO") != "1" {
		return nil
	}
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(audioSampleRate)
	})
	return audioCtx
}

type toneSeg struct {
	freq float64
	ms   int
}

func NewAudioManager() *AudioManager {
	am := &AudioManager{ctx: getAudioContext(), enabled: true}

	// The alternating "waka" pair: C4 and G4.
	am.waka1 = &SoundData{raw: synthToneWAV([]toneSeg{{261, 60}})}
	am.waka2 = &SoundData{raw: synthToneWAV([]toneSeg{{392, 60}})}

	// Quick ascending chirp for an eaten ghost.
	var chirp []toneSeg
	for f := 200.0; f < 800; f += 150 {
		chirp = append(chirp, toneSeg{f, 25})
	}
	am.ghostEaten = &SoundData{raw: synthToneWAV(chirp)}

	// Descending death notes, one per animation frame.
	for i := 1; i <= deathAnimFrames; i++ {
		f := math.Max(500-float64(i)*35, 100)
		am.deathNotes = append(am.deathNotes, &SoundData{raw: synthToneWAV([]toneSeg{{f, 60}})})
	}

	am.startup = &SoundData{raw: synthToneWAV(startupMelody())}
	return am
}

// startupMelody is the intro jingle.
func startupMelody() []toneSeg {
	const t, h = 80, 160
	return []toneSeg{
		{494, t}, {988, t}, {740, t}, {622, t}, {988, t}, {740, t}, {622, h},
		{523, t}, {1047, t}, {784, t}, {659, t}, {1047, t}, {784, t}, {659, h},
		{494, t}, {988, t}, {740, t}, {622, t}, {988, t}, {740, t}, {622, h},
		{622, t}, {659, t}, {698, t}, {698, t}, {740, t}, {784, t},
		{784, t}, {831, t}, {880, t}, {988, h},
	}
}

func (am *AudioManager) play(sd *SoundData) {
	if am == nil || am.ctx == nil || !am.enabled || sd == nil || len(sd.raw) == 0 {
		return
	}
	stream, err := wav.DecodeWithSampleRate(audioSampleRate, bytes.NewReader(sd.raw))
	if err != nil {
		return
	}
	p, err := am.ctx.NewPlayer(stream)
	if err != nil {
		return
	}
	am.Stop()
	am.current = p
	p.Play()
}

func (am *AudioManager) Stop() {
	if am == nil || am.current == nil {
		return
	}
	_ = am.current.Close()
	am.current = nil
}

func (am *AudioManager) Toggle() bool {
	am.Stop()
	am.enabled = !am.enabled
	return am.enabled
}

func (am *AudioManager) PlayWaka() {
	am.wakaToggle = !am.wakaToggle
	if am.wakaToggle {
		am.play(am.waka2)
	} else {
		am.play(am.waka1)
	}
}

func (am *AudioManager) PlayGhostEaten() { am.play(am.ghostEaten) }
func (am *AudioManager) PlayStartup()    { am.play(am.startup) }

// PlayDeathNote plays one step of the descending death sweep; frame is
// 1-based.
func (am *AudioManager) PlayDeathNote(frame int) {
	if frame < 1 || frame > len(am.deathNotes) {
		return
	}
	am.play(am.deathNotes[frame-1])
}

// synthToneWAV renders a sequence of sine tones as a minimal 16-bit PCM mono
// WAV with a short gap between segments.
func synthToneWAV(segs []toneSeg) []byte {
	const gapMs = 15
	numSamples := 0
	for _, s := range segs {
		numSamples += audioSampleRate * (s.ms + gapMs) / 1000
	}

	byteRate := audioSampleRate * 2
	dataSize := numSamples * 2
	totalSize := 44 + dataSize
	buf := make([]byte, totalSize)

	copy(buf[0:4], "RIFF")
	putLE32(buf[4:8], uint32(totalSize-8))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	putLE32(buf[16:20], 16) // PCM chunk size
	putLE16(buf[20:22], 1)  // PCM format
	putLE16(buf[22:24], 1)  // channels
	putLE32(buf[24:28], uint32(audioSampleRate))
	putLE32(buf[28:32], uint32(byteRate))
	putLE16(buf[32:34], 2) // block align
	putLE16(buf[34:36], 16)
	copy(buf[36:40], "data")
	putLE32(buf[40:44], uint32(dataSize))

	const amp = 0.25
	off := 44
	for _, s := range segs {
		n := audioSampleRate * s.ms / 1000
		for i := 0; i < n; i++ {
			t := float64(i) / audioSampleRate
			v := int16(math.Sin(2*math.Pi*s.freq*t) * 32767.0 * amp)
			buf[off] = byte(v)
			buf[off+1] = byte(v >> 8)
			off += 2
		}
		off += audioSampleRate * gapMs / 1000 * 2 // silence
	}
	return buf
}

func putLE16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
