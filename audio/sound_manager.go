package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/vi-snake/game"
)

const (
	sampleRate = beep.SampleRate(48000)

	feedCueDuration   = 120 * time.Millisecond
	revertCueDuration = 80 * time.Millisecond
	deathCueDuration  = 600 * time.Millisecond
)

// feedBaseFreq gives each food kind its own pitch
var feedBaseFreq = map[game.FoodKind]float64{
	game.FoodRed:   440,
	game.FoodGreen: 660,
	game.FoodBlue:  330,
}

// SoundManager manages all game audio
// It implements game.Listener, boost reverts arrive from timer goroutines
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	seed        uint64
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		seed:  uint64(time.Now().UnixNano()),
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// SetMuted silences new cues, cues already queued finish playing
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayFeed plays a rising chirp pitched by food kind
func (sm *SoundManager) PlayFeed(kind game.FoodKind) {
	sm.play(FeedCue(kind))
}

// PlayBoostRevert plays a short falling blip
func (sm *SoundManager) PlayBoostRevert() {
	sm.play(RevertCue())
}

// PlayDeath plays the crash sound
func (sm *SoundManager) PlayDeath() {
	sm.mu.Lock()
	sm.seed++
	seed := sm.seed
	sm.mu.Unlock()

	sm.play(DeathCue(seed))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) OnFeed(food game.Food, score int) { sm.PlayFeed(food.Kind) }
func (sm *SoundManager) OnBoostRevert(speed float64)      { sm.PlayBoostRevert() }
func (sm *SoundManager) OnDeath(game.DeathCause, int)     { sm.PlayDeath() }

// FeedCue is a finite chirp for the given food kind
func FeedCue(kind game.FoodKind) beep.Streamer {
	base, ok := feedBaseFreq[kind]
	if !ok {
		base = 440
	}
	return beep.Take(sampleRate.N(feedCueDuration), NewSweepGenerator(sampleRate, base, base*1.5, feedCueDuration))
}

// RevertCue is a finite descending blip
func RevertCue() beep.Streamer {
	return beep.Take(sampleRate.N(revertCueDuration), NewSweepGenerator(sampleRate, 520, 260, revertCueDuration))
}

// DeathCue is a finite noise burst over a low rumble
func DeathCue(seed uint64) beep.Streamer {
	return beep.Take(sampleRate.N(deathCueDuration), NewCrashGenerator(sampleRate, seed))
}
