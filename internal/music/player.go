package music

import (
	"errors"
	"log"
	"time"

	"github.com/iburimskiy/heartfield/internal/config"
)

// ErrNoTrack is reported when playback is requested without a track.
var ErrNoTrack = errors.New("no track loaded")

// Track is a single looping audio resource.
type Track interface {
	Play() error
	Pause()
	SetVolume(v float64)
	Position() time.Duration
	// Level reports the recent playback level in [0, 1].
	Level() float64
	Close() error
}

// State of the background music.
type State int

const (
	// Idle: nothing has happened yet.
	Idle State = iota
	// Armed: waiting for the first page interaction to start playback.
	Armed
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Armed:
		return "armed"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}
	return "unknown"
}

// Player drives a Track through Idle -> Armed -> Playing <-> Paused.
// A playback attempt the host rejects is logged and leaves the player paused.
type Player struct {
	track  Track
	state  State
	volume float64
}

func NewPlayer(track Track) *Player {
	return &Player{
		track:  track,
		state:  Idle,
		volume: config.MusicVolume,
	}
}

// Arm applies the music volume and waits for the first interaction.
func (p *Player) Arm() {
	if p.state != Idle {
		return
	}
	if p.track != nil {
		p.track.SetVolume(p.volume)
	}
	p.state = Armed
}

// Interact reports a page interaction outside the music control. The first
// one after Arm starts playback; later ones are ignored. It returns whether
// playback was attempted.
func (p *Player) Interact() bool {
	if p.state != Armed {
		return false
	}
	p.play()
	return true
}

// Toggle is the music control: pause while playing, otherwise try to play.
// Using the control also consumes the first-interaction subscription.
func (p *Player) Toggle() {
	if p.state == Playing {
		p.pause()
		return
	}
	p.play()
}

func (p *Player) play() {
	if p.track == nil {
		log.Printf("[Music] Playback unavailable: %v", ErrNoTrack)
		p.state = Paused
		return
	}
	if err := p.track.Play(); err != nil {
		log.Printf("[Music] Playback failed, staying paused: %v", err)
		p.state = Paused
		return
	}
	p.state = Playing
}

func (p *Player) pause() {
	if p.track != nil {
		p.track.Pause()
	}
	p.state = Paused
}

// SetVolume clamps v to [0, 1] and applies it to the current and any later
// track.
func (p *Player) SetVolume(v float64) {
	p.volume = clamp01(v)
	if p.track != nil {
		p.track.SetVolume(p.volume)
	}
}

func (p *Player) Volume() float64 {
	return p.volume
}

func (p *Player) State() State {
	return p.state
}

func (p *Player) Playing() bool {
	return p.state == Playing
}

// Label is the music control caption.
func (p *Player) Label() string {
	if p.state == Playing {
		return "Pause"
	}
	return "Play Music"
}

// SetTrack swaps the track. The old one is closed; playback carries over.
func (p *Player) SetTrack(t Track) {
	wasPlaying := p.state == Playing
	if p.track != nil {
		p.track.Pause()
		if err := p.track.Close(); err != nil {
			log.Printf("[Music] Warning: failed to close previous track: %v", err)
		}
	}
	p.track = t
	if t != nil {
		t.SetVolume(p.volume)
	}
	if wasPlaying {
		p.play()
	}
}

func (p *Player) HasTrack() bool {
	return p.track != nil
}

func (p *Player) Position() time.Duration {
	if p.track == nil {
		return 0
	}
	return p.track.Position()
}

// Level is the playback level while playing, zero otherwise.
func (p *Player) Level() float64 {
	if p.track == nil || p.state != Playing {
		return 0
	}
	return p.track.Level()
}

// Close pauses and releases the track. Safe to call more than once.
func (p *Player) Close() error {
	if p.track == nil {
		return nil
	}
	p.track.Pause()
	err := p.track.Close()
	p.track = nil
	if p.state == Playing {
		p.state = Paused
	}
	return err
}
