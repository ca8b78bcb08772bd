package music

import (
	"errors"
	"testing"
	"time"
)

type fakeTrack struct {
	playErr error
	playing bool
	plays   int
	pauses  int
	volume  float64
	closed  int
	level   float64
}

func (f *fakeTrack) Play() error {
	f.plays++
	if f.playErr != nil {
		return f.playErr
	}
	f.playing = true
	return nil
}

func (f *fakeTrack) Pause() {
	f.pauses++
	f.playing = false
}

func (f *fakeTrack) SetVolume(v float64)     { f.volume = v }
func (f *fakeTrack) Position() time.Duration { return 3 * time.Second }
func (f *fakeTrack) Level() float64          { return f.level }
func (f *fakeTrack) Close() error {
	f.closed++
	return nil
}

func TestPlayerArmSetsVolume(t *testing.T) {
	track := &fakeTrack{}
	p := NewPlayer(track)

	if p.State() != Idle {
		t.Fatalf("initial state: got %v, want idle", p.State())
	}
	p.Arm()
	if p.State() != Armed {
		t.Errorf("state after Arm: got %v, want armed", p.State())
	}
	if track.volume != 0.1 {
		t.Errorf("volume: got %v, want 0.1", track.volume)
	}
	if track.plays != 0 {
		t.Errorf("Arm started playback")
	}
}

func TestPlayerFirstInteractionPlaysOnce(t *testing.T) {
	track := &fakeTrack{}
	p := NewPlayer(track)
	p.Arm()

	if !p.Interact() {
		t.Fatal("first interaction did not attempt playback")
	}
	if p.State() != Playing || !track.playing {
		t.Fatalf("state after first interaction: got %v, want playing", p.State())
	}

	p.Toggle()
	if p.State() != Paused {
		t.Fatalf("state after Toggle: got %v, want paused", p.State())
	}

	// Later interactions must not resume what the user paused.
	if p.Interact() {
		t.Error("second interaction attempted playback")
	}
	if p.State() != Paused || track.plays != 1 {
		t.Errorf("state %v with %d plays, want paused with 1", p.State(), track.plays)
	}
}

func TestPlayerInteractBeforeArmIsIgnored(t *testing.T) {
	track := &fakeTrack{}
	p := NewPlayer(track)

	if p.Interact() {
		t.Error("interaction while idle attempted playback")
	}
	if track.plays != 0 {
		t.Errorf("plays: got %d, want 0", track.plays)
	}
}

func TestPlayerToggleConsumesArm(t *testing.T) {
	track := &fakeTrack{}
	p := NewPlayer(track)
	p.Arm()

	p.Toggle()
	if p.State() != Playing {
		t.Fatalf("state after Toggle: got %v, want playing", p.State())
	}
	p.Toggle()
	if p.Interact() {
		t.Error("interaction after using the control attempted playback")
	}
	if p.State() != Paused {
		t.Errorf("state: got %v, want paused", p.State())
	}
}

func TestPlayerRejectedPlaybackStaysPaused(t *testing.T) {
	tests := []struct {
		name  string
		track Track
	}{
		{"host rejects", &fakeTrack{playErr: errors.New("no audio device")}},
		{"no track", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(tt.track)
			p.Arm()

			p.Interact()
			if p.State() != Paused {
				t.Errorf("state after rejected interaction: got %v, want paused", p.State())
			}
			p.Toggle()
			if p.State() != Paused {
				t.Errorf("state after rejected toggle: got %v, want paused", p.State())
			}
			if p.Label() != "Play Music" {
				t.Errorf("Label: got %q, want %q", p.Label(), "Play Music")
			}
		})
	}
}

func TestPlayerLabel(t *testing.T) {
	p := NewPlayer(&fakeTrack{})
	if p.Label() != "Play Music" {
		t.Errorf("idle label: got %q", p.Label())
	}
	p.Toggle()
	if p.Label() != "Pause" {
		t.Errorf("playing label: got %q, want Pause", p.Label())
	}
	p.Toggle()
	if p.Label() != "Play Music" {
		t.Errorf("paused label: got %q, want Play Music", p.Label())
	}
}

func TestPlayerSetTrackCarriesPlayback(t *testing.T) {
	old := &fakeTrack{}
	p := NewPlayer(old)
	p.Arm()
	p.Toggle()

	next := &fakeTrack{}
	p.SetTrack(next)

	if old.closed != 1 || old.playing {
		t.Errorf("old track: closed %d, playing %v", old.closed, old.playing)
	}
	if !next.playing || p.State() != Playing {
		t.Errorf("new track not playing, state %v", p.State())
	}
	if next.volume != 0.1 {
		t.Errorf("new track volume: got %v, want 0.1", next.volume)
	}
}

func TestPlayerSetTrackWhilePaused(t *testing.T) {
	p := NewPlayer(nil)
	p.Arm()

	next := &fakeTrack{}
	p.SetTrack(next)

	if next.plays != 0 {
		t.Errorf("plays: got %d, want 0", next.plays)
	}
	if p.State() != Armed {
		t.Errorf("state: got %v, want armed", p.State())
	}
	if !p.Interact() || p.State() != Playing {
		t.Errorf("first interaction after SetTrack: state %v", p.State())
	}
}

func TestPlayerLevelOnlyWhilePlaying(t *testing.T) {
	track := &fakeTrack{level: 0.7}
	p := NewPlayer(track)

	if p.Level() != 0 {
		t.Errorf("idle level: got %v, want 0", p.Level())
	}
	p.Toggle()
	if p.Level() != 0.7 {
		t.Errorf("playing level: got %v, want 0.7", p.Level())
	}
	if p.Position() != 3*time.Second {
		t.Errorf("Position: got %v, want 3s", p.Position())
	}
}

func TestPlayerCloseTwice(t *testing.T) {
	track := &fakeTrack{}
	p := NewPlayer(track)
	p.Toggle()

	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if track.closed != 1 {
		t.Errorf("track closed %d times, want 1", track.closed)
	}
	if p.State() != Paused || p.HasTrack() {
		t.Errorf("after Close: state %v, has track %v", p.State(), p.HasTrack())
	}
}

func TestPlayerSetVolumeClamps(t *testing.T) {
	tests := []struct {
		name string
		set  float64
		want float64
	}{
		{"in range", 0.4, 0.4},
		{"negative", -2, 0},
		{"above one", 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track := &fakeTrack{}
			p := NewPlayer(track)

			p.SetVolume(tt.set)
			if p.Volume() != tt.want {
				t.Errorf("Volume: got %v, want %v", p.Volume(), tt.want)
			}
			if track.volume != tt.want {
				t.Errorf("track volume: got %v, want %v", track.volume, tt.want)
			}

			next := &fakeTrack{}
			p.SetTrack(next)
			if next.volume != tt.want {
				t.Errorf("volume carried to new track: got %v, want %v", next.volume, tt.want)
			}
		})
	}
}
