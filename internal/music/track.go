package music

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/heartfield/internal/config"
)

// ErrUnsupportedFormat is returned by OpenTrack for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

const speakerRate = beep.SampleRate(config.SampleRate)

var speakerReady bool

// initSpeaker initialises the shared speaker on first use. A failed attempt is
// retried on the next call.
func initSpeaker() error {
	if speakerReady {
		return nil
	}
	if err := speaker.Init(speakerRate, speakerRate.N(time.Second/20)); err != nil {
		return err
	}
	speakerReady = true
	return nil
}

// BeepTrack is a looping background track played through the beep speaker.
//
// Chain: decoder -> loop -> level tap -> gain -> resampler -> ctrl.
type BeepTrack struct {
	path     string
	streamer beep.StreamSeekCloser
	format   beep.Format
	tap      *levelTap
	gain     *effects.Gain
	ctrl     *beep.Ctrl
	queued   bool
}

// OpenTrack decodes a .mp3, .wav or .flac file. Playback does not start until Play.
func OpenTrack(path string) (*BeepTrack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open track: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	tap := newLevelTap(beep.Loop(-1, streamer), config.VisualRing)
	gain := &effects.Gain{Streamer: tap}
	ctrl := &beep.Ctrl{
		Streamer: beep.Resample(4, format.SampleRate, speakerRate, gain),
		Paused:   true,
	}

	return &BeepTrack{
		path:     path,
		streamer: streamer,
		format:   format,
		tap:      tap,
		gain:     gain,
		ctrl:     ctrl,
	}, nil
}

func (t *BeepTrack) Name() string {
	return filepath.Base(t.path)
}

// Play starts or resumes playback. It fails when no audio device is available.
func (t *BeepTrack) Play() error {
	if err := initSpeaker(); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Lock()
	t.ctrl.Paused = false
	speaker.Unlock()
	if !t.queued {
		speaker.Play(t.ctrl)
		t.queued = true
	}
	return nil
}

func (t *BeepTrack) Pause() {
	speaker.Lock()
	t.ctrl.Paused = true
	speaker.Unlock()
}

// SetVolume sets a linear volume. v is expected in [0, 1]; Player clamps it.
func (t *BeepTrack) SetVolume(v float64) {
	speaker.Lock()
	t.gain.Gain = v - 1
	speaker.Unlock()
}

// Position returns the position inside the current loop.
func (t *BeepTrack) Position() time.Duration {
	speaker.Lock()
	pos := t.streamer.Position()
	speaker.Unlock()
	return t.format.SampleRate.D(pos)
}

func (t *BeepTrack) Level() float64 {
	return t.tap.level(config.LevelWindow)
}

// Close detaches the track from the speaker and closes the decoder.
func (t *BeepTrack) Close() error {
	if t.queued {
		speaker.Lock()
		t.ctrl.Streamer = nil
		speaker.Unlock()
		t.queued = false
	}
	return t.streamer.Close()
}
