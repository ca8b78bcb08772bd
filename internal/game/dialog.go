package game

import (
	"errors"
	"log"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/heartfield/internal/music"
)

// chooseTrack asks for an audio file and makes it the background track.
// Cancelling the dialog is not an error.
func (g *Game) chooseTrack() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose Background Music"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.loadTrack(filename)
}

func (g *Game) loadTrack(path string) error {
	track, err := music.OpenTrack(path)
	if err != nil {
		return err
	}
	g.player.SetTrack(track)
	g.lastErr = nil
	log.Printf("[Game] Background music: %s", track.Name())
	return nil
}
