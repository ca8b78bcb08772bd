package main

import (
	"errors"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/heartfield/internal/config"
	"github.com/iburimskiy/heartfield/internal/game"
	"github.com/iburimskiy/heartfield/internal/music"
	"github.com/iburimskiy/heartfield/internal/page"
)

func main() {
	musicPath := flag.String("music", "", "background music file (.mp3, .wav, .flac); defaults to the page's track")
	seed := flag.Int64("seed", 0, "particle random seed, 0 picks one from the clock")
	flag.Parse()

	p, err := page.Default()
	if err != nil {
		log.Fatalf("[Game] Failed to load page: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	opts := game.Options{
		Page:   p,
		Rand:   rand.New(rand.NewSource(*seed)),
		Width:  config.WindowWidth,
		Height: config.WindowHeight,
	}

	path := *musicPath
	if path == "" {
		path = p.Music
	}
	if track, err := music.OpenTrack(path); err != nil {
		// The page works without music; O opens a picker later.
		log.Printf("[Game] Warning: background music unavailable: %v", err)
	} else {
		opts.Track = track
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(opts)
	runErr := ebiten.RunGame(g)
	if err := g.Close(); err != nil {
		log.Printf("[Game] Warning: teardown: %v", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatalf("[Game] %v", runErr)
	}
}
