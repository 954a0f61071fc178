package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bthesorceror/canvas-experiments/debugui"
	"github.com/bthesorceror/canvas-experiments/scene"
)

const title = "canvas experiments"

func main() {
	sceneName := flag.String("scene", scene.DefaultName, "scene file on disk, or the name of an embedded scene")
	watch := flag.Bool("watch", false, "reload the scene when its file changes on disk")
	debug := flag.Bool("debug", false, "show the entity inspector and frame stats")
	flag.Parse()

	game, err := NewGame(*sceneName)
	if err != nil {
		log.Fatalf("failed to build scene %s: %v", *sceneName, err)
	}
	defer game.Close()

	if *watch {
		if err := game.Watch(); err != nil {
			log.Printf("not watching %s: %v", *sceneName, err)
		}
	}

	if *debug {
		game.overlay = debugui.NewOverlay(title, game.scene.Width, game.scene.Height)
	} else {
		ebiten.SetWindowSize(game.scene.Width, game.scene.Height)
		ebiten.SetWindowTitle(title)
	}

	log.Printf("running scene %q with %d entities", game.scene.Name, len(game.scene.Entities()))

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
