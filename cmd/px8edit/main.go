package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/px8edit/cart"
	"github.com/milk9111/px8edit/config"
)

func main() {
	configPath := flag.String("config", "px8edit.yaml", "Settings file (YAML); missing file uses defaults")
	cartPath := flag.String("cart", "", "Cartridge file to edit (overrides the settings file)")
	scale := flag.Int("scale", 0, "Window scale (overrides the settings file)")
	readOnly := flag.Bool("readonly", false, "Open the cartridge read-only")
	watch := flag.Bool("watch", true, "Reload the cartridge when it changes on disk")
	flag.Parse()

	log.Println("px8edit starting...")
	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *cartPath != "" {
		settings.Cartridge = *cartPath
	}
	if *scale > 0 {
		settings.Scale = *scale
	}
	if *readOnly {
		settings.ReadOnly = true
	}
	if err := settings.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	c, err := cart.LoadOrDefault(settings.Cartridge)
	if err != nil {
		log.Fatalf("Failed to load cartridge: %v", err)
	}
	if settings.ReadOnly {
		c.Lock()
	}
	log.Printf("Editing cartridge: %s", settings.Cartridge)

	game, err := NewGame(c, settings.Cartridge, settings)
	if err != nil {
		log.Fatalf("Failed to start editor: %v", err)
	}
	defer game.Close()
	if *watch {
		if err := game.Watch(); err != nil {
			log.Printf("Hot reload disabled: %v", err)
		}
	}

	ebiten.SetWindowSize(game.windowSize())
	ebiten.SetWindowTitle("px8edit")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
