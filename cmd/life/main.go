//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sparselife/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	rules, err := cfg.EnabledRules()
	if err != nil {
		log.Fatal(err)
	}
	seeder, err := cfg.Seeder()
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(cfg, rules, seeder)

	ebiten.SetWindowTitle("sparselife — " + rules[0].Name())
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
