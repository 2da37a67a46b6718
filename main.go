package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer3d/common"
)

func main() {
	var cfg Config
	flag.StringVar(&cfg.Level, "level", "level.yaml", "level prefab name in prefabs/")
	flag.StringVar(&cfg.Tuning, "tuning", "tuning.yaml", "physics tuning prefab name in prefabs/")
	flag.StringVar(&cfg.Keys, "keys", "keys.yaml", "key bindings prefab name in prefabs/")
	flag.StringVar(&cfg.Model, "model", "", "model file (.glb/.gltf); overrides the level's model")
	flag.StringVar(&cfg.Texture, "texture", "", "platform texture image; overrides the level's texture")
	flag.BoolVar(&cfg.Watch, "watch", false, "reload prefabs when files under prefabs/ change")
	flag.BoolVar(&cfg.Debug, "debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("platformer3d")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
