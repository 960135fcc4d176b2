package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/doomerang-geom/assets"
	"github.com/automoto/doomerang-geom/config"
	"github.com/automoto/doomerang-geom/fonts"
	"github.com/automoto/doomerang-geom/scenes"
	"github.com/automoto/doomerang-geom/shared/leveldata"
	"github.com/automoto/doomerang-geom/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

// loadLevels reads every TMX file in dir, or the bundled levels when dir is
// empty. Names come back sorted.
func loadLevels(dir string) (map[string]*leveldata.CollisionData, []string, error) {
	if dir == "" {
		return leveldata.LoadAllLevelsWith(assets.FS(), assets.LevelsDir, config.Level.Options)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, nil, err
	}
	return leveldata.LoadAllLevelsWith(os.DirFS(filepath.Dir(abs)), filepath.Base(abs), config.Level.Options)
}

func main() {
	dir := flag.String("levels", config.Level.Dir, "Directory of TMX levels (default: bundled levels)")
	verify := flag.Bool("verify", false, "Check extracted geometry against the tile grid")
	flag.Parse()

	config.Level.Options.Verify = *verify

	levels, names, err := loadLevels(*dir)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: Could not load fonts: %v", err)
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, _ := systems.LoadSettings()
	levelIndex := 0
	if saved != nil {
		levelIndex = saved.LevelIndex
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("doomerang level geometry")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := &Game{scene: scenes.NewGeometryScene(levels, names, levelIndex, saved.Apply())}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
