package main

import (
	"image"
	"log"

	"github.com/automoto/boink/arena"
	"github.com/automoto/boink/config"
	"github.com/automoto/boink/fonts"
	"github.com/automoto/boink/round"
	"github.com/automoto/boink/scenes"
	"github.com/automoto/boink/spawn"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func loadFonts() error {
	for _, f := range []struct {
		name fonts.FontName
		ttf  []byte
		size float64
	}{
		{fonts.Regular, goregular.TTF, 16},
		{fonts.Bold, gobold.TTF, 20},
		{fonts.Title, gobold.TTF, 28},
		{fonts.Small, goregular.TTF, 14},
		{fonts.Damage, gobold.TTF, config.Effect.DamageNumberMinSize},
	} {
		if err := fonts.LoadFontWithSize(f.name, f.ttf, f.size); err != nil {
			return err
		}
	}
	return nil
}

func NewGame() (*Game, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}

	layout, err := arena.Load(config.Arena.Map, float64(config.Arena.Width), float64(config.Arena.Height), config.Arena.WallThickness)
	if err != nil {
		return nil, err
	}
	// The window is sized from config; a map decides the simulation area.
	config.Arena.Width, config.Arena.Height = int(layout.Width), int(layout.Height)

	g := &Game{}
	scene, err := scenes.NewArenaScene(g, layout, spawn.Roster(config.Ball.Roster), round.NewRand(config.Arena.Seed), 1)
	if err != nil {
		return nil, err
	}
	g.scene = scene
	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.WindowWidth(), config.WindowHeight())
	return config.WindowWidth(), config.WindowHeight()
}

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	game, err := NewGame()
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth(), config.WindowHeight())
	ebiten.SetWindowTitle(config.Arena.Title)
	ebiten.SetTPS(config.Arena.FPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
