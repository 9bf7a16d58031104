package scenes

import (
	"log"

	"github.com/automoto/boink/arena"
	"github.com/automoto/boink/round"
	"github.com/automoto/boink/spawn"
	"github.com/automoto/boink/systems"
	"github.com/automoto/boink/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs one round. The simulation keeps stepping under the
// round-over overlay so effects can finish.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	roundOverUI  *ui.RoundOverUI
	layout       arena.Layout
	roster       []spawn.Prototype
	rng          round.Rand
	number       int
	announced    bool
}

// NewArenaScene sets up round number on layout.
func NewArenaScene(sc SceneChanger, layout arena.Layout, roster []spawn.Prototype, rng round.Rand, number int) (*ArenaScene, error) {
	world := donburi.NewWorld()
	if err := round.Setup(world, number, layout, roster, rng); err != nil {
		return nil, err
	}

	as := &ArenaScene{
		sceneChanger: sc,
		layout:       layout,
		roster:       roster,
		rng:          rng,
		number:       number,
	}
	as.roundOverUI = ui.NewRoundOverUI(as.fightAgain)
	as.configure(world)
	return as, nil
}

func (as *ArenaScene) configure(world donburi.World) {
	ecs := ecs.NewECS(world)

	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateTimers(as.rng))
	ecs.AddSystem(systems.UpdatePrune)
	ecs.AddSystem(systems.UpdateRoundStatus)

	ecs.AddRenderer(systems.LayerArena, systems.DrawArena)
	ecs.AddRenderer(systems.LayerBalls, systems.DrawBalls)
	ecs.AddRenderer(systems.LayerEffects, systems.DrawEffects)
	ecs.AddRenderer(systems.LayerHUD, systems.DrawHUD)

	as.ecs = ecs
}

func (as *ArenaScene) Update() {
	as.ecs.Update()

	if !systems.IsRoundOver(as.ecs) {
		return
	}
	if !as.announced {
		as.roundOverUI.SetWinner(round.State(as.ecs.World).Winner)
		as.announced = true
	}
	as.roundOverUI.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		as.fightAgain()
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	as.ecs.DrawLayer(systems.LayerArena, screen)
	as.ecs.DrawLayer(systems.LayerBalls, screen)
	as.ecs.DrawLayer(systems.LayerEffects, screen)
	if systems.IsRoundOver(as.ecs) {
		as.roundOverUI.Draw(screen)
	}
	as.ecs.DrawLayer(systems.LayerHUD, screen)
}

// fightAgain starts the next round with fresh combatants. On failure the
// current scene stays and shows why.
func (as *ArenaScene) fightAgain() {
	next, err := NewArenaScene(as.sceneChanger, as.layout, as.roster, as.rng, as.number+1)
	if err != nil {
		log.Printf("[round] could not start round %d: %v", as.number+1, err)
		as.roundOverUI.SetStatus(err.Error())
		return
	}
	as.sceneChanger.ChangeScene(next)
}
