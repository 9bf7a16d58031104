package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialSpeedBoundsScaleWithFPS(t *testing.T) {
	assert.Equal(t, 300.0, MinInitialSpeed())
	assert.Equal(t, 600.0, MaxInitialSpeed())
}

func TestWindowSizeWrapsArenaWithHUD(t *testing.T) {
	assert.Equal(t, 1300, WindowWidth())
	assert.Equal(t, 840, WindowHeight())
}

func TestLoadEnvOverridesOnlySetValues(t *testing.T) {
	savedArena, savedBall, savedCombat := Arena, Ball, Combat
	t.Cleanup(func() {
		Arena, Ball, Combat = savedArena, savedBall, savedCombat
	})

	t.Setenv("BOINK_SEED", "42")
	t.Setenv("BOINK_ROSTER", "ann,bob")
	t.Setenv("BOINK_CRIT_SCALE", "0.00005")

	require.NoError(t, LoadEnv())

	assert.Equal(t, int64(42), Arena.Seed)
	assert.Equal(t, []string{"ann", "bob"}, Ball.Roster)
	assert.Equal(t, 0.00005, Combat.CritScale)
	assert.Equal(t, 60, Arena.FPS)
	assert.Equal(t, 0.05, Combat.BaseCritChance)
}

func TestLoadEnvRejectsBadValues(t *testing.T) {
	savedArena := Arena
	t.Cleanup(func() { Arena = savedArena })

	t.Setenv("BOINK_FPS", "fast")
	assert.Error(t, LoadEnv())
}

func TestColorForFallsBackToDefault(t *testing.T) {
	assert.Equal(t, RosterColors["jin"], ColorFor("jin"))
	assert.Equal(t, DefaultBallColor, ColorFor("stranger"))
}
