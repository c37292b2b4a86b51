package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridwars/battleship/internal/game/ai"
	"github.com/gridwars/battleship/internal/game/core"
	"github.com/gridwars/battleship/internal/game/events"
	"github.com/gridwars/battleship/internal/game/states"
	"github.com/gridwars/battleship/internal/testutil"
)

func newTestEngine(t *testing.T, difficulty ai.Difficulty, seed int64) *Engine {
	t.Helper()
	return NewEngine(Config{
		Difficulty: difficulty,
		Rng:        testutil.NewTestRNG(seed),
		Logger:     testutil.NopLogger(),
	})
}

// placePlayerFleet commits the fleet on fixed rows, entering Attacking.
func placePlayerFleet(t *testing.T, e *Engine) {
	t.Helper()
	for i := range core.FleetSizes {
		require.True(t, e.PlaceShip(core.NewCoordinate(0, i*2)), "ship %d", i)
	}
	require.Equal(t, states.PhaseAttacking, e.Phase())
}

func TestNewEngine(t *testing.T) {
	e := newTestEngine(t, ai.Easy, 1)

	assert.NotEmpty(t, e.ID())
	assert.Equal(t, states.PhasePlacing, e.Phase())
	assert.Equal(t, ai.Easy, e.Difficulty())

	// The computer's fleet is placed immediately; the player's is not.
	assert.Len(t, e.ComputerBoard().Ships(), len(core.FleetSizes))
	assert.Empty(t, e.PlayerBoard().Ships())

	_, over := e.Winner()
	assert.False(t, over)
}

func TestEngine_DeterministicForSeed(t *testing.T) {
	a := newTestEngine(t, ai.Hard, 42)
	b := newTestEngine(t, ai.Hard, 42)

	for i, ship := range a.ComputerBoard().Ships() {
		other := b.ComputerBoard().Ships()[i]
		assert.Equal(t, ship.Origin(), other.Origin())
		assert.Equal(t, ship.Horizontal(), other.Horizontal())
	}
}

func TestEngine_PlacementFlow(t *testing.T) {
	e := newTestEngine(t, ai.Easy, 2)

	// Attacks are ignored until the fleet is placed.
	assert.Nil(t, e.Attack(core.NewCoordinate(0, 0)))

	placePlayerFleet(t, e)
	assert.Len(t, e.PlayerBoard().Ships(), len(core.FleetSizes))
	assert.True(t, e.Tracker().Done())

	// Placement input is ignored once attacking has begun.
	assert.False(t, e.PlaceShip(core.NewCoordinate(5, 5)))
}

func TestEngine_PlaceShipRejectsOverlap(t *testing.T) {
	e := newTestEngine(t, ai.Easy, 3)

	require.True(t, e.PlaceShip(core.NewCoordinate(0, 0)))
	assert.False(t, e.PlaceShip(core.NewCoordinate(0, 0)))
	assert.Len(t, e.PlayerBoard().Ships(), 1)
	assert.Equal(t, states.PhasePlacing, e.Phase())
}

func TestEngine_AttackProducesCounterAttack(t *testing.T) {
	e := newTestEngine(t, ai.Easy, 4)
	placePlayerFleet(t, e)

	target := core.NewCoordinate(9, 9)
	results := e.Attack(target)
	require.Len(t, results, 2)

	assert.Equal(t, SidePlayer, results[0].Side)
	assert.Equal(t, target, results[0].Coord)
	assert.True(t, e.ComputerBoard().IsMarked(target))

	assert.Equal(t, SideComputer, results[1].Side)
	assert.True(t, e.PlayerBoard().IsMarked(results[1].Coord))
}

func TestEngine_AttackIgnoresMarkedCell(t *testing.T) {
	e := newTestEngine(t, ai.Easy, 5)
	placePlayerFleet(t, e)

	target := core.NewCoordinate(4, 4)
	require.Len(t, e.Attack(target), 2)

	// Re-attacking the same cell is swallowed whole: no results and no
	// free counter-attack for the computer.
	marked := countMarks(e.PlayerBoard())
	assert.Nil(t, e.Attack(target))
	assert.Equal(t, marked, countMarks(e.PlayerBoard()))
}

func TestEngine_AttackIgnoresOutOfBounds(t *testing.T) {
	e := newTestEngine(t, ai.Easy, 6)
	placePlayerFleet(t, e)

	assert.Nil(t, e.Attack(core.NewCoordinate(-1, 0)))
	assert.Nil(t, e.Attack(core.NewCoordinate(10, 10)))
	assert.Equal(t, 0, countMarks(e.PlayerBoard()))
}

func TestEngine_PlayerWins(t *testing.T) {
	e := newTestEngine(t, ai.Easy, 7)
	placePlayerFleet(t, e)

	// Sink the computer fleet directly. The computer fires back once
	// per attack and cannot reach 17 hits in 16 shots, so the player
	// always wins this race.
	var last ShotResult
	for _, ship := range e.ComputerBoard().Ships() {
		for _, c := range ship.OccupiedCoordinates() {
			results := e.Attack(c)
			require.NotEmpty(t, results)
			last = results[0]
		}
	}

	assert.True(t, last.GameOver)
	assert.Equal(t, states.PhaseOver, e.Phase())

	winner, over := e.Winner()
	assert.True(t, over)
	assert.Equal(t, SidePlayer, winner)

	// The game is over; further attacks are ignored.
	assert.Nil(t, e.Attack(core.NewCoordinate(0, 9)))
}

func TestEngine_ComputerWins(t *testing.T) {
	e := newTestEngine(t, ai.Easy, 8)
	e.AutoPlacePlayer()
	require.Equal(t, states.PhaseAttacking, e.Phase())

	for _, ship := range e.PlayerBoard().Ships() {
		for _, c := range ship.OccupiedCoordinates() {
			e.applyShot(SideComputer, e.player, c)
		}
	}

	assert.Equal(t, states.PhaseOver, e.Phase())
	winner, over := e.Winner()
	assert.True(t, over)
	assert.Equal(t, SideComputer, winner)
}

func TestEngine_AutoPlacePlayer(t *testing.T) {
	e := newTestEngine(t, ai.Medium, 9)
	e.AutoPlacePlayer()

	assert.Equal(t, states.PhaseAttacking, e.Phase())
	assert.Len(t, e.PlayerBoard().Ships(), len(core.FleetSizes))
	assert.True(t, e.Tracker().Done())
}

func TestEngine_Restart(t *testing.T) {
	e := newTestEngine(t, ai.Easy, 10)
	placePlayerFleet(t, e)
	require.Len(t, e.Attack(core.NewCoordinate(0, 9)), 2)

	e.Restart()

	assert.Equal(t, states.PhasePlacing, e.Phase())
	assert.Empty(t, e.PlayerBoard().Ships())
	assert.Len(t, e.ComputerBoard().Ships(), len(core.FleetSizes))
	assert.Equal(t, 0, countMarks(e.PlayerBoard()))
	assert.Equal(t, 0, countMarks(e.ComputerBoard()))
	assert.False(t, e.Tracker().Done())

	_, over := e.Winner()
	assert.False(t, over)
}

func TestEngine_RestartAfterGameOver(t *testing.T) {
	e := newTestEngine(t, ai.Easy, 11)
	placePlayerFleet(t, e)
	for _, ship := range e.ComputerBoard().Ships() {
		for _, c := range ship.OccupiedCoordinates() {
			e.Attack(c)
		}
	}
	require.Equal(t, states.PhaseOver, e.Phase())

	e.Restart()
	assert.Equal(t, states.PhasePlacing, e.Phase())

	// A fresh game is fully playable after restart.
	placePlayerFleet(t, e)
	assert.Len(t, e.Attack(core.NewCoordinate(5, 5)), 2)
}

func TestEngine_PublishesEvents(t *testing.T) {
	bus := events.NewEventBus()
	var types []string
	for _, eventType := range []string{
		events.TypeGameStarted, events.TypeShotFired,
		events.TypeShipDestroyed, events.TypeGameEnded,
	} {
		et := eventType
		bus.SubscribeFunc(et, func(events.Event) { types = append(types, et) })
	}

	e := NewEngine(Config{
		Difficulty: ai.Easy,
		Rng:        testutil.NewTestRNG(12),
		Logger:     testutil.NopLogger(),
		Bus:        bus,
	})
	require.Equal(t, []string{events.TypeGameStarted}, types)

	placePlayerFleet(t, e)
	for _, ship := range e.ComputerBoard().Ships() {
		for _, c := range ship.OccupiedCoordinates() {
			e.Attack(c)
		}
	}

	assert.Contains(t, types, events.TypeShotFired)
	assert.Contains(t, types, events.TypeShipDestroyed)
	assert.Equal(t, events.TypeGameEnded, types[len(types)-1])
}

func TestShotResult_String(t *testing.T) {
	ship := core.NewShip(core.NewCoordinate(0, 0), 2, true)
	tests := []struct {
		name     string
		result   ShotResult
		expected string
	}{
		{
			"PlayerMiss",
			ShotResult{Side: SidePlayer, Coord: core.NewCoordinate(0, 0)},
			"Player Missed (0,0)",
		},
		{
			"PlayerHit",
			ShotResult{Side: SidePlayer, Coord: core.NewCoordinate(3, 4), Hit: true},
			"Player Hit (3,4)",
		},
		{
			"ComputerDestroyed",
			ShotResult{Side: SideComputer, Coord: core.NewCoordinate(7, 2), Hit: true, Destroyed: ship},
			"Computer Hit (7,2)(Destroyed)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.result.String())
		})
	}
}

func TestSide(t *testing.T) {
	assert.Equal(t, "player", SidePlayer.String())
	assert.Equal(t, "computer", SideComputer.String())
	assert.Equal(t, SideComputer, SidePlayer.Opponent())
	assert.Equal(t, SidePlayer, SideComputer.Opponent())
}

func countMarks(b *core.Board) int {
	count := 0
	for x := 0; x < core.GridWidth; x++ {
		for y := 0; y < core.GridHeight; y++ {
			if b.IsMarked(core.NewCoordinate(x, y)) {
				count++
			}
		}
	}
	return count
}
