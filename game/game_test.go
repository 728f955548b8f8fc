// Game Tests
//
// Copyright (c) 2021, 2022  Philip Kaludercic
//
// This file is part of go-kalah.
//
// go-kalah is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License,
// version 3, as published by the Free Software Foundation.
//
// go-kalah is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public
// License, version 3, along with go-kalah. If not, see
// <http://www.gnu.org/licenses/>

package game

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-kalah"
	"go-kalah/bot"
)

// An agent that must not be asked for a move
type mute struct{}

func (mute) Request(*kalah.Board) (int, error) { return 0, errors.New("mute") }
func (mute) String() string                    { return "Mute" }

func TestPlay(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		opening := kalah.Human
		if seed%2 == 0 {
			opening = kalah.Machine
		}
		b, err := kalah.NewBoard(4, 3, opening, 2)
		require.NoError(t, err)

		res, err := Play(context.Background(), b, bot.MakeRandom(seed))
		require.NoError(t, err)
		require.NotNil(t, res.Board)
		assert.True(t, res.Board.IsGameOver())
		assert.NotZero(t, res.Moves)
		assert.Equal(t, 24, res.Board.SeedsOfPlayer(kalah.Human)+
			res.Board.SeedsOfPlayer(kalah.Machine))

		winner, decided := res.Board.Winner()
		assert.Equal(t, decided, res.Decided)
		if decided {
			assert.Equal(t, winner, res.Winner)
		}

		// the initial board is not modified
		assert.Equal(t, "<4,0,0,3,3,3,3,3,3,3,3>", b.Notation())
	}
}

func TestPlayCancel(t *testing.T) {
	b, err := kalah.NewBoard(6, 4, kalah.Human, 2)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Play(ctx, b, bot.MakeRandom(1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlayAgentError(t *testing.T) {
	b, err := kalah.NewBoard(6, 4, kalah.Human, 2)
	require.NoError(t, err)
	_, err = Play(context.Background(), b, mute{})
	assert.ErrorContains(t, err, "mute")
}

func TestMove(t *testing.T) {
	// With a single legal move the agent is not asked
	b, err := kalah.Parse("<3,0,0,2,0,0,3,3,3>")
	require.NoError(t, err)
	n, err := Move(b, mute{})
	require.NoError(t, err)
	assert.Equal(t, "<3,4,0,0,1,0,0,3,3>", n.Notation())
	assert.Equal(t, kalah.Machine, n.Current())

	// The machine moves on its own
	m, err := Move(n, mute{})
	require.NoError(t, err)
	assert.Equal(t, kalah.Machine, n.Current(), "the previous board is kept")
	assert.Equal(t, n.SeedsOfPlayer(kalah.Human)+n.SeedsOfPlayer(kalah.Machine),
		m.SeedsOfPlayer(kalah.Human)+m.SeedsOfPlayer(kalah.Machine))

	over, err := kalah.Parse("<3,5,0,0,0,0,1,1,1>")
	require.NoError(t, err)
	_, err = Move(over, mute{})
	assert.ErrorIs(t, err, kalah.ErrIllegalMove)
}

func TestArena(t *testing.T) {
	a := &Arena{
		Games:       12,
		Concurrency: 3,
		Pits:        4,
		Seeds:       3,
		Level:       2,
		Opponent: func(w uint) (kalah.Agent, error) {
			return bot.MakeRandom(uint64(w)), nil
		},
	}

	tally, err := a.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint(12), tally.Games())
	assert.NotZero(t, tally.Moves)
	assert.InDelta(t, float64(tally.Wins)+float64(tally.Draws)/2, tally.Score(), 1e-9)
}

func TestArenaErrors(t *testing.T) {
	a := &Arena{
		Games:       4,
		Concurrency: 2,
		Pits:        4,
		Seeds:       3,
		Level:       1,
		Opponent: func(uint) (kalah.Agent, error) {
			return mute{}, nil
		},
	}
	_, err := a.Run(context.Background())
	assert.ErrorContains(t, err, "mute")

	a.Opponent = func(uint) (kalah.Agent, error) {
		return bot.Make("oracle", 1, 0)
	}
	_, err = a.Run(context.Background())
	assert.ErrorIs(t, err, kalah.ErrInvalidArgument)

	a.Level = 0
	_, err = a.Run(context.Background())
	assert.ErrorIs(t, err, kalah.ErrInvalidArgument)

	a.Level, a.Concurrency = 1, 0
	_, err = a.Run(context.Background())
	assert.ErrorIs(t, err, kalah.ErrInvalidArgument)
}

func TestTally(t *testing.T) {
	var tally Tally
	tally.add(&Result{Winner: kalah.Machine, Decided: true, Moves: 10})
	tally.add(&Result{Winner: kalah.Human, Decided: true, Moves: 20})
	tally.add(&Result{Moves: 30})
	tally.add(&Result{Winner: kalah.Machine, Decided: true, Moves: 40})

	assert.Equal(t, Tally{Wins: 2, Draws: 1, Losses: 1, Moves: 100}, tally)
	assert.Equal(t, 2.5, tally.Score())
	assert.Contains(t, tally.String(), "+2 =1 -1")
}

func TestEloDiff(t *testing.T) {
	assert.Equal(t, 0.0, EloDiff(0, 0))
	assert.InDelta(t, 0, EloDiff(5, 10), 1e-9)
	assert.Equal(t, float64(MAX_DIFF), EloDiff(10, 10))
	assert.Equal(t, -float64(MAX_DIFF), EloDiff(0, 10))

	// three quarters of the points are about 191 points
	assert.InDelta(t, 400*math.Log10(3), EloDiff(7.5, 10), 1e-9)
	assert.Less(t, EloDiff(6, 10), EloDiff(7, 10))
	assert.InDelta(t, 0.75, expected(EloDiff(7.5, 10)), 1e-9)
}
