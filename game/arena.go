// Self-Play Arena
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
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"go-kalah"
)

// Arena plays a series of games between the machine and an agent
// playing the human
type Arena struct {
	Games       uint
	Concurrency uint

	// Board configuration
	Pits, Seeds, Level int

	// Opponent creates the agent for a worker.  Each worker plays
	// its games one after another, so the agent is never used
	// concurrently.
	Opponent func(worker uint) (kalah.Agent, error)
}

// Tally of the games played in an arena, from the perspective of the
// machine
type Tally struct {
	Wins, Draws, Losses uint
	Moves               uint
}

func (t *Tally) add(r *Result) {
	switch {
	case !r.Decided:
		t.Draws++
	case r.Winner == kalah.Machine:
		t.Wins++
	default:
		t.Losses++
	}
	t.Moves += r.Moves
}

func (t Tally) Games() uint {
	return t.Wins + t.Draws + t.Losses
}

// Score counts a win as 1 and a draw as 1/2
func (t Tally) Score() float64 {
	return float64(t.Wins) + float64(t.Draws)/2
}

func (t Tally) String() string {
	return fmt.Sprintf("+%d =%d -%d (%.1f/%d, %+.0f Elo)",
		t.Wins, t.Draws, t.Losses,
		t.Score(), t.Games(),
		EloDiff(t.Score(), t.Games()))
}

// Run plays all games, and stops at the first error.  The players
// take turns at opening the game.
func (a *Arena) Run(ctx context.Context) (Tally, error) {
	var tally Tally

	if a.Concurrency == 0 {
		return tally, fmt.Errorf("no workers: %w", kalah.ErrInvalidArgument)
	}
	// Validate the board configuration before starting any
	// workers
	if _, err := kalah.NewBoard(a.Pits, a.Seeds, kalah.Human, a.Level); err != nil {
		return tally, err
	}

	log.Info().
		Uint("games", a.Games).
		Uint("concurrency", a.Concurrency).
		Msg("Arena started")
	defer log.Info().Msg("Arena finished")

	g, ctx := errgroup.WithContext(ctx)

	var (
		games   = make(chan uint)
		results = make(chan *Result)
	)

	g.Go(func() error {
		defer close(games)
		for i := uint(0); i < a.Games; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case games <- i:
			}
		}
		return nil
	})

	g.Go(func() error {
		for r := range results {
			tally.add(r)
			log.Debug().
				Uint("game", tally.Games()).
				Stringer("result", r).
				Str("board", r.Board.Notation()).
				Msg("Game finished")
		}
		return nil
	})

	var wg sync.WaitGroup
	for w := uint(0); w < a.Concurrency; w++ {
		w := w
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return a.play(ctx, w, games, results)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	err := g.Wait()
	return tally, err
}

func (a *Arena) play(ctx context.Context, w uint, games <-chan uint, results chan<- *Result) error {
	opp, err := a.Opponent(w)
	if err != nil {
		return err
	}

	for i := range games {
		opening := kalah.Human
		if i%2 == 1 {
			opening = kalah.Machine
		}
		b, err := kalah.NewBoard(a.Pits, a.Seeds, opening, a.Level)
		if err != nil {
			return err
		}

		res, err := Play(ctx, b, opp)
		if err != nil {
			return fmt.Errorf("game %d against %s: %w", i, opp, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case results <- res:
		}
	}
	return nil
}
