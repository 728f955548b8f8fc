// Game Model
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

	"go-kalah"
)

// Result of a finished game
type Result struct {
	// The final board
	Board *kalah.Board
	// The winner, if Decided
	Winner  kalah.Player
	Decided bool
	// Number of moves made by both players
	Moves uint
}

func (r *Result) String() string {
	if !r.Decided {
		return fmt.Sprintf("Draw after %d moves", r.Moves)
	}
	return fmt.Sprintf("%s won after %d moves", r.Winner, r.Moves)
}

// Move makes a single move for the player to move on B and passes the
// turn on.  The pits of the human are chosen by HUMAN.
func Move(b *kalah.Board, human kalah.Agent) (*kalah.Board, error) {
	var (
		n   *kalah.Board
		err error
	)

	if b.IsGameOver() {
		return nil, fmt.Errorf("game is over: %w", kalah.ErrIllegalMove)
	}

	switch b.Current() {
	case kalah.Human:
		count, pit := b.Moves()
		switch count {
		case 0:
			// If this happens, then Board.IsGameOver or
			// Board.Moves must be broken.
			panic("No moves even though game is not over")
		case 1:
			// Skip trivial moves
		default:
			pit, err = human.Request(b)
			if err != nil {
				return nil, fmt.Errorf("%s failed to move: %w", human, err)
			}
		}
		n, err = b.Move(pit)
	case kalah.Machine:
		n, err = b.MachineMove()
	}
	if err != nil {
		return nil, err
	}

	n.Next()
	return n, nil
}

// Play continues the game on B until it is over, with HUMAN choosing
// the moves of the human.  The context is checked between two moves.
func Play(ctx context.Context, b *kalah.Board, human kalah.Agent) (*Result, error) {
	var res Result

	for !b.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		mover := b.Current()
		n, err := Move(b, human)
		if err != nil {
			return nil, fmt.Errorf("move %d on %s: %w", res.Moves+1, b.Notation(), err)
		}
		kalah.Debug.Debug().
			Stringer("player", mover).
			Int("source", n.SourcePitOfLastMove()).
			Str("board", n.Notation()).
			Msg("Move")

		b = n
		res.Moves++
	}

	res.Board = b
	res.Winner, res.Decided = b.Winner()
	return &res, nil
}
