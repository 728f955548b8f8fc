// MinMax Agent
//
// Copyright (c) 2022  Philip Kaludercic
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

package bot

import (
	"fmt"

	"go-kalah"
)

type minmax struct {
	level int // ply cutoff
}

// Hint proposes a pit for the human on B, by letting the machine
// search on the mirrored board for LEVEL plies.
func Hint(b *kalah.Board, level int) (int, error) {
	if b.Current() != kalah.Human || b.IsGameOver() {
		return 0, fmt.Errorf("no hint for %s: %w", b.Notation(), kalah.ErrIllegalMove)
	}

	// On the mirrored board the human plays the part of the
	// machine, and the pits of the human follow the store of the
	// machine.
	m := b.Mirror()
	if err := m.SetLevel(level); err != nil {
		return 0, err
	}
	n, err := m.MachineMove()
	if err != nil {
		return 0, err
	}
	pit := n.SourcePitOfLastMove() - (b.PitsPerPlayer() + 1)
	if !b.Legal(pit) {
		panic(fmt.Sprintf("Proposing illegal move %d given %s",
			pit, b.Notation()))
	}
	return pit, nil
}

func (m *minmax) Request(b *kalah.Board) (int, error) {
	return Hint(b, m.level)
}

func (m *minmax) String() string { return fmt.Sprintf("MinMax-%d", m.level) }

// MakeMinMax returns an agent that searches LEVEL plies ahead
func MakeMinMax(level int) (kalah.Agent, error) {
	if level < 1 {
		return nil, fmt.Errorf("level %d: %w", level, kalah.ErrInvalidArgument)
	}
	return &minmax{level: level}, nil
}
