// Random Agent
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

	"golang.org/x/exp/rand"

	"go-kalah"
)

// Not safe for concurrent use, every game needs an agent of its own
type random struct {
	rng *rand.Rand
}

func (r *random) Request(b *kalah.Board) (int, error) {
	if b.Current() != kalah.Human || b.IsGameOver() {
		return 0, fmt.Errorf("no move for %s: %w", b.Notation(), kalah.ErrIllegalMove)
	}

	legal := make([]int, 0, b.PitsPerPlayer())
	for i := 0; i < b.PitsPerPlayer(); i++ {
		if b.Legal(i) {
			legal = append(legal, i)
		}
	}

	// A running game always leaves the human a move, so legal is
	// never empty.
	return legal[r.rng.Intn(len(legal))], nil
}

func (*random) String() string { return "Random" }

// MakeRandom returns an agent that only makes random moves
func MakeRandom(seed uint64) kalah.Agent {
	return &random{rng: rand.New(rand.NewSource(seed))}
}
