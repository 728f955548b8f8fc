// Board Evaluation
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

package kalah

// Every component is weighted against the human by this factor
const humanWeight = 1.5

// Bonus for a won game, divided by the distance from the root
const winBonus = 500.0

// Evaluate estimates the value of the board for the machine, where
// DEPTH is the number of plies left to search below the board
func (b *Board) Evaluate(depth int) float64 {
	return 3*b.StoreScore() +
		b.CaptureScore() +
		b.VulnerabilityScore() +
		b.TerminalScore(depth)
}

// StoreScore compares the content of both stores
func (b *Board) StoreScore() float64 {
	return float64(b.seeds[b.store(Machine)]) -
		humanWeight*float64(b.seeds[b.store(Human)])
}

// CaptureScore compares the seeds both players threaten to capture
// with their next move
func (b *Board) CaptureScore() float64 {
	return float64(b.threat(Machine)) - humanWeight*float64(b.threat(Human))
}

// threat sums up the seeds P could capture, counting only the best
// capture per pit a move could end in.
func (b *Board) threat(p Player) (sum int) {
	var (
		from, last = b.first(p), b.first(p) + b.pits
		skip       = b.store(p.Other())
		captured   = make([]int, len(b.seeds))
	)

	for i := from; i < last; i++ {
		s := b.seeds[i]
		if s == 0 || s > 2*b.pits+1 {
			continue
		}

		t := i + s
		if t == skip {
			t++
		}
		if t >= len(b.seeds) {
			t -= len(b.seeds)
		}
		if t < from || t >= last || (b.seeds[t] != 0 && t != i) {
			continue
		}

		opp := b.seeds[b.opposite(t)]
		if t <= i {
			// the move passes the opposite pit
			opp++
		}
		if opp > captured[t] {
			sum += opp - captured[t]
			captured[t] = opp
		}
	}

	return
}

// VulnerabilityScore compares the number of empty pits both players
// have facing a well filled pit
func (b *Board) VulnerabilityScore() float64 {
	return float64(b.vulnerable(Machine)) - humanWeight*float64(b.vulnerable(Human))
}

func (b *Board) vulnerable(p Player) (count int) {
	for i := b.first(p); i < b.first(p)+b.pits; i++ {
		if b.seeds[i] == 0 && b.seeds[b.opposite(i)] >= 2*b.init {
			count++
		}
	}
	return
}

// TerminalScore rewards a finished game, the more the closer it is
// to the root of the search
func (b *Board) TerminalScore(depth int) float64 {
	return b.bonus(Machine, depth) - humanWeight*b.bonus(Human, depth)
}

func (b *Board) bonus(p Player, depth int) float64 {
	if w, ok := b.Winner(); ok && w == p {
		return winBonus / float64(b.level-depth)
	}
	return 0
}
