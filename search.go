// MinMax Search
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

import (
	"fmt"
	"math"
)

// search chooses a pit for the machine on B, counted from the first
// pit of the machine, and returns the evaluation of the move.
//
// The entire game tree is built up to the level of the board and
// evaluated without any pruning.
func search(b *Board) (int, float64) {
	root := BuildTree(b, b.level)
	value := Minimax(root, b.level)

	// The static evaluation of the root is not part of the
	// evaluation of any child.
	root.Value = root.Board.Evaluate(b.level)
	baseline := value - root.Value

	pit := choose(root, baseline)
	if pit == NoPit {
		panic(fmt.Sprintf("No move found on %s", b.Notation()))
	}

	if ev := Debug.Debug(); ev.Enabled() {
		ev.Str("board", b.Notation()).
			Int("level", b.level).
			Int("nodes", root.Size()).
			Float64("baseline", baseline).
			Int("pit", pit).
			Msg("Machine chose a move")
	}
	return pit, baseline
}

// choose returns the first child of ROOT whose value is BASELINE, or
// NoPit if ROOT has no children.
func choose(root *Node, baseline float64) int {
	for i, c := range root.Children {
		if c != nil && c.Value == baseline {
			return i
		}
	}

	// The subtraction might not restore the value exactly, so
	// fall back to the first best child.
	pit, best := NoPit, math.Inf(-1)
	for i, c := range root.Children {
		if c != nil && (pit == NoPit || c.Value > best) {
			best = c.Value
			pit = i
		}
	}
	return pit
}

// Minimax evaluates the tree under N, with DEPTH plies left to search,
// maximising for the machine.  The value of each child is stored in
// the child.
func Minimax(n *Node, depth int) float64 {
	return minimax(n, depth, true)
}

func minimax(n *Node, depth int, maximise bool) float64 {
	static := n.Board.Evaluate(depth)
	if depth == 0 || n.Board.IsGameOver() {
		return static
	}

	var best float64
	if maximise {
		best = math.Inf(-1)
	} else {
		best = math.Inf(1)
	}

	// Consecutive plies may belong to the same player, so the
	// child decides whether to maximise or minimise.
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		v := minimax(c, depth-1, c.Board.current == Machine)
		if maximise {
			v = math.Max(v, best)
		} else {
			v = math.Min(v, best)
		}
		c.Value = v
		best = v
	}

	// NOTE: The static evaluation of every inner node is added
	// to the best value of its children.
	return best + static
}
