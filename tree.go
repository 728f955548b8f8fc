// Game Tree
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

// NoPit is the pit of a node that was not produced by a move
const NoPit = -1

// Node is a state in the game tree
type Node struct {
	// The board after the move has been made, with the player that
	// moves next
	Board *Board
	// The pit that was sown, counted from the first pit of the
	// player that sowed it
	Pit int
	// Evaluation, filled during the search
	Value float64
	// One entry per pit of the player to move.  A nil child is a
	// pit that could not be sown.
	Children []*Node
}

// BuildTree creates a game tree of DEPTH plies, starting with a copy
// of ROOT
func BuildTree(root *Board, depth int) *Node {
	n := &Node{Board: root.Clone(), Pit: NoPit}
	n.expand(depth)
	return n
}

func (n *Node) expand(depth int) {
	if depth <= 0 || n.Board.IsGameOver() {
		return
	}

	n.Children = make([]*Node, n.Board.pits)
	for i := range n.Children {
		if !n.Board.Legal(i) {
			continue
		}

		// Each child has a copy of its own, so that neither the
		// parent nor the siblings are modified.
		b := n.Board.Clone()
		b.sow(b.first(b.current) + i)
		b.Next()

		c := &Node{Board: b, Pit: i}
		c.expand(depth - 1)
		n.Children[i] = c
	}
}

// Leaf returns true if the node has no children
func (n *Node) Leaf() bool {
	return len(n.Children) == 0
}

// Size counts all nodes in the tree
func (n *Node) Size() (size int) {
	size = 1
	for _, c := range n.Children {
		if c != nil {
			size += c.Size()
		}
	}
	return
}
