// Kalah Board Implementation
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
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	DefaultPits    = 6
	DefaultSeeds   = 4
	DefaultLevel   = 3
	DefaultOpening = Human
)

var repr = regexp.MustCompile(`^\s*<\s*(\d+(\s*,\s*\d+)+)\s*>\s*$`)

// Board represents a Kalah game between a human and the machine
//
// The seeds are stored in a single slice: the human pits from left to
// right, the human store, the machine pits from right to left and
// finally the machine store.  Sowing always proceeds towards higher
// indices.
type Board struct {
	seeds []int
	// Pits per player and the initial number of seeds per pit
	pits, init int
	// Player that opened the game and the player to move
	opening, current Player
	// Pits the last move was sown from and ended in
	source, target int
	// Search depth of the machine
	level int
}

// NewBoard creates a new board with PITS pits per player, each with
// SEEDS seeds.  OPENING makes the first move, and the machine searches
// LEVEL plies ahead.
func NewBoard(pits, seeds int, opening Player, level int) (*Board, error) {
	switch {
	case pits < 1:
		return nil, fmt.Errorf("%d pits per player: %w", pits, ErrInvalidArgument)
	case seeds < 1:
		return nil, fmt.Errorf("%d seeds per pit: %w", seeds, ErrInvalidArgument)
	case level < 1:
		return nil, fmt.Errorf("level %d: %w", level, ErrInvalidArgument)
	case !opening.Valid():
		return nil, fmt.Errorf("opening player %d: %w", opening, ErrInvalidArgument)
	}

	b := makeBoard(pits)
	b.init = seeds
	b.opening = opening
	b.current = opening
	b.level = level
	for i := range b.seeds {
		if i != b.store(Human) && i != b.store(Machine) {
			b.seeds[i] = seeds
		}
	}
	return b, nil
}

func makeBoard(pits int) *Board {
	return &Board{
		seeds: make([]int, 2*(pits+1)),
		pits:  pits,
	}
}

// Parse reads a board in the notation generated by Board.Notation
//
// The seeds per pit are derived from the total number of seeds.  The
// human opens the game and is to move; the level is DefaultLevel.
func Parse(notation string) (*Board, error) {
	match := repr.FindStringSubmatch(notation)
	if match == nil {
		return nil, fmt.Errorf("invalid notation %q: %w",
			notation, ErrInvalidArgument)
	}

	var data []int
	for _, part := range strings.Split(match[1], ",") {
		part = strings.TrimSpace(part)
		n, err := strconv.ParseUint(part, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrInvalidArgument)
		}
		data = append(data, int(n))
	}

	size := data[0]
	if size == 0 || len(data) != 1+2+size*2 {
		return nil, fmt.Errorf("invalid size %d: %w", size, ErrInvalidArgument)
	}

	b := makeBoard(size)
	b.seeds[b.store(Human)] = data[1]
	b.seeds[b.store(Machine)] = data[2]
	copy(b.seeds[b.first(Human):], data[3:3+size])
	copy(b.seeds[b.first(Machine):], data[3+size:])

	total := 0
	for _, s := range b.seeds {
		total += s
	}
	b.init = total / (2 * size)
	if b.init < 1 {
		b.init = 1
	}
	b.opening, b.current = Human, Human
	b.level = DefaultLevel
	return b, nil
}

// Notation converts a board into a compact representation
func (b *Board) Notation() string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "<%d,%d,%d", b.pits,
		b.seeds[b.store(Human)], b.seeds[b.store(Machine)])
	for i := 0; i < b.pits; i++ {
		fmt.Fprintf(&buf, ",%d", b.seeds[b.first(Human)+i])
	}
	for i := 0; i < b.pits; i++ {
		fmt.Fprintf(&buf, ",%d", b.seeds[b.first(Machine)+i])
	}
	fmt.Fprint(&buf, ">")

	return buf.String()
}

// String renders the board in two rows
//
// The upper row lists the machine store followed by the machine pits,
// the lower row the human pits followed by the human store, so that
// opposite pits are printed above each other.
func (b *Board) String() string {
	var (
		buf   bytes.Buffer
		width = 1
	)

	for _, s := range b.seeds {
		if w := len(strconv.Itoa(s)); w > width {
			width = w
		}
	}

	for i := b.store(Machine); i > b.store(Human); i-- {
		if i < b.store(Machine) {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%*d", width, b.seeds[i])
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", width+1))
	for i := 0; i <= b.store(Human); i++ {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%*d", width, b.seeds[i])
	}

	return buf.String()
}

// Index of the first pit of P
func (b *Board) first(p Player) int {
	if p == Machine {
		return b.pits + 1
	}
	return 0
}

// Index of the store of P
func (b *Board) store(p Player) int {
	if p == Machine {
		return 2*b.pits + 1
	}
	return b.pits
}

// Index of the pit facing PIT
func (b *Board) opposite(pit int) int {
	return 2*b.pits - pit
}

// owns returns true if PIT is one of the (non-store) pits of P
func (b *Board) owns(p Player, pit int) bool {
	return pit >= b.first(p) && pit < b.first(p)+b.pits
}

// pitSum counts the seeds in the pits of P, ignoring the store
func (b *Board) pitSum(p Player) (sum int) {
	for i := b.first(p); i < b.first(p)+b.pits; i++ {
		sum += b.seeds[i]
	}
	return
}

// Legal returns true if the player to move may sow PIT, counted from
// the first pit of that player
func (b *Board) Legal(pit int) bool {
	if pit < 0 || pit >= b.pits {
		return false
	}
	return b.seeds[b.first(b.current)+pit] > 0
}

// Moves returns the number of legal moves for the player to move and
// the right-most of these
func (b *Board) Moves() (count, last int) {
	for i := 0; i < b.pits; i++ {
		if b.Legal(i) {
			last = i
			count++
		}
	}

	return
}

// sow modifies the board by distributing the seeds of PIT, an absolute
// index into the board.
func (b *Board) sow(pit int) {
	var (
		self   = Human
		stones = b.seeds[pit]
	)

	if b.owns(Machine, pit) {
		self = Machine
	} else if !b.owns(Human, pit) {
		panic(fmt.Sprintf("Sowing from store %d in %s", pit, b.Notation()))
	}
	if stones == 0 {
		panic(fmt.Sprintf("Sowing from empty pit %d in %s", pit, b.Notation()))
	}
	skip := b.store(self.Other())

	// pick up seeds from pit
	b.source = pit
	b.seeds[pit] = 0

	// distribute all seeds
	for stones > 0 {
		pit++
		if pit == len(b.seeds) {
			pit = 0
		}
		if pit == skip {
			continue
		}
		b.seeds[pit]++
		stones--
	}
	b.target = pit

	// check for a capture
	if b.owns(self, pit) && b.seeds[pit] == 1 {
		opp := b.opposite(pit)
		if b.seeds[opp] > 0 {
			b.seeds[b.store(self)] += b.seeds[opp] + 1
			b.seeds[opp] = 0
			b.seeds[pit] = 0
		}
	}
}

// Move returns a new board after the human has sown PIT
//
// ErrEmptyPit is returned if PIT holds no seeds, in which case no move
// has occurred.  The receiver is never modified.
func (b *Board) Move(pit int) (*Board, error) {
	if b.IsGameOver() || b.current != Human {
		return nil, fmt.Errorf("human may not move on %s: %w",
			b.Notation(), ErrIllegalMove)
	}
	if pit < 0 || pit >= b.pits {
		return nil, fmt.Errorf("pit %d not in [0, %d]: %w",
			pit, b.pits-1, ErrInvalidArgument)
	}
	if b.seeds[pit] == 0 {
		return nil, ErrEmptyPit
	}

	n := b.Clone()
	n.sow(pit)
	return n, nil
}

// MachineMove searches for the best move of the machine and returns
// a new board after it has been made.  The receiver is never modified.
//
// The search builds and evaluates the entire game tree up to the
// configured level, so this may take some time for deep searches.
func (b *Board) MachineMove() (*Board, error) {
	if b.IsGameOver() || b.current != Machine {
		return nil, fmt.Errorf("machine may not move on %s: %w",
			b.Notation(), ErrIllegalMove)
	}

	pit, _ := search(b)
	n := b.Clone()
	n.sow(b.first(Machine) + pit)
	return n, nil
}

// Next returns the player that moves next and records it on the
// board.  A player whose last seed ended in their own store may move
// again.
func (b *Board) Next() Player {
	if b.target != b.store(b.current) {
		b.current = b.current.Other()
	}
	return b.current
}

// IsGameOver returns true if all the pits of either player are empty
func (b *Board) IsGameOver() bool {
	return b.pitSum(Human) == 0 || b.pitSum(Machine) == 0
}

// Winner returns the player with more seeds on their side of a
// finished game.  The seeds left in the pits are not collected into
// the store before comparing.  If the game is running or tied, the
// second return value is false.
func (b *Board) Winner() (Player, bool) {
	if !b.IsGameOver() {
		return 0, false
	}

	human, machine := b.SeedsOfPlayer(Human), b.SeedsOfPlayer(Machine)
	switch {
	case human > machine:
		return Human, true
	case machine > human:
		return Machine, true
	default:
		return 0, false
	}
}

// SetLevel sets the search depth for all future machine moves
func (b *Board) SetLevel(level int) error {
	if level < 1 {
		return fmt.Errorf("level %d: %w", level, ErrInvalidArgument)
	}
	b.level = level
	return nil
}

// Seeds returns the number of seeds in PIT, an index into the entire
// board including the stores
func (b *Board) Seeds(pit int) (int, error) {
	if pit < 0 || pit >= len(b.seeds) {
		return 0, fmt.Errorf("pit %d not in [0, %d]: %w",
			pit, len(b.seeds)-1, ErrInvalidArgument)
	}
	return b.seeds[pit], nil
}

// SeedsOfPlayer sums up the seeds in the pits and store of P
func (b *Board) SeedsOfPlayer(p Player) int {
	return b.pitSum(p) + b.seeds[b.store(p)]
}

func (b *Board) PitsPerPlayer() int         { return b.pits }
func (b *Board) SeedsPerPit() int           { return b.init }
func (b *Board) OpeningPlayer() Player      { return b.opening }
func (b *Board) Current() Player            { return b.current }
func (b *Board) Level() int                 { return b.level }
func (b *Board) SourcePitOfLastMove() int   { return b.source }
func (b *Board) TargetPitOfLastMove() int   { return b.target }
func (b *Board) StoreOf(p Player) (pit int) { return b.store(p) }

// Mirror returns a copy of the board where the human and the machine
// have switched sides
func (b *Board) Mirror() *Board {
	m := b.Clone()
	flip := func(i int) int { return (i + b.pits + 1) % len(b.seeds) }
	for i, s := range b.seeds {
		m.seeds[flip(i)] = s
	}
	m.opening = b.opening.Other()
	m.current = b.current.Other()
	m.source = flip(b.source)
	m.target = flip(b.target)
	return m
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	c := *b
	c.seeds = make([]int, len(b.seeds))
	if copy(c.seeds, b.seeds) != len(b.seeds) {
		panic("Illegal board state")
	}
	return &c
}
