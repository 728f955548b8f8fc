// Common types and errors
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
	"errors"
	"fmt"
	"strings"
)

type Player uint8

const (
	// Possible players
	Human Player = iota
	Machine
)

var (
	// ErrInvalidArgument is returned for malformed parameters,
	// pits that are not on the board or a search depth below 1.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIllegalMove is returned when a move is requested after
	// the game has ended or by the player whose turn it is not.
	ErrIllegalMove = errors.New("illegal move")
	// ErrEmptyPit signals that no move occurred, because the
	// requested pit holds no seeds.
	ErrEmptyPit = errors.New("empty pit")
)

// Agent chooses a pit for the human, when it is the human's turn.
// The pit is counted from the first pit of the human.
type Agent interface {
	fmt.Stringer
	Request(*Board) (int, error)
}

// Other returns the opponent of P
func (p Player) Other() Player {
	if p == Human {
		return Machine
	}
	return Human
}

func (p Player) Valid() bool {
	return p == Human || p == Machine
}

func (p Player) String() string {
	switch p {
	case Human:
		return "Human"
	case Machine:
		return "Machine"
	}
	panic(fmt.Sprintf("Illegal player: %d", p))
}

// ParsePlayer converts a (case insensitive) player name into a Player
func ParsePlayer(name string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "human":
		return Human, nil
	case "machine":
		return Machine, nil
	}
	return 0, fmt.Errorf("unknown player %q: %w", name, ErrInvalidArgument)
}

// MarshalText encodes a player by name, so that it may be used in
// configuration files.
func (p Player) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("player %d: %w", p, ErrInvalidArgument)
	}
	return []byte(strings.ToLower(p.String())), nil
}

func (p *Player) UnmarshalText(text []byte) (err error) {
	*p, err = ParsePlayer(string(text))
	return
}
