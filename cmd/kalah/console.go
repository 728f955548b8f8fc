// Interactive console
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

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-kalah"
	"go-kalah/bot"
	"go-kalah/conf"
)

var errQuit = errors.New("quit")

const help = `Commands:
  <pit>            sow the seeds of one of your pits (1 is the leftmost)
  level <n>        set the search depth of the machine
  new              start a new game
  switch           let the other player open and start a new game
  pits <n>         start a new game with n pits per player
  seeds <n>        start a new game with n seeds per pit
  show             print the board
  hint             ask the machine for a good move
  load <notation>  continue from a board like <6,0,0,4,4,...>
  quit             leave the game`

type console struct {
	out   io.Writer
	game  conf.GameConf
	board *kalah.Board
}

func newConsole(out io.Writer, game conf.GameConf) (*console, error) {
	c := &console{out: out, game: game}
	return c, c.reset()
}

// restart starts a new game with GAME, and keeps the previous game
// if the configuration is invalid.
func (c *console) restart(game conf.GameConf) error {
	prev := c.game
	c.game = game
	if err := c.reset(); err != nil {
		c.game = prev
		return err
	}
	return nil
}

func (c *console) reset() error {
	b, err := kalah.NewBoard(c.game.Pits, c.game.Seeds, c.game.Opening, c.game.Level)
	if err != nil {
		return err
	}
	c.board = b
	fmt.Fprintln(c.out, c.board)
	c.advance()
	return nil
}

// advance lets the machine move until it is the turn of the human or
// the game is over.
func (c *console) advance() {
	for !c.board.IsGameOver() && c.board.Current() == kalah.Machine {
		n, err := c.board.MachineMove()
		if err != nil {
			panic(err)
		}
		n.Next()
		c.board = n

		pit := n.SourcePitOfLastMove() - n.StoreOf(kalah.Human)
		fmt.Fprintf(c.out, "Machine sowed pit %d\n%s\n", pit, n)
	}

	if c.board.IsGameOver() {
		switch p, ok := c.board.Winner(); {
		case !ok:
			fmt.Fprintln(c.out, "The game ended in a draw.")
		case p == kalah.Human:
			fmt.Fprintln(c.out, "You won!")
		default:
			fmt.Fprintln(c.out, "The machine won.")
		}
		fmt.Fprintf(c.out, "Final score: %d to %d.  Type \"new\" to play again.\n",
			c.board.SeedsOfPlayer(kalah.Human),
			c.board.SeedsOfPlayer(kalah.Machine))
	}
}

func (c *console) move(arg string) error {
	pit, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("unknown command %q", arg)
	}
	n, err := c.board.Move(pit - 1)
	if err != nil {
		return err
	}
	n.Next()
	c.board = n
	fmt.Fprintln(c.out, n)
	c.advance()
	return nil
}

// handle interprets a single line of input
func (c *console) handle(line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}

	switch strings.ToLower(args[0]) {
	case "quit", "exit":
		return errQuit
	case "help", "?":
		fmt.Fprintln(c.out, help)
	case "new":
		return c.reset()
	case "switch":
		c.game.Opening = c.game.Opening.Other()
		return c.reset()
	case "pits", "seeds":
		if len(args) != 2 {
			return fmt.Errorf("usage: %s <n>", args[0])
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid number %q", args[1])
		}
		game := c.game
		if strings.ToLower(args[0]) == "pits" {
			game.Pits = n
		} else {
			game.Seeds = n
		}
		return c.restart(game)
	case "show":
		fmt.Fprintln(c.out, c.board)
	case "hint":
		pit, err := bot.Hint(c.board, c.board.Level())
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Try pit %d\n", pit+1)
	case "level":
		if len(args) != 2 {
			return errors.New("usage: level <n>")
		}
		level, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid level %q", args[1])
		}
		if err := c.board.SetLevel(level); err != nil {
			return err
		}
		c.game.Level = level
	case "load":
		if len(args) != 2 {
			return errors.New("usage: load <notation>")
		}
		b, err := kalah.Parse(args[1])
		if err != nil {
			return err
		}
		if err := b.SetLevel(c.game.Level); err != nil {
			return err
		}
		c.board = b
		fmt.Fprintln(c.out, c.board)
		c.advance()
	default:
		if len(args) != 1 {
			return fmt.Errorf("unknown command %q", args[0])
		}
		return c.move(args[0])
	}
	return nil
}
