// Configuration Specification
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

package conf

import (
	"flag"
	"runtime"

	"go-kalah"
)

const defconf = "go-kalah.toml"

type GameConf struct {
	Pits    int          `toml:"pits"`
	Seeds   int          `toml:"seeds"`
	Level   int          `toml:"level"`
	Opening kalah.Player `toml:"opening"`
}

type ArenaConf struct {
	Games       uint   `toml:"games"`
	Concurrency uint   `toml:"concurrency"`
	Opponent    string `toml:"opponent"`
	Level       int    `toml:"opponent_level"`
	Seed        uint64 `toml:"seed"`
}

type Conf struct {
	Debug bool      `toml:"debug"`
	Game  GameConf  `toml:"game"`
	Arena ArenaConf `toml:"arena"`
}

var defaultConfig = Conf{
	Game: GameConf{
		Pits:    kalah.DefaultPits,
		Seeds:   kalah.DefaultSeeds,
		Level:   kalah.DefaultLevel,
		Opening: kalah.DefaultOpening,
	},
	Arena: ArenaConf{
		Games:       100,
		Concurrency: uint(runtime.NumCPU()/2 + 1),
		Opponent:    "random",
		Level:       kalah.DefaultLevel,
		Seed:        1,
	},
}

var (
	flags = defaultConfig
	dump  = false
	cfile = defconf
)

func init() {
	bind(flag.CommandLine, &flags)

	flag.BoolVar(&dump, "dump-config", dump, "Dump configuration to standard output")
	flag.StringVar(&cfile, "conf", cfile, "Path to configuration file")
}

// bind registers a flag for every option in C
func bind(fs *flag.FlagSet, c *Conf) {
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Enable debug output")

	fs.IntVar(&c.Game.Pits, "pits", c.Game.Pits,
		"Number of pits per player")
	fs.IntVar(&c.Game.Seeds, "seeds", c.Game.Seeds,
		"Number of seeds per pit at the start of a game")
	fs.IntVar(&c.Game.Level, "level", c.Game.Level,
		"Plies the machine should search")
	fs.TextVar(&c.Game.Opening, "opening", c.Game.Opening,
		"Player to make the first move (human or machine)")

	fs.UintVar(&c.Arena.Games, "games", c.Arena.Games,
		"Number of games to play in the arena")
	fs.UintVar(&c.Arena.Concurrency, "concurrency", c.Arena.Concurrency,
		"Number of games to play at the same time")
	fs.StringVar(&c.Arena.Opponent, "opponent", c.Arena.Opponent,
		"Agent playing the human in the arena (random or minmax)")
	fs.IntVar(&c.Arena.Level, "opponent-level", c.Arena.Level,
		"Plies the minmax opponent should search")
	fs.Uint64Var(&c.Arena.Seed, "seed", c.Arena.Seed,
		"Seed for random opponents")
}

// Default returns a copy of the default configuration
func Default() *Conf {
	c := defaultConfig
	return &c
}
