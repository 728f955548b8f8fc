// Arena entry point
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
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"go-kalah"
	"go-kalah/bot"
	"go-kalah/conf"
	"go-kalah/game"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	flag.Parse()
	if flag.NArg() != 0 {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Too many arguments passed to %s.\nUsage:\n",
			os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	config := conf.Load()

	// Check the opponent once, before any game is started
	if _, err := bot.Make(config.Arena.Opponent, config.Arena.Level, config.Arena.Seed); err != nil {
		log.Fatal().Err(err).Msg("Invalid opponent")
	}

	arena := game.Arena{
		Games:       config.Arena.Games,
		Concurrency: config.Arena.Concurrency,
		Pits:        config.Game.Pits,
		Seeds:       config.Game.Seeds,
		Level:       config.Game.Level,
		Opponent: func(worker uint) (kalah.Agent, error) {
			return bot.Make(config.Arena.Opponent, config.Arena.Level,
				config.Arena.Seed+uint64(worker))
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tally, err := arena.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Arena failed")
	}
	fmt.Printf("MinMax-%d against %s: %s\n",
		config.Game.Level, config.Arena.Opponent, tally)
	if err != nil {
		os.Exit(1)
	}
}
