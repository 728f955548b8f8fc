// Configuration loading and dumping
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
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"go-kalah"
)

// Parse a configuration from R into C.  Options missing in R keep
// their value.
func load(r io.Reader, c *Conf) error {
	_, err := toml.NewDecoder(r).Decode(c)
	return err
}

// Open a configuration file and return it
func Open(name string) (*Conf, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	c := Default()
	return c, load(file, c)
}

// override copies all options that were set on the command line from
// SET into C.
func override(c *Conf, set *flag.FlagSet) {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	bind(fs, c)
	set.Visit(func(f *flag.Flag) {
		if g := fs.Lookup(f.Name); g != nil {
			// The values have already been parsed once
			_ = g.Value.Set(f.Value.String())
		}
	})
}

// Load the configuration for a command, after the flags have been
// parsed.  The configuration file is optional, unless it was requested
// explicitly.  Flags take precedence over the configuration file.
func Load() *Conf {
	c, err := Open(cfile)
	switch {
	case err == nil:
	case os.IsNotExist(err) && cfile == defconf:
		c = Default()
	default:
		log.Fatal().Err(err).Str("file", cfile).Msg("Failed to load configuration")
	}
	override(c, flag.CommandLine)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if c.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		kalah.EnableDebug(os.Stderr)
		log.Debug().Msg("Debug logging has been enabled")
	}

	// Dump the configuration onto the disk if requested
	if dump {
		if err := c.Dump(os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("Failed to dump configuration")
		}
		os.Exit(0)
	}

	return c
}

// Serialise the configuration into a writer
func (c *Conf) Dump(wr io.Writer) error {
	return toml.NewEncoder(wr).Encode(c)
}
