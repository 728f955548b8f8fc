// Logging
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
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Debug is silent until EnableDebug is called.  It must not be
// replaced while games are being played.
var Debug = zerolog.Nop()

// EnableDebug redirects debug output to W
func EnableDebug(w io.Writer) {
	Debug = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.StampMicro,
	}).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("component", "engine").
		Logger()
}
