// Agent Selection
//
// Copyright (c) 2022  Philip Kaludercic
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

package bot

import (
	"fmt"
	"strings"

	"go-kalah"
)

// Make creates an agent by NAME, either "random" or "minmax"
func Make(name string, level int, seed uint64) (kalah.Agent, error) {
	switch strings.ToLower(name) {
	case "random":
		return MakeRandom(seed), nil
	case "minmax":
		return MakeMinMax(level)
	}
	return nil, fmt.Errorf("unknown agent %q: %w", name, kalah.ErrInvalidArgument)
}
