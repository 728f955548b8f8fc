// Rating Estimation
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

package game

import "math"

// Largest rating difference that is reported
const MAX_DIFF = 400

// Expected score of a player that is rated DIFF points above the
// opponent, according to
// https://de.wikipedia.org/wiki/Elo-Zahl#Erwartungswert
func expected(diff float64) float64 {
	return 1 / (1 + math.Pow(10, -diff/MAX_DIFF))
}

// EloDiff estimates how many rating points the machine is above the
// opponent, given the score of the machine (a win counts 1, a draw
// 1/2) over a number of games.
func EloDiff(score float64, games uint) float64 {
	if games == 0 {
		return 0
	}

	s := score / float64(games)
	switch {
	case s <= expected(-MAX_DIFF):
		return -MAX_DIFF
	case s >= expected(MAX_DIFF):
		return MAX_DIFF
	}
	return -MAX_DIFF * math.Log10(1/s-1)
}
