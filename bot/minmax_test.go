// Agent Tests
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-kalah"
)

func TestHint(t *testing.T) {
	for i, test := range []struct {
		state    string
		level    int
		expected int
	}{
		{
			state:    "<3,0,0,1,0,2,1,5,1>",
			level:    1,
			expected: 0,
		},
		{
			state:    "<3,0,0,0,0,3,1,1,1>",
			level:    3,
			expected: 2,
		},
		{
			state:    "<2,0,0,0,1,1,1>",
			level:    5,
			expected: 1,
		},
	} {
		b, err := kalah.Parse(test.state)
		require.NoError(t, err)

		move, err := Hint(b, test.level)
		require.NoError(t, err, "(%d)", i)
		assert.True(t, b.Legal(move), "(%d) Proposed illegal move %d given %s", i, move, b.Notation())
		assert.Equal(t, test.expected, move, "(%d) given %s", i, b.Notation())
		assert.Equal(t, test.state, b.Notation(), "(%d) board was modified", i)
	}
}

func TestHintErrors(t *testing.T) {
	b, err := kalah.NewBoard(4, 4, kalah.Machine, 2)
	require.NoError(t, err)
	_, err = Hint(b, 2)
	assert.ErrorIs(t, err, kalah.ErrIllegalMove)

	b, err = kalah.NewBoard(4, 4, kalah.Human, 2)
	require.NoError(t, err)
	_, err = Hint(b, 0)
	assert.ErrorIs(t, err, kalah.ErrInvalidArgument)
}

func TestMinMax(t *testing.T) {
	_, err := MakeMinMax(0)
	assert.ErrorIs(t, err, kalah.ErrInvalidArgument)

	a, err := MakeMinMax(3)
	require.NoError(t, err)
	assert.Equal(t, "MinMax-3", a.String())

	b, err := kalah.NewBoard(6, 4, kalah.Human, 3)
	require.NoError(t, err)
	first, err := a.Request(b)
	require.NoError(t, err)
	second, err := a.Request(b)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, b.Legal(first))
}

func TestRandom(t *testing.T) {
	b, err := kalah.Parse("<4,0,0,0,3,0,1,4,4,4,4>")
	require.NoError(t, err)

	a, b2 := MakeRandom(7), MakeRandom(7)
	for i := 0; i < 100; i++ {
		pit, err := a.Request(b)
		require.NoError(t, err)
		assert.True(t, b.Legal(pit), "illegal move %d", pit)
		again, err := b2.Request(b)
		require.NoError(t, err)
		assert.Equal(t, pit, again, "same seed, same moves")
	}

	b, err = kalah.NewBoard(4, 4, kalah.Machine, 2)
	require.NoError(t, err)
	_, err = a.Request(b)
	assert.ErrorIs(t, err, kalah.ErrIllegalMove)
}

func TestMake(t *testing.T) {
	a, err := Make("Random", 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "Random", a.String())

	a, err = Make("minmax", 2, 1)
	require.NoError(t, err)
	assert.Equal(t, "MinMax-2", a.String())

	_, err = Make("minmax", 0, 1)
	assert.ErrorIs(t, err, kalah.ErrInvalidArgument)
	_, err = Make("oracle", 2, 1)
	assert.ErrorIs(t, err, kalah.ErrInvalidArgument)
}
