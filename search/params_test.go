/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextDepthAdvancesByTwoPlies(t *testing.T) {
	assert.EqualValues(t, 10, NextDepth(8))
	assert.EqualValues(t, 3, NextDepth(1))
}

func TestShallowOrderingDepthMatchesRequestedParity(t *testing.T) {
	cases := []struct {
		depth, want int8
	}{
		{6, 4},
		{8, 4},
		{5, 3},
		{4, 2},
	}
	for _, c := range cases {
		got := shallowOrderingDepth(c.depth)
		assert.Equal(t, c.want, got, "depth %d", c.depth)
		assert.Equal(t, c.depth%2, got%2, "parity must match for depth %d", c.depth)
	}
}

func TestShallowOrderingDepthNeverGoesBelowOne(t *testing.T) {
	assert.GreaterOrEqual(t, shallowOrderingDepth(1), int8(1))
	assert.GreaterOrEqual(t, shallowOrderingDepth(2), int8(1))
}
