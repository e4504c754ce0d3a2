// Copyright (c) 2020-2023, The OTNS Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

package propagation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRainAttenuationZeroWhenNoRainOrBelowThreshold(t *testing.T) {
	assert.Equal(t, 0.0, RainAttenuation(10, 20000, 0))
	assert.Equal(t, 0.0, RainAttenuation(10, 900, 50))
}

func TestRainAttenuationMonotoneInRainRate(t *testing.T) {
	light := RainAttenuation(10, 20000, 5)
	heavy := RainAttenuation(10, 20000, 50)
	assert.Greater(t, heavy, light)
}

func TestRainAttenuationMonotoneInFrequencyAboveOneGHz(t *testing.T) {
	low := RainAttenuation(10, 2000, 25)
	high := RainAttenuation(10, 30000, 25)
	assert.Greater(t, high, low)
}

func TestRainAttenuationSublinearInDistance(t *testing.T) {
	short := RainAttenuation(5, 20000, 25)
	long := RainAttenuation(20, 20000, 25)
	assert.Less(t, long, short*4)
}

func TestRainCoefficientsClampAtTableEdges(t *testing.T) {
	kLow, aLow := rainCoefficients(0.1)
	assert.Equal(t, rainCoeffTable[0].k, kLow)
	assert.Equal(t, rainCoeffTable[0].alpha, aLow)

	n := len(rainCoeffTable)
	kHigh, aHigh := rainCoefficients(1000)
	assert.Equal(t, rainCoeffTable[n-1].k, kHigh)
	assert.Equal(t, rainCoeffTable[n-1].alpha, aHigh)
}
