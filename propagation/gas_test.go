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

func TestGasAbsorptionZeroOnNonPositiveInput(t *testing.T) {
	assert.Equal(t, 0.0, GasAbsorption(0, 900))
	assert.Equal(t, 0.0, GasAbsorption(10, 0))
}

func TestGasAbsorptionLinearInDistance(t *testing.T) {
	d1 := GasAbsorption(10, 60000)
	d2 := GasAbsorption(20, 60000)
	assert.InDelta(t, d1*2, d2, 1e-9)
}

func TestGasAbsorptionPeaksNearOxygenResonance(t *testing.T) {
	low := SpecificGasAttenuation(20000)
	peak := SpecificGasAttenuation(60000)
	high := SpecificGasAttenuation(90000)
	assert.Greater(t, peak, low)
	assert.Greater(t, peak, high)
}
