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

package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWattToDbm(t *testing.T) {
	assert.InDelta(t, 30.0, WattToDbm(1), 1e-9)   // 1W = 30dBm
	assert.InDelta(t, 0.0, WattToDbm(0.001), 1e-9) // 1mW = 0dBm
	assert.InDelta(t, 33.01, WattToDbm(2), 0.01)
}

func TestDbmToWattRoundTrip(t *testing.T) {
	for _, w := range []float64{0.001, 1, 5, 100} {
		dbm := WattToDbm(w)
		assert.InDelta(t, w, DbmToWatt(dbm), 1e-9)
	}
}

func TestThermalNoiseDbm(t *testing.T) {
	// -174 + 10log10(25*1000) + 6 for 25kHz
	n := ThermalNoiseDbm(25)
	assert.InDelta(t, -174+10*4.39794+6, n, 0.01)
}

func TestThermalNoiseDbmClampsBandwidth(t *testing.T) {
	n0 := ThermalNoiseDbm(0)
	n1 := ThermalNoiseDbm(1)
	assert.InDelta(t, n0, n1, 1e-9)

	nNeg := ThermalNoiseDbm(-50)
	assert.InDelta(t, n1, nNeg, 1e-9)
}

func TestThermalNoiseDbmMonotoneInBandwidth(t *testing.T) {
	n1 := ThermalNoiseDbm(25)
	n2 := ThermalNoiseDbm(500)
	assert.Less(t, n1, n2)
}
