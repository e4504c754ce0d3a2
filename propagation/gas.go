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

import "math"

// oxygenSpecificAttenuation returns the oxygen component of specific gas
// attenuation (dB/km) per the piecewise fit of ITU-R P.676: ~7.19e-3
// below 50GHz, a linear rise to a ~14.5dB/km peak across 50-57GHz, held
// flat across 57-63GHz, Gaussian decay toward 100GHz, and a 0.05 floor
// above that.
func oxygenSpecificAttenuation(freqGHz float64) float64 {
	switch {
	case freqGHz < 50:
		return 7.19e-3
	case freqGHz < 57:
		return 7.19e-3 + (14.5-7.19e-3)*(freqGHz-50)/7
	case freqGHz <= 63:
		return 14.5
	case freqGHz <= 100:
		// Gaussian decay from the 63GHz plateau down toward the 0.05 floor at 100GHz.
		sigma := 10.0
		decay := 14.5 * math.Exp(-math.Pow(freqGHz-63, 2)/(2*sigma*sigma))
		return math.Max(0.05, decay)
	default:
		return 0.05
	}
}

// waterVapourSpecificAttenuation returns the water-vapour component of
// specific gas attenuation (dB/km), standard atmosphere (~7.5 g/m^3):
// negligible below 1GHz, linear rise to ~0.18dB/km at the 22.235GHz
// resonance, a moderate plateau out to 183GHz, a sharp resonance peak at
// 183.310GHz (~30dB/km), and a 0.5 floor above.
func waterVapourSpecificAttenuation(freqGHz float64) float64 {
	const resonance1 = 22.235
	const resonance2 = 183.310
	switch {
	case freqGHz < 1:
		return 0.0001 * freqGHz
	case freqGHz < resonance1:
		return 0.0001 + (0.18-0.0001)*(freqGHz-1)/(resonance1-1)
	case freqGHz < 183:
		// moderate plateau between the two resonances
		span := 183.0 - resonance1
		return 0.18 + (0.4-0.18)*(freqGHz-resonance1)/span
	case freqGHz <= resonance2:
		return 0.4 + (30.0-0.4)*(freqGHz-183)/(resonance2-183)
	case freqGHz <= 200:
		return 30.0 - (30.0-0.5)*(freqGHz-resonance2)/(200-resonance2)
	default:
		return 0.5
	}
}

// SpecificGasAttenuation returns γ(f), the total (oxygen + water vapour)
// specific atmospheric gas attenuation in dB/km for the given frequency
// in MHz.
func SpecificGasAttenuation(freqMHz float64) float64 {
	freqGHz := freqMHz / 1000
	return oxygenSpecificAttenuation(freqGHz) + waterVapourSpecificAttenuation(freqGHz)
}

// GasAbsorption returns the total atmospheric gas absorption (dB) over
// distKm at freqMHz. Scales linearly with distance; returns 0 for
// non-positive distance or frequency.
func GasAbsorption(distKm, freqMHz float64) float64 {
	if distKm <= 0 || freqMHz <= 0 {
		return 0
	}
	return SpecificGasAttenuation(freqMHz) * distKm
}
