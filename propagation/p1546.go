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
	"math"

	"github.com/radioplan/linkbudget/types"
)

// p1546DistanceExponent picks n, the distance-decay exponent of the
// simplified P.1546 model, from the gross terrain type and frequency.
func p1546DistanceExponent(terrainType types.TerrainType, freqMHz float64) float64 {
	switch {
	case terrainType == types.TerrainFlat && freqMHz < 300:
		return 3.0
	case terrainType != types.TerrainFlat && freqMHz < 300:
		return 3.5
	case terrainType == types.TerrainFlat && freqMHz >= 300:
		return 3.5
	default:
		return 4.0
	}
}

// ItuP1546Loss returns a simplified ITU-R P.1546 field-strength-derived
// path loss (dB), valid for 30-3000MHz. Outside that range, falls back to
// FsplDb over the full path distance.
func ItuP1546Loss(distKm, freqMHz, htTxM float64, terrainType types.TerrainType) float64 {
	if freqMHz < 30 || freqMHz > 3000 {
		return FsplDb(distKm, freqMHz)
	}
	n := p1546DistanceExponent(terrainType, freqMHz)
	base := FsplDb(1, freqMHz) + 10*n*math.Log10(math.Max(distKm, 0.01)) - 20*math.Log10(math.Max(htTxM, 1)/10)
	return base
}
