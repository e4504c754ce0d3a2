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

// ClutterLoss returns the categorical median clutter loss (dB) for
// freqMHz over the given ground type, per ITU-R P.2108. SEA, COAST,
// OPEN_LAND, and FARMLAND are flat frequency-independent values; FOREST,
// SUBURBAN, URBAN, and DENSE_URBAN grow logarithmically with frequency.
func ClutterLoss(freqMHz float64, groundType types.GroundType) float64 {
	freqGHz := freqMHz / 1000
	switch groundType {
	case types.GroundSea:
		return 0
	case types.GroundCoast:
		return 0.5
	case types.GroundOpenLand:
		return 1.0
	case types.GroundFarmland:
		return 2.0
	case types.GroundForest:
		return math.Min(15, 5+4*math.Log10(math.Max(freqGHz, 0.03)/0.03))
	case types.GroundSuburban:
		return 6 + 1.5*math.Log10(math.Max(freqGHz, 0.1)/0.1)
	case types.GroundUrban:
		return 12 + 2*math.Log10(math.Max(freqGHz, 0.1)/0.1)
	case types.GroundDenseUrban:
		return 20 + 3*math.Log10(math.Max(freqGHz, 0.1)/0.1)
	default:
		return 1.0
	}
}
