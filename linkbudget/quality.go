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

package linkbudget

import (
	"math"

	"github.com/radioplan/linkbudget/types"
	"github.com/radioplan/linkbudget/units"
)

// availabilitySigmaDb is the standard deviation used to map link margin
// onto a 0-1 availability figure via the normal CDF.
const availabilitySigmaDb = 8.0

// qualityBand is one row of the score-to-label-to-color table.
type qualityBand struct {
	minScore int
	label    string
	color    string
}

// qualityBands is ordered from the highest threshold down; the first
// band whose minScore the final score meets or exceeds wins.
var qualityBands = []qualityBand{
	{80, "Excellent", "#2e7d32"},
	{60, "Good", "#8bc34a"},
	{40, "Acceptable", "#fbc02d"},
	{20, "Weak", "#ef6c00"},
	{0, "Insufficient", "#c62828"},
}

// ConnectionQuality computes the composite connection-quality score from
// the already-assembled loss and gain figures of a link budget: four
// weighted sub-scores (margin, Fresnel clearance, weather reliability,
// antenna gain), a hard infeasibility cap, availability via the normal
// CDF of link margin, and SNR against the thermal noise floor.
func ConnectionQuality(linkMarginDb, fresnelClearance, rainDb, cloudFogDb, txGainDbi, rxGainDbi, receivedPowerDbm, bandwidthKHz float64) types.ConnectionQuality {
	marginScore := clamp(linkMarginDb/30, 0, 1) * 50
	fresnelScore := fresnelClearance * 20

	w := rainDb + cloudFogDb
	reliability := math.Max(0, 1-w/math.Max(w+10, 10))
	weatherScore := reliability * 20

	gainScore := clamp((txGainDbi+rxGainDbi)/20, 0, 1) * 10

	score := int(math.Round(marginScore + fresnelScore + weatherScore + gainScore))
	score = int(clamp(float64(score), 0, 100))

	if linkMarginDb < 0 {
		cap := 19 + 2*int(math.Round(linkMarginDb))
		score = int(clamp(float64(cap), 0, float64(score)))
	}

	label, color := bandFor(score)

	return types.ConnectionQuality{
		Score:        score,
		Label:        label,
		Color:        color,
		Availability: availability(linkMarginDb),
		SnrDb:        receivedPowerDbm - units.ThermalNoiseDbm(bandwidthKHz),
	}
}

func bandFor(score int) (label, color string) {
	for _, b := range qualityBands {
		if score >= b.minScore {
			return b.label, b.color
		}
	}
	return qualityBands[len(qualityBands)-1].label, qualityBands[len(qualityBands)-1].color
}

// availability maps link margin onto [0,1] via the normal CDF:
// 0.5*(1+erf(margin/(sigma*sqrt(2)))).
func availability(linkMarginDb float64) float64 {
	return 0.5 * (1 + erf(linkMarginDb/(availabilitySigmaDb*math.Sqrt2)))
}

// erf is the Abramowitz-Stegun 5-term rational approximation (formula
// 7.1.26), with max absolute error ~1.5e-7. The 5-coefficient form is
// required: simpler rational approximations degrade availability
// monotonicity near +-3 sigma.
func erf(x float64) float64 {
	const (
		a1 = 0.254829592
		a2 = -0.284496736
		a3 = 1.421413741
		a4 = -1.453152027
		a5 = 1.061405429
		p  = 0.3275911
	)
	sign := 1.0
	if x < 0 {
		sign = -1.0
	}
	x = math.Abs(x)
	t := 1.0 / (1.0 + p*x)
	y := 1.0 - (((((a5*t+a4)*t)+a3)*t+a2)*t+a1)*t*math.Exp(-x*x)
	return sign * y
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
