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

// rainCoeffPoint is one tabulated (frequency, k, alpha) row of ITU-R
// P.838-3 Table 1, horizontal polarization.
type rainCoeffPoint struct {
	freqGHz float64
	k       float64
	alpha   float64
}

// rainCoeffTable is the compile-time, 18-point table of P.838-3 Table 1
// (horizontal polarization) coefficients used to interpolate k(f) and
// alpha(f) for the specific rain attenuation formula γ_R = k·R^alpha.
// Log-linear interpolation in frequency is mandatory for k: plain linear
// interpolation misses by orders of magnitude at low GHz.
var rainCoeffTable = []rainCoeffPoint{
	{1, 0.0000387, 0.912},
	{2, 0.0001540, 0.963},
	{4, 0.0006500, 1.121},
	{6, 0.0017500, 1.308},
	{7, 0.0030100, 1.332},
	{8, 0.0045400, 1.327},
	{10, 0.0101000, 1.276},
	{12, 0.0188000, 1.217},
	{15, 0.0367000, 1.154},
	{20, 0.0751000, 1.099},
	{25, 0.1240000, 1.061},
	{30, 0.1870000, 1.021},
	{35, 0.2630000, 0.979},
	{40, 0.3500000, 0.939},
	{50, 0.5360000, 0.873},
	{70, 0.8510000, 0.793},
	{100, 1.1200000, 0.743},
	{150, 1.3100000, 0.710},
}

// rainCoefficients returns (k, alpha) for freqGHz, interpolating between
// the two bracketing table rows: k log-linearly (linear in log10(f) and
// log10(k)), alpha linearly in log10(f). Frequencies outside the table's
// range are clamped to the nearest endpoint.
func rainCoefficients(freqGHz float64) (k, alpha float64) {
	n := len(rainCoeffTable)
	if freqGHz <= rainCoeffTable[0].freqGHz {
		return rainCoeffTable[0].k, rainCoeffTable[0].alpha
	}
	if freqGHz >= rainCoeffTable[n-1].freqGHz {
		return rainCoeffTable[n-1].k, rainCoeffTable[n-1].alpha
	}

	idx := 0
	for i := 0; i < n-1; i++ {
		if freqGHz >= rainCoeffTable[i].freqGHz && freqGHz <= rainCoeffTable[i+1].freqGHz {
			idx = i
			break
		}
	}
	lo := rainCoeffTable[idx]
	hi := rainCoeffTable[idx+1]

	logF := math.Log10(freqGHz)
	logFLo := math.Log10(lo.freqGHz)
	logFHi := math.Log10(hi.freqGHz)
	frac := (logF - logFLo) / (logFHi - logFLo)

	logKLo := math.Log10(lo.k)
	logKHi := math.Log10(hi.k)
	logK := logKLo + frac*(logKHi-logKLo)
	k = math.Pow(10, logK)

	alpha = lo.alpha + frac*(hi.alpha-lo.alpha)
	return k, alpha
}

// RainAttenuation returns the total rain attenuation (dB) over distKm at
// freqMHz for the given rain rate (mm/h), per ITU-R P.838: γ_R = k·R^α,
// total = γ_R·d·r with path-reduction factor r = 1/(1+0.045·d). Returns
// 0 when rainRateMmH == 0 or freqMHz < 1000.
func RainAttenuation(distKm, freqMHz, rainRateMmH float64) float64 {
	if rainRateMmH <= 0 || freqMHz < 1000 || distKm <= 0 {
		return 0
	}
	freqGHz := freqMHz / 1000
	k, alpha := rainCoefficients(freqGHz)
	gammaR := k * math.Pow(rainRateMmH, alpha)
	r := 1 / (1 + 0.045*distKm)
	return gammaR * distKm * r
}
