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

// cloudSpecificAttenuationCoefficient returns K_l(f), the specific
// attenuation coefficient for liquid water cloud/fog droplets
// (dB/km per g/m^3), per the simplified ITU-R P.840 power-law fit
// K_l(f) = 0.0671 * (f_ghz/10)^1.74.
func cloudSpecificAttenuationCoefficient(freqGHz float64) float64 {
	return 0.0671 * math.Pow(freqGHz/10, 1.74)
}

// CloudFogAttenuation returns the total cloud/fog attenuation (dB) over
// distKm at freqMHz for the given liquid water content (g/m^3), per
// ITU-R P.840: total = K_l(f)*lwc*d. Returns 0 when lwcGM3 == 0 or
// freqMHz < 10000 (cloud/fog loss is negligible below ~10GHz).
func CloudFogAttenuation(distKm, freqMHz, lwcGM3 float64) float64 {
	if lwcGM3 <= 0 || freqMHz < 10000 || distKm <= 0 {
		return 0
	}
	freqGHz := freqMHz / 1000
	kl := cloudSpecificAttenuationCoefficient(freqGHz)
	return kl * lwcGM3 * distKm
}
