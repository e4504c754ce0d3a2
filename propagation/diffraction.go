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

// NoObstacleNu is the deep-clear sentinel Fresnel-Kirchhoff parameter used
// when no dominant obstacle is present on the path.
const NoObstacleNu = -2.0

// wavelengthM returns the free-space wavelength in meters for freqMHz.
func wavelengthM(freqMHz float64) float64 {
	return 300.0 / freqMHz
}

// FresnelParameter computes the Fresnel-Kirchhoff parameter ν for a
// single dominant obstacle, per ITU-R P.526: ν = h·√(2(d1+d2)/(λ·d1·d2)),
// with d1, d2 the obstacle-to-endpoint distances in meters, h the
// obstacle height above the direct path in meters, and λ = 300/freqMHz.
// Returns the deep-clear sentinel NoObstacleNu when either distance is
// non-positive (no obstacle).
func FresnelParameter(d1M, d2M, hM, freqMHz float64) float64 {
	if d1M <= 0 || d2M <= 0 || freqMHz <= 0 {
		return NoObstacleNu
	}
	lambda := wavelengthM(freqMHz)
	return hM * math.Sqrt(2*(d1M+d2M)/(lambda*d1M*d2M))
}

// DiffractionLoss evaluates J(ν), the ITU-R P.526-15 piecewise knife-edge
// diffraction loss approximation, in dB.
func DiffractionLoss(nu float64) float64 {
	switch {
	case nu < -1:
		return 0
	case nu < 0:
		return -20 * math.Log10(0.5-0.62*nu)
	case nu < 1:
		return -20 * math.Log10(0.5*math.Exp(-0.95*nu))
	case nu < 2.4:
		inner := math.Max(0, 0.1184-math.Pow(0.38-0.1*nu, 2))
		return -20 * math.Log10(0.4-math.Sqrt(inner))
	default:
		return -20 * math.Log10(0.225/nu)
	}
}

// KnifeEdgeDiffraction composes FresnelParameter and DiffractionLoss: the
// full obstacle-geometry-to-loss pipeline for a single dominant obstacle.
func KnifeEdgeDiffraction(d1M, d2M, hM, freqMHz float64) float64 {
	return DiffractionLoss(FresnelParameter(d1M, d2M, hM, freqMHz))
}

// FresnelClearance returns the fraction (in [0,1]) of the first Fresnel
// zone that is unobstructed at the obstacle's position. With no obstacle
// (either distance non-positive) the path is fully clear: 1.0.
func FresnelClearance(d1M, d2M, losHeightAtObstacleM, obstaclePeakM, freqMHz float64) float64 {
	if d1M <= 0 || d2M <= 0 || freqMHz <= 0 {
		return 1.0
	}
	lambda := wavelengthM(freqMHz)
	r1 := math.Sqrt(lambda * d1M * d2M / (d1M + d2M))
	if r1 <= 0 {
		return 1.0
	}
	frac := (losHeightAtObstacleM-obstaclePeakM)/r1 + 1
	return math.Min(1, math.Max(0, frac))
}
