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

// Package units holds the small set of unit conversions the propagation
// engine needs: power, and the thermal noise floor.
package units

import "math"

// ReceiverNoiseFigureDb is the assumed receiver noise figure added on top
// of the thermal noise floor.
const ReceiverNoiseFigureDb = 6.0

// WattToDbm converts watts to dBm. Defined for w > 0; callers that need a
// sentinel for non-positive power should guard before calling.
func WattToDbm(w float64) float64 {
	return 10 * math.Log10(w*1000)
}

// DbmToWatt converts dBm back to watts.
func DbmToWatt(dbm float64) float64 {
	return math.Pow(10, dbm/10) / 1000
}

// ThermalNoiseDbm returns the thermal noise floor in dBm for a receiver
// with the given bandwidth (kHz) and the standard receiver noise figure.
// Bandwidth is clamped to >= 1 kHz before taking the log.
func ThermalNoiseDbm(bwKHz float64) float64 {
	bw := math.Max(bwKHz, 1)
	return -174 + 10*math.Log10(bw*1000) + ReceiverNoiseFigureDb
}
