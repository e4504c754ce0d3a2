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

package geodesy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/radioplan/linkbudget/types"
)

func TestDistanceKmCoincidentIsZero(t *testing.T) {
	p := types.GeoPoint{Lat: 59.33, Lng: 18.07}
	assert.Equal(t, 0.0, DistanceKm(p, p))
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := types.GeoPoint{Lat: 59.33, Lng: 18.07}
	b := types.GeoPoint{Lat: 40.71, Lng: -74.01}
	d1 := DistanceKm(a, b)
	d2 := DistanceKm(b, a)
	assert.Less(t, math.Abs(d1-d2), 1e-9)
}

func TestDistanceKmKnownValue(t *testing.T) {
	// Stockholm to a point ~3.5km away (used in the VHF open-field scenario).
	a := types.GeoPoint{Lat: 59.33, Lng: 18.07}
	b := types.GeoPoint{Lat: 59.36, Lng: 18.04}
	d := DistanceKm(a, b)
	assert.InDelta(t, 3.5, d, 0.3)
}

func TestDistanceKmEquatorQuarterCircumference(t *testing.T) {
	a := types.GeoPoint{Lat: 0, Lng: 0}
	b := types.GeoPoint{Lat: 0, Lng: 90}
	d := DistanceKm(a, b)
	expected := math.Pi / 2 * EarthRadiusKm
	assert.InDelta(t, expected, d, 1.0)
}

func TestBearingDegRange(t *testing.T) {
	a := types.GeoPoint{Lat: 59.33, Lng: 18.07}
	b := types.GeoPoint{Lat: 59.36, Lng: 18.04}
	brg := BearingDeg(a, b)
	assert.GreaterOrEqual(t, brg, 0.0)
	assert.Less(t, brg, 360.0)
}

func TestBearingDegNorth(t *testing.T) {
	a := types.GeoPoint{Lat: 0, Lng: 0}
	b := types.GeoPoint{Lat: 1, Lng: 0}
	brg := BearingDeg(a, b)
	assert.InDelta(t, 0.0, brg, 1e-6)
}

func TestBearingDegEast(t *testing.T) {
	a := types.GeoPoint{Lat: 0, Lng: 0}
	b := types.GeoPoint{Lat: 0, Lng: 1}
	brg := BearingDeg(a, b)
	assert.InDelta(t, 90.0, brg, 1e-6)
}
