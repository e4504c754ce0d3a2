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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/radioplan/linkbudget/types"
)

func TestSelectModelObstaclePrefersDiffraction(t *testing.T) {
	m := SelectModel(5, 100, types.GroundOpenLand, true, nil)
	assert.Equal(t, types.ModelITUP526, m)
}

func TestSelectModelBelowThirtyMHzIsFspl(t *testing.T) {
	m := SelectModel(5, 20, types.GroundUrban, false, nil)
	assert.Equal(t, types.ModelFSPL, m)
}

func TestSelectModelUrbanDistanceIsOkumuraHata(t *testing.T) {
	m := SelectModel(2, 900, types.GroundUrban, false, nil)
	assert.Equal(t, types.ModelOkumuraHata, m)
}

func TestSelectModelShortUrbanFallsToP1546(t *testing.T) {
	m := SelectModel(0.5, 900, types.GroundUrban, false, nil)
	assert.Equal(t, types.ModelITUP1546, m)
}

func TestSelectModelHighFrequencyOpenIsFspl(t *testing.T) {
	m := SelectModel(5, 4000, types.GroundOpenLand, false, nil)
	assert.Equal(t, types.ModelFSPL, m)
}

func TestSelectModelForcedOverridesAutomatic(t *testing.T) {
	forced := types.ModelITUP1546
	m := SelectModel(2, 900, types.GroundUrban, false, &forced)
	assert.Equal(t, types.ModelITUP1546, m)
}

func TestSelectModelAutoIsNotForced(t *testing.T) {
	auto := types.ModelAuto
	m := SelectModel(2, 900, types.GroundUrban, false, &auto)
	assert.Equal(t, types.ModelOkumuraHata, m)
}
