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

import "github.com/radioplan/linkbudget/types"

// SelectModel picks the concrete propagation model to use for a path, in
// priority order (spec.md §4.11):
//
//  1. obstacle present and freqMHz >= 30 -> ITU_P526
//  2. freqMHz < 30                        -> FSPL
//  3. freqMHz <= 1500 and groundType is a built-up category and
//     distKm >= 1                         -> OKUMURA_HATA
//  4. freqMHz <= 3000                     -> ITU_P1546
//  5. otherwise                            -> FSPL
//
// forceModel, when non-nil and not AUTO, overrides the automatic choice
// unconditionally; AUTO is never itself a result.
func SelectModel(distKm, freqMHz float64, groundType types.GroundType, hasObstacle bool, forceModel *types.PropagationModel) types.PropagationModel {
	if forceModel != nil && *forceModel != types.ModelAuto {
		return *forceModel
	}

	if hasObstacle && freqMHz >= 30 {
		return types.ModelITUP526
	}
	if freqMHz < 30 {
		return types.ModelFSPL
	}
	if freqMHz <= 1500 && isBuiltUp(groundType) && distKm >= 1 {
		return types.ModelOkumuraHata
	}
	if freqMHz <= 3000 {
		return types.ModelITUP1546
	}
	return types.ModelFSPL
}

func isBuiltUp(groundType types.GroundType) bool {
	switch groundType {
	case types.GroundSuburban, types.GroundUrban, types.GroundDenseUrban:
		return true
	default:
		return false
	}
}
