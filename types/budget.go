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

package types

// PropagationModel discriminates which base-loss path the budget
// assembler runs.
type PropagationModel string

const (
	ModelFSPL        PropagationModel = "FSPL"
	ModelITUP452     PropagationModel = "ITU_P452" // reserved, see DESIGN.md
	ModelITUP1546    PropagationModel = "ITU_P1546"
	ModelITUP526     PropagationModel = "ITU_P526"
	ModelOkumuraHata PropagationModel = "OKUMURA_HATA"
	ModelAuto        PropagationModel = "AUTO" // input-only, never a result
)

// ConnectionQuality is the composite score derived from a LinkBudget.
type ConnectionQuality struct {
	Score        int // 0-100
	Label        string
	Color        string // hex
	Availability float64 // [0,1]
	SnrDb        DbValue
}

// LinkBudget is the full result of ComputeLinkBudget: every loss
// mechanism broken out as its own field, plus the derived feasibility and
// quality verdicts.
type LinkBudget struct {
	TxPowerDbm DbValue
	TxGainDbi  DbValue
	RxGainDbi  DbValue

	BaseLossDb         DbValue
	DiffractionLossDb  DbValue
	GasAbsorptionDb    DbValue
	RainAttenuationDb  DbValue
	CloudFogAttenDb    DbValue
	ClutterLossDb      DbValue

	ReceivedPowerDbm DbValue
	RxSensitivityDbm DbValue
	LinkMarginDb     DbValue

	DistanceKm               float64
	FresnelClearanceFraction float64
	Feasible                 bool
	Model                    PropagationModel
	ConnectionQuality        ConnectionQuality
}
