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

// RadioEquipment describes one end's radio hardware. Equipment is an
// optional input to the engine; when absent, DefaultRadioEquipment values
// are substituted.
type RadioEquipment struct {
	FreqMinMHz       float64  `yaml:"freq_min_mhz"`
	FreqMaxMHz       float64  `yaml:"freq_max_mhz"`
	MaxPowerW        float64  `yaml:"max_power_w"`
	RxSensitivityDbm DbValue  `yaml:"rx_sensitivity_dbm"`
	AntennaGainDbi   DbValue  `yaml:"antenna_gain_dbi"`
}

// DefaultRadioEquipment returns the substitute used when equipment is not
// supplied for one end of a link.
func DefaultRadioEquipment() RadioEquipment {
	return RadioEquipment{
		FreqMinMHz:       0,
		FreqMaxMHz:       1e6,
		MaxPowerW:        1,
		RxSensitivityDbm: -110,
		AntennaGainDbi:   0,
	}
}

// Valid reports whether the equipment satisfies its input invariants
// (FreqMin <= FreqMax, MaxPower > 0). A violation is a caller bug, not a
// domain sentinel, and should be surfaced as a structured error.
func (e RadioEquipment) Valid() bool {
	return e.FreqMinMHz <= e.FreqMaxMHz && e.MaxPowerW > 0
}

// RadioLink describes the waveform-independent parameters of a radio link
// that the propagation engine consumes. Timing/routing fields that a full
// planning tool attaches to a link are irrelevant here and are not modeled.
type RadioLink struct {
	FrequencyMHz  float64
	BandwidthKHz  float64
	TxPowerW      float64
}
