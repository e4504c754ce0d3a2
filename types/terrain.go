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

// TerrainType classifies the gross geometry of the path.
type TerrainType string

const (
	TerrainFlat        TerrainType = "FLAT"
	TerrainHilly       TerrainType = "HILLY"
	TerrainMountainous TerrainType = "MOUNTAINOUS"
	TerrainValley      TerrainType = "VALLEY"
)

// GroundType classifies the near-terminal clutter environment.
type GroundType string

const (
	GroundSea         GroundType = "SEA"
	GroundCoast       GroundType = "COAST"
	GroundOpenLand    GroundType = "OPEN_LAND"
	GroundFarmland    GroundType = "FARMLAND"
	GroundForest      GroundType = "FOREST"
	GroundSuburban    GroundType = "SUBURBAN"
	GroundUrban       GroundType = "URBAN"
	GroundDenseUrban  GroundType = "DENSE_URBAN"
)

// ClimateZone is reserved: preserved through the API for future P.1546 or
// P.840 temperature corrections, but consumed by no current model.
type ClimateZone string

const (
	ClimateArctic      ClimateZone = "ARCTIC"
	ClimateTemperate   ClimateZone = "TEMPERATE"
	ClimateSubtropical ClimateZone = "SUBTROPICAL"
	ClimateTropical    ClimateZone = "TROPICAL"
	ClimateArid        ClimateZone = "ARID"
)

// Vegetation is reserved, like ClimateZone: preserved but not consumed.
type Vegetation string

const (
	VegetationNone         Vegetation = "NONE"
	VegetationCrops        Vegetation = "CROPS"
	VegetationSparseTrees  Vegetation = "SPARSE_TREES"
	VegetationForest       Vegetation = "FOREST"
	VegetationJungle       Vegetation = "JUNGLE"
)

// TerrainProfile is the fully-resolved terrain/atmosphere description the
// engine operates on, after TerrainOverrides have been merged over
// DefaultTerrainProfile.
type TerrainProfile struct {
	Type         TerrainType
	GroundType   GroundType
	ClimateZone  ClimateZone
	Vegetation   Vegetation

	AntennaHeightTxM float64
	AntennaHeightRxM float64
	ElevationTxM     float64
	ElevationRxM     float64

	ObstaclePeakElevM       *float64
	ObstacleDistFromTxKm    *float64

	RainRateMmH           float64
	LiquidWaterContentGM3 float64
}

// TerrainOverrides is the explicit optional-per-field record a caller
// supplies; every field is a pointer so that "not specified" is
// distinguishable from "specified as the zero value" (see spec.md §9 on
// why a sentinel-filled struct is the wrong shape for partial input).
type TerrainOverrides struct {
	Type        *TerrainType `yaml:"type,omitempty"`
	GroundType  *GroundType  `yaml:"ground_type,omitempty"`
	ClimateZone *ClimateZone `yaml:"climate_zone,omitempty"`
	Vegetation  *Vegetation  `yaml:"vegetation,omitempty"`

	AntennaHeightTxM *float64 `yaml:"antenna_height_tx_m,omitempty"`
	AntennaHeightRxM *float64 `yaml:"antenna_height_rx_m,omitempty"`
	ElevationTxM     *float64 `yaml:"elevation_tx_m,omitempty"`
	ElevationRxM     *float64 `yaml:"elevation_rx_m,omitempty"`

	ObstaclePeakElevM    *float64 `yaml:"obstacle_peak_elev_m,omitempty"`
	ObstacleDistFromTxKm *float64 `yaml:"obstacle_dist_from_tx_km,omitempty"`

	RainRateMmH           *float64 `yaml:"rain_rate_mm_h,omitempty"`
	LiquidWaterContentGM3 *float64 `yaml:"liquid_water_content_g_m3,omitempty"`
}

// DefaultTerrainProfile is the baseline the engine assumes when no terrain
// is supplied, or as the base that TerrainOverrides are merged over.
func DefaultTerrainProfile() TerrainProfile {
	return TerrainProfile{
		Type:                  TerrainFlat,
		GroundType:            GroundOpenLand,
		ClimateZone:           ClimateTemperate,
		Vegetation:            VegetationNone,
		AntennaHeightTxM:      2,
		AntennaHeightRxM:      2,
		ElevationTxM:          0,
		ElevationRxM:          0,
		RainRateMmH:           0,
		LiquidWaterContentGM3: 0,
	}
}

// MergeTerrainOverrides applies a (possibly nil) set of overrides onto the
// default terrain profile, field by field, and normalizes the obstacle
// pair per the invariant in spec.md §3: an obstacle is only considered
// present when both fields are set and the distance lies strictly inside
// (0, distKm).
func MergeTerrainOverrides(overrides *TerrainOverrides, distKm float64) TerrainProfile {
	p := DefaultTerrainProfile()
	if overrides == nil {
		return p
	}
	if overrides.Type != nil {
		p.Type = *overrides.Type
	}
	if overrides.GroundType != nil {
		p.GroundType = *overrides.GroundType
	}
	if overrides.ClimateZone != nil {
		p.ClimateZone = *overrides.ClimateZone
	}
	if overrides.Vegetation != nil {
		p.Vegetation = *overrides.Vegetation
	}
	if overrides.AntennaHeightTxM != nil {
		p.AntennaHeightTxM = *overrides.AntennaHeightTxM
	}
	if overrides.AntennaHeightRxM != nil {
		p.AntennaHeightRxM = *overrides.AntennaHeightRxM
	}
	if overrides.ElevationTxM != nil {
		p.ElevationTxM = *overrides.ElevationTxM
	}
	if overrides.ElevationRxM != nil {
		p.ElevationRxM = *overrides.ElevationRxM
	}
	if overrides.RainRateMmH != nil {
		p.RainRateMmH = *overrides.RainRateMmH
	}
	if overrides.LiquidWaterContentGM3 != nil {
		p.LiquidWaterContentGM3 = *overrides.LiquidWaterContentGM3
	}

	if overrides.ObstaclePeakElevM != nil && overrides.ObstacleDistFromTxKm != nil {
		d := *overrides.ObstacleDistFromTxKm
		if d > 0 && d < distKm {
			peak := *overrides.ObstaclePeakElevM
			p.ObstaclePeakElevM = &peak
			dist := d
			p.ObstacleDistFromTxKm = &dist
		}
	}
	return p
}

// HasObstacle reports whether a dominant obstacle is present on the path.
func (p TerrainProfile) HasObstacle() bool {
	return p.ObstaclePeakElevM != nil && p.ObstacleDistFromTxKm != nil
}
