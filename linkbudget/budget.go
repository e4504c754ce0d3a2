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

// Package linkbudget assembles the per-mechanism losses of the
// propagation package, plus antenna gains and transmit power, into a
// complete LinkBudget: the single entry point the rest of the system
// calls. Like propagation, it is pure.
package linkbudget

import (
	"math"

	"github.com/pkg/errors"

	"github.com/radioplan/linkbudget/geodesy"
	"github.com/radioplan/linkbudget/propagation"
	"github.com/radioplan/linkbudget/types"
	"github.com/radioplan/linkbudget/units"
)

// ComputeLinkBudget is the engine's principal entry point: given two
// endpoints, a link description, optional equipment at each end, an
// optional terrain/atmosphere profile, and an optional forced model, it
// returns the fully assembled LinkBudget.
//
// equipFrom, equipTo, terrainOverrides, and forceModel may all be nil.
func ComputeLinkBudget(
	from, to types.GeoPoint,
	link types.RadioLink,
	equipFrom, equipTo *types.RadioEquipment,
	terrainOverrides *types.TerrainOverrides,
	forceModel *types.PropagationModel,
) (types.LinkBudget, error) {
	if err := validateInputs(link, equipFrom, equipTo); err != nil {
		return types.LinkBudget{}, err
	}

	distKm := geodesy.DistanceKm(from, to)
	terrain := types.MergeTerrainOverrides(terrainOverrides, distKm)
	if err := validateTerrain(terrain); err != nil {
		return types.LinkBudget{}, err
	}

	txGain, rxGain := resolveGains(equipFrom, equipTo)
	rxSens := resolveRxSensitivity(equipTo)
	txPowerDbm := units.WattToDbm(math.Max(link.TxPowerW, 1e-12))

	model := propagation.SelectModel(distKm, link.FrequencyMHz, terrain.GroundType, terrain.HasObstacle(), forceModel)

	baseLoss := computeBaseLoss(model, distKm, link.FrequencyMHz, terrain)

	diffractionLoss := 0.0
	fresnelClearance := 1.0
	if model == types.ModelITUP526 {
		d1M, d2M, hM := obstacleGeometryM(distKm, terrain)
		diffractionLoss = propagation.KnifeEdgeDiffraction(d1M, d2M, hM, link.FrequencyMHz)
		losHeight, obstaclePeak := losAndObstacleHeightM(distKm, terrain)
		fresnelClearance = propagation.FresnelClearance(d1M, d2M, losHeight, obstaclePeak, link.FrequencyMHz)
	}

	gasLoss := propagation.GasAbsorption(distKm, link.FrequencyMHz)
	rainLoss := propagation.RainAttenuation(distKm, link.FrequencyMHz, terrain.RainRateMmH)
	cloudFogLoss := propagation.CloudFogAttenuation(distKm, link.FrequencyMHz, terrain.LiquidWaterContentGM3)

	clutterLoss := 0.0
	if model != types.ModelOkumuraHata {
		clutterLoss = propagation.ClutterLoss(link.FrequencyMHz, terrain.GroundType)
	}

	totalLoss := baseLoss + diffractionLoss + gasLoss + rainLoss + cloudFogLoss + clutterLoss
	receivedPowerDbm := txPowerDbm + txGain - totalLoss + rxGain
	linkMarginDb := receivedPowerDbm - rxSens

	quality := ConnectionQuality(linkMarginDb, fresnelClearance, rainLoss, cloudFogLoss, txGain, rxGain, receivedPowerDbm, link.BandwidthKHz)

	return types.LinkBudget{
		TxPowerDbm:               txPowerDbm,
		TxGainDbi:                txGain,
		RxGainDbi:                rxGain,
		BaseLossDb:               baseLoss,
		DiffractionLossDb:        diffractionLoss,
		GasAbsorptionDb:          gasLoss,
		RainAttenuationDb:        rainLoss,
		CloudFogAttenDb:          cloudFogLoss,
		ClutterLossDb:            clutterLoss,
		ReceivedPowerDbm:         receivedPowerDbm,
		RxSensitivityDbm:         rxSens,
		LinkMarginDb:             linkMarginDb,
		DistanceKm:               distKm,
		FresnelClearanceFraction: fresnelClearance,
		Feasible:                 linkMarginDb > 0,
		Model:                    model,
		ConnectionQuality:        quality,
	}, nil
}

// validateInputs rejects the contract-violation category of link and
// equipment inputs per spec.md §7.3: inverted frequency ranges and
// non-finite numbers. Terrain (including a negative rain rate) is checked
// separately by validateTerrain. Everything else is handled by domain
// sentinels inside the individual loss functions.
func validateInputs(link types.RadioLink, equipFrom, equipTo *types.RadioEquipment) error {
	if !isFinite(link.FrequencyMHz) || !isFinite(link.BandwidthKHz) || !isFinite(link.TxPowerW) {
		return errors.WithStack(types.NewContractViolation("link", "frequency, bandwidth, and tx power must be finite"))
	}
	for _, e := range []*types.RadioEquipment{equipFrom, equipTo} {
		if e == nil {
			continue
		}
		if !e.Valid() {
			return errors.WithStack(types.NewContractViolation("equipment", "freq_min_mhz must be <= freq_max_mhz and max_power_w must be > 0"))
		}
		if !isFinite(e.FreqMinMHz) || !isFinite(e.FreqMaxMHz) || !isFinite(e.MaxPowerW) || !isFinite(e.RxSensitivityDbm) || !isFinite(e.AntennaGainDbi) {
			return errors.WithStack(types.NewContractViolation("equipment", "all equipment fields must be finite"))
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// validateTerrain rejects the merged terrain's contract-violation cases
// per spec.md §7.3: a negative rain rate, and any non-finite terrain
// numeric. RainAttenuation itself treats rainRateMmH <= 0 as a domain
// sentinel (0 dB) for callers that use it directly; ComputeLinkBudget
// rejects a negative rate here, before it ever reaches RainAttenuation,
// so a caller of the engine's entry point gets a structured failure
// rather than a silently-zeroed rain term.
func validateTerrain(terrain types.TerrainProfile) error {
	if terrain.RainRateMmH < 0 {
		return errors.WithStack(types.NewContractViolation("terrain.rain_rate_mm_h", "must be >= 0"))
	}
	fields := []float64{
		terrain.AntennaHeightTxM, terrain.AntennaHeightRxM,
		terrain.ElevationTxM, terrain.ElevationRxM,
		terrain.RainRateMmH, terrain.LiquidWaterContentGM3,
	}
	if terrain.ObstaclePeakElevM != nil {
		fields = append(fields, *terrain.ObstaclePeakElevM)
	}
	if terrain.ObstacleDistFromTxKm != nil {
		fields = append(fields, *terrain.ObstacleDistFromTxKm)
	}
	for _, v := range fields {
		if !isFinite(v) {
			return errors.WithStack(types.NewContractViolation("terrain", "all terrain fields must be finite"))
		}
	}
	return nil
}

func resolveGains(equipFrom, equipTo *types.RadioEquipment) (txGain, rxGain float64) {
	txGain = 0
	rxGain = 0
	if equipFrom != nil {
		txGain = equipFrom.AntennaGainDbi
	}
	if equipTo != nil {
		rxGain = equipTo.AntennaGainDbi
	}
	return txGain, rxGain
}

func resolveRxSensitivity(equipTo *types.RadioEquipment) float64 {
	if equipTo != nil {
		return equipTo.RxSensitivityDbm
	}
	return types.DefaultRadioEquipment().RxSensitivityDbm
}

func computeBaseLoss(model types.PropagationModel, distKm, freqMHz float64, terrain types.TerrainProfile) float64 {
	switch model {
	case types.ModelFSPL:
		return propagation.FsplDb(distKm, freqMHz)
	case types.ModelITUP526:
		return propagation.FsplDb(distKm, freqMHz)
	case types.ModelOkumuraHata:
		return propagation.OkumuraHataLoss(distKm, freqMHz, terrain.AntennaHeightTxM, terrain.AntennaHeightRxM, terrain.GroundType)
	case types.ModelITUP1546:
		return propagation.ItuP1546Loss(distKm, freqMHz, terrain.AntennaHeightTxM, terrain.Type)
	case types.ModelITUP452:
		// Reserved: no implementation exists yet. FSPL is substituted as a
		// conservative diagnostic base loss rather than rejecting the call.
		return propagation.FsplDb(distKm, freqMHz)
	default:
		return propagation.FsplDb(distKm, freqMHz)
	}
}

// losAndObstacleHeightM returns the line-of-sight height above sea level
// at the obstacle's along-path position, and the obstacle's own peak
// elevation, both in meters. The LOS height is linearly interpolated
// between (elev_tx + h_tx) and (elev_rx + h_rx) by along-path fraction.
func losAndObstacleHeightM(distKm float64, terrain types.TerrainProfile) (losHeightM, obstaclePeakM float64) {
	if !terrain.HasObstacle() {
		return 0, 0
	}
	d1Km := *terrain.ObstacleDistFromTxKm
	frac := d1Km / distKm
	txTop := terrain.ElevationTxM + terrain.AntennaHeightTxM
	rxTop := terrain.ElevationRxM + terrain.AntennaHeightRxM
	losHeightM = txTop + frac*(rxTop-txTop)
	obstaclePeakM = *terrain.ObstaclePeakElevM
	return losHeightM, obstaclePeakM
}

// obstacleGeometryM converts the path's obstacle (if any) into the
// (d1, d2, h) triple, all in meters, that propagation.KnifeEdgeDiffraction
// expects: obstacle-to-tx distance, obstacle-to-rx distance, and obstacle
// height above the direct sight line.
func obstacleGeometryM(distKm float64, terrain types.TerrainProfile) (d1M, d2M, hM float64) {
	if !terrain.HasObstacle() {
		return 0, 0, 0
	}
	d1Km := *terrain.ObstacleDistFromTxKm
	d2Km := distKm - d1Km
	losHeightM, obstaclePeakM := losAndObstacleHeightM(distKm, terrain)
	return d1Km * 1000, d2Km * 1000, obstaclePeakM - losHeightM
}
