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

package cli

import (
	"strconv"

	"github.com/alecthomas/participle"
)

// Command is the top-level grammar node: exactly one of the alternatives
// below is populated by a successful parse.
//
// noinspection GoStructTag
type Command struct {
	Compute  *ComputeCmd  `  @@` //nolint
	Preset   *PresetCmd   `| @@` //nolint
	LogLevel *LogLevelCmd `| @@` //nolint
	Help     *HelpCmd     `| @@` //nolint
	Exit     *ExitCmd     `| @@` //nolint
}

// SignedNumber captures an optionally negative integer or float literal
// as a single string, since the default lexer tokenizes the leading "-"
// separately from the digits.
//
// noinspection GoStructTag
type SignedNumber struct {
	Raw string `@("-"? (Float|Int))` //nolint
}

// Float parses the captured literal as a float64.
func (n SignedNumber) Float() float64 {
	v, _ := strconv.ParseFloat(n.Raw, 64)
	return v
}

// noinspection GoStructTag
type GeoPointArg struct {
	Lat SignedNumber `@@` //nolint
	Lng SignedNumber `@@` //nolint
}

// noinspection GoStructTag
type BandwidthFlag struct {
	Val SignedNumber `("bw"|"bandwidth") @@` //nolint
}

// noinspection GoStructTag
type PresetFlag struct {
	Name string `"preset" @Ident` //nolint
}

// noinspection GoStructTag
type GroundFlag struct {
	Val string `"ground" @("sea"|"coast"|"open_land"|"farmland"|"forest"|"suburban"|"urban"|"dense_urban")` //nolint
}

// noinspection GoStructTag
type TerrainFlag struct {
	Val string `"terrain" @("flat"|"hilly"|"mountainous"|"valley")` //nolint
}

// noinspection GoStructTag
type HeightTxFlag struct {
	Val SignedNumber `("htx"|"height_tx") @@` //nolint
}

// noinspection GoStructTag
type HeightRxFlag struct {
	Val SignedNumber `("hrx"|"height_rx") @@` //nolint
}

// noinspection GoStructTag
type RainFlag struct {
	Val SignedNumber `"rain" @@` //nolint
}

// noinspection GoStructTag
type CloudFlag struct {
	Val SignedNumber `("lwc"|"cloud") @@` //nolint
}

// noinspection GoStructTag
type ObstacleFlag struct {
	PeakM    SignedNumber `"obstacle" @@` //nolint
	DistFromTxKm SignedNumber `@@`        //nolint
}

// noinspection GoStructTag
type ForceModelFlag struct {
	Val string `("model"|"force") @("FSPL"|"ITU_P526"|"ITU_P1546"|"OKUMURA_HATA"|"ITU_P452"|"AUTO")` //nolint
}

// noinspection GoStructTag
type TxPowerFlag struct {
	Val SignedNumber `("power"|"p") @@` //nolint
}

// ComputeCmd runs compute_link_budget over two endpoints, a frequency, and
// an optional set of flags overriding power, bandwidth, terrain, and model.
//
// noinspection GoStructTag
type ComputeCmd struct {
	Cmd        struct{}        `"compute"` //nolint
	From       GeoPointArg     `@@`        //nolint
	To         GeoPointArg     `@@`        //nolint
	FreqMHz    SignedNumber    `@@`        //nolint
	Power      *TxPowerFlag    `( @@`      //nolint
	Bandwidth  *BandwidthFlag  `| @@`      //nolint
	Preset     *PresetFlag     `| @@`      //nolint
	Ground     *GroundFlag     `| @@`      //nolint
	Terrain    *TerrainFlag    `| @@`      //nolint
	HeightTx   *HeightTxFlag   `| @@`      //nolint
	HeightRx   *HeightRxFlag   `| @@`      //nolint
	Rain       *RainFlag       `| @@`      //nolint
	Cloud      *CloudFlag      `| @@`      //nolint
	Obstacle   *ObstacleFlag   `| @@`      //nolint
	ForceModel *ForceModelFlag `| @@ )*`   //nolint
}

// noinspection GoStructTag
type PresetListCmd struct {
	Dummy struct{} `"list"` //nolint
}

// noinspection GoStructTag
type PresetShowCmd struct {
	Dummy struct{} `"show"` //nolint
	Name  string   `@Ident` //nolint
}

// PresetCmd inspects the named equipment/terrain presets loaded from
// configuration.
//
// noinspection GoStructTag
type PresetCmd struct {
	Cmd  struct{}       `"preset"` //nolint
	List *PresetListCmd `( @@`     //nolint
	Show *PresetShowCmd `| @@ )`   //nolint
}

// noinspection GoStructTag
type LogLevelCmd struct {
	Cmd   struct{} `"log"`                                                            //nolint
	Level string   `[@("trace"|"debug"|"info"|"warn"|"error"|"off")]` //nolint
}

// noinspection GoStructTag
type HelpCmd struct {
	Cmd   struct{} `"help"`       //nolint
	Topic string   `[ (@Ident) ]` //nolint
}

// noinspection GoStructTag
type ExitCmd struct {
	Cmd struct{} `"exit"` //nolint
}

var commandParser = participle.MustBuild(&Command{})

// ParseBytes parses a line of CLI input into cmd.
func ParseBytes(b []byte, cmd *Command) error {
	return commandParser.ParseBytes(b, cmd)
}
