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
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/radioplan/linkbudget/config"
	"github.com/radioplan/linkbudget/linkbudget"
	"github.com/radioplan/linkbudget/logger"
	"github.com/radioplan/linkbudget/types"
)

const Prompt = "linkbudget> "

// DefaultBandwidthKHz and DefaultPowerW are used by the compute command
// when the caller does not supply the corresponding flag.
const (
	DefaultBandwidthKHz = 25.0
	DefaultPowerW       = 1.0
)

// ErrExit is returned by HandleCommand when the exit command runs; Run
// treats it the same as any other error (it ends the loop), but callers
// of Run can distinguish a requested exit from a real failure.
var ErrExit = errors.New("exit")

// CommandContext carries the per-invocation output sink and accumulated
// error for a single parsed Command.
type CommandContext struct {
	*Command
	output io.Writer
	err    error
}

func (cc *CommandContext) outputStr(msg string) {
	_, _ = fmt.Fprint(cc.output, msg)
}

func (cc *CommandContext) outputf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(cc.output, format, args...)
}

func (cc *CommandContext) errorf(format string, args ...interface{}) {
	cc.error(errors.Errorf(format, args...))
}

func (cc *CommandContext) error(err error) {
	if err != nil {
		if cc.err != nil {
			cc.outputf("Error: %s\n", cc.err)
		}
		cc.err = err
	}
}

func (cc *CommandContext) Err() error {
	return cc.err
}

func (cc *CommandContext) outputItemsAsYaml(items interface{}) {
	var itemsYaml yaml.Node
	err := itemsYaml.Encode(items)
	logger.PanicIfError(err)

	for _, content := range itemsYaml.Content {
		content.Style = yaml.FlowStyle
	}

	data, err := yaml.Marshal(&itemsYaml)
	logger.PanicIfError(err)

	_, err = cc.output.Write(data)
	logger.PanicIfError(err)
}

// Runner dispatches parsed commands against the link budget engine. It
// implements the Handler interface so it can drive an Instance.
type Runner struct {
	cfg  *config.Config
	help Help
}

// NewRunner builds a Runner over cfg, defaulting to config.DefaultConfig
// when cfg is nil, and applies cfg's log level immediately.
func NewRunner(cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger.SetLevel(logger.ParseLevelString(cfg.LogLevel))
	return &Runner{cfg: cfg, help: newHelp()}
}

func (rt *Runner) GetPrompt() string {
	return Prompt
}

// HandleCommand parses and executes one line of input.
func (rt *Runner) HandleCommand(cmdline string, output io.Writer) error {
	cmd := Command{}
	if err := ParseBytes([]byte(cmdline), &cmd); err != nil {
		_, werr := fmt.Fprintf(output, "Error: %v\n", err)
		return werr
	}
	return rt.execute(&cmd, output)
}

func (rt *Runner) execute(cmd *Command, output io.Writer) error {
	cc := &CommandContext{Command: cmd, output: output}

	defer func() {
		rerr := recover()
		if rerr != nil {
			if err, ok := rerr.(error); ok {
				cc.err = errors.Wrapf(err, "panic: %v", err)
			} else {
				cc.err = errors.Errorf("panic: %v", rerr)
			}
		}
	}()

	switch {
	case cmd.Compute != nil:
		rt.executeCompute(cc, cmd.Compute)
	case cmd.Preset != nil:
		rt.executePreset(cc, cmd.Preset)
	case cmd.LogLevel != nil:
		rt.executeLogLevel(cc, cmd.LogLevel)
	case cmd.Help != nil:
		rt.executeHelp(cc, cmd.Help)
	case cmd.Exit != nil:
		if cc.Err() == nil {
			cc.outputf("Done\n")
		}
		return ErrExit
	}

	if cc.Err() != nil {
		cc.outputf("Error: %v\n", cc.Err())
	} else {
		cc.outputf("Done\n")
	}
	return nil
}

func (rt *Runner) executeCompute(cc *CommandContext, cmd *ComputeCmd) {
	from := types.GeoPoint{Lat: cmd.From.Lat.Float(), Lng: cmd.From.Lng.Float()}
	to := types.GeoPoint{Lat: cmd.To.Lat.Float(), Lng: cmd.To.Lng.Float()}

	link := types.RadioLink{
		FrequencyMHz: cmd.FreqMHz.Float(),
		BandwidthKHz: DefaultBandwidthKHz,
		TxPowerW:     DefaultPowerW,
	}
	if cmd.Bandwidth != nil {
		link.BandwidthKHz = cmd.Bandwidth.Val.Float()
	}
	if cmd.Power != nil {
		link.TxPowerW = cmd.Power.Val.Float()
	}

	var overrides types.TerrainOverrides
	var equip *types.RadioEquipment

	if cmd.Preset != nil {
		preset, ok := rt.cfg.FindPreset(cmd.Preset.Name)
		if !ok {
			cc.errorf("no such preset: %s", cmd.Preset.Name)
			return
		}
		if preset.Terrain != nil {
			overrides = *preset.Terrain
		}
		equip = preset.Equipment
	}

	if cmd.Ground != nil {
		g := types.GroundType(strings.ToUpper(cmd.Ground.Val))
		overrides.GroundType = &g
	}
	if cmd.Terrain != nil {
		t := types.TerrainType(strings.ToUpper(cmd.Terrain.Val))
		overrides.Type = &t
	}
	if cmd.HeightTx != nil {
		v := cmd.HeightTx.Val.Float()
		overrides.AntennaHeightTxM = &v
	}
	if cmd.HeightRx != nil {
		v := cmd.HeightRx.Val.Float()
		overrides.AntennaHeightRxM = &v
	}
	if cmd.Rain != nil {
		v := cmd.Rain.Val.Float()
		overrides.RainRateMmH = &v
	}
	if cmd.Cloud != nil {
		v := cmd.Cloud.Val.Float()
		overrides.LiquidWaterContentGM3 = &v
	}
	if cmd.Obstacle != nil {
		peak := cmd.Obstacle.PeakM.Float()
		dist := cmd.Obstacle.DistFromTxKm.Float()
		overrides.ObstaclePeakElevM = &peak
		overrides.ObstacleDistFromTxKm = &dist
	}

	var forceModel *types.PropagationModel
	if cmd.ForceModel != nil {
		m := types.PropagationModel(cmd.ForceModel.Val)
		forceModel = &m
	}

	budget, err := linkbudget.ComputeLinkBudget(from, to, link, equip, equip, &overrides, forceModel)
	if err != nil {
		cc.error(err)
		return
	}
	cc.outputItemsAsYaml(&budget)
}

func (rt *Runner) executePreset(cc *CommandContext, cmd *PresetCmd) {
	switch {
	case cmd.List != nil:
		for _, p := range rt.cfg.Presets {
			cc.outputf("%s\n", p.Name)
		}
	case cmd.Show != nil:
		preset, ok := rt.cfg.FindPreset(cmd.Show.Name)
		if !ok {
			cc.errorf("no such preset: %s", cmd.Show.Name)
			return
		}
		cc.outputItemsAsYaml(&preset)
	}
}

func (rt *Runner) executeLogLevel(cc *CommandContext, cmd *LogLevelCmd) {
	if cmd.Level == "" {
		cc.outputf("%v\n", logger.GetLevelString(logger.GetLevel()))
		return
	}
	logger.SetLevel(logger.ParseLevelString(cmd.Level))
}

func (rt *Runner) executeHelp(cc *CommandContext, cmd *HelpCmd) {
	if cmd.Topic == "" {
		cc.outputStr(rt.help.outputGeneralHelp())
	} else {
		cc.outputStr(rt.help.outputCommandHelp(cmd.Topic))
	}
}
