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

// Package config loads the named equipment/terrain presets that the CLI
// offers as shortcuts, from a YAML document.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/radioplan/linkbudget/types"
)

const (
	DefaultLogLevel = "info"
)

// Preset bundles a named, reusable equipment and terrain pairing that CLI
// callers can select by name instead of specifying every field.
type Preset struct {
	Name      string                `yaml:"name"`
	Equipment *types.RadioEquipment `yaml:"equipment,omitempty"`
	Terrain   *types.TerrainOverrides `yaml:"terrain,omitempty"`
}

// Config is the top-level document loaded from a presets YAML file.
type Config struct {
	LogLevel string   `yaml:"log_level"`
	Presets  []Preset `yaml:"presets"`
}

// DefaultConfig returns the baseline configuration used when no presets
// file is supplied: the built-in radio and terrain defaults under a
// "default" name, plus a short list of common environments.
func DefaultConfig() *Config {
	suburban := types.GroundSuburban
	urban := types.GroundUrban
	denseUrban := types.GroundDenseUrban
	openLand := types.GroundOpenLand

	return &Config{
		LogLevel: DefaultLogLevel,
		Presets: []Preset{
			{Name: "default"},
			{Name: "rural", Terrain: &types.TerrainOverrides{GroundType: &openLand}},
			{Name: "suburban", Terrain: &types.TerrainOverrides{GroundType: &suburban}},
			{Name: "urban", Terrain: &types.TerrainOverrides{GroundType: &urban}},
			{Name: "dense_urban", Terrain: &types.TerrainOverrides{GroundType: &denseUrban}},
		},
	}
}

// Load reads a presets document from path, merging it over DefaultConfig:
// presets with the same name as a built-in preset replace it; new names
// are appended.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}

	cfg := DefaultConfig()
	if loaded.LogLevel != "" {
		cfg.LogLevel = loaded.LogLevel
	}
	for _, p := range loaded.Presets {
		cfg.upsertPreset(p)
	}
	return cfg, nil
}

func (c *Config) upsertPreset(p Preset) {
	for i := range c.Presets {
		if c.Presets[i].Name == p.Name {
			c.Presets[i] = p
			return
		}
	}
	c.Presets = append(c.Presets, p)
}

// FindPreset returns the preset with the given name, or false if none
// exists.
func (c *Config) FindPreset(name string) (Preset, bool) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
