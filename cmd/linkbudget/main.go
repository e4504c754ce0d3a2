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

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/radioplan/linkbudget/cli"
	"github.com/radioplan/linkbudget/config"
	"github.com/radioplan/linkbudget/logger"
)

type mainArgs struct {
	ConfigPath string
	LogLevel   string
	Echo       bool
}

var args mainArgs

func parseArgs() {
	flag.StringVar(&args.ConfigPath, "config", "", "path to a presets YAML file; built-in presets are used if not given")
	flag.StringVar(&args.LogLevel, "log", "", "override the configured log level: trace, debug, info, warn, error, off")
	flag.BoolVar(&args.Echo, "echo", false, "echo each input line to stdout (useful when piping commands in)")
	flag.Parse()
}

func loadConfig() *config.Config {
	if args.ConfigPath == "" {
		return config.DefaultConfig()
	}
	cfg, err := config.Load(args.ConfigPath)
	if err != nil {
		logger.Fatalf("%+v", err)
	}
	return cfg
}

func main() {
	parseArgs()
	cfg := loadConfig()
	if args.LogLevel != "" {
		cfg.LogLevel = args.LogLevel
	}

	runner := cli.NewRunner(cfg)
	instance := cli.New()

	options := cli.DefaultOptions()
	options.EchoInput = args.Echo

	err := instance.Run(runner, options)
	if err != nil && !errors.Is(err, cli.ErrExit) {
		_, _ = fmt.Fprintf(os.Stderr, "linkbudget: %v\n", err)
		os.Exit(1)
	}
}
