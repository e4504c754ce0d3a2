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

// Package cli implements a line-oriented console over the link budget
// engine: it parses commands with a participle grammar and executes them
// against the pure linkbudget/propagation packages.
package cli

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/radioplan/linkbudget/logger"
)

// Handler is implemented by the command runner the console drives.
type Handler interface {
	HandleCommand(cmd string, output io.Writer) error
	GetPrompt() string
}

// Options configures a console Instance.
type Options struct {
	EchoInput bool
	Stdin     *os.File
	Stdout    *os.File
}

// DefaultOptions returns the console defaults: no echo, real stdin/stdout.
func DefaultOptions() *Options {
	return &Options{
		EchoInput: false,
		Stdin:     nil,
		Stdout:    nil,
	}
}

// Instance is a running console session.
type Instance struct {
	Started          chan struct{}
	Options          *Options
	readlineInstance *readline.Instance
	waitClosed       chan struct{}
}

// New creates a not-yet-started console instance.
func New() *Instance {
	return &Instance{
		Started:    make(chan struct{}),
		waitClosed: make(chan struct{}),
	}
}

func (c *Instance) RestorePrompt() {
	if c.readlineInstance != nil {
		c.readlineInstance.Refresh()
	}
}

func resolveOptions(options *Options) *Options {
	if options == nil {
		options = DefaultOptions()
	}
	if options.Stdin == nil {
		options.Stdin = os.Stdin
	}
	if options.Stdout == nil {
		options.Stdout = os.Stdout
	}
	return options
}

// Stop requests the console loop to exit and blocks until it has.
func (c *Instance) Stop() {
	<-c.Started
	_, _ = c.Options.Stdin.WriteString("\003\n")
	_ = c.Options.Stdin.Close()
	logger.Tracef("waiting for console to stop...")
	<-c.waitClosed
	logger.Tracef("console stopped.")
}

// Run drives the read-eval-print loop until EOF, interrupt, or a command
// handler error.
func (c *Instance) Run(handler Handler, options *Options) error {
	defer logger.Debugf("console exit.")
	defer close(c.waitClosed)

	options = resolveOptions(options)
	c.Options = options

	stdin := options.Stdin
	if readline.IsTerminal(int(stdin.Fd())) {
		stdinState, err := readline.GetState(int(stdin.Fd()))
		if err != nil {
			close(c.Started)
			return err
		}
		defer func() { _ = readline.Restore(int(stdin.Fd()), stdinState) }()
	}

	stdout := options.Stdout
	if readline.IsTerminal(int(stdout.Fd())) {
		stdoutState, err := readline.GetState(int(stdout.Fd()))
		if err != nil {
			close(c.Started)
			return err
		}
		defer func() { _ = readline.Restore(int(stdout.Fd()), stdoutState) }()
	}

	rlConfig := &readline.Config{
		Prompt:          handler.GetPrompt(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold: true,
		FuncFilterInputRune: func(r rune) (rune, bool) {
			if r == readline.CharCtrlZ {
				return r, false
			}
			return r, true
		},
	}
	if options.Stdin != nil {
		rlConfig.Stdin = options.Stdin
	}
	if options.Stdout != nil {
		rlConfig.Stdout = options.Stdout
	}

	l, err := readline.NewEx(rlConfig)
	if err != nil {
		close(c.Started)
		return err
	}
	defer func() { _ = l.Close() }()
	c.readlineInstance = l
	close(c.Started)

	for {
		l.SetPrompt(handler.GetPrompt())
		line, err := l.Readline()

		if len(line) > 0 && line[0] == readline.CharInterrupt {
			return nil
		} else if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		if options.EchoInput {
			if _, err := stdout.WriteString(line + "\n"); err != nil {
				_ = stdout.Sync()
				return err
			}
		}

		cmd := strings.TrimSpace(line)
		if len(cmd) == 0 {
			_ = stdout.Sync()
			continue
		}

		if err = handler.HandleCommand(cmd, l.Stdout()); err != nil {
			_ = stdout.Sync()
			return err
		}
		_ = stdout.Sync()
	}
}
