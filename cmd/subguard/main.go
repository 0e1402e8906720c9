// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Command subguard checks Angular TypeScript sources for RxJS subscriptions without teardown.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"fillmore-labs.com/subguard/internal/config"
)

// Exit codes.
const (
	exitOK       = 0
	exitFindings = 1
	exitError    = 2
)

// errFindings signals a successful run with diagnostics.
var errFindings = errors.New("unguarded subscriptions found")

// app holds the state shared by all commands of one invocation.
type app struct {
	stdout, stderr io.Writer

	configPath string
	verbose    bool
	colorMode  string

	logger *slog.Logger
	file   config.File
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

// execute runs the command line args and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	switch err := root.ExecuteContext(ctx); {
	case err == nil:
		return exitOK

	case errors.Is(err, errFindings):
		return exitFindings

	default:
		_, _ = fmt.Fprintf(stderr, "subguard: %v\n", err)

		return exitError
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "subguard",
		Short: "Detect RxJS subscriptions without teardown in Angular classes",
		Long: `subguard reports subscribe calls in Angular components, directives, pipes and
injectable services that neither implement ngOnDestroy nor pipe any subscription
through takeUntil or takeUntilDestroyed.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "configuration file (default .subguard.toml or .subguard.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log progress information")
	flags.StringVar(&a.colorMode, "color", colorAuto, "colorize output (auto|always|never)")

	root.AddCommand(a.checkCommand(), a.versionCommand())

	return root
}

// setup configures logging and loads the configuration file.
func (a *app) setup(*cobra.Command, []string) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelInfo
	}

	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	path := a.configPath
	if path == "" {
		var ok bool
		if path, ok = config.FindFile("."); !ok {
			return nil
		}
	}

	f, err := config.Load(path)
	if err != nil {
		return err
	}

	a.logger.Info("Loaded configuration", slog.String("file", path))
	a.file = f

	return nil
}
