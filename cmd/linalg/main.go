// Copyright 2025 go-linalg Authors
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

// Command linalg evaluates the linalg primitives on vectors given on the
// command line and reports the kernel dispatch decision.
//
//	linalg dot 1,2,3 4,5,6
//	linalg --dtype float32 norm 3,4,0
//	linalg --no-simd cpuinfo
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lamberthub/go-linalg/hwy"
	"github.com/lamberthub/go-linalg/linalg"
)

type options struct {
	dtype   string
	verbose bool
	noSimd  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "linalg",
		Short:         "Double-precision vector primitives",
		Long:          "Evaluate dot products, cross products and norms in float64 on the dispatched kernel.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			if opts.noSimd {
				if err := os.Setenv(hwy.NoSimdEnvVar, "1"); err != nil {
					return fmt.Errorf("failed to disable simd: %w", err)
				}
				hwy.Reset()
			}
			slog.Debug("dispatch",
				"level", hwy.CurrentLevel(),
				"width", hwy.CurrentWidth(),
				"backend", linalg.Backend())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.dtype, "dtype", "float64", "element type the input is parsed into (float64, float32, int64)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log dispatch and conversion details")
	flags.BoolVar(&opts.noSimd, "no-simd", false, "force the scalar kernel (same as "+hwy.NoSimdEnvVar+"=1)")

	root.AddCommand(
		newDotCmd(opts),
		newCrossCmd(opts),
		newNormCmd(opts),
		newCPUInfoCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
