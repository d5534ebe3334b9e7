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

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/lamberthub/go-linalg/linalg"
)

// evaluator runs the primitives with the input converted to one element type.
type evaluator struct {
	integral bool
	dot      func(a, b []float64) float64
	cross    func(a, b []float64) []float64
	cross2D  func(a, b []float64) float64
	norm     func(v []float64) float64
}

func evaluatorFor[T linalg.Real](integral bool) evaluator {
	conv := func(v []float64) []T {
		return lo.Map(v, func(x float64, _ int) T {
			return T(x)
		})
	}
	return evaluator{
		integral: integral,
		dot: func(a, b []float64) float64 {
			return linalg.Dot(conv(a), conv(b))
		},
		cross: func(a, b []float64) []float64 {
			return linalg.Cross(conv(a), conv(b))
		},
		cross2D: func(a, b []float64) float64 {
			return linalg.Cross2D(conv(a), conv(b))
		},
		norm: func(v []float64) float64 {
			return linalg.Norm(conv(v))
		},
	}
}

var evaluators = map[string]evaluator{
	"float64": evaluatorFor[float64](false),
	"float32": evaluatorFor[float32](false),
	"int64":   evaluatorFor[int64](true),
}

func (o *options) evaluator() (evaluator, error) {
	e, ok := evaluators[o.dtype]
	if !ok {
		return evaluator{}, fmt.Errorf("unsupported dtype %q", o.dtype)
	}
	return e, nil
}

// parseVectors parses comma-separated components, e.g. "1,2.5,-3".
func parseVectors(args []string, integral bool) ([][]float64, error) {
	vectors := make([][]float64, 0, len(args))
	for i, arg := range args {
		fields := strings.Split(arg, ",")
		v := make([]float64, 0, len(fields))
		for _, field := range fields {
			field = strings.TrimSpace(field)
			if field == "" {
				return nil, fmt.Errorf("vector %d: empty component in %q", i+1, arg)
			}
			x, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("vector %d: %w", i+1, err)
			}
			if integral && math.Trunc(x) != x {
				return nil, fmt.Errorf("vector %d: component %s is not an integer", i+1, field)
			}
			if integral && (x < math.MinInt64 || x >= 1<<63) {
				return nil, fmt.Errorf("vector %d: component %s is out of int64 range", i+1, field)
			}
			v = append(v, x)
		}
		vectors = append(vectors, v)
	}
	return vectors, nil
}

// recoverPrimitive converts a precondition panic from linalg into an error.
func recoverPrimitive(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(error); ok && (errors.Is(e, linalg.ErrDimensionMismatch) || errors.Is(e, linalg.ErrCrossDimension)) {
		*err = e
		return
	}
	panic(r)
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func formatVector(v []float64) string {
	return "[" + strings.Join(lo.Map(v, func(x float64, _ int) string {
		return formatFloat(x)
	}), " ") + "]"
}

// vectorCommand wires the shared parsing and panic recovery around run.
func vectorCommand(opts *options, use, short string, nargs int, run func(cmd *cobra.Command, e evaluator, vs [][]float64) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			e, err := opts.evaluator()
			if err != nil {
				return err
			}
			vs, err := parseVectors(args, e.integral)
			if err != nil {
				return err
			}
			slog.Debug("input",
				"dtype", opts.dtype,
				"dims", lo.Map(vs, func(v []float64, _ int) int { return len(v) }))

			defer recoverPrimitive(&err)
			return run(cmd, e, vs)
		},
	}
}

func newDotCmd(opts *options) *cobra.Command {
	return vectorCommand(opts, "dot <v1> <v2>", "Dot product of two vectors", 2,
		func(cmd *cobra.Command, e evaluator, vs [][]float64) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), formatFloat(e.dot(vs[0], vs[1])))
			return err
		})
}

func newCrossCmd(opts *options) *cobra.Command {
	return vectorCommand(opts, "cross <v1> <v2>", "Cross product of two 3-D vectors (scalar z component for 2-D)", 2,
		func(cmd *cobra.Command, e evaluator, vs [][]float64) error {
			if len(vs[0]) == 2 && len(vs[1]) == 2 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), formatFloat(e.cross2D(vs[0], vs[1])))
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), formatVector(e.cross(vs[0], vs[1])))
			return err
		})
}

func newNormCmd(opts *options) *cobra.Command {
	return vectorCommand(opts, "norm <v>", "Euclidean norm of a vector", 1,
		func(cmd *cobra.Command, e evaluator, vs [][]float64) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), formatFloat(e.norm(vs[0])))
			return err
		})
}
