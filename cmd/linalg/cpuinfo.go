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
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lamberthub/go-linalg/hwy"
	"github.com/lamberthub/go-linalg/linalg"
)

func newCPUInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpuinfo",
		Short: "Print detected CPU features and the selected kernel",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printCPUInfo(cmd.OutOrStdout())
		},
	}
}

func printCPUInfo(w io.Writer) {
	upper := cases.Upper(language.English)

	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Dispatch level: %s\n", upper.String(hwy.CurrentLevel().String()))
	fmt.Fprintf(w, "Dispatch width: %d bytes\n", hwy.CurrentWidth())
	fmt.Fprintf(w, "Dot kernel: %s\n", linalg.Backend())
	if hwy.NoSimdEnv() {
		fmt.Fprintf(w, "%s is set\n", hwy.NoSimdEnvVar)
	}
	fmt.Fprintln(w)

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features(w)
	case "amd64":
		printAMD64Features(w)
	}
}

func printARM64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Fprintf(w, "  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Fprintf(w, "  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Fprintf(w, "  HasASIMDDP:  %v (Dot product)\n", cpu.ARM64.HasASIMDDP)
	fmt.Fprintf(w, "  HasASIMDFHM: %v (FP16 FMA)\n", cpu.ARM64.HasASIMDFHM)
	fmt.Fprintf(w, "  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Fprintf(w, "  HasSVE2:     %v (SVE2)\n", cpu.ARM64.HasSVE2)
}

func printAMD64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
	fmt.Fprintf(w, "  HasSSE2:     %v\n", cpu.X86.HasSSE2)
	fmt.Fprintf(w, "  HasSSE41:    %v\n", cpu.X86.HasSSE41)
	fmt.Fprintf(w, "  HasSSE42:    %v\n", cpu.X86.HasSSE42)
	fmt.Fprintf(w, "  HasAVX:      %v\n", cpu.X86.HasAVX)
	fmt.Fprintf(w, "  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Fprintf(w, "  HasFMA:      %v\n", cpu.X86.HasFMA)
	fmt.Fprintf(w, "  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	fmt.Fprintf(w, "  HasAVX512VL: %v\n", cpu.X86.HasAVX512VL)
}
