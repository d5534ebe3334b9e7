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

package linalg_test

import (
	"fmt"

	"github.com/lamberthub/go-linalg/linalg"
)

func ExampleDot() {
	fmt.Println(linalg.Dot([]float64{1, 2, 3}, []float64{4, 5, 6}))
	fmt.Println(linalg.Dot([]float32{16777216, 1}, []float32{1, 1}))
	// Output:
	// 32
	// 1.6777217e+07
}

func ExampleCross() {
	fmt.Println(linalg.Cross([]int{1, 0, 0}, []int{0, 1, 0}))
	// Output: [0 0 1]
}

func ExampleCross2D() {
	fmt.Println(linalg.Cross2D([]float64{1, 2}, []float64{3, 4}))
	// Output: -2
}

func ExampleNorm() {
	fmt.Println(linalg.Norm([]float64{3, 4, 0}))
	// Output: 5
}
