package linalg

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

var benchSink float64

func BenchmarkDot(b *testing.B) {
	r := rand.New(rand.NewPCG(1, 1))
	for _, n := range []int{3, 64, 1024} {
		x := randomVector(r, n)
		y := randomVector(r, n)
		b.Run(fmt.Sprintf("f64/n=%d", n), func(b *testing.B) {
			for b.Loop() {
				benchSink = Dot(x, y)
			}
		})
		x32 := make([]float32, n)
		y32 := make([]float32, n)
		for i := range x32 {
			x32[i] = float32(x[i])
			y32[i] = float32(y[i])
		}
		b.Run(fmt.Sprintf("f32/n=%d", n), func(b *testing.B) {
			for b.Loop() {
				benchSink = Dot(x32, y32)
			}
		})
	}
}

func BenchmarkDotKernels(b *testing.B) {
	r := rand.New(rand.NewPCG(2, 2))
	x := randomVector(r, 1024)
	y := randomVector(r, 1024)
	b.Run("scalar", func(b *testing.B) {
		for b.Loop() {
			benchSink = dotScalar(x, y)
		}
	})
	b.Run(Backend(), func(b *testing.B) {
		for b.Loop() {
			benchSink = dotImpl(x, y)
		}
	})
}

func BenchmarkCross(b *testing.B) {
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}
	for b.Loop() {
		benchSink = Cross(x, y)[2]
	}
}

func BenchmarkNorm(b *testing.B) {
	v := []float64{3, 4, 12}
	for b.Loop() {
		benchSink = Norm(v)
	}
}
