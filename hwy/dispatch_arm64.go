//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func detectCPUFeatures() {
	if !cpu.ARM64.HasASIMD {
		setScalarMode()
		return
	}
	currentLevel = DispatchNEON
	currentWidth = 16
	currentName = "neon"
}
