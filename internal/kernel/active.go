package kernel

import (
	"sync"

	"github.com/cwbudde/algo-vector/internal/cpu"
)

var (
	activeMu sync.Mutex
	active   *Table
)

// Active returns the table resolved for the detected CPU. It is built on
// first use and cached until Reload.
func Active() *Table {
	activeMu.Lock()
	defer activeMu.Unlock()

	if active == nil {
		t := Global.Resolve(cpu.DetectFeatures())
		if !t.Complete() {
			panic("kernel: generic implementation not registered")
		}
		active = &t
	}
	return active
}

// Reload drops the cached table so the next Active call resolves again,
// picking up forced CPU features.
func Reload() {
	activeMu.Lock()
	defer activeMu.Unlock()
	active = nil
}
