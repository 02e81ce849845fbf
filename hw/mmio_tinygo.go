//go:build tinygo

package hw

import (
	"runtime/volatile"
	"unsafe"
)

// MMIO is the on-target Registers backend.
type MMIO struct{}

func (MMIO) Read32(a Addr) uint32 {
	return volatile.LoadUint32((*uint32)(unsafe.Pointer(uintptr(a))))
}

func (MMIO) Write32(a Addr, v uint32) {
	volatile.StoreUint32((*uint32)(unsafe.Pointer(uintptr(a))), v)
}
