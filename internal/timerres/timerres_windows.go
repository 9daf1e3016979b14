//go:build windows

package timerres

import (
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	ntdll       = windows.NewLazySystemDLL("ntdll.dll")
	procNtQuery = ntdll.NewProc("NtQueryTimerResolution")
	procNtSet   = ntdll.NewProc("NtSetTimerResolution")
)

// request queries the NT timer resolution bounds and asks for the finest
// (maximum) one. The Nt* procs are undocumented exports; when a future
// kernel stops providing them the lookup fails and we report Unavailable.
func request() Outcome {
	if procNtQuery.Find() != nil || procNtSet.Find() != nil {
		return Outcome{}
	}

	// Resolutions are in 100ns units; "maximum" is the finest.
	var minRes, maxRes, curRes uint32
	status, _, _ := procNtQuery.Call(
		uintptr(unsafe.Pointer(&minRes)),
		uintptr(unsafe.Pointer(&maxRes)),
		uintptr(unsafe.Pointer(&curRes)),
	)
	if status != 0 {
		return Outcome{}
	}

	status, _, _ = procNtSet.Call(uintptr(maxRes), 1, uintptr(unsafe.Pointer(&curRes)))
	if status != 0 {
		return Outcome{}
	}

	return Outcome{
		Applied:    true,
		Resolution: time.Duration(curRes) * 100 * time.Nanosecond,
	}
}
