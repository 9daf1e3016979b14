//go:build windows

package console

import (
	"os"

	"golang.org/x/sys/windows"
)

// attachParentProcess is the DWORD -1 sentinel AttachConsole takes to mean
// "the console of my parent".
const attachParentProcess = ^uintptr(0)

var (
	kernel32          = windows.NewLazySystemDLL("kernel32.dll")
	procAttachConsole = kernel32.NewProc("AttachConsole")
	procAllocConsole  = kernel32.NewProc("AllocConsole")
)

// negotiate wires the real Windows console calls into the attach sequence.
func negotiate(headless Policy) bool {
	return negotiateWith(osHooks{
		attachParent: func() bool {
			attached, _, _ := procAttachConsole.Call(attachParentProcess)
			return attached != 0
		},
		alloc: func() {
			procAllocConsole.Call()
		},
		rebind: rebindStreams,
	}, headless)
}

// rebindStreams points stdout and stderr at the console's output device.
// CONOUT$ opened through os keeps Go's text-mode newline handling, so console
// output behaves like any other stdout.
func rebindStreams() bool {
	conout, err := os.OpenFile("CONOUT$", os.O_WRONLY, 0)
	if err != nil {
		return false
	}

	os.Stdout = conout
	os.Stderr = conout
	windows.SetStdHandle(windows.STD_OUTPUT_HANDLE, windows.Handle(conout.Fd()))
	windows.SetStdHandle(windows.STD_ERROR_HANDLE, windows.Handle(conout.Fd()))
	return true
}
