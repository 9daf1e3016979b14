//go:build windows

package argv

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// marshal obtains the wide command line from the OS, splits it with
// CommandLineToArgv (the same routine the C runtime uses), and converts each
// UTF-16 token to UTF-8. Conversion measures each token's length before
// copying, so no truncation can occur. The OS-owned token array is released
// before returning.
func marshal() ([]string, error) {
	var argc int32
	wargv, err := windows.CommandLineToArgv(windows.GetCommandLine(), &argc)
	if wargv == nil {
		if err == nil {
			err = ErrNoArguments
		}
		return nil, err
	}
	defer windows.LocalFree(windows.Handle(unsafe.Pointer(wargv)))

	if argc == 0 {
		return nil, ErrNoArguments
	}

	args := make([]string, 0, argc)
	for _, warg := range (*wargv)[:argc] {
		args = append(args, windows.UTF16PtrToString(&warg[0]))
	}
	return args, nil
}
