//go:build windows

package platform

import "github.com/go-ole/go-ole"

// initCOM enters the multithreaded apartment. RPC_E_CHANGED_MODE (someone
// already picked an apartment model) and every other failure are ignored.
func initCOM() {
	_ = ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED)
}
