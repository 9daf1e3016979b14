//go:build !windows

package platform

func initCOM() {}
