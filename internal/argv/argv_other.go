//go:build !windows

package argv

import "os"

// marshal copies os.Args, which the runtime already tokenized and which is
// already narrow on every non-Windows platform.
func marshal() ([]string, error) {
	if len(os.Args) == 0 {
		return nil, ErrNoArguments
	}
	args := make([]string, len(os.Args))
	copy(args, os.Args)
	return args, nil
}
