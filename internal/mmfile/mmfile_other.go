//go:build !unix

package mmfile

import (
	"fmt"
	"os"
)

// Map reads the whole file at path. Pairs tables and localization documents
// are at most a few megabytes, so there is no mapping on these platforms.
// The cleanup func is a no-op kept for parity with the unix build.
func Map(path string) ([]byte, func() error, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if info.IsDir() {
		return nil, nil, fmt.Errorf("mmfile: %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
