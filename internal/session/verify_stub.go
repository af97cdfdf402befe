//go:build !llama

package session

// This file provides the no-CGO default for model verification. It is
// compiled when the 'llama' build tag is NOT set, keeping default builds and
// CI CGO-free. The real-runtime check lives in verify_llama.go (tagged
// 'llama').

import (
	"errors"
	"os"
)

// verifyModel checks that path refers to a readable regular file. It does not
// inspect the file contents.
func verifyModel(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return errors.New("path is a directory")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}
