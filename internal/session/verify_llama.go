//go:build llama

package session

import (
	"errors"
	"os"

	llama "github.com/go-skynet/go-llama.cpp"
)

// verifyContextSize is the minimal context used for the verification load.
const verifyContextSize = 128

// verifyModel checks that path refers to a readable regular file and that
// llama.cpp can actually load it. The model is freed immediately: the session
// only tracks the path, it does not own a live runtime.
func verifyModel(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return errors.New("path is a directory")
	}
	m, err := llama.New(path, llama.SetContext(verifyContextSize))
	if err != nil {
		return err
	}
	m.Free()
	return nil
}
