// Package testing moves the working directory to the repository root so that
// tests write logs and sqlite files to the same place the server does.
//
// Import it for its side effect only:
//
//	import _ "github.com/AbderraoufSelidja/Irchad-device-management/pkg/testing"
package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	root := path.Join(path.Dir(filename), "..", "..")
	if err := os.Chdir(root); err != nil {
		panic(err)
	}
}
