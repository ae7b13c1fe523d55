// Package onerror is the fail-fast boundary shared by all three cmd/
// binaries: it turns a returned error into a fatal log line and a
// non-zero exit. It does not remove an output file the binary already
// created, so whatever was written before the error stays on disk.
package onerror

import (
	"os"

	"github.com/hlmerscher/n2t-toolchain/internal/xlog"
)

func Log(err error) {
	Logf("", err)
}

func Logf(msg string, err error) {
	if err == nil {
		return
	}
	if msg != "" {
		xlog.Infof("%s", msg)
	}
	xlog.Error(err)
	os.Exit(1)
}
