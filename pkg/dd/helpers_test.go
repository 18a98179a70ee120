package dd

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

// echoDD answers --version like GNU dd and otherwise prints its argv, one
// argument per line.
const echoDD = `if [ "$1" = "--version" ]; then
  echo "dd (coreutils) 9.4"
  echo "Copyright (C) 2023 Free Software Foundation, Inc."
  exit 0
fi
printf '%s\n' "$@"
`

// fakeDD writes an executable shell script named dd and returns its path.
// Tests using it do not run in parallel: forking while another goroutine
// holds the script open for writing fails with ETXTBSY.
func fakeDD(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake dd scripts need a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "dd")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestMain(m *testing.M) {
	SetLogger(log.New(os.Stderr))
	os.Exit(m.Run())
}
