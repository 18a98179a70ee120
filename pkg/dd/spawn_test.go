package dd

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawn_PassesArgsVerbatim(t *testing.T) {
	bin := fakeDD(t, echoDD)

	out, err := New(bin).
		Input("./test.iso").
		Output("./copied.iso").
		BS("4M").
		Spawn()

	require.NoError(t, err)
	assert.Equal(t, "if=./test.iso\nof=./copied.iso\nbs=4M\n", out)
}

func TestSpawn_ValuesAreNotQuoted(t *testing.T) {
	bin := fakeDD(t, echoDD)

	out, err := New(bin).Input("./my file.img").Conv("notrunc", "fsync").Spawn()

	require.NoError(t, err)
	assert.Equal(t, "if=./my file.img\nconv=notrunc,fsync\n", out)
}

func TestSpawn_ExecutionFailedCarriesStderr(t *testing.T) {
	bin := fakeDD(t, `if [ "$1" = "--version" ]; then echo "dd (coreutils) 9.4"; exit 0; fi
echo "dd: invalid argument" >&2
exit 1
`)

	_, err := New(bin).Input("x").BS("bogus").Spawn()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutionFailed)
	assert.NotErrorIs(t, err, ErrProcessStart)

	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, 1, execErr.ExitCode)
	assert.Contains(t, execErr.Stderr, "dd: invalid argument")
	assert.Equal(t, []string{"if=x", "bs=bogus"}, execErr.Args)
	assert.Contains(t, err.Error(), "dd: invalid argument")
}

func TestSpawn_MissingBinary(t *testing.T) {
	t.Parallel()

	_, err := New("godd-no-such-binary").Input("x").Spawn()
	assert.ErrorIs(t, err, ErrProcessStart)
}

func TestSpawn_FailsFastOnBadVersion(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "ran")
	bin := fakeDD(t, `if [ "$1" = "--version" ]; then echo "garbage text"; exit 0; fi
touch "`+marker+`"
`)

	_, err := New(bin).Input("x").Spawn()
	assert.ErrorIs(t, err, ErrUnexpectedVersionFormat)
	assert.NoFileExists(t, marker)
}

func TestSpawn_RequiresInput(t *testing.T) {
	t.Parallel()

	r := NewDryRunner()
	_, err := New("dd").WithRunner(r).Output("out.img").Spawn()

	assert.ErrorIs(t, err, ErrNoInput)
	assert.Len(t, r.Calls, 1, "only the version check should run")
}

func TestSpawn_InvalidUTF8Output(t *testing.T) {
	bin := fakeDD(t, `if [ "$1" = "--version" ]; then echo "dd (coreutils) 9.4"; exit 0; fi
printf '\377\n'
`)

	_, err := New(bin).Input("x").Spawn()
	require.ErrorIs(t, err, ErrOutputDecode)
	assert.NotErrorIs(t, err, ErrExecutionFailed)
}

func TestSpawn_DryRunner(t *testing.T) {
	t.Parallel()

	r := NewDryRunner()
	out, err := New("dd").WithRunner(r).Input("/dev/zero").Output("/tmp/x").Count(1).Spawn()

	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, [][]string{
		{"dd", "--version"},
		{"dd", "if=/dev/zero", "of=/tmp/x", "count=1"},
	}, r.Calls)
}

func TestSpawn_RealDd(t *testing.T) {
	bin, err := exec.LookPath("dd")
	if err != nil {
		t.Skip("dd not installed")
	}
	if _, err := New(bin).Check(); err != nil {
		t.Skipf("dd is not GNU coreutils: %v", err)
	}

	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	output := filepath.Join(dir, "output.txt")
	require.NoError(t, os.WriteFile(input, []byte("Hello, dd testing!\n"), 0o644))

	_, err = New(bin).
		Input(input).
		Output(output).
		BS("1M").
		Count(1).
		Status("none").
		Spawn()
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Hello, dd testing!")
}
