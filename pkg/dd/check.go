package dd

import (
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/mod/semver"
)

const versionFlag = "--version"

// versionLine matches the first line of `dd --version`, e.g.
// "dd (coreutils) 9.4" or "dd (GNU coreutils) 8.32".
var versionLine = regexp.MustCompile(`^(\S+) \(([^)]+)\) (\d+)\.(\d+)(?:\s|$)`)

// Version is the result of a successful preflight check.
type Version struct {
	Program string
	Package string
	Major   int
	Minor   int
	// Raw is the first line of the --version output.
	Raw string
}

func (v Version) String() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

func (v Version) canonical() string { return "v" + v.String() }

// ParseVersion parses the first line of `dd --version` output.
func ParseVersion(output string) (Version, bool) {
	line, _, _ := strings.Cut(output, "\n")
	line = strings.TrimSpace(line)

	m := versionLine.FindStringSubmatch(line)
	if m == nil {
		return Version{Raw: line}, false
	}
	major, err := strconv.Atoi(m[3])
	if err != nil {
		return Version{Raw: line}, false
	}
	minor, err := strconv.Atoi(m[4])
	if err != nil {
		return Version{Raw: line}, false
	}
	return Version{
		Program: m[1],
		Package: m[2],
		Major:   major,
		Minor:   minor,
		Raw:     line,
	}, true
}

// ParseVersionNumber parses a "MAJOR.MINOR" string such as "8.30".
func ParseVersionNumber(s string) (major, minor int, err error) {
	a, b, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return 0, 0, fmt.Errorf("version %q: want MAJOR.MINOR", s)
	}
	if major, err = strconv.Atoi(a); err != nil || major < 0 {
		return 0, 0, fmt.Errorf("version %q: bad major number", s)
	}
	if minor, err = strconv.Atoi(b); err != nil || minor < 0 {
		return 0, 0, fmt.Errorf("version %q: bad minor number", s)
	}
	return major, minor, nil
}

// Check runs the binary with --version and validates the answer. It does
// not modify d, so calling it repeatedly yields the same result.
func (d *Dd) Check() (Version, error) {
	stdout, stderr, err := d.runner.Run(d.binary, versionFlag)
	if err != nil {
		return Version{}, d.runError([]string{versionFlag}, stderr, err)
	}

	text, err := d.decode("stdout", stdout)
	if err != nil {
		return Version{}, err
	}

	v, ok := ParseVersion(text)
	if !ok {
		return Version{}, &VersionFormatError{Binary: d.binary, Line: v.Raw}
	}

	if d.minVersion != "" && semver.Compare(v.canonical(), d.minVersion) < 0 {
		return v, &OldVersionError{
			Binary: d.binary,
			Have:   v,
			Want:   strings.TrimPrefix(d.minVersion, "v"),
		}
	}

	logSink.Debug("version ok", "binary", d.binary, "version", v.String())
	return v, nil
}

// runError classifies an error returned by a Runner.
func (d *Dd) runError(args []string, stderr []byte, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExecutionError{
			Binary:   d.binary,
			Args:     args,
			ExitCode: exitErr.ExitCode(),
			Stderr:   strings.ToValidUTF8(string(stderr), string(utf8.RuneError)),
		}
	}
	return &ProcessStartError{Binary: d.binary, Err: err}
}

func (d *Dd) decode(stream string, b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", &DecodeError{Binary: d.binary, Stream: stream}
	}
	return string(b), nil
}
