package dd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMounts = `/dev/mmcblk0p2 / ext4 rw,noatime 0 0
/dev/mmcblk0p1 /boot/firmware vfat rw,relatime 0 0
proc /proc proc rw,nosuid,nodev,noexec,relatime 0 0
/dev/sdb1 /media/usb vfat rw 0 0
`

func TestBaseDiskFromDevice(t *testing.T) {
	t.Parallel()

	cases := []struct {
		dev  string
		want string
	}{
		{"/dev/sda1", "/dev/sda"},
		{"/dev/sda", "/dev/sda"},
		{"/dev/mmcblk0p2", "/dev/mmcblk0"},
		{"/dev/mmcblk0", "/dev/mmcblk0"},
		{"/dev/nvme0n1p3", "/dev/nvme0n1"},
		{"/dev/nvme0n1", "/dev/nvme0n1"},
		{"/dev/loop0", "/dev/loop0"},
		{"/dev/loop0p1", "/dev/loop0"},
		{"proc", "proc"},
	}

	for _, tc := range cases {
		if got := baseDiskFromDevice(tc.dev); got != tc.want {
			t.Fatalf("baseDiskFromDevice(%q) = %q, want %q", tc.dev, got, tc.want)
		}
	}
}

func TestParseRootDevice(t *testing.T) {
	t.Parallel()

	dev, err := parseRootDevice(sampleMounts)
	require.NoError(t, err)
	assert.Equal(t, "/dev/mmcblk0p2", dev)

	_, err = parseRootDevice("proc /proc proc rw 0 0\n")
	assert.Error(t, err)
}

func TestParseMountedPartitionsForDisk(t *testing.T) {
	t.Parallel()

	parts, err := parseMountedPartitionsForDisk(sampleMounts, "/dev/mmcblk0")
	require.NoError(t, err)
	assert.Equal(t, []MountedPartition{
		{Device: "/dev/mmcblk0p2", Mountpoint: "/"},
		{Device: "/dev/mmcblk0p1", Mountpoint: "/boot/firmware"},
	}, parts)

	parts, err = parseMountedPartitionsForDisk(sampleMounts, "/dev/sdc")
	require.NoError(t, err)
	assert.Empty(t, parts)
}

func TestValidateTarget(t *testing.T) {
	mounts := filepath.Join(t.TempDir(), "mounts")
	require.NoError(t, os.WriteFile(mounts, []byte(sampleMounts), 0o644))

	orig := mountsFile
	mountsFile = mounts
	t.Cleanup(func() { mountsFile = orig })

	tests := []struct {
		name    string
		input   string
		output  string
		wantErr string
	}{
		{name: "plain files", input: "a.img", output: "b.img"},
		{name: "same file", input: "./a.img", output: "a.img", wantErr: "onto itself"},
		{name: "boot disk", input: "x.img", output: "/dev/mmcblk0", wantErr: "boot disk"},
		{name: "boot partition", input: "x.img", output: "/dev/mmcblk0p1", wantErr: "boot disk"},
		{name: "mounted usb", input: "x.img", output: "/dev/sdb", wantErr: "mounted partitions"},
		{name: "free disk", input: "x.img", output: "/dev/sdc"},
		{name: "stdout", input: "x.img", output: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTarget(tt.input, tt.output)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
