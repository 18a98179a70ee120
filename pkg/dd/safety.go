package dd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// mountsFile is read to find the boot disk and mounted partitions.
var mountsFile = "/proc/self/mounts"

// ValidateTarget performs safety checks before a destructive copy:
//   - input and output must not be the same file
//   - output must not be the disk that backs the running system
//   - output must not be a disk with mounted partitions
//
// It is meant for front-ends; Dd itself never validates operand values.
// Outputs that are not /dev paths only get the first check.
func ValidateTarget(input, output string) error {
	if input != "" && output != "" && filepath.Clean(input) == filepath.Clean(output) {
		return fmt.Errorf("refusing to copy %s onto itself", input)
	}
	if !strings.HasPrefix(output, "/dev/") {
		return nil
	}

	data, err := os.ReadFile(mountsFile)
	if err != nil {
		// Non-Linux or restricted environment: nothing more to check.
		return nil
	}
	mounts := string(data)
	dstDisk := baseDiskFromDevice(output)

	if root, err := parseRootDevice(mounts); err == nil && baseDiskFromDevice(root) == dstDisk {
		return fmt.Errorf("refusing to write to %s: it is the boot disk (%s is mounted on /)", output, root)
	}

	parts, err := parseMountedPartitionsForDisk(mounts, dstDisk)
	if err == nil && len(parts) > 0 {
		var names []string
		for _, p := range parts {
			names = append(names, fmt.Sprintf("%s -> %s", p.Device, p.Mountpoint))
		}
		return fmt.Errorf("destination %s has mounted partitions: %s; unmount them first", output, strings.Join(names, ", "))
	}
	return nil
}

// MountedPartition is one /proc/self/mounts entry.
type MountedPartition struct {
	Device     string
	Mountpoint string
}

// parseRootDevice returns the device mounted at "/".
func parseRootDevice(mounts string) (string, error) {
	scanner := bufio.NewScanner(strings.NewReader(mounts))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		if fields[1] == "/" {
			return fields[0], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", errors.New("root mount not found")
}

// baseDiskFromDevice takes a device like "/dev/mmcblk0p2" or "/dev/sda1"
// and returns the whole-disk device ("/dev/mmcblk0" or "/dev/sda").
func baseDiskFromDevice(dev string) string {
	if !strings.HasPrefix(dev, "/dev/") {
		return dev
	}

	s := dev
	name := strings.TrimPrefix(dev, "/dev/")
	numbered := strings.HasPrefix(name, "mmcblk") || strings.HasPrefix(name, "nvme") || strings.HasPrefix(name, "loop")

	// mmcblk0p2, nvme0n1p2 and loop0p1 only lose a "pN" suffix; the digits
	// before it belong to the disk name.
	if numbered {
		if idx := strings.LastIndex(s, "p"); idx > len("/dev/") && isDigits(s[idx-1:idx]) && isDigits(s[idx+1:]) {
			return s[:idx]
		}
		return s
	}

	for len(s) > 0 {
		last := s[len(s)-1]
		if last < '0' || last > '9' {
			break
		}
		s = s[:len(s)-1]
	}
	return s
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// parseMountedPartitionsForDisk returns the mount entries whose device
// belongs to disk.
func parseMountedPartitionsForDisk(mounts string, disk string) ([]MountedPartition, error) {
	var result []MountedPartition

	scanner := bufio.NewScanner(strings.NewReader(mounts))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		if baseDiskFromDevice(fields[0]) == disk {
			result = append(result, MountedPartition{
				Device:     fields[0],
				Mountpoint: fields[1],
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
