// Package job loads dd copies described in YAML files.
//
// A job file looks like:
//
//	binary: /usr/bin/dd
//	min_version: "8.30"
//	options:
//	  if: ./raspios.img
//	  of: /dev/sdc
//	  bs: 4M
//	  conv: [fsync]
//	  status: progress
//
// Options are passed to dd in the order they appear in the file. A list
// value is joined with commas, which is what conv, iflag and oflag expect.
package job

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/woliveiras/godd/pkg/dd"
)

// Job is a parsed job file.
type Job struct {
	Binary     string
	MinVersion string
	Options    []dd.Arg
}

type fileJob struct {
	Binary     string    `yaml:"binary"`
	MinVersion string    `yaml:"min_version"`
	Options    yaml.Node `yaml:"options"`
}

// Load reads and parses the job file at path.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job %s: %w", path, err)
	}
	j, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", path, err)
	}
	return j, nil
}

// Parse parses a job document.
func Parse(data []byte) (*Job, error) {
	var raw fileJob
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse job: %w", err)
	}

	if raw.MinVersion != "" {
		if _, _, err := dd.ParseVersionNumber(raw.MinVersion); err != nil {
			return nil, fmt.Errorf("min_version: %w", err)
		}
	}

	opts, err := decodeOptions(&raw.Options)
	if err != nil {
		return nil, err
	}

	return &Job{
		Binary:     raw.Binary,
		MinVersion: raw.MinVersion,
		Options:    opts,
	}, nil
}

// Build returns a Dd configured from the job. fallbackBinary is used when
// the job does not name a binary.
func (j *Job) Build(fallbackBinary string) *dd.Dd {
	binary := j.Binary
	if binary == "" {
		binary = fallbackBinary
	}
	d := dd.New(binary)
	if j.MinVersion != "" {
		// Already validated by Parse.
		major, minor, _ := dd.ParseVersionNumber(j.MinVersion)
		d.MinVersion(major, minor)
	}
	for _, o := range j.Options {
		d.Set(o.Key, o.Value)
	}
	return d
}

func decodeOptions(n *yaml.Node) ([]dd.Arg, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.MappingNode:
	default:
		return nil, fmt.Errorf("line %d: options must be a mapping", n.Line)
	}

	opts := make([]dd.Arg, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, fmt.Errorf("line %d: option name must be a non-empty string", key.Line)
		}
		v, err := optionValue(val)
		if err != nil {
			return nil, fmt.Errorf("option %s: %w", key.Value, err)
		}
		opts = append(opts, dd.Arg{Key: key.Value, Value: v})
	}
	return opts, nil
}

func optionValue(n *yaml.Node) (string, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.ScalarNode:
		return n.Value, nil
	case yaml.SequenceNode:
		parts := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return "", fmt.Errorf("line %d: list items must be plain values", item.Line)
			}
			parts = append(parts, item.Value)
		}
		return strings.Join(parts, ","), nil
	default:
		return "", fmt.Errorf("line %d: value must be a string, number or list", n.Line)
	}
}
