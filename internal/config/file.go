package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/tracker"
	"gopkg.in/yaml.v3"
)

// File is the optional YAML configuration file. Pointer fields distinguish
// unset values from zero values.
type File struct {
	Trace     *bool            `yaml:"trace"`
	LogFile   string           `yaml:"log_file"`
	Width     *int             `yaml:"width"`
	Height    *int             `yaml:"height"`
	Keys      tracker.Bindings `yaml:"keys"`
	Highlight string           `yaml:"highlight"`
}

// LoadFile reads and decodes path. Unknown keys are rejected; an empty file
// is valid.
func LoadFile(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()
	return decodeFile(f)
}

func decodeFile(r io.Reader) (File, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("decode config file: %w", err)
	}
	return file, nil
}
