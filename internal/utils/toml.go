package utils

import (
	"os"

	"github.com/BurntSushi/toml"
)

// LoadTOMLFile decodes a TOML file into config. Keys missing from the file
// leave the struct's existing values in place, so decoding over defaults
// gives partial-config tolerance for free.
func LoadTOMLFile(path string, config any) error {
	_, err := toml.DecodeFile(path, config)
	return err
}

// SaveTOMLFile writes a struct out as TOML.
func SaveTOMLFile(data any, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(data)
}
