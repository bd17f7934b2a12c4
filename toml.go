package golwjgl

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultTOMLConfigFile is the conventional name of the TOML config file.
const DefaultTOMLConfigFile = "lwjgl.toml"

// tomlConfig is the TOML form of a Config:
//
//	version = "3.3.6"
//	modules = ["glfw", "opengl"]
//	presets = ["minimal_vulkan"]
//	filter_min_version = true
//	native_platforms = ["linux", "windows"]
type tomlConfig struct {
	Group                 *string  `toml:"group"`
	Version               *string  `toml:"version"`
	ImplementationBucket  *string  `toml:"implementation_bucket"`
	RuntimeBucket         *string  `toml:"runtime_bucket"`
	Modules               []string `toml:"modules"`
	Presets               []string `toml:"presets"`
	FilterMinVersion      *bool    `toml:"filter_min_version"`
	NativePlatforms       []string `toml:"native_platforms"`
	CustomNativePlatforms []string `toml:"custom_native_platforms"`
	AllNativePlatforms    bool     `toml:"all_native_platforms"`
}

// ParseTOMLConfig parses TOML config content into a Config, starting from
// the NewConfig defaults. Unknown keys are errors.
func ParseTOMLConfig(filename string, content []byte) (*Config, error) {
	var tc tomlConfig
	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tc); err != nil {
		return nil, tomlParseError(filename, err)
	}

	cfg := NewConfig()
	if tc.Group != nil {
		cfg.Group = *tc.Group
	}
	if tc.Version != nil {
		cfg.SetVersion(*tc.Version)
	}
	if tc.ImplementationBucket != nil {
		cfg.ImplementationBucket = *tc.ImplementationBucket
	}
	if tc.RuntimeBucket != nil {
		cfg.RuntimeBucket = *tc.RuntimeBucket
	}
	if tc.FilterMinVersion != nil {
		cfg.Presets.FilterMinVersion = *tc.FilterMinVersion
	}

	modules, err := LookupModules(tc.Modules...)
	if err != nil {
		return nil, &ParseError{Pos: Position{Filename: filename}, Message: err.Error(), Wrapped: err}
	}
	cfg.Modules(modules...)

	presets, err := LookupPresets(tc.Presets...)
	if err != nil {
		return nil, &ParseError{Pos: Position{Filename: filename}, Message: err.Error(), Wrapped: err}
	}
	cfg.Presets.Add(presets...)

	if err := cfg.SelectNativePlatforms(tc.AllNativePlatforms, tc.NativePlatforms, tc.CustomNativePlatforms); err != nil {
		return nil, &ParseError{Pos: Position{Filename: filename}, Message: err.Error(), Wrapped: err}
	}

	return cfg, nil
}

func tomlParseError(filename string, err error) error {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return &ParseError{
			Pos:     Position{Filename: filename, Line: row, Column: col},
			Message: decodeErr.Error(),
			Wrapped: err,
		}
	}
	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) && len(strictErr.Errors) > 0 {
		first := strictErr.Errors[0]
		row, col := first.Position()
		return &ParseError{
			Pos:     Position{Filename: filename, Line: row, Column: col},
			Message: fmt.Sprintf("unknown setting %q", strings.Join(first.Key(), ".")),
			Wrapped: err,
		}
	}
	return &ParseError{Pos: Position{Filename: filename}, Message: err.Error(), Wrapped: err}
}

// LoadConfigFile reads a config file, choosing the dialect by extension:
// ".toml" files are TOML, everything else is Starlark.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOMLConfig(path, data)
	}
	return ParseConfig(path, data)
}
