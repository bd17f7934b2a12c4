package golwjgl

import (
	"fmt"

	"github.com/albertocavalcante/go-lwjgl/catalog"
	"github.com/albertocavalcante/go-lwjgl/preset"
)

// LookupModules resolves module names against the catalog.
func LookupModules(names ...string) ([]catalog.Module, error) {
	modules := make([]catalog.Module, 0, len(names))
	for _, name := range names {
		m, ok := catalog.ModuleByName(name)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownModule, name)
		}
		modules = append(modules, m)
	}
	return modules, nil
}

// LookupPlatforms resolves canonical platform names.
func LookupPlatforms(names ...string) ([]catalog.Platform, error) {
	platforms := make([]catalog.Platform, 0, len(names))
	for _, name := range names {
		p, ok := catalog.PlatformByName(name)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownPlatform, name)
		}
		platforms = append(platforms, p)
	}
	return platforms, nil
}

// LookupPresets resolves preset names.
func LookupPresets(names ...string) ([]preset.Preset, error) {
	presets := make([]preset.Preset, 0, len(names))
	for _, name := range names {
		p, ok := preset.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownPreset, name)
		}
		presets = append(presets, p)
	}
	return presets, nil
}

// platformSelection is the platform part of a declarative config: either
// every canonical platform or a list of canonical names, plus custom names.
type platformSelection struct {
	all       bool
	canonical []string
	custom    []string
}

func (s platformSelection) isSet() bool {
	return s.all || len(s.canonical) > 0 || len(s.custom) > 0
}

// apply replaces cfg's platforms with the selection.
func (s platformSelection) apply(cfg *Config) error {
	var platforms []catalog.Platform
	if s.all {
		platforms = catalog.Platforms()
	} else {
		canonical, err := LookupPlatforms(s.canonical...)
		if err != nil {
			return err
		}
		platforms = canonical
	}
	for _, name := range s.custom {
		platforms = append(platforms, catalog.CustomPlatform(name))
	}
	cfg.SetNativePlatforms(platforms)
	return nil
}

// SelectNativePlatforms replaces the native platforms from names, the way
// config files do: every canonical platform when all is set, otherwise the
// canonical names, followed in both cases by the custom names. Canonical
// names that are not in the catalog fail with ErrUnknownPlatform.
// Nothing changes when the selection is empty.
func (c *Config) SelectNativePlatforms(all bool, canonical, custom []string) error {
	sel := platformSelection{all: all, canonical: canonical, custom: custom}
	if !sel.isSet() {
		return nil
	}
	return sel.apply(c)
}
