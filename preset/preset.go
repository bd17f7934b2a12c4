// Package preset provides named bundles of LWJGL modules for common setups
// and a Selection that accumulates the presets a build asks for.
package preset

import (
	"strings"

	"github.com/albertocavalcante/go-lwjgl/catalog"
	"github.com/albertocavalcante/go-lwjgl/version"
)

// Preset is a named, fixed set of modules.
type Preset struct {
	// Name is the snake_case identifier used in config files.
	Name string

	modules []catalog.Module
}

// Modules returns the preset's modules. The returned slice is a copy.
func (p Preset) Modules() []catalog.Module {
	out := make([]catalog.Module, len(p.modules))
	copy(out, p.modules)
	return out
}

// String returns the preset name.
func (p Preset) String() string {
	return p.Name
}

var (
	// Everything is every module in the catalog.
	Everything = Preset{Name: "everything", modules: catalog.Modules()}

	// GettingStarted covers windowing, rendering, audio, GUI and asset loading.
	GettingStarted = Preset{Name: "getting_started", modules: []catalog.Module{
		catalog.Assimp, catalog.BGFX, catalog.GLFW, catalog.NanoVG, catalog.Nuklear,
		catalog.OpenAL, catalog.OpenGL, catalog.Par, catalog.STB, catalog.Vulkan,
	}}

	// MinimalOpenGL is the smallest useful OpenGL setup.
	MinimalOpenGL = Preset{Name: "minimal_opengl", modules: []catalog.Module{
		catalog.Assimp, catalog.GLFW, catalog.OpenAL, catalog.OpenGL, catalog.STB,
	}}

	// MinimalOpenGLES is the smallest useful OpenGL ES setup.
	MinimalOpenGLES = Preset{Name: "minimal_opengles", modules: []catalog.Module{
		catalog.Assimp, catalog.EGL, catalog.GLFW, catalog.OpenAL, catalog.OpenGLES, catalog.STB,
	}}

	// MinimalVulkan is the smallest useful Vulkan setup.
	MinimalVulkan = Preset{Name: "minimal_vulkan", modules: []catalog.Module{
		catalog.Assimp, catalog.GLFW, catalog.OpenAL, catalog.STB, catalog.Vulkan,
	}}
)

var allPresets = []Preset{Everything, GettingStarted, MinimalOpenGL, MinimalOpenGLES, MinimalVulkan}

// All returns every preset.
func All() []Preset {
	out := make([]Preset, len(allPresets))
	copy(out, allPresets)
	return out
}

// Lookup finds a preset by name. Both snake_case ("minimal_opengl") and
// camelCase ("minimalOpenGL") spellings are accepted.
func Lookup(name string) (Preset, bool) {
	key := normalize(name)
	for _, p := range allPresets {
		if normalize(p.Name) == key {
			return p, true
		}
	}
	return Preset{}, false
}

func normalize(name string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(strings.TrimSpace(name)))
}

// Selection accumulates the presets requested for one resolution.
// Applying several presets unions their modules.
type Selection struct {
	// FilterMinVersion drops preset modules that are newer than the
	// requested LWJGL version. NewSelection turns it on.
	FilterMinVersion bool

	modules catalog.Set
}

// NewSelection returns an empty selection with minimum-version filtering on.
func NewSelection() *Selection {
	return &Selection{FilterMinVersion: true}
}

// Add applies presets to the selection.
func (s *Selection) Add(presets ...Preset) {
	for _, p := range presets {
		s.modules.Add(p.modules...)
	}
}

// Everything adds every module in the catalog.
func (s *Selection) Everything() { s.Add(Everything) }

// GettingStarted adds the modules commonly used to get started with LWJGL:
// assimp, bgfx, glfw, nanovg, nuklear, openal, opengl, par, stb and vulkan.
func (s *Selection) GettingStarted() { s.Add(GettingStarted) }

// MinimalOpenGL adds assimp, glfw, openal, opengl and stb.
func (s *Selection) MinimalOpenGL() { s.Add(MinimalOpenGL) }

// MinimalOpenGLES adds assimp, egl, glfw, openal, opengles and stb.
func (s *Selection) MinimalOpenGLES() { s.Add(MinimalOpenGLES) }

// MinimalVulkan adds assimp, glfw, openal, stb and vulkan.
func (s *Selection) MinimalVulkan() { s.Add(MinimalVulkan) }

// IsEmpty reports whether no preset contributed any module.
func (s *Selection) IsEmpty() bool {
	return s.modules.IsEmpty()
}

// Modules returns every module the presets added, unfiltered.
func (s *Selection) Modules() []catalog.Module {
	return s.modules.Modules()
}

// ForVersion returns the preset modules to use with the given LWJGL
// version. With FilterMinVersion on, modules whose minimum version is not
// met are left out.
func (s *Selection) ForVersion(v string) []catalog.Module {
	mods := s.modules.Modules()
	if !s.FilterMinVersion {
		return mods
	}
	kept := mods[:0]
	for _, m := range mods {
		if version.MeetsMinimum(m.MinVersion, v) {
			kept = append(kept, m)
		}
	}
	return kept
}

// Clone returns an independent copy of the selection.
func (s *Selection) Clone() *Selection {
	return &Selection{
		FilterMinVersion: s.FilterMinVersion,
		modules:          *s.modules.Clone(),
	}
}
