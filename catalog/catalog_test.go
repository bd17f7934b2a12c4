package catalog

import (
	"strings"
	"testing"
)

func TestModules_ExcludesCore(t *testing.T) {
	for _, m := range Modules() {
		if m.Name == Core.Name {
			t.Fatalf("Modules() contains core")
		}
	}
	if got := len(Modules()); got != 46 {
		t.Errorf("len(Modules()) = %d, want 46", got)
	}
}

func TestModules_ReturnsCopy(t *testing.T) {
	mods := Modules()
	mods[0] = NewModule("mutated")
	if Modules()[0].Name != EGL.Name {
		t.Error("mutating the result of Modules() changed the catalog")
	}
}

func TestModules_UniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range Modules() {
		if seen[m.Name] {
			t.Errorf("duplicate module name %q", m.Name)
		}
		seen[m.Name] = true
	}
}

func TestModules_ArtifactNames(t *testing.T) {
	if Core.Artifact != "lwjgl" {
		t.Errorf("Core.Artifact = %q, want %q", Core.Artifact, "lwjgl")
	}
	for _, m := range Modules() {
		if want := "lwjgl-" + m.Name; m.Artifact != want {
			t.Errorf("%s.Artifact = %q, want %q", m.Name, m.Artifact, want)
		}
	}
}

func TestModules_Attributes(t *testing.T) {
	tests := []struct {
		module     Module
		hasNatives bool
		minVersion string
	}{
		{Core, true, "3.1.0"},
		{EGL, false, "3.1.0"},
		{KTX, true, "3.3.2-SNAPSHOT"},
		{OpenCL, false, "3.1.0"},
		{OpenXR, true, "3.3.1"},
		{JAWT, false, "3.1.0"},
		{FMOD, false, "3.3.2-SNAPSHOT"},
		{Opus, true, "3.2.1"},
		{Assimp, true, "3.1.1"},
		{MSDFGen, true, "3.3.4"},
		{CUDA, false, "3.2.1"},
		{ODBC, false, "3.1.4"},
		{Zstd, true, "3.1.4"},
		{GLFW, true, "3.1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.module.Name, func(t *testing.T) {
			if tt.module.HasNatives != tt.hasNatives {
				t.Errorf("HasNatives = %v, want %v", tt.module.HasNatives, tt.hasNatives)
			}
			if tt.module.MinVersion != tt.minVersion {
				t.Errorf("MinVersion = %q, want %q", tt.module.MinVersion, tt.minVersion)
			}
		})
	}
}

func TestModuleByName(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"glfw", "glfw", true},
		{"GLFW", "glfw", true},
		{" vulkan ", "vulkan", true},
		{"lwjgl-opengl", "opengl", true},
		{"core", "core", true},
		{"lwjgl", "core", true},
		{"sdl", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ModuleByName(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ModuleByName(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got.Name != tt.want {
				t.Errorf("ModuleByName(%q) = %q, want %q", tt.input, got.Name, tt.want)
			}
		})
	}
}

func TestPlatforms(t *testing.T) {
	want := []string{
		"linux-arm64", "linux-arm32", "linux", "macos-arm64",
		"macos", "windows-arm64", "windows", "windows-x86",
	}
	got := Platforms()
	if len(got) != len(want) {
		t.Fatalf("len(Platforms()) = %d, want %d", len(got), len(want))
	}
	for i, p := range got {
		if p.Name != want[i] {
			t.Errorf("Platforms()[%d] = %q, want %q", i, p.Name, want[i])
		}
		if !strings.HasPrefix(p.Classifier(), "natives-") {
			t.Errorf("%s.Classifier() = %q", p.Name, p.Classifier())
		}
	}
}

func TestPlatformByName(t *testing.T) {
	if p, ok := PlatformByName("natives-linux-arm64"); !ok || p != LinuxArm64 {
		t.Errorf("PlatformByName(natives-linux-arm64) = %v, %v", p, ok)
	}
	if p, ok := PlatformByName("Windows"); !ok || p != Windows {
		t.Errorf("PlatformByName(Windows) = %v, %v", p, ok)
	}
	if _, ok := PlatformByName("freebsd"); ok {
		t.Error("PlatformByName(freebsd) should not be found")
	}
}

func TestCustomPlatform(t *testing.T) {
	p := CustomPlatform("freebsd")
	if got := p.Classifier(); got != "natives-freebsd" {
		t.Errorf("Classifier() = %q, want %q", got, "natives-freebsd")
	}
}

func TestSet_DeduplicatesByName(t *testing.T) {
	s := NewSet(GLFW, OpenGL)
	// Same name, different attributes: still the same module.
	s.Add(NewModule("glfw").WithoutNatives(), Vulkan, OpenGL)

	got := s.Modules()
	want := []string{"glfw", "opengl", "vulkan"}
	if len(got) != len(want) {
		t.Fatalf("Len() = %d, want %d", len(got), len(want))
	}
	for i, m := range got {
		if m.Name != want[i] {
			t.Errorf("Modules()[%d] = %q, want %q", i, m.Name, want[i])
		}
	}
	if !got[0].HasNatives {
		t.Error("first module added under a name should win")
	}
}

func TestSet_ZeroValue(t *testing.T) {
	var s Set
	if !s.IsEmpty() {
		t.Error("zero Set should be empty")
	}
	if s.Contains(GLFW) {
		t.Error("zero Set should not contain anything")
	}
	s.Add(GLFW)
	if !s.Contains(NewModule("glfw")) {
		t.Error("Contains should match by name")
	}
}

func TestSet_UnionAndClone(t *testing.T) {
	a := NewSet(Core, GLFW)
	b := NewSet(GLFW, STB)
	c := a.Clone()
	c.Union(b)
	c.Union(nil)

	if a.Len() != 2 {
		t.Errorf("Clone shares state: a.Len() = %d", a.Len())
	}
	if c.Len() != 3 {
		t.Errorf("c.Len() = %d, want 3", c.Len())
	}
}
