package golwjgl

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/albertocavalcante/go-lwjgl/catalog"
	"github.com/albertocavalcante/go-lwjgl/detect"
	"github.com/albertocavalcante/go-lwjgl/preset"
	"github.com/google/go-cmp/cmp"
)

var linuxHost = WithEnvironment(detect.Environment{Arch: "amd64", OSName: "Linux"})

func artifacts(coords []Coordinate) []string {
	out := make([]string, len(coords))
	for i, c := range coords {
		out[i] = c.Artifact
	}
	return out
}

func mustResolve(t *testing.T, cfg *Config, opts ...Option) *Result {
	t.Helper()
	result, err := Resolve(cfg, opts...)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	return result
}

func TestResolve_PresetFiltersUnderVersionedModules(t *testing.T) {
	cfg := NewConfig()
	cfg.SetVersion("3.1.0") // assimp first shipped in 3.1.1
	cfg.Presets.GettingStarted()
	cfg.NativePlatforms(catalog.Windows)

	result := mustResolve(t, cfg)

	want := []string{
		"lwjgl", "lwjgl-bgfx", "lwjgl-glfw", "lwjgl-nanovg", "lwjgl-nuklear",
		"lwjgl-openal", "lwjgl-opengl", "lwjgl-par", "lwjgl-stb", "lwjgl-vulkan",
	}
	if diff := cmp.Diff(want, artifacts(result.Implementation)); diff != "" {
		t.Errorf("implementation artifacts mismatch (-want +got):\n%s", diff)
	}
	for _, w := range result.Warnings {
		if strings.Contains(w, "assimp") {
			t.Errorf("filtered module should not be warned about: %q", w)
		}
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", result.Warnings)
	}
}

func TestResolve_PresetPlusExplicitUnderVersionedModuleWarns(t *testing.T) {
	cfg := NewConfig()
	cfg.SetVersion("3.1.0")
	cfg.Presets.GettingStarted()
	cfg.Modules(catalog.Assimp)
	cfg.NativePlatforms(catalog.Windows)

	result := mustResolve(t, cfg)

	if got := len(result.Implementation); got != 11 {
		t.Errorf("len(Implementation) = %d, want 11", got)
	}
	want := []string{"Module 'assimp' minimum version is '3.1.1', but request version is '3.1.0'."}
	if diff := cmp.Diff(want, result.Warnings); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_ExplicitUnderVersionedModuleIsKept(t *testing.T) {
	cfg := NewConfig()
	cfg.SetVersion("3.1.0")
	cfg.Modules(catalog.Assimp)
	cfg.NativePlatforms(catalog.Linux)

	result := mustResolve(t, cfg)

	wantImpl := []Coordinate{
		{Group: "org.lwjgl", Artifact: "lwjgl", Version: "3.1.0"},
		{Group: "org.lwjgl", Artifact: "lwjgl-assimp", Version: "3.1.0"},
	}
	if diff := cmp.Diff(wantImpl, result.Implementation); diff != "" {
		t.Errorf("implementation mismatch (-want +got):\n%s", diff)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("Warnings = %v, want exactly one", result.Warnings)
	}
	if got, want := result.Warnings[0], "Module 'assimp' minimum version is '3.1.1', but request version is '3.1.0'."; got != want {
		t.Errorf("Warnings[0] = %q, want %q", got, want)
	}
}

func TestResolve_NoModulesSelected(t *testing.T) {
	cfg := NewConfig()
	cfg.SetVersion("3.3.6")

	// An unrecognized host must not matter: the early exit happens first.
	result := mustResolve(t, cfg, WithEnvironment(detect.Environment{Arch: "unknown", OSName: "unknown"}))

	if len(result.Implementation) != 0 || len(result.Runtime) != 0 {
		t.Errorf("expected no coordinates, got %d implementation, %d runtime",
			len(result.Implementation), len(result.Runtime))
	}
	want := []string{"No LWJGL modules selected. Please add modules with `lwjgl.modules` use a preset like `lwjgl.presets.gettingStarted()`."}
	if diff := cmp.Diff(want, result.Warnings); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
	if !result.IsEmpty() {
		t.Error("IsEmpty() = false")
	}
	if len(result.Modules) != 0 {
		t.Errorf("Modules = %v, want none (core is not added on early exit)", result.ModuleNames())
	}
}

func TestResolve_EmptyPresetDoesNotCountAsSelection(t *testing.T) {
	cfg := NewConfig()
	cfg.Presets.FilterMinVersion = false

	result := mustResolve(t, cfg, linuxHost)
	if len(result.Warnings) != 1 || !result.IsEmpty() {
		t.Errorf("expected the no-modules warning only, got %+v", result)
	}
}

func TestResolve_CoreAlwaysIncluded(t *testing.T) {
	cfg := NewConfig()
	cfg.Modules(catalog.GLFW)

	result := mustResolve(t, cfg, linuxHost)

	if got := result.ModuleNames(); got[0] != "core" {
		t.Errorf("first module = %q, want core", got[0])
	}
}

func TestResolve_DuplicateModulesCollapse(t *testing.T) {
	cfg := NewConfig()
	cfg.Modules(catalog.GLFW, catalog.Core)
	cfg.Presets.MinimalOpenGL() // also contains glfw
	cfg.Modules(catalog.NewModule("glfw"))
	cfg.NativePlatforms(catalog.Linux)

	result := mustResolve(t, cfg)

	want := []string{"lwjgl", "lwjgl-assimp", "lwjgl-glfw", "lwjgl-openal", "lwjgl-opengl", "lwjgl-stb"}
	if diff := cmp.Diff(want, artifacts(result.Implementation)); diff != "" {
		t.Errorf("implementation artifacts mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_RuntimeCoordinates(t *testing.T) {
	cfg := NewConfig()
	cfg.Modules(catalog.GLFW, catalog.EGL, catalog.Vulkan)
	cfg.NativePlatforms(catalog.Linux, catalog.MacOSArm64)

	result := mustResolve(t, cfg)

	want := []Coordinate{
		{Group: "org.lwjgl", Artifact: "lwjgl", Version: "3.3.6", Classifier: "natives-linux"},
		{Group: "org.lwjgl", Artifact: "lwjgl", Version: "3.3.6", Classifier: "natives-macos-arm64"},
		{Group: "org.lwjgl", Artifact: "lwjgl-glfw", Version: "3.3.6", Classifier: "natives-linux"},
		{Group: "org.lwjgl", Artifact: "lwjgl-glfw", Version: "3.3.6", Classifier: "natives-macos-arm64"},
		{Group: "org.lwjgl", Artifact: "lwjgl-vulkan", Version: "3.3.6", Classifier: "natives-linux"},
		{Group: "org.lwjgl", Artifact: "lwjgl-vulkan", Version: "3.3.6", Classifier: "natives-macos-arm64"},
	}
	if diff := cmp.Diff(want, result.Runtime); diff != "" {
		t.Errorf("runtime mismatch (-want +got):\n%s", diff)
	}

	wantSummary := ResolutionSummary{Modules: 4, NativeModules: 3, Platforms: 2, Dependencies: 10}
	if diff := cmp.Diff(wantSummary, result.Summary); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_CustomGroupAndPlatforms(t *testing.T) {
	cfg := NewConfig()
	cfg.Group = "com.example.lwjgl"
	cfg.SetVersion("3.3.4")
	cfg.Modules(catalog.OpenAL)
	cfg.CustomNativePlatforms("freebsd")

	result := mustResolve(t, cfg)

	want := []string{
		"com.example.lwjgl:lwjgl:3.3.4:natives-freebsd",
		"com.example.lwjgl:lwjgl-openal:3.3.4:natives-freebsd",
	}
	got := make([]string, len(result.Runtime))
	for i, c := range result.Runtime {
		got[i] = c.String()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("runtime mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_AllPlatforms(t *testing.T) {
	cfg := NewConfig()
	cfg.Modules(catalog.GLFW)
	cfg.UseAllNativePlatforms()

	result := mustResolve(t, cfg)

	// core and glfw, eight platforms each
	if got := len(result.Runtime); got != 16 {
		t.Errorf("len(Runtime) = %d, want 16", got)
	}
	if result.PlatformDetected {
		t.Error("PlatformDetected = true for explicit platforms")
	}
}

func TestResolve_DetectsPlatform(t *testing.T) {
	cfg := NewConfig()
	cfg.Modules(catalog.GLFW)

	result := mustResolve(t, cfg, WithEnvironment(detect.Environment{Arch: "aarch64", OSName: "Mac OS X"}))

	if diff := cmp.Diff([]string{"macos-arm64"}, result.PlatformNames()); diff != "" {
		t.Errorf("platforms mismatch (-want +got):\n%s", diff)
	}
	if !result.PlatformDetected {
		t.Error("PlatformDetected = false")
	}
}

func TestResolve_UnsupportedPlatform(t *testing.T) {
	cfg := NewConfig()
	cfg.Modules(catalog.GLFW)

	result, err := Resolve(cfg, WithEnvironment(detect.Environment{Arch: "sparc", OSName: "SunOS"}))
	if err == nil {
		t.Fatal("expected an error")
	}
	if result != nil {
		t.Error("no result should be returned on a fatal error")
	}
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Errorf("errors.Is(err, ErrUnsupportedPlatform) = false: %v", err)
	}
	var platformErr *PlatformError
	if !errors.As(err, &platformErr) || platformErr.OSName != "SunOS" || platformErr.Arch != "sparc" {
		t.Errorf("errors.As(*PlatformError) = %+v", platformErr)
	}
}

func TestResolve_FilterDisabledKeepsAndWarns(t *testing.T) {
	cfg := NewConfig()
	cfg.SetVersion("3.1.0")
	cfg.Preset(func(p *preset.Selection) {
		p.MinimalVulkan()
		p.FilterMinVersion = false
	})
	cfg.NativePlatforms(catalog.Linux)

	result := mustResolve(t, cfg)

	if !cmp.Equal(result.ModuleNames(), []string{"core", "assimp", "glfw", "openal", "stb", "vulkan"}) {
		t.Errorf("ModuleNames() = %v", result.ModuleNames())
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "'assimp'") {
		t.Errorf("Warnings = %v, want one about assimp", result.Warnings)
	}
}

func TestResolve_MalformedVersionWarnsForEveryModule(t *testing.T) {
	cfg := NewConfig()
	cfg.SetVersion("latest")
	cfg.Modules(catalog.GLFW)
	cfg.Presets.MinimalOpenGL() // filtered out entirely: nothing meets "latest"
	cfg.NativePlatforms(catalog.Linux)

	result := mustResolve(t, cfg)

	if diff := cmp.Diff([]string{"core", "glfw"}, result.ModuleNames()); diff != "" {
		t.Errorf("modules mismatch (-want +got):\n%s", diff)
	}
	if got := len(result.Warnings); got != 2 {
		t.Errorf("len(Warnings) = %d, want 2: %v", got, result.Warnings)
	}
}

func TestResolve_StrictVersions(t *testing.T) {
	cfg := NewConfig()
	cfg.SetVersion("3.1.0")
	cfg.Modules(catalog.Assimp, catalog.OpenXR)
	cfg.NativePlatforms(catalog.Linux)

	_, err := Resolve(cfg, WithStrictVersions(true))
	if !errors.Is(err, ErrMinVersion) {
		t.Fatalf("errors.Is(err, ErrMinVersion) = false: %v", err)
	}
	if !strings.Contains(err.Error(), "openxr") || !strings.Contains(err.Error(), "assimp") {
		t.Errorf("error should name both modules: %v", err)
	}

	if _, err := Resolve(cfg, WithStrictVersions(false)); err != nil {
		t.Errorf("non-strict Resolve() error = %v", err)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	cfg := NewConfig()
	cfg.Presets.Everything()
	cfg.Modules(catalog.GLFW)
	cfg.UseAllNativePlatforms()

	r, err := NewResolver()
	if err != nil {
		t.Fatal(err)
	}
	first, err := r.Resolve(cfg)
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Resolve(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second resolution differs (-first +second):\n%s", diff)
	}
}

func TestResolve_VersionFunc(t *testing.T) {
	cfg := NewConfig()
	cfg.Modules(catalog.GLFW)
	cfg.NativePlatforms(catalog.Linux)

	current := "3.3.4"
	cfg.SetVersionFunc(func() string { return current })
	current = "3.3.5"

	result := mustResolve(t, cfg)
	if result.Version != "3.3.5" || result.Implementation[0].Version != "3.3.5" {
		t.Errorf("version = %q, want the value at resolution time", result.Version)
	}

	cfg.SetVersion("3.3.6")
	if got := cfg.Version(); got != "3.3.6" {
		t.Errorf("SetVersion did not replace the version func: %q", got)
	}
}

func TestResolve_LogsWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := NewConfig()
	cfg.SetVersion("3.1.0")
	cfg.Modules(catalog.Assimp)
	cfg.NativePlatforms(catalog.Linux)

	mustResolve(t, cfg, WithLogger(logger))

	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "module=assimp") {
		t.Errorf("expected a structured warning, got:\n%s", out)
	}
	if !strings.Contains(out, "resolved LWJGL dependencies") {
		t.Errorf("expected a debug summary, got:\n%s", out)
	}
}
