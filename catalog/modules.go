package catalog

import "strings"

// Core is the base LWJGL module. It is part of every resolution.
var Core = NewModule("core").WithArtifact("lwjgl")

// Khronos APIs.
var (
	// EGL is the interface between Khronos rendering APIs and the native window system.
	EGL = NewModule("egl").WithoutNatives()
	// KTX is the Khronos texture container format.
	KTX = NewModule("ktx").WithMinVersion("3.3.2-SNAPSHOT")
	// OpenCL is the Khronos parallel programming API.
	OpenCL = NewModule("opencl").WithoutNatives()
	// OpenGL bindings.
	OpenGL = NewModule("opengl")
	// OpenGLES bindings for OpenGL ES.
	OpenGLES = NewModule("opengles")
	// OpenXR is the Khronos AR/VR runtime API.
	OpenXR = NewModule("openxr").WithMinVersion("3.3.1")
	// Vulkan bindings.
	Vulkan = NewModule("vulkan")
)

// Display and input.
var (
	// GLFW handles windows, contexts and input.
	GLFW = NewModule("glfw")
	// JAWT is the AWT native interface.
	JAWT = NewModule("jawt").WithoutNatives()
	// NFD is Native File Dialog Extended.
	NFD = NewModule("nfd")
	// TinyFD is tiny file dialogs.
	TinyFD = NewModule("tinyfd")
)

// Audio.
var (
	FMOD   = NewModule("fmod").WithoutNatives().WithMinVersion("3.3.2-SNAPSHOT")
	OpenAL = NewModule("openal")
	Opus   = NewModule("opus").WithMinVersion("3.2.1")
)

// Graphics and assets.
var (
	Assimp        = NewModule("assimp").WithMinVersion("3.1.1")
	BGFX          = NewModule("bgfx")
	FreeType      = NewModule("freetype").WithMinVersion("3.3.2-SNAPSHOT")
	HarfBuzz      = NewModule("harfbuzz").WithMinVersion("3.3.2-SNAPSHOT")
	MeshOptimizer = NewModule("meshoptimizer").WithMinVersion("3.3.0")
	MSDFGen       = NewModule("msdfgen").WithMinVersion("3.3.4")
	NanoVG        = NewModule("nanovg")
	Nuklear       = NewModule("nuklear")
	Par           = NewModule("par")
	Shaderc       = NewModule("shaderc").WithMinVersion("3.2.3")
	SPVC          = NewModule("spvc").WithMinVersion("3.3.0")
	TinyEXR       = NewModule("tinyexr").WithMinVersion("3.1.2")
	Tootle        = NewModule("tootle").WithMinVersion("3.1.5")
	VMA           = NewModule("vma").WithMinVersion("3.2.0")
	Yoga          = NewModule("yoga").WithMinVersion("3.1.2")
)

// AR/VR.
var (
	OpenVR = NewModule("openvr").WithMinVersion("3.1.2")
	OVR    = NewModule("ovr").WithMinVersion("3.1.2")
)

// STB is the stb collection of single-file libraries (image, truetype, vorbis, ...).
var STB = NewModule("stb")

// Miscellaneous utilities.
var (
	CUDA      = NewModule("cuda").WithoutNatives().WithMinVersion("3.2.1")
	HWLoc     = NewModule("hwloc").WithMinVersion("3.3.2-SNAPSHOT")
	JEmalloc  = NewModule("jemalloc")
	LibDivide = NewModule("libdivide").WithMinVersion("3.2.1")
	LLVM      = NewModule("llvm").WithMinVersion("3.2.1")
	LMDB      = NewModule("lmdb")
	LZ4       = NewModule("lz4").WithMinVersion("3.1.4")
	Meow      = NewModule("meow").WithMinVersion("3.2.1")
	ODBC      = NewModule("odbc").WithoutNatives().WithMinVersion("3.1.4")
	Remotery  = NewModule("remotery").WithMinVersion("3.1.4")
	RPmalloc  = NewModule("rpmalloc").WithMinVersion("3.1.3")
	XXHash    = NewModule("xxhash")
	SSE       = NewModule("sse")
	Zstd      = NewModule("zstd").WithMinVersion("3.1.4")
)

// allModules is the upstream module table in declaration order, without Core.
var allModules = []Module{
	EGL, KTX, OpenCL, OpenGL, OpenGLES, OpenXR, Vulkan,
	GLFW, JAWT, NFD, TinyFD,
	FMOD, OpenAL, Opus,
	Assimp, BGFX, FreeType, HarfBuzz, MeshOptimizer, MSDFGen, NanoVG, Nuklear,
	Par, Shaderc, SPVC, TinyEXR, Tootle, VMA, Yoga,
	OpenVR, OVR,
	STB,
	CUDA, HWLoc, JEmalloc, LibDivide, LLVM, LMDB, LZ4, Meow, ODBC, Remotery,
	RPmalloc, XXHash, SSE, Zstd,
}

var modulesByName = indexModules(append([]Module{Core}, allModules...))

func indexModules(modules []Module) map[string]Module {
	index := make(map[string]Module, len(modules))
	for _, m := range modules {
		index[m.Name] = m
	}
	return index
}

// Modules returns every module in the catalog except Core, in upstream order.
// The returned slice is a copy.
func Modules() []Module {
	out := make([]Module, len(allModules))
	copy(out, allModules)
	return out
}

// ModuleByName looks up a module by name. Core is found as "core" and,
// for convenience, by its artifact name "lwjgl". Lookup ignores case.
func ModuleByName(name string) (Module, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == Core.Artifact {
		return Core, true
	}
	m, ok := modulesByName[strings.TrimPrefix(name, artifactPrefix)]
	return m, ok
}
