package golwjgl

import (
	"errors"
	"fmt"

	"github.com/albertocavalcante/go-lwjgl/internal/buildutil"
	"github.com/bazelbuild/buildtools/build"
)

// DefaultConfigFile is the conventional name of the Starlark config file.
const DefaultConfigFile = "LWJGL.bazel"

// Position represents a source position for diagnostics.
type Position struct {
	Filename string
	Line     int
	Column   int
}

// ParseError represents a config error with position information.
type ParseError struct {
	Pos     Position
	Message string
	Wrapped error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename, e.Pos.Line, e.Pos.Column, e.Message)
	}
	if e.Pos.Filename != "" {
		return fmt.Sprintf("%s: %s", e.Pos.Filename, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}

// ParseConfig parses Starlark config content into a Config, starting from
// the NewConfig defaults. The file is a flat list of statements:
//
//	version = "3.3.6"
//	modules("glfw", "opengl")
//	presets.getting_started()
//	presets.filter_min_version = False
//	native_platforms("linux", "macos-arm64")
//
// Every problem in the file is reported; the returned error joins one
// *ParseError per problem.
func ParseConfig(filename string, content []byte) (*Config, error) {
	raw, err := build.ParseDefault(filename, content)
	if err != nil {
		return nil, &ParseError{
			Pos:     Position{Filename: filename},
			Message: fmt.Sprintf("syntax error: %v", err),
			Wrapped: err,
		}
	}

	p := &configParser{filename: filename, cfg: NewConfig()}
	for _, stmt := range raw.Stmt {
		p.parseStatement(stmt)
	}
	if len(p.errors) > 0 {
		return nil, errors.Join(p.errors...)
	}
	return p.cfg, nil
}

type configParser struct {
	filename string
	cfg      *Config
	errors   []error
}

func (p *configParser) parseStatement(expr build.Expr) {
	switch stmt := expr.(type) {
	case *build.CommentBlock:
		return
	case *build.AssignExpr:
		p.parseAssign(stmt)
	case *build.CallExpr:
		p.parseCall(stmt)
	default:
		p.addError(expr, nil, "unsupported statement")
	}
}

func (p *configParser) parseAssign(assign *build.AssignExpr) {
	target := buildutil.TargetName(assign)
	if assign.Op != "=" {
		p.addError(assign, nil, "%s: only plain assignment is supported, got %q", target, assign.Op)
		return
	}

	switch target {
	case "group", "version", "implementation_bucket", "runtime_bucket":
		value, ok := buildutil.StringValue(assign.RHS)
		if !ok {
			p.addError(assign.RHS, nil, "%s must be a string", target)
			return
		}
		p.setString(target, value)

	case "presets.filter_min_version":
		value, ok := buildutil.BoolValue(assign.RHS)
		if !ok {
			p.addError(assign.RHS, nil, "%s must be True or False", target)
			return
		}
		p.cfg.Presets.FilterMinVersion = value

	default:
		p.addError(assign, nil, "unknown setting %q", target)
	}
}

func (p *configParser) setString(name, value string) {
	switch name {
	case "group":
		p.cfg.Group = value
	case "version":
		p.cfg.SetVersion(value)
	case "implementation_bucket":
		p.cfg.ImplementationBucket = value
	case "runtime_bucket":
		p.cfg.RuntimeBucket = value
	}
}

func (p *configParser) parseCall(call *build.CallExpr) {
	if receiver, method, ok := buildutil.MethodCall(call); ok {
		if receiver != "presets" {
			p.addError(call, nil, "unknown function %s.%s", receiver, method)
			return
		}
		p.applyPresets(call, []string{method})
		p.noArguments(call, "presets."+method)
		return
	}

	name := buildutil.FuncName(call)
	switch name {
	case "modules":
		if names, ok := p.stringArgs(call, name); ok {
			p.applyModules(call, names)
		}

	case "presets":
		if names, ok := p.stringArgs(call, name); ok {
			p.applyPresets(call, names)
		}

	case "native_platforms":
		if names, ok := p.stringArgs(call, name); ok {
			p.applyPlatforms(call, platformSelection{canonical: names})
		}

	case "custom_native_platforms":
		if names, ok := p.stringArgs(call, name); ok {
			p.applyPlatforms(call, platformSelection{custom: names})
		}

	case "use_all_native_platforms":
		p.noArguments(call, name)
		p.cfg.UseAllNativePlatforms()

	case "lwjgl":
		p.parseLwjgl(call)

	default:
		p.addError(call, nil, "unknown function %q", name)
	}
}

// parseLwjgl handles the single-call form:
//
//	lwjgl(
//	    version = "3.3.6",
//	    modules = ["glfw"],
//	    presets = ["minimal_vulkan"],
//	    native_platforms = ["linux"],
//	)
func (p *configParser) parseLwjgl(call *build.CallExpr) {
	if len(buildutil.Positional(call)) > 0 {
		p.addError(call, nil, "lwjgl() takes keyword arguments only")
	}

	var platforms platformSelection
	for _, kw := range buildutil.Keywords(call) {
		key := buildutil.TargetName(kw)
		switch key {
		case "group", "version", "implementation_bucket", "runtime_bucket":
			value, ok := buildutil.StringValue(kw.RHS)
			if !ok {
				p.addError(kw.RHS, nil, "lwjgl(%s) must be a string", key)
				continue
			}
			p.setString(key, value)

		case "filter_min_version", "all_native_platforms":
			value, ok := buildutil.BoolValue(kw.RHS)
			if !ok {
				p.addError(kw.RHS, nil, "lwjgl(%s) must be True or False", key)
				continue
			}
			if key == "filter_min_version" {
				p.cfg.Presets.FilterMinVersion = value
			} else {
				platforms.all = value
			}

		case "modules", "presets", "native_platforms", "custom_native_platforms":
			names, ok := buildutil.StringListValue(kw.RHS)
			if !ok {
				p.addError(kw.RHS, nil, "lwjgl(%s) must be a list of strings", key)
				continue
			}
			switch key {
			case "modules":
				p.applyModules(kw, names)
			case "presets":
				p.applyPresets(kw, names)
			case "native_platforms":
				platforms.canonical = names
			case "custom_native_platforms":
				platforms.custom = names
			}

		default:
			p.addError(kw, nil, "lwjgl() got an unexpected keyword argument %q", key)
		}
	}

	if platforms.isSet() {
		p.applyPlatforms(call, platforms)
	}
}

func (p *configParser) applyModules(at build.Expr, names []string) {
	modules, err := LookupModules(names...)
	if err != nil {
		p.addError(at, err, "%v", err)
		return
	}
	p.cfg.Modules(modules...)
}

func (p *configParser) applyPresets(at build.Expr, names []string) {
	presets, err := LookupPresets(names...)
	if err != nil {
		p.addError(at, err, "%v", err)
		return
	}
	p.cfg.Presets.Add(presets...)
}

func (p *configParser) applyPlatforms(at build.Expr, sel platformSelection) {
	if err := sel.apply(p.cfg); err != nil {
		p.addError(at, err, "%v", err)
	}
}

// stringArgs collects the positional arguments of call. Each argument is a
// string or a list of strings; keyword arguments are rejected.
func (p *configParser) stringArgs(call *build.CallExpr, name string) ([]string, bool) {
	if len(buildutil.Keywords(call)) > 0 {
		p.addError(call, nil, "%s() takes no keyword arguments", name)
		return nil, false
	}
	var names []string
	for _, arg := range buildutil.Positional(call) {
		if s, ok := buildutil.StringValue(arg); ok {
			names = append(names, s)
			continue
		}
		if list, ok := buildutil.StringListValue(arg); ok {
			names = append(names, list...)
			continue
		}
		p.addError(arg, nil, "%s() arguments must be strings", name)
		return nil, false
	}
	return names, true
}

func (p *configParser) noArguments(call *build.CallExpr, name string) {
	if len(call.List) > 0 {
		p.addError(call, nil, "%s() takes no arguments", name)
	}
}

func (p *configParser) position(expr build.Expr) Position {
	start, _ := expr.Span()
	return Position{
		Filename: p.filename,
		Line:     start.Line,
		Column:   start.LineRune,
	}
}

func (p *configParser) addError(at build.Expr, wrapped error, format string, args ...any) {
	p.errors = append(p.errors, &ParseError{
		Pos:     p.position(at),
		Message: fmt.Sprintf(format, args...),
		Wrapped: wrapped,
	})
}
