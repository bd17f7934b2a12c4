package format

import (
	golwjgl "github.com/albertocavalcante/go-lwjgl"
	"github.com/bazelbuild/buildtools/build"
)

// DefaultRepositoryName is the maven.install repository name used by
// Render.
const DefaultRepositoryName = "lwjgl"

const rulesJvmExternalExtension = "@rules_jvm_external//:extensions.bzl"

// ToStarlark outputs a MODULE.bazel snippet that installs the result's
// coordinates through rules_jvm_external:
//
//	maven = use_extension("@rules_jvm_external//:extensions.bzl", "maven")
//	maven.install(
//	    name = "lwjgl",
//	    artifacts = [
//	        "org.lwjgl:lwjgl:3.3.6",
//	        "org.lwjgl:lwjgl:jar:natives-linux:3.3.6",
//	    ],
//	)
//	use_repo(maven, "lwjgl")
//
// Classified coordinates use the group:artifact:packaging:classifier:version
// form that rules_jvm_external expects.
func ToStarlark(r *golwjgl.Result, repository string) string {
	artifacts := make([]build.Expr, 0, len(r.Implementation)+len(r.Runtime))
	for _, c := range r.Implementation {
		artifacts = append(artifacts, str(jvmExternalCoordinate(c)))
	}
	for _, c := range r.Runtime {
		artifacts = append(artifacts, str(jvmExternalCoordinate(c)))
	}

	f := &build.File{
		Type: build.TypeDefault,
		Stmt: []build.Expr{
			&build.AssignExpr{
				LHS: ident("maven"),
				Op:  "=",
				RHS: &build.CallExpr{
					X:    ident("use_extension"),
					List: []build.Expr{str(rulesJvmExternalExtension), str("maven")},
				},
			},
			&build.CallExpr{
				X: &build.DotExpr{X: ident("maven"), Name: "install"},
				List: []build.Expr{
					keyword("name", str(repository)),
					keyword("artifacts", &build.ListExpr{List: artifacts, ForceMultiLine: true}),
				},
				ForceMultiLine: true,
			},
			&build.CallExpr{
				X:    ident("use_repo"),
				List: []build.Expr{ident("maven"), str(repository)},
			},
		},
	}
	return string(build.Format(f))
}

func jvmExternalCoordinate(c golwjgl.Coordinate) string {
	if c.Classifier == "" {
		return c.String()
	}
	return c.Group + ":" + c.Artifact + ":jar:" + c.Classifier + ":" + c.Version
}

func ident(name string) *build.Ident {
	return &build.Ident{Name: name}
}

func str(value string) *build.StringExpr {
	return &build.StringExpr{Value: value}
}

func keyword(name string, value build.Expr) *build.AssignExpr {
	return &build.AssignExpr{LHS: ident(name), Op: "=", RHS: value}
}
