// Package buildutil provides helpers for reading arguments out of
// buildtools AST nodes.
//
// The value functions ([StringValue], [BoolValue], [StringListValue])
// report whether the conversion succeeded so callers can produce
// diagnostics for the offending expression.
package buildutil

import (
	"github.com/bazelbuild/buildtools/build"
)

// Keywords returns the keyword arguments of a call in source order.
func Keywords(call *build.CallExpr) []*build.AssignExpr {
	var result []*build.AssignExpr
	for _, arg := range call.List {
		if assign, ok := arg.(*build.AssignExpr); ok {
			result = append(result, assign)
		}
	}
	return result
}

// Positional returns the positional arguments of a call in source order.
func Positional(call *build.CallExpr) []build.Expr {
	var result []build.Expr
	for _, arg := range call.List {
		if _, ok := arg.(*build.AssignExpr); ok {
			continue
		}
		result = append(result, arg)
	}
	return result
}

// StringValue converts a string literal.
func StringValue(expr build.Expr) (string, bool) {
	str, ok := expr.(*build.StringExpr)
	if !ok {
		return "", false
	}
	return str.Value, true
}

// BoolValue converts a True or False identifier.
func BoolValue(expr build.Expr) (value, ok bool) {
	ident, isIdent := expr.(*build.Ident)
	if !isIdent {
		return false, false
	}
	switch ident.Name {
	case "True":
		return true, true
	case "False":
		return false, true
	}
	return false, false
}

// StringListValue converts a list whose elements are all string literals.
// It fails on the first element that is not a string.
func StringListValue(expr build.Expr) ([]string, bool) {
	list, ok := expr.(*build.ListExpr)
	if !ok {
		return nil, false
	}
	result := make([]string, 0, len(list.List))
	for _, elem := range list.List {
		s, ok := StringValue(elem)
		if !ok {
			return nil, false
		}
		result = append(result, s)
	}
	return result, true
}

// FuncName returns the function name from a CallExpr.
// Returns empty string if the call is not a simple function call
// (e.g., method calls like foo.bar()).
func FuncName(call *build.CallExpr) string {
	if ident, ok := call.X.(*build.Ident); ok {
		return ident.Name
	}
	return ""
}

// MethodCall splits a call like presets.getting_started() into its
// receiver ("presets") and method ("getting_started") names.
func MethodCall(call *build.CallExpr) (receiver, method string, ok bool) {
	dot, isDot := call.X.(*build.DotExpr)
	if !isDot {
		return "", "", false
	}
	ident, isIdent := dot.X.(*build.Ident)
	if !isIdent {
		return "", "", false
	}
	return ident.Name, dot.Name, true
}

// TargetName returns the dotted name an assignment writes to:
// "version" for `version = ...`, "presets.filter_min_version" for
// `presets.filter_min_version = ...`. Returns empty string for any other
// left-hand side.
func TargetName(assign *build.AssignExpr) string {
	switch lhs := assign.LHS.(type) {
	case *build.Ident:
		return lhs.Name
	case *build.DotExpr:
		if ident, ok := lhs.X.(*build.Ident); ok {
			return ident.Name + "." + lhs.Name
		}
	}
	return ""
}
