package internalcheck

import (
	"go/ast"
	"go/token"
	"testing"

	"golang.org/x/tools/go/packages"
)

const libraryPattern = "github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/..."

// loadLibrary returns the non-test packages under pkg/toyrsa.
func loadLibrary(t *testing.T, mode packages.LoadMode) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{Mode: mode}
	pkgs, err := packages.Load(cfg, libraryPattern)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatalf("packages under %s contain errors", libraryPattern)
	}
	return pkgs
}

// inspectCalls invokes fn for every call expression in the loaded packages.
func inspectCalls(pkgs []*packages.Package, fn func(pkg *packages.Package, fset *token.FileSet, call *ast.CallExpr)) {
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				if call, ok := n.(*ast.CallExpr); ok {
					fn(pkg, pkg.Fset, call)
				}
				return true
			})
		}
	}
}
