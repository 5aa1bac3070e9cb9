package internalcheck

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

func TestNoHexFormatting(t *testing.T) {
	pkgs := loadLibrary(t, packages.NeedSyntax|packages.NeedTypes|packages.NeedTypesInfo|packages.NeedFiles|packages.NeedName)

	var findings []string
	inspectCalls(pkgs, func(pkg *packages.Package, fset *token.FileSet, call *ast.CallExpr) {
		fn := calledFunc(pkg.TypesInfo, call)
		if fn == nil || fn.Pkg() == nil {
			return
		}

		formatIdx, ok := formatIndex(fn.Pkg().Path(), fn.Name())
		if !ok || len(call.Args) <= formatIdx {
			return
		}

		lit, ok := call.Args[formatIdx].(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING {
			return
		}

		value, err := strconv.Unquote(lit.Value)
		if err != nil {
			return
		}

		if containsHexVerb(value) {
			findings = append(findings, fmt.Sprintf("%s: avoid %%x formatting of key material", fset.Position(lit.Pos())))
		}
	})

	if len(findings) > 0 {
		t.Fatalf("secret logging policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

func formatIndex(pkgPath, name string) (int, bool) {
	switch pkgPath {
	case "fmt":
		switch name {
		case "Errorf", "Printf", "Sprintf":
			return 0, true
		case "Fprintf":
			return 1, true
		}
	case "log":
		switch name {
		case "Printf", "Fatalf", "Panicf":
			return 0, true
		}
	case "github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa":
		if name == "Errorf" {
			return 2, true
		}
	}
	return 0, false
}

func containsHexVerb(s string) bool {
	return strings.Contains(s, "%x") || strings.Contains(s, "%X")
}
