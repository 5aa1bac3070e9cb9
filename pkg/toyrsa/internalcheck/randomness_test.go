package internalcheck

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// Constructors build an explicit generator; everything else in math/rand
// reads the process-wide one.
var allowedRandFuncs = map[string]bool{
	"New":        true,
	"NewChaCha8": true,
	"NewPCG":     true,
	"NewSource":  true,
}

func TestNoGlobalRandomness(t *testing.T) {
	pkgs := loadLibrary(t, packages.NeedSyntax|packages.NeedTypes|packages.NeedTypesInfo|packages.NeedFiles|packages.NeedName)

	var findings []string
	inspectCalls(pkgs, func(pkg *packages.Package, fset *token.FileSet, call *ast.CallExpr) {
		fn := calledFunc(pkg.TypesInfo, call)
		if fn == nil || fn.Pkg() == nil {
			return
		}
		path := fn.Pkg().Path()
		if path != "math/rand" && path != "math/rand/v2" {
			return
		}
		if sig, ok := fn.Type().(*types.Signature); ok && sig.Recv() != nil {
			return
		}
		if allowedRandFuncs[fn.Name()] {
			return
		}
		findings = append(findings, fmt.Sprintf("%s: %s.%s uses the global generator; take an entropy.Source", fset.Position(call.Pos()), path, fn.Name()))
	})

	if len(findings) > 0 {
		t.Fatalf("randomness policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

func TestNoBigIntExp(t *testing.T) {
	pkgs := loadLibrary(t, packages.NeedSyntax|packages.NeedTypes|packages.NeedTypesInfo|packages.NeedFiles|packages.NeedName)

	var findings []string
	inspectCalls(pkgs, func(pkg *packages.Package, fset *token.FileSet, call *ast.CallExpr) {
		fn := calledFunc(pkg.TypesInfo, call)
		if fn == nil || fn.Pkg() == nil || fn.Pkg().Path() != "math/big" {
			return
		}
		if fn.Name() != "Exp" && fn.Name() != "ModInverse" {
			return
		}
		findings = append(findings, fmt.Sprintf("%s: big.Int.%s bypasses numtheory", fset.Position(call.Pos()), fn.Name()))
	})

	if len(findings) > 0 {
		t.Fatalf("arithmetic policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

func calledFunc(info *types.Info, call *ast.CallExpr) *types.Func {
	var ident *ast.Ident
	switch fun := call.Fun.(type) {
	case *ast.Ident:
		ident = fun
	case *ast.SelectorExpr:
		ident = fun.Sel
	default:
		return nil
	}
	fn, _ := info.Uses[ident].(*types.Func)
	return fn
}
