// Command pagelint flags a region variable read after it has been passed
// as the receiver of one of the permission lattice's consuming transitions
// (AllowRead, DenyRead, AllowWrite, DenyWrite, AllowWriteNoExec, AllowExec,
// DenyExec, SetProtectedExec). In the source this library's permission
// states were modeled after, that pattern is a compile error: the old
// value is moved into the transition and can't be named again. Go has no
// move semantics, so the old value keeps compiling; pagelint is the
// closest a build-time tool can get to rejecting it anyway.
//
// Usage:
//
//	pagelint ./...
//
// pagelint is a best-effort, single-pass-per-function checker. It
// flattens a function's statements into one sequential timeline, so it
// can miss uses guarded by a branch that never executes and can also
// produce false positives across mutually exclusive branches (e.g. one
// arm of an if/else consumes a variable the other arm doesn't touch).
// Treat a report as something to look at, not an infallible verdict.
package main

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"os"

	"golang.org/x/tools/go/packages"
)

var consumingMethods = map[string]bool{
	"AllowRead":        true,
	"DenyRead":         true,
	"AllowWrite":       true,
	"DenyWrite":        true,
	"AllowWriteNoExec": true,
	"AllowExec":        true,
	"DenyExec":         true,
	"SetProtectedExec": true,
}

type violation struct {
	pos  token.Position
	name string
}

func main() {
	patterns := os.Args[1:]
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo | packages.NeedDeps,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pagelint: %v\n", err)
		os.Exit(2)
	}
	if packages.PrintErrors(pkgs) > 0 {
		os.Exit(2)
	}

	var violations []violation
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			for _, decl := range file.Decls {
				fn, ok := decl.(*ast.FuncDecl)
				if !ok || fn.Body == nil {
					continue
				}
				violations = append(violations, checkFunc(pkg.Fset, pkg.TypesInfo, fn)...)
			}
		}
	}

	for _, v := range violations {
		fmt.Printf("%s: use of %s after it was consumed by a permission transition\n", v.pos, v.name)
	}
	if len(violations) > 0 {
		os.Exit(1)
	}
}

// flatten returns a function body's statements in source order, inlining
// the bodies of nested blocks, if/for/switch statements so the whole
// function is walked as one timeline. It does not attempt to model
// control flow: both branches of an if are flattened into the same
// sequence.
func flatten(stmts []ast.Stmt) []ast.Stmt {
	var out []ast.Stmt
	for _, s := range stmts {
		out = append(out, s)
		switch x := s.(type) {
		case *ast.BlockStmt:
			out = append(out, flatten(x.List)...)
		case *ast.IfStmt:
			out = append(out, flatten(x.Body.List)...)
			if x.Else != nil {
				out = append(out, flatten([]ast.Stmt{x.Else})...)
			}
		case *ast.ForStmt:
			out = append(out, flatten(x.Body.List)...)
		case *ast.RangeStmt:
			out = append(out, flatten(x.Body.List)...)
		case *ast.SwitchStmt:
			for _, c := range x.Body.List {
				if cc, ok := c.(*ast.CaseClause); ok {
					out = append(out, flatten(cc.Body)...)
				}
			}
		case *ast.TypeSwitchStmt:
			for _, c := range x.Body.List {
				if cc, ok := c.(*ast.CaseClause); ok {
					out = append(out, flatten(cc.Body)...)
				}
			}
		}
	}
	return out
}

// receiverIdent returns the identifier x in a call of the form
// x.Method(...) when Method is one of the consuming transitions and x
// resolves to an object in info.Uses; otherwise it returns nil.
func receiverIdent(info *types.Info, call *ast.CallExpr) *ast.Ident {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || !consumingMethods[sel.Sel.Name] {
		return nil
	}
	id, ok := sel.X.(*ast.Ident)
	if !ok {
		return nil
	}
	if info.Uses[id] == nil {
		return nil
	}
	return id
}

func checkFunc(fset *token.FileSet, info *types.Info, fn *ast.FuncDecl) []violation {
	consumed := map[types.Object]bool{}
	var out []violation

	for _, stmt := range flatten(fn.Body.List) {
		// Identify this statement's own consuming-call receivers first, so
		// the receiver use itself is never flagged as a post-consumption
		// read.
		receivers := map[*ast.Ident]bool{}
		ast.Inspect(stmt, func(n ast.Node) bool {
			if call, ok := n.(*ast.CallExpr); ok {
				if id := receiverIdent(info, call); id != nil {
					receivers[id] = true
				}
			}
			return true
		})

		ast.Inspect(stmt, func(n ast.Node) bool {
			id, ok := n.(*ast.Ident)
			if !ok || receivers[id] {
				return true
			}
			obj := info.Uses[id]
			if obj != nil && consumed[obj] {
				out = append(out, violation{pos: fset.Position(id.Pos()), name: id.Name})
			}
			return true
		})

		for id := range receivers {
			consumed[info.Uses[id]] = true
		}

		// A plain reassignment (x = ...) hands x a fresh value; it is no
		// longer the consumed one.
		if assign, ok := stmt.(*ast.AssignStmt); ok && assign.Tok == token.ASSIGN {
			for _, lhs := range assign.Lhs {
				if id, ok := lhs.(*ast.Ident); ok {
					if obj := info.Defs[id]; obj != nil {
						delete(consumed, obj)
					} else if obj := info.Uses[id]; obj != nil {
						delete(consumed, obj)
					}
				}
			}
		}
	}
	return out
}
