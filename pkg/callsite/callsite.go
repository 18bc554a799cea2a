package callsite

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"runtime"
	"sync"

	"golang.org/x/tools/go/ast/inspector"
)

// Argument returns the source text of the index-th argument of the call to
// funcName made on the line of the frame identified by skip, where skip 0 is
// the caller of Argument. It returns "" when the text cannot be recovered.
func Argument(skip int, funcName string, index int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	return FromFile(file, line, funcName, index)
}

// FromFile returns the source text of the index-th argument of the call to
// funcName that spans the given line of filename. Parsed files are kept for
// the life of the process, so each file is read and parsed at most once.
func FromFile(filename string, line int, funcName string, index int) string {
	src := load(filename)
	if src.file == nil {
		return ""
	}
	return FromAST(src.fset, src.file, line, funcName, index)
}

type source struct {
	fset *token.FileSet
	file *ast.File
}

// files maps a file name to its parsed source. Files that failed to parse
// are stored with a nil file so they are not retried.
var files sync.Map

func load(filename string) source {
	if v, ok := files.Load(filename); ok {
		return v.(source)
	}

	src := source{fset: token.NewFileSet()}
	f, err := parser.ParseFile(src.fset, filename, nil, parser.SkipObjectResolution)
	if err == nil {
		src.file = f
	}

	v, _ := files.LoadOrStore(filename, src)
	return v.(source)
}

// FromAST is FromFile for an already parsed file.
func FromAST(fset *token.FileSet, f *ast.File, line int, funcName string, index int) string {
	if f == nil || funcName == "" || index < 0 || line <= 0 {
		return ""
	}

	var (
		exact, spanning   *ast.CallExpr
		nexact, nspanning int
	)
	in := inspector.New([]*ast.File{f})
	in.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		if calleeName(call.Fun) != funcName || len(call.Args) <= index {
			return
		}
		// The compiler attributes a call to the line of its opening paren,
		// but a multi-line call may be reported on any line it spans.
		switch {
		case fset.Position(call.Lparen).Line == line:
			exact = call
			nexact++
		case fset.Position(call.Pos()).Line <= line && line <= fset.Position(call.End()).Line:
			spanning = call
			nspanning++
		}
	})

	// Several candidates cannot be told apart by line alone.
	var call *ast.CallExpr
	switch {
	case nexact == 1:
		call = exact
	case nexact == 0 && nspanning == 1:
		call = spanning
	default:
		return ""
	}
	return render(fset, ast.Unparen(call.Args[index]))
}

// calleeName returns the final identifier of a call target:
// f, pkg.F, F[int] and pkg.F[K, V] all yield the bare name.
func calleeName(fun ast.Expr) string {
	switch f := ast.Unparen(fun).(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.IndexExpr:
		return calleeName(f.X)
	case *ast.IndexListExpr:
		return calleeName(f.X)
	}
	return ""
}

func render(fset *token.FileSet, expr ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return ""
	}
	return buf.String()
}
