package adapter

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"sort"

	m "hotedit.dev/pkg/hotedit/internal/model"
)

// GoFileAdapter encapsulates Go-specific parsing so handler region discovery
// for Go documents does not leak go/ast into the domain layer.
type GoFileAdapter interface {
	// Parse builds an AST using the provided file set and source bytes.
	Parse(ctx context.Context, fileSet *token.FileSet, filename string, src []byte) (*ast.File, error)

	// HandlerRegions returns the spans of the bodies of deferred function
	// literals. Code in those bodies runs while a panic unwinds, which makes
	// them the Go counterpart of finally and catch blocks.
	HandlerRegions(fileSet *token.FileSet, file *ast.File) []m.Span
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Parse builds an AST for the provided filename/source pair.
func (a *LocalGoFileAdapter) Parse(ctx context.Context, fileSet *token.FileSet, filename string, src []byte) (*ast.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return parser.ParseFile(fileSet, filename, src, parser.SkipObjectResolution)
}

// HandlerRegions collects deferred function literal bodies, including nested
// ones, ordered by position.
func (a *LocalGoFileAdapter) HandlerRegions(fileSet *token.FileSet, file *ast.File) []m.Span {
	var spans []m.Span

	ast.Inspect(file, func(node ast.Node) bool {
		deferStmt, ok := node.(*ast.DeferStmt)
		if !ok || deferStmt.Call == nil {
			return true
		}

		lit, ok := deferStmt.Call.Fun.(*ast.FuncLit)
		if !ok || lit.Body == nil {
			return true
		}

		spans = append(spans, spanOf(fileSet, lit.Body.Lbrace, lit.Body.End()))

		return true
	})

	sort.Slice(spans, func(i, j int) bool { return spans[i].Compare(spans[j]) < 0 })

	return spans
}

// spanOf converts token positions to a zero-based span.
func spanOf(fileSet *token.FileSet, start, end token.Pos) m.Span {
	from := fileSet.Position(start)
	to := fileSet.Position(end)

	return m.NewSpan(from.Line-1, from.Column-1, to.Line-1, to.Column-1)
}
