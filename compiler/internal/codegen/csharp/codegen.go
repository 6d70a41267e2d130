package csharp

import "github.com/j2cs/j2cs/compiler/internal/ast"

// Generate returns the translated class: header, then the rendered body
// between braces.
func Generate(p *ast.Program) string {
	return p.Header + "\n{\n" + Render(p) + "}"
}
