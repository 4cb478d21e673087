package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"snowball/internal/ast"
)

func FormatASTJSON(w io.Writer, n ast.Node) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildAST(n))
}

func FormatASTYAML(w io.Writer, n ast.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(BuildAST(n)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// FormatASTSetJSON dumps several trees keyed by file path.
func FormatASTSetJSON(w io.Writer, trees map[string]ast.Node) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildSet(trees))
}

func FormatASTSetYAML(w io.Writer, trees map[string]ast.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(buildSet(trees)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// buildSet maps files that failed to parse to nil.
func buildSet(trees map[string]ast.Node) map[string]*ASTNode {
	out := make(map[string]*ASTNode, len(trees))
	for path, n := range trees {
		if n.Kind() == nil {
			out[path] = nil
			continue
		}
		node := BuildAST(n)
		out[path] = &node
	}
	return out
}
