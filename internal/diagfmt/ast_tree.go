package diagfmt

import (
	"io"
	"strings"

	"snowball/internal/ast"
)

// FormatASTTree печатает дерево с псевдографикой:
//
//	TopLevel
//	└── FuncDef main -> void [public]
//	    └── body: Block
func FormatASTTree(w io.Writer, n ast.Node) error {
	var sb strings.Builder
	root := BuildAST(n)
	sb.WriteString(treeLabel(root))
	sb.WriteByte('\n')
	writeTreeChildren(&sb, root.Children, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTreeChildren(sb *strings.Builder, children []ASTNode, prefix string) {
	for i, c := range children {
		branch, indent := "├── ", "│   "
		if i == len(children)-1 {
			branch, indent = "└── ", "    "
		}
		sb.WriteString(prefix + branch + treeLabel(c) + "\n")
		writeTreeChildren(sb, c.Children, prefix+indent)
	}
}

func treeLabel(n ASTNode) string {
	var sb strings.Builder
	if n.Role != "" {
		sb.WriteString(n.Role + ": ")
	}
	sb.WriteString(n.Kind)
	if n.Name != "" {
		sb.WriteString(" " + n.Name)
	}
	if n.Value != "" {
		sb.WriteString(" " + n.Value)
	}
	if n.Type != "" {
		if n.Kind == "FuncDef" {
			sb.WriteString(" -> " + n.Type)
		} else {
			sb.WriteString(": " + n.Type)
		}
	}
	if len(n.Attrs) > 0 {
		sb.WriteString(" [" + strings.Join(n.Attrs, ", ") + "]")
	}
	return sb.String()
}
