package doc

import (
	"fmt"
	"strings"
)

// Markdown renders a ModuleDoc as a markdown document: one section per
// function with a fenced signature line and the docstring as description.
func Markdown(md *ModuleDoc) string {
	var sb strings.Builder
	sb.WriteString("# Code Documentation\n")

	for _, f := range md.Funcs {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "## Function: `%s`\n\n", f.Name)
		sb.WriteString("**Signature:**\n")
		fmt.Fprintf(&sb, "```python\ndef %s(%s)\n```\n", f.Name, strings.Join(f.Params, ", "))
		if f.Doc != "" {
			sb.WriteString("\n**Description:**\n")
			sb.WriteString(f.Doc)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
