// Package canonical renders a parsed configuration tree into a
// deterministic, indented textual form. The output exists only as diff
// input: structurally equal documents yield byte-identical text, and a
// single changed scalar touches a single line.
package canonical

import (
	"strconv"
	"strings"

	"github.com/emt/driftwatch/pkg/parser"
)

const indentStep = "  "

// Marshal renders doc into its canonical text. Mappings keep the
// insertion order preserved by the parser; no round-trip back into the
// original format is intended.
func Marshal(doc *parser.Document) string {
	var b strings.Builder
	writeNode(&b, doc.Root, "")
	return b.String()
}

func writeNode(b *strings.Builder, n *parser.Node, indent string) {
	switch n.Kind {
	case parser.KindScalar:
		b.WriteString(scalarLiteral(n))
	case parser.KindMapping:
		if len(n.Pairs) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{\n")
		inner := indent + indentStep
		for i, p := range n.Pairs {
			b.WriteString(inner)
			b.WriteString(strconv.Quote(p.Key))
			b.WriteString(": ")
			writeNode(b, p.Value, inner)
			if i < len(n.Pairs)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(indent)
		b.WriteByte('}')
	case parser.KindSequence:
		if len(n.Items) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		inner := indent + indentStep
		for i, item := range n.Items {
			b.WriteString(inner)
			writeNode(b, item, inner)
			if i < len(n.Items)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(indent)
		b.WriteByte(']')
	default:
		b.WriteString("null")
	}
}

// scalarLiteral renders a scalar on one line. Numbers and booleans keep
// their parsed literal; everything else is quoted so strings like "true"
// stay distinguishable from the boolean.
func scalarLiteral(n *parser.Node) string {
	switch n.Tag {
	case "!!int", "!!float", "!!bool":
		return n.Value
	}
	return strconv.Quote(n.Value)
}
