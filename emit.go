package songtex

import (
	"fmt"
	"strings"
)

// Continuation is the line-break suffix carried by every content line
// of a group except its last.
const Continuation = ` \\`

// Emit renders the final LaTeX document for one song. It is pure
// templating over the assembled sections: chord logic is finished by
// the time they reach it, and re-running it over unchanged sections
// yields byte-identical text. Title, artist and year are opaque
// strings.
func Emit(title, artist, year string, asm Assembly) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\\mysong{%s}{%s %s}{}\n", title, artist, year)
	b.WriteString("\\begin{song}{}\n")
	for _, s := range asm.Sections {
		name := s.Kind.GroupName()
		b.WriteString("\\begin{" + name + "}\n")
		for i, line := range s.Lines {
			b.WriteString(line)
			if i < len(s.Lines)-1 {
				b.WriteString(Continuation)
			}
			b.WriteString("\n")
		}
		b.WriteString("\\end{" + name + "}\n")
	}
	if asm.Trailing != "" {
		b.WriteString(asm.Trailing + "\n")
	}
	b.WriteString("\\end{song}\n")
	b.WriteString("\\pagebreak\n")
	return b.String()
}
