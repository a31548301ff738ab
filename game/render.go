package game

import (
	"fmt"
	"strings"
)

const rule = "-----------"

// String renders the board one row per line between dashed rules.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(rule)
	for i := 0; i < Length; i++ {
		sb.WriteString("\n ")
		for j := 0; j < Length; j++ {
			fmt.Fprintf(&sb, "%-4s", b.squares[i][j])
		}
		sb.WriteString("\n")
		sb.WriteString(rule)
	}
	sb.WriteString("\n")
	return sb.String()
}
