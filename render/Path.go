// Package render draws line world paths and action value tables as
// text
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/samuelfneumann/lineworld/environment/lineworld"
	"github.com/samuelfneumann/lineworld/utils/matutils"
	"gonum.org/v1/gonum/mat"
)

// Path writes one boxed row of the board for each state in path. The
// hole is marked H, the apple A and the position at that step X. Rows
// are labelled Step 1, Step 2, and so on. If colour is true, the marks
// are coloured with ANSI escape codes.
func Path(w io.Writer, path []int, colour bool) error {
	au := aurora.NewAurora(colour)
	border := strings.Repeat("+---", lineworld.BoardSize) + "+\n"

	var b strings.Builder
	for i, state := range path {
		if state < 0 || state >= lineworld.BoardSize {
			return fmt.Errorf("path: state %d at step %d off the board",
				state, i+1)
		}

		label := fmt.Sprintf("Step %d: ", i+1)
		indent := strings.Repeat(" ", len(label))

		b.WriteString(indent + border)
		b.WriteString(label + "|")
		for j := 0; j < lineworld.BoardSize; j++ {
			switch {
			case j == state:
				fmt.Fprintf(&b, " %v |", au.Green("X").Bold())
			case j == lineworld.Hole:
				fmt.Fprintf(&b, " %v |", au.Red("H"))
			case j == lineworld.Goal:
				fmt.Fprintf(&b, " %v |", au.Yellow("A"))
			default:
				b.WriteString("   |")
			}
		}
		b.WriteString("\n" + indent + border)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Table writes the action values of table, one row per state
func Table(w io.Writer, table mat.Matrix) error {
	_, err := fmt.Fprintln(w, matutils.Format(table))
	return err
}
