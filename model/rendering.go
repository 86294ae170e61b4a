package model

import (
	"fmt"
	"os"
	"os/exec"
)

// Style is the visual class of a cell. Renderers pick colors per style.
type Style int

const (
	StyleDead Style = iota
	StyleFresh
	StyleMature
)

// matureAge is the age from which a living cell is drawn as mature
const matureAge = 2

const (
	gridPosMature = "██"
	gridPosFresh  = "░░"
	gridPosEmpty  = "  "

	macosClearCmd = "clear"
)

// StyleOf maps a cell to its visual class
func StyleOf(c Cell) Style {
	switch {
	case !c.Alive:
		return StyleDead
	case c.Age < matureAge:
		return StyleFresh
	default:
		return StyleMature
	}
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders a snapshot to the terminal. Rows run left to right, columns top to bottom.
func (r *TerminalRenderer) Display(snapshot [][]Cell) {
	fmt.Print(Format(snapshot))
}

// Format renders a snapshot as text, one screen line per column index
func Format(snapshot [][]Cell) string {
	if len(snapshot) == 0 {
		return ""
	}

	var (
		width  = len(snapshot)
		height = len(snapshot[0])
		out    = make([]byte, 0, (width*len(gridPosMature)+1)*height)
	)
	for col := range height {
		for row := range width {
			switch StyleOf(snapshot[row][col]) {
			case StyleMature:
				out = append(out, gridPosMature...)
			case StyleFresh:
				out = append(out, gridPosFresh...)
			default:
				out = append(out, gridPosEmpty...)
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	var cmd *exec.Cmd
	cmd = exec.Command(macosClearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
