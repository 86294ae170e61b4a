package model

import "fmt"

// Cell is a single automaton unit. Row and Column are fixed once the cell is
// placed in a grid; Alive and Age change every generation.
type Cell struct {
	Row    int
	Column int
	Age    int
	Alive  bool
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d alive=%v age=%d)", c.Row, c.Column, c.Alive, c.Age)
}

// kill marks the cell dead. Dead cells always have age 0.
func (c *Cell) kill() {
	c.Alive = false
	c.Age = 0
}
