package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

/*
NextState applies the Conway rules and carries the cell age forward.

A surviving cell ages by one generation, a newborn cell starts at age 0,
and a dead cell always has age 0.
*/
func NextState(alive bool, age, neighbors int) (bool, int) {
	if !ApplyConwayRules(neighbors, alive) {
		return false, 0
	}
	if alive {
		return true, age + 1
	}
	return true, 0
}
