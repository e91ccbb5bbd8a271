package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleExplorer_Run explores an open 5×5 grid from (1,1) to (3,3) under
// the uniform strategy. The cheapest route is two diagonal steps; Path
// returns it goal-to-start.
func ExampleExplorer_Run() {
	cells := make([][]bool, 5)
	for y := range cells {
		cells[y] = make([]bool, 5)
	}
	g, err := grid.From2D(cells)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	e, err := search.New(g,
		grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 3, Col: 3}, search.Uniform)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res := e.Run()
	path, err := res.Path()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("state:", res.State)
	fmt.Printf("cost: %.3f\n", res.PathCost())
	fmt.Println("path:", path)
	// Output:
	// state: found
	// cost: 2.828
	// path: [{3 3} {2 2} {1 1}]
}

// ExampleParseStrategy maps the CLI strategy names onto Strategy values.
func ExampleParseStrategy() {
	for _, name := range []string{"uniform", "weighted", "heuristic", "magic"} {
		s, err := search.ParseStrategy(name)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(s)
	}
	// Output:
	// uniform
	// weighted
	// heuristic
	// search: unknown strategy: "magic"
}
