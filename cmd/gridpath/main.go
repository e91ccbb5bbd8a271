// This defines the command-line explorer: it loads an obstacle-map image,
// runs the selected search strategy between two cells, and writes an
// animated GIF of the exploration plus a text file of the path.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/mapimg"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/viz"
)

func run() int {
	var mapPath, method, outputGIF, pathFile string
	var startRow, startCol, goalRow, goalCol int
	var frameStride, borderWidth int
	flag.StringVar(&mapPath, "map_image", "",
		"Path to the obstacle-map image (black pixels are obstacles).")
	flag.IntVar(&startRow, "start_row", -1, "Start cell row (search space).")
	flag.IntVar(&startCol, "start_col", -1, "Start cell column.")
	flag.IntVar(&goalRow, "goal_row", -1, "Goal cell row (search space).")
	flag.IntVar(&goalCol, "goal_col", -1, "Goal cell column.")
	flag.StringVar(&method, "method", "uniform",
		"Search strategy: uniform, weighted, or heuristic.")
	flag.StringVar(&outputGIF, "output_gif", "",
		"Output GIF path. Defaults to exploration_<method>.gif.")
	flag.StringVar(&pathFile, "path_file", "",
		"Optional text file to write the start-to-goal path into.")
	flag.IntVar(&frameStride, "frame_stride", 25,
		"Painted cells per animation frame.")
	flag.IntVar(&borderWidth, "border_width", 0,
		"Optional border width (pixels) around each frame.")
	flag.Parse()

	if mapPath == "" || startRow < 0 || startCol < 0 || goalRow < 0 || goalCol < 0 {
		fmt.Println("Invalid or missing argument.")
		fmt.Println("Run with -help for more information.")
		return 1
	}

	strategy, err := search.ParseStrategy(method)
	if err != nil {
		fmt.Printf("Invalid method: %s\n", err)
		return 1
	}

	m, err := mapimg.Load(mapPath)
	if err != nil {
		fmt.Printf("Error loading map image %s: %s\n", mapPath, err)
		return 1
	}

	start := grid.Coord{Row: startRow, Col: startCol}
	goal := grid.Coord{Row: goalRow, Col: goalCol}
	explorer, err := search.New(m.Grid, start, goal, strategy)
	if err != nil {
		fmt.Printf("Error setting up the search: %s\n", err)
		return 1
	}

	res := explorer.Run()
	fmt.Printf("Search finished: %s, %d cells expanded.\n", res.State,
		len(res.Visited))
	if res.State == search.Found {
		fmt.Printf("Path cost: %.3f\n", res.PathCost())
	}

	if outputGIF == "" {
		outputGIF = fmt.Sprintf("exploration_%s.gif", strategy)
	}
	anim := viz.NewAnimator(m, viz.WithFrameStride(frameStride),
		viz.WithBorderWidth(borderWidth))
	if err = anim.Record(res); err != nil {
		fmt.Printf("Error rendering exploration: %s\n", err)
		return 1
	}
	f, err := os.Create(outputGIF)
	if err != nil {
		fmt.Printf("Error creating output file %s: %s\n", outputGIF, err)
		return 1
	}
	defer f.Close()
	if err = anim.WriteGIF(f); err != nil {
		fmt.Printf("Error writing animation to %s: %s\n", outputGIF, err)
		return 1
	}
	fmt.Printf("Animation %s written OK.\n", outputGIF)

	if pathFile != "" {
		path, pathErr := res.Path()
		if pathErr != nil {
			fmt.Printf("No path to export: %s\n", pathErr)
			return 1
		}
		// Path arrives goal→start; the export file reads start→goal.
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
		pf, pfErr := os.Create(pathFile)
		if pfErr != nil {
			fmt.Printf("Error creating path file %s: %s\n", pathFile, pfErr)
			return 1
		}
		defer pf.Close()
		if err = viz.WritePathText(pf, path); err != nil {
			fmt.Printf("Error writing path file %s: %s\n", pathFile, err)
			return 1
		}
		fmt.Printf("Path file %s written OK.\n", pathFile)
	}

	return 0
}

func main() {
	os.Exit(run())
}
