// Command trapgrid serves the hazard-grid JSON API, or runs a one-shot
// console demo: generate a grid, solve it, and render the route.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/trapgrid/trapgrid/grid"
	"github.com/trapgrid/trapgrid/search"
	"github.com/trapgrid/trapgrid/server"
)

func main() {
	var (
		addr  = flag.String("addr", ":8080", "listen address for the JSON API")
		demo  = flag.Bool("demo", false, "render one generated grid and its path to stdout, then exit")
		size  = flag.Int("size", grid.DefaultGridSize, "grid dimension N for the demo")
		traps = flag.Int("traps", grid.DefaultTrapCount, "trap budget for the demo")
		seed  = flag.Int64("seed", 0, "RNG seed for the demo (0 = time-seeded)")
	)
	flag.Parse()

	if *demo {
		if err := runDemo(*size, *traps, *seed); err != nil {
			log.Fatal(err)
		}
		return
	}

	mux := http.NewServeMux()
	server.NewServer(log.Default()).Register(mux)

	log.Printf("trapgrid API listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}

// runDemo builds a grid, searches it, and prints both renderings plus the
// exploration statistics.
func runDemo(size, traps int, seed int64) error {
	var opts []grid.Option
	if seed != 0 {
		opts = append(opts, grid.WithSeed(seed))
	}

	g, err := grid.New(size, opts...)
	if err != nil {
		return err
	}
	g.PlaceTraps(traps)

	fmt.Println("generated grid:")
	fmt.Print(render(g, nil))

	res, err := search.FindPath(g)
	if err != nil {
		return err
	}

	if res.Found() {
		fmt.Println("path found:")
		fmt.Print(render(g, res.Path))
	} else {
		fmt.Println("no safe path found")
	}
	fmt.Printf("explored=%d pruned=%d path_length=%d\n",
		res.Stats.Explored, res.Stats.Pruned, res.Stats.PathLength)

	return nil
}

// render draws the grid as ASCII: S start, G goal, o path, T trap,
// ! dangerous, . empty.
func render(g *grid.Grid, path []grid.Coord) string {
	onPath := make(map[grid.Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var b strings.Builder
	n := g.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := grid.Coord{X: x, Y: y}
			switch {
			case c == g.Start():
				b.WriteString("S ")
			case c == g.Goal():
				b.WriteString("G ")
			case onPath[c]:
				b.WriteString("o ")
			case g.State(x, y) == grid.Trap:
				b.WriteString("T ")
			case g.State(x, y) == grid.Dangerous:
				b.WriteString("! ")
			default:
				b.WriteString(". ")
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
