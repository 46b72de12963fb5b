package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/vi-rogue/level"
	"github.com/lixenwraith/vi-rogue/maze"
	"github.com/lixenwraith/vi-rogue/render"
	"github.com/lixenwraith/vi-rogue/vmath"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== AGENT MAZE GENERATOR ===")

		w := getInt(reader, "Width [Odd prefered] (default 31): ", 31)
		h := getInt(reader, "Height [Odd prefered] (default 21): ", 21)
		seed := int64(getInt(reader, "Seed [0 = random] (default 0): ", 0))
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))

		fmt.Print("Mode: Scatter arena instead of agent maze? [y/N]: ")
		scatterStr, _ := reader.ReadString('\n')
		scatterMode := strings.ToLower(strings.TrimSpace(scatterStr)) == "y"

		var (
			m   *level.Map
			err error
		)
		startT := time.Now()
		if scatterMode {
			walls := getInt(reader, "Walls (default 50): ", 50)
			holes := getInt(reader, "Holes (default 20): ", 20)
			fmt.Println("\nGenerating...")
			startT = time.Now()
			m, err = maze.Scatter(maze.ScatterConfig{Width: w, Height: h, Walls: walls, Holes: holes}, rng)
		} else {
			cfg := maze.DefaultConfig(w, h)
			cfg.Agents = getInt(reader, fmt.Sprintf("Agents (default %d): ", maze.DefaultAgents), maze.DefaultAgents)
			cfg.Openness = getPercent(reader, fmt.Sprintf("Openness %% [0 - 100] (default %d): ", maze.DefaultOpenness), maze.DefaultOpenness)
			cfg.Iterations = getInt(reader, fmt.Sprintf("Iterations (default %d): ", maze.DefaultIterations), maze.DefaultIterations)
			fmt.Println("\nGenerating...")
			startT = time.Now()
			m, err = maze.Carve(cfg, rng)
		}
		dur := time.Since(startT)

		if err != nil {
			fmt.Printf("Error: %v\n", err)
		} else {
			fmt.Printf("Done in %v (seed %d)\n", dur, seed)
			fmt.Printf("Grid Dimensions: %dx%d\n", m.Width(), m.Height())
			report(os.Stdout, m)
			draw(os.Stdout, m)
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

// report prints floor connectivity
func report(w io.Writer, m *level.Map) {
	regions := maze.Regions(m)
	fmt.Fprintf(w, "Floor Tiles: %d\n", m.FloorCount())
	fmt.Fprintf(w, "Regions: %d\n", len(regions))
	if len(regions) > 0 {
		fmt.Fprintf(w, "Largest Region: %d tiles at %v (coverage %.1f%%)\n",
			regions[0].Size(), regions[0].Anchor, maze.Coverage(m)*100)
	} else {
		fmt.Fprintln(w, "Status: No floor")
	}
}

// draw prints walls as box glyphs and the largest region blank; floor cut off from it shows as '·'
func draw(w io.Writer, m *level.Map) {
	var connected map[vmath.Point]bool
	if regions := maze.Regions(m); len(regions) > 0 {
		connected = make(map[vmath.Point]bool, regions[0].Size())
		regions[0].Cells.Each(func(p vmath.Point) { connected[p] = true })
	}

	var sb strings.Builder
	m.Each(func(x, y int, t level.Tile, _ float64) bool {
		switch {
		case t == level.Floor && connected[vmath.P(x, y)]:
			sb.WriteByte(' ')
		case t == level.Floor:
			sb.WriteRune('·')
		default:
			sb.WriteRune(render.TileRune(m, x, y, t))
		}
		if x == m.Width()-1 {
			sb.WriteByte('\n')
		}
		return true
	})
	fmt.Fprint(w, sb.String())
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getPercent(r *bufio.Reader, prompt string, def int) int {
	v := getInt(r, prompt, def)
	// Clamp
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
