package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	gio "github.com/sphlab/gosph/io"
	"github.com/sphlab/gosph/mesh"
	"github.com/sphlab/gosph/run"
)

func main() {
	var (
		config, positions string
		exampleConfig     bool
		seq               bool
	)

	flag.StringVar(
		&config, "Config", "",
		"Mesh configuration file. Print a template with -ExampleConfig.",
	)
	flag.StringVar(
		&positions, "Positions", "",
		"Plain-text particle snapshot with x y z columns.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.",
	)
	flag.BoolVar(
		&seq, "Seq", false,
		"Run sequentially instead of in parallel. Mainly useful for "+
			"debugging.",
	)
	flag.IntVar(
		&run.NumCores, "Threads", runtime.NumCPU(),
		"Number of threads used. Default is the number of logical cores.",
	)

	flag.Parse()

	if exampleConfig {
		fmt.Println(gio.ExampleMeshFile)
		return
	}

	if config == "" || positions == "" {
		log.Fatal("Both -Config and -Positions must be given.")
	}

	cfg, err := gio.ReadMeshConfig(config)
	if err != nil {
		log.Fatal(err.Error())
	}
	pos, err := gio.ReadPositions(positions, 0, 1, 2)
	if err != nil {
		log.Fatal(err.Error())
	}

	pol := run.Parallel
	if seq {
		pol = run.Sequential
	}

	ml, err := mesh.NewMultilevelCellLinkedList(
		cfg.Domain.Box(), cfg.Domain.Spacing, cfg.Mesh.Levels,
		cfg.Domain.Periodic,
	)
	if err != nil {
		log.Fatal(err.Error())
	}

	log.Printf(
		"Read %d particles. Levels: %d. Workers: %d.",
		len(pos), ml.Levels(), run.NumCores,
	)

	ml.Rebuild(pol, pos)

	for l := 0; l < ml.Levels(); l++ {
		cll := ml.Level(l)
		conf := mesh.NewConfiguration(len(pos))
		cll.SearchNeighbors(
			pol, nil, pos, conf,
			mesh.UniformSearchDepth(1),
			cll.RangeRelation(cll.Grid().Spacing),
		)
		logLevelStats(l, cll, conf)
	}

	ms := runtime.MemStats{}
	runtime.ReadMemStats(&ms)
	log.Printf("Alloc: %5d MB, Sys: %5d MB", ms.Alloc>>20, ms.Sys>>20)
}

func logLevelStats(l int, cll *mesh.CellLinkedList, conf mesh.Configuration) {
	g := cll.Grid()

	occupied, maxCell := 0, 0
	for z := 0; z < g.Cells[2]; z++ {
		for y := 0; y < g.Cells[1]; y++ {
			for x := 0; x < g.Cells[0]; x++ {
				n := len(cll.Cell(x, y, z))
				if n > 0 {
					occupied++
				}
				if n > maxCell {
					maxCell = n
				}
			}
		}
	}

	neighbors, maxNh := 0, 0
	for i := range conf {
		n := len(conf[i])
		neighbors += n
		if n > maxNh {
			maxNh = n
		}
	}
	mean := 0.0
	if len(conf) > 0 {
		mean = float64(neighbors) / float64(len(conf))
	}

	log.Printf(
		"Level %d: %d x %d x %d cells at spacing %g. "+
			"%d/%d occupied, largest cell %d.",
		l, g.Cells[0], g.Cells[1], g.Cells[2], g.Spacing,
		occupied, g.Volume, maxCell,
	)
	log.Printf(
		"Level %d: %.2f mean neighbors, %d max.", l, mean, maxNh,
	)
}
