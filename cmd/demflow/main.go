package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/demflow"
	"github.com/maseology/demflow/grid"
	"github.com/maseology/mmio"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("usage: demflow <grid.gdef> <dem.bil> <outdirprfx> [streams.bil]")
		os.Exit(1)
	}
	gdefFP, demFP, outprfx := os.Args[1], os.Args[2], os.Args[3]

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nRun complete. n processes: %v", runtime.GOMAXPROCS(0)))

	// load data
	gd, err := grid.ReadGDEF(gdefFP)
	if err != nil {
		log.Fatalf(" %v", err)
	}
	dem, err := grid.LoadReal(gd, demFP)
	if err != nil {
		log.Fatalf(" %v", err)
	}
	tt.Print("DEM load complete")

	dom := demflow.New(dem)
	uiprogress.Start()
	bars := make(map[string]*uiprogress.Bar)
	dom.Progress = func(lbl string, pct int) {
		b, ok := bars[lbl]
		if !ok {
			b = uiprogress.AddBar(100).AppendCompleted().PrependFunc(func(*uiprogress.Bar) string { return lbl })
			bars[lbl] = b
		}
		b.Set(pct)
	}

	fa := dom.FlowAccumulation(demflow.AccumConfig{Units: demflow.CatchmentArea, Log: true})
	fill := dom.FillDepressions()
	depth := dom.DepthInSink(false)

	var strmdist *grid.Real
	if len(os.Args) > 4 {
		streams, err := grid.LoadReal(gd, os.Args[4])
		if err != nil {
			log.Fatalf(" %v", err)
		}
		if strmdist, err = dom.DownslopeDistanceToStream(streams); err != nil {
			log.Fatalf(" %v", err)
		}
	}
	uiprogress.Stop()

	// write outputs
	if err := fa.ToBil(outprfx + "flowaccum.bil"); err != nil {
		log.Fatalf(" %v", err)
	}
	if err := fill.ToBil(outprfx + "filled.bil"); err != nil {
		log.Fatalf(" %v", err)
	}
	if err := depth.ToBil(outprfx + "depthinsink.bil"); err != nil {
		log.Fatalf(" %v", err)
	}
	if strmdist != nil {
		if err := strmdist.ToBil(outprfx + "streamdist.bil"); err != nil {
			log.Fatalf(" %v", err)
		}
	}
	tt.Print("outputs written to " + outprfx)

	if dom.InteriorPitFound {
		fmt.Println(" WARNING: interior pit cells were found within the input DEM;")
		fmt.Println(" depressions and flats likely need removing before routing.")
	}
}
