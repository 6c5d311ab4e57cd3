// Command airgraph loads an airport network and prints shortest paths,
// alternative itineraries, spanning forests, animation steps or nearest
// airports.
//
// Usage:
//
//	airgraph -dataset routes -mode path -from AUS -to JFK
//	airgraph -file net.yaml -mode mst -method prim
//	airgraph -dataset costs -mode steps -from AUS -to SFO
//	airgraph -dataset routes -mode alternatives -from AUS -to JFK -k 3
//	airgraph -dataset geodesic -mode table
//	airgraph -dataset geodesic -mode near -near 29.76,-95.37 -k 3
//	airgraph -dataset routes -mode path -near 29.76,-95.37 -to SFO
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/katalvlaran/airgraph/animate"
	"github.com/katalvlaran/airgraph/builder"
	"github.com/katalvlaran/airgraph/core"
	"github.com/katalvlaran/airgraph/dataset"
	"github.com/katalvlaran/airgraph/dfs"
	"github.com/katalvlaran/airgraph/dijkstra"
	"github.com/katalvlaran/airgraph/prim_kruskal"
)

// Modes accepted by -mode.
const (
	modePath  = "path"
	modeMST   = "mst"
	modeSteps = "steps"
	modeNear  = "near"
	modeAlt   = "alternatives"
	modeTable = "table"
)

var errUsage = errors.New("invalid usage")

// options holds the parsed command line.
type options struct {
	Dataset string
	File    string
	Mode    string
	From    string
	To      string
	Method  string
	Near    string
	K       int
	Strict  bool
	List    bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("airgraph: ")

	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := run(os.Stdout, opts); err != nil {
		log.Fatal(err)
	}
}

// parseFlags binds the command line to options.
func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var o options
	fs.StringVar(&o.Dataset, "dataset", "routes", "embedded sample name (see -list)")
	fs.StringVar(&o.File, "file", "", "dataset file (YAML or JSON); overrides -dataset")
	fs.StringVar(&o.Mode, "mode", modePath, "path | alternatives | mst | steps | near | table")
	fs.StringVar(&o.From, "from", "", "source airport code")
	fs.StringVar(&o.To, "to", "", "destination airport code")
	fs.StringVar(&o.Method, "method", prim_kruskal.MethodKruskal, "spanning forest method: kruskal | prim")
	fs.StringVar(&o.Near, "near", "", "lat,lon; in near mode the query point, otherwise picks -from")
	fs.IntVar(&o.K, "k", 3, "number of airports (near) or itineraries (alternatives) listed")
	fs.BoolVar(&o.Strict, "strict", false, "reject conflicting weights instead of last-write-wins")
	fs.BoolVar(&o.List, "list", false, "list embedded samples and exit")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	return o, nil
}

// run executes one invocation and writes its report to w.
func run(w io.Writer, o options) error {
	if o.List {
		for _, name := range dataset.Names() {
			fmt.Fprintln(w, name)
		}
		return nil
	}

	ds, err := loadDataset(o)
	if err != nil {
		return err
	}
	var bopts []builder.Option
	if o.Strict {
		bopts = append(bopts, builder.WithStrictConflicts())
	}
	g, err := ds.Graph(bopts...)
	if err != nil {
		return err
	}
	st := g.Stats()
	log.Printf("loaded %q: %d airports, %d routes (%s)", ds.Name, st.AirportCount, st.RouteCount, ds.Source())

	switch o.Mode {
	case modeNear:
		return runNear(w, ds, o)
	case modeMST:
		return runMST(w, g, o)
	case modeTable:
		return runTable(w, g)
	case modePath, modeSteps, modeAlt:
		if o.From == "" && o.Near != "" {
			if o.From, err = nearestCode(ds, o.Near); err != nil {
				return err
			}
		}
		if o.From == "" || o.To == "" {
			return fmt.Errorf("%w: -mode %s needs -from (or -near) and -to", errUsage, o.Mode)
		}
		if o.Mode == modeAlt {
			return runAlternatives(w, g, o)
		}
		return runPath(w, g, o)
	default:
		return fmt.Errorf("%w: unknown -mode %q", errUsage, o.Mode)
	}
}

func loadDataset(o options) (*dataset.Dataset, error) {
	if o.File != "" {
		return dataset.Load(o.File)
	}

	return dataset.Sample(o.Dataset)
}

// runPath prints the shortest path, and in steps mode its reveal sequence.
func runPath(w io.Writer, g *core.Graph, o options) error {
	id := uuid.New()
	log.Printf("selection %s: %s -> %s", id, o.From, o.To)

	res, err := dijkstra.ShortestPath(g, o.From, o.To)
	if errors.Is(err, dijkstra.ErrNoPathExists) {
		fmt.Fprintf(w, "no route from %s to %s\n", o.From, o.To)
		return nil
	}
	if err != nil {
		return err
	}
	if o.Mode == modePath {
		fmt.Fprintf(w, "%s (cost %d)\n", strings.Join(res.Path, " -> "), res.Cost)
		return nil
	}

	seq, err := animate.FromResult(g, res)
	if err != nil {
		return err
	}
	for step := range seq.All() {
		if step.Edge == nil {
			fmt.Fprintf(w, "%d  %s  cost 0\n", step.Index, step.Prefix[0])
			continue
		}
		from, to := step.Prefix[step.Index-1], step.Prefix[step.Index]
		fmt.Fprintf(w, "%d  %s-%s +%d  cost %d\n", step.Index, from, to, step.Edge.Weight, step.RunningCost)
	}
	log.Printf("selection %s: %d steps, total %d", id, seq.Len(), seq.Total())

	return nil
}

// runAlternatives prints up to -k loop-free itineraries, cheapest first.
func runAlternatives(w io.Writer, g *core.Graph, o options) error {
	if o.K < 0 {
		return fmt.Errorf("%w: -k %d", errUsage, o.K)
	}
	all, err := dfs.SimplePaths(g, o.From, o.To, dfs.WithLimit(o.K))
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintf(w, "no route from %s to %s\n", o.From, o.To)
		return nil
	}
	for _, it := range all {
		fmt.Fprintf(w, "%s (cost %d)\n", strings.Join(it.Path, " -> "), it.Cost)
	}

	return nil
}

// runMST prints the spanning forest.
func runMST(w io.Writer, g *core.Graph, o options) error {
	f, err := prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: o.Method, Root: o.From})
	if err != nil {
		return err
	}
	for _, r := range f.Routes {
		fmt.Fprintf(w, "%s-%s %d\n", r.From, r.To, r.Weight)
	}
	fmt.Fprintf(w, "total %d, %d tree(s)\n", f.Total, len(f.Components))

	return nil
}

// runTable prints the graph as a cost table, "-" marking missing routes.
func runTable(w io.Writer, g *core.Graph) error {
	m := builder.ToMatrix(g)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(m.Codes, "\t"))
	for i, code := range m.Codes {
		cells := make([]string, len(m.Cells[i]))
		for j, c := range m.Cells[i] {
			cells[j] = c.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", code, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}

// runNear lists the k airports closest to -near.
func runNear(w io.Writer, ds *dataset.Dataset, o options) error {
	lat, lon, err := parseLatLon(o.Near)
	if err != nil {
		return err
	}
	ix, err := ds.Index()
	if err != nil {
		return err
	}
	got, err := ix.Nearest(lat, lon, o.K)
	if err != nil {
		return err
	}
	for _, n := range got {
		fmt.Fprintf(w, "%s %d km\n", n.Site.Code, n.DistanceKm)
	}

	return nil
}

// nearestCode returns the airport closest to the "lat,lon" string.
func nearestCode(ds *dataset.Dataset, latlon string) (string, error) {
	lat, lon, err := parseLatLon(latlon)
	if err != nil {
		return "", err
	}
	ix, err := ds.Index()
	if err != nil {
		return "", err
	}
	got, err := ix.Nearest(lat, lon, 1)
	if err != nil {
		return "", err
	}
	log.Printf("nearest airport to %s is %s (%d km)", latlon, got[0].Site.Code, got[0].DistanceKm)

	return got[0].Site.Code, nil
}

// parseLatLon parses "lat,lon".
func parseLatLon(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: -near %q, want lat,lon", errUsage, s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: -near latitude: %v", errUsage, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: -near longitude: %v", errUsage, err)
	}

	return lat, lon, nil
}
