// Command elimord computes elimination orderings and treewidth upper
// bounds for graphs given in the adjacency-list format package ioadj
// reads.
//
// Mode and heuristic selection are flag-based (-o/-t/-l for mode,
// -D/-F/-C for heuristic), using Go's flag package since no CLI library
// appears anywhere in the retrieval pack this module was built against.
package main

import (
	"bufio"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/usernamesimon/elimord/graph"
	"github.com/usernamesimon/elimord/ioadj"
	"github.com/usernamesimon/elimord/ordering"
	"github.com/usernamesimon/elimord/treedecomp"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("elimord", flag.ContinueOnError)
	var (
		orderFile   = fs.String("o", "", "emit elimination ordering for one adjacency-list file")
		treeFile    = fs.String("t", "", "read a graph, convert to tree decomposition (unimplemented)")
		listFile    = fs.String("l", "", "benchmark every file listed in this input file")
		orderingArg = fs.String("ordering", "", "ordering file required by -t")
		minDegree   = fs.Bool("D", false, "use the minimum-degree heuristic")
		minFillIn   = fs.Bool("F", false, "use the minimum-fill-in heuristic")
		mcs         = fs.Bool("C", false, "use the maximum-cardinality-search heuristic")
		verbose     = fs.Bool("v", false, "print timing information")
	)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	modes := 0
	for _, set := range []bool{*orderFile != "", *treeFile != "", *listFile != ""} {
		if set {
			modes++
		}
	}
	if modes != 1 {
		fmt.Fprintln(os.Stderr, "exactly one of -o, -t, -l is required")
		return 1
	}

	switch {
	case *orderFile != "":
		h, err := selectHeuristic(*minDegree, *minFillIn, *mcs)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return runOrder(*orderFile, h, *verbose)
	case *treeFile != "":
		return runTreeDecomp(*treeFile, *orderingArg)
	case *listFile != "":
		return runBenchmarkList(*listFile, *verbose)
	}
	return 1
}

type heuristic int

const (
	heuristicDegree heuristic = iota
	heuristicFillIn
	heuristicMCS
)

func selectHeuristic(d, f, c bool) (heuristic, error) {
	n := 0
	var h heuristic
	if d {
		n++
		h = heuristicDegree
	}
	if f {
		n++
		h = heuristicFillIn
	}
	if c {
		n++
		h = heuristicMCS
	}
	if n != 1 {
		return 0, errors.New("exactly one of -D, -F, -C is required")
	}
	return h, nil
}

func runHeuristic(h heuristic, g *graph.Graph) (order []int, width int) {
	switch h {
	case heuristicDegree:
		return ordering.Degree(g)
	case heuristicFillIn:
		return ordering.FillIn(g)
	case heuristicMCS:
		return ordering.MCS(g)
	}
	return nil, -1
}

func runOrder(path string, h heuristic, verbose bool) int {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer f.Close()

	g, err := ioadj.ReadGraph(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	start := time.Now()
	order, width := runHeuristic(h, g)
	elapsed := time.Since(start)

	if verbose {
		fmt.Fprintf(os.Stderr, "width %d in %s\n", width, elapsed)
	}
	if err := ioadj.WriteOrdering(order, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runTreeDecomp(graphPath, orderingPath string) int {
	f, err := os.Open(graphPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer f.Close()
	g, err := ioadj.ReadGraph(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	var order []int
	if orderingPath != "" {
		of, err := os.Open(orderingPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer of.Close()
		order, err = ioadj.ReadOrdering(of, g.NodesLen())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	if _, err := treedecomp.FromOrdering(g, order); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runBenchmarkList(listPath string, verbose bool) int {
	lf, err := os.Open(listPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer lf.Close()

	var files []string
	sc := bufio.NewScanner(lf)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		files = append(files, sc.Text())
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()
	if err := w.Write([]string{
		"Filename",
		"Width Min-Degree", "Time Min-Degree",
		"Width Min-Fill-in", "Time Min-Fill-in",
		"Width MCS", "Time MCS",
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	for _, path := range files {
		row, err := benchmarkOne(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "%s done\n", path)
		}
		if err := w.Write(row); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	return 0
}

func benchmarkOne(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := ioadj.ReadGraph(f)
	if err != nil {
		return nil, err
	}

	row := []string{path}
	for _, h := range []heuristic{heuristicDegree, heuristicFillIn, heuristicMCS} {
		start := time.Now()
		_, width := runHeuristic(h, g.Clone())
		elapsed := time.Since(start)
		row = append(row, strconv.Itoa(width), strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64))
	}
	return row, nil
}
