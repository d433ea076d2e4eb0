// Command sequoia-demo exercises pkg/sequoia end to end: it builds a
// small in-memory database (one of the built-in scenarios, or one parsed
// from stdin) and prints every pattern the engine reports.
//
// This is the "collaborator" spec.md places out of scope for the core —
// file parsing, CLI flags, and output formatting — supplied here only to
// give the library a runnable caller.
package main

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/gitrdm/sequoia/internal/reporter"
	"github.com/gitrdm/sequoia/internal/telemetry"
	"github.com/gitrdm/sequoia/pkg/sequoia"
)

var cli struct {
	Target      string `help:"Mining target: all or closed." enum:"all,closed" default:"all"`
	Smin        int64  `help:"Minimum support." default:"1"`
	Zmax        int    `help:"Maximum reported prefix length." default:"16"`
	Weighted    bool   `help:"Use the item-weighted flavor." default:"false"`
	Demo        string `help:"Built-in scenario: gap, unique, zerogap, weighted, pruning, empty." default:""`
	MetricsAddr string `help:"If set, serve Prometheus metrics at this address (e.g. :9090) for the duration of the run." default:""`
	Verbose     bool   `help:"Enable debug logging." default:"false"`
}

func main() {
	kong.Parse(&cli, kong.Description("Sequential-pattern mining demo for pkg/sequoia."))

	log := logrus.New()
	if cli.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(log); err != nil {
		log.WithError(err).Fatal("mining run failed")
	}
}

func run(log *logrus.Logger) error {
	db, err := buildDatabase()
	if err != nil {
		return errors.Wrap(err, "building database")
	}

	cfg := sequoia.Config{
		Smin:     cli.Smin,
		Zmax:     cli.Zmax,
		Weighted: cli.Weighted,
	}
	if cli.Target == "closed" {
		cfg.Mode = sequoia.Closed
	}

	reg := prometheus.NewRegistry()
	hooks := telemetry.NewHooks(reg)

	var stopMetrics func()
	if cli.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: cli.MetricsAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.WithError(err).Warn("metrics server stopped")
			}
		}()
		stopMetrics = func() { srv.Close() }
		log.WithField("addr", cli.MetricsAddr).Info("serving metrics")
	}

	rep := reporter.NewCollecting()
	err = sequoia.Mine(db, cfg, rep, sequoia.WithTelemetry(hooks))
	if stopMetrics != nil {
		stopMetrics()
	}
	if err != nil {
		return errors.Wrap(err, "mining")
	}

	for _, p := range rep.Patterns {
		printPattern(p)
	}
	log.WithField("count", len(rep.Patterns)).Info("mining complete")
	return nil
}

func printPattern(p reporter.Pattern) {
	parts := make([]string, len(p.Items))
	for i, it := range p.Items {
		if p.Weights != nil {
			parts[i] = fmt.Sprintf("%d(%.3f)", it, p.Weights[i]/float64(p.Support))
		} else {
			parts[i] = fmt.Sprintf("%d", it)
		}
	}
	fmt.Printf("[%s] support=%d\n", strings.Join(parts, " "), p.Support)
}

func buildDatabase() (sequoia.Database, error) {
	if cli.Demo != "" {
		return demoDatabase(cli.Demo)
	}
	if cli.Weighted {
		return parseWeightedStdin(os.Stdin)
	}
	return parseStdin(os.Stdin)
}

// demoDatabase builds one of the fixtures from spec.md §8's concrete
// scenarios.
func demoDatabase(name string) (sequoia.Database, error) {
	switch name {
	case "gap": // scenario 1: closedness gap detection
		// A=0 B=1 C=2 X=3 Y=4
		return sequoia.NewDatabase([][]sequoia.Item{
			{0, 1, 2},
			{0, 3, 1, 2},
			{0, 4, 1, 2},
		}, []int64{1, 1, 1})
	case "unique": // scenario 2: unique-occurrence selection
		return sequoia.NewDatabase([][]sequoia.Item{{0, 1, 0, 1}}, []int64{1})
	case "zerogap": // scenario 3
		return sequoia.NewDatabase([][]sequoia.Item{{0, 1}}, []int64{3})
	case "pruning": // scenario 5
		return sequoia.NewDatabase([][]sequoia.Item{{0, 1}, {0, 2}, {1, 2}}, []int64{1, 1, 1})
	case "empty": // scenario 6
		return sequoia.NewDatabase([][]sequoia.Item{{0}}, []int64{2})
	case "weighted": // scenario 4
		return sequoia.NewWeightedDatabase([][]sequoia.Cell{
			{{Item: 0, Wgt: 0.5}, {Item: 1, Wgt: 1.0}},
			{{Item: 0, Wgt: 1.5}, {Item: 1, Wgt: 3.0}},
		}, []int64{1, 1})
	default:
		return nil, errors.Errorf("unknown demo scenario %q", name)
	}
}

// parseStdin reads one transaction per line: "weight item item item ...".
func parseStdin(r io.Reader) (sequoia.Database, error) {
	var txns [][]sequoia.Item
	var weights []int64
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		w, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing weight in %q", line)
		}
		items := make([]sequoia.Item, 0, len(fields)-1)
		for _, f := range fields[1:] {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(err, "parsing item in %q", line)
			}
			items = append(items, sequoia.Item(v))
		}
		txns = append(txns, items)
		weights = append(weights, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return sequoia.NewDatabase(txns, weights)
}

// parseWeightedStdin reads "weight item:wgt item:wgt ...".
func parseWeightedStdin(r io.Reader) (sequoia.Database, error) {
	var txns [][]sequoia.Cell
	var weights []int64
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		w, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing weight in %q", line)
		}
		cells := make([]sequoia.Cell, 0, len(fields)-1)
		for _, f := range fields[1:] {
			parts := strings.SplitN(f, ":", 2)
			if len(parts) != 2 {
				return nil, errors.Errorf("expected item:weight, got %q", f)
			}
			it, err := strconv.Atoi(parts[0])
			if err != nil {
				return nil, errors.Wrapf(err, "parsing item in %q", f)
			}
			wgt, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "parsing weight in %q", f)
			}
			cells = append(cells, sequoia.Cell{Item: sequoia.Item(it), Wgt: wgt})
		}
		txns = append(txns, cells)
		weights = append(weights, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return sequoia.NewWeightedDatabase(txns, weights)
}
