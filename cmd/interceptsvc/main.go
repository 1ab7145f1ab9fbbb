package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"sync"

	"github.com/invopop/jsonschema"
	"golang.org/x/sync/errgroup"

	"soccer_ai/internal/agent"
	"soccer_ai/internal/config"
	"soccer_ai/internal/intercept"
	"soccer_ai/internal/logging"
	"soccer_ai/internal/logging/sinks"
	"soccer_ai/internal/util"
	"soccer_ai/internal/world"
)

type options struct {
	cfgDir   string
	scenario string
	out      string
	schema   string
	seed     int64
	n        int
	workers  int
	posNoise float64
	velNoise float64
}

func main() {
	var o options
	flag.StringVar(&o.cfgDir, "config", "assets", "config dir")
	flag.StringVar(&o.scenario, "scenario", "assets/scenarios/through_pass.yaml", "scenario file")
	flag.StringVar(&o.out, "out", "out.json", "output file (single) or summary file (batch)")
	flag.StringVar(&o.schema, "schema", "", "write the report JSON schema to this file and exit")
	flag.Int64Var(&o.seed, "seed", 12345, "seed")
	flag.IntVar(&o.n, "n", 1, "number of jittered runs")
	flag.IntVar(&o.workers, "workers", 8, "concurrent runs in batch mode")
	flag.Float64Var(&o.posNoise, "pos-noise", 0.5, "position noise per axis in batch mode")
	flag.Float64Var(&o.velNoise, "vel-noise", 0.05, "velocity noise per axis in batch mode")
	flag.Parse()

	if err := run(o); err != nil {
		fmt.Fprintf(os.Stderr, "interceptsvc: %v\n", err)
		os.Exit(1)
	}
}

func run(o options) (err error) {
	if o.schema != "" {
		return writeSchema(o.schema)
	}

	sp, pt, ic, err := config.LoadAll(o.cfgDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	sc, err := config.LoadScenario(o.scenario)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}
	ws, err := world.NewState(sc)
	if err != nil {
		return err
	}

	router, err := newRouter(ic.Logging)
	if err != nil {
		return err
	}
	defer closeLog(router, &err)
	pub := logging.WithFields(router, map[string]any{"scenario": sc.ID})

	if o.n <= 1 {
		actx := agent.NewContext(sp, pt, ic, pub)
		actx.Cycle(ws, sc.Heard)
		res := actx.Intercept.Report(ws)
		if err := os.WriteFile(o.out, marshalPretty(res), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Printf("Single run finished. self=%d teammate=%d opponent=%d owner=%s -> %s\n",
			res.SelfStep, actx.Intercept.TeammateStep(), actx.Intercept.OpponentStep(), res.Ownership, o.out)
		return nil
	}

	st := newBatchStats()
	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(max(o.workers, 1))
	for i := 0; i < o.n; i++ {
		i := i
		g.Go(func() error {
			variant := ws.Clone()
			variant.Perturb(util.New(o.seed+int64(i)*7919), o.posNoise, o.velNoise)
			actx := agent.NewContext(sp, pt, ic, logging.WithFields(pub, map[string]any{"run": i}))
			actx.Cycle(variant, sc.Heard)
			res := actx.Intercept.Report(variant)

			mu.Lock()
			st.add(res, ic.Sentinel)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := os.WriteFile(o.out, marshalPretty(st.summary(o.n)), 0o644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	fmt.Printf("Batch %d done -> %s\n", o.n, filepath.Base(o.out))
	return nil
}

func newRouter(cfg config.Logging) (*logging.Router, error) {
	lc := logging.DefaultConfig()
	lc.EnabledSinks = cfg.Sinks
	lc.Fields = cfg.Fields
	lc.JSON.FilePath = cfg.JSONPath
	if sev, ok := logging.ParseSeverity(cfg.MinSeverity); ok {
		lc.MinimumSeverity = sev
	}

	var named []logging.NamedSink
	if lc.HasSink("console") {
		named = append(named, logging.NamedSink{Name: "console", Sink: sinks.NewConsoleSink(os.Stderr)})
	}
	if lc.HasSink("json") {
		path := lc.JSON.FilePath
		if path == "" {
			path = "intercept.ndjson"
		}
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("opening json log: %w", err)
		}
		named = append(named, logging.NamedSink{Name: "json", Sink: sinks.NewJSON(f)})
	}
	return logging.NewRouter(lc, named), nil
}

// closeLog flushes and closes the log sinks, reporting a failure through err
// unless the run already failed.
func closeLog(router *logging.Router, err *error) {
	if cerr := router.Close(context.Background()); cerr != nil && *err == nil {
		*err = fmt.Errorf("closing log sinks: %w", cerr)
	}
}

type batchStats struct {
	ownership     map[string]int
	selfReached   int
	sumSelfStep   int
	sumOppStep    int
	oppReached    int
	fastestOpp    map[int]int
	fastestMate   map[int]int
	selfSolutions int
}

func newBatchStats() *batchStats {
	return &batchStats{
		ownership:   map[string]int{},
		fastestOpp:  map[int]int{},
		fastestMate: map[int]int{},
	}
}

func (b *batchStats) add(r intercept.Report, sentinel int) {
	b.ownership[r.Ownership]++
	b.selfSolutions += r.SelfSolutions
	if r.SelfStep < sentinel {
		b.selfReached++
		b.sumSelfStep += r.SelfStep
	}
	if r.Opponent != nil {
		b.oppReached++
		b.sumOppStep += r.Opponent.Step
		b.fastestOpp[r.Opponent.Unum]++
	}
	if r.Teammate != nil {
		b.fastestMate[r.Teammate.Unum]++
	}
}

func (b *batchStats) summary(n int) map[string]any {
	avg := func(sum, cnt int) float64 {
		if cnt == 0 {
			return 0
		}
		return float64(sum) / float64(cnt)
	}
	ratio := func(m map[string]int) map[string]float64 {
		out := map[string]float64{}
		for k, v := range m {
			out[k] = float64(v) / float64(n)
		}
		return out
	}
	ranked := func(m map[int]int) []map[string]int {
		unums := make([]int, 0, len(m))
		for u := range m {
			unums = append(unums, u)
		}
		sort.Slice(unums, func(i, j int) bool {
			if m[unums[i]] != m[unums[j]] {
				return m[unums[i]] > m[unums[j]]
			}
			return unums[i] < unums[j]
		})
		out := make([]map[string]int, 0, len(unums))
		for _, u := range unums {
			out = append(out, map[string]int{"unum": u, "count": m[u]})
		}
		return out
	}
	return map[string]any{
		"runs":               n,
		"ownership":          ratio(b.ownership),
		"self_reach_rate":    float64(b.selfReached) / float64(n),
		"avg_self_step":      avg(b.sumSelfStep, b.selfReached),
		"avg_opponent_step":  avg(b.sumOppStep, b.oppReached),
		"avg_self_solutions": avg(b.selfSolutions, n),
		"fastest_opponents":  ranked(b.fastestOpp),
		"fastest_teammates":  ranked(b.fastestMate),
	}
}

func writeSchema(path string) error {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	schema := reflector.ReflectFromType(reflect.TypeOf(intercept.Report{}))
	if schema == nil {
		return fmt.Errorf("failed to reflect report schema")
	}
	schema.Title = "Intercept Report"
	schema.Description = "Reach steps estimated for one world snapshot."
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	data = append(data, '\n')
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func marshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
