// Command bench runs a synthetic workload against one or more cache
// chains and reports throughput and hit-rate as JSON. An optional HTTP
// endpoint exposes Prometheus metrics while the run is in progress.
//
// A chain is single-threaded by design, so parallelism comes from
// running independent chains: every worker goroutine owns its own chain
// and they never share cache state.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/epsi95/tiercache/cache"
	"github.com/epsi95/tiercache/config"
	"github.com/epsi95/tiercache/metrics/prom"
	"github.com/epsi95/tiercache/policy"
	"github.com/epsi95/tiercache/policy/fifo"
	"github.com/epsi95/tiercache/tier"
)

type chainStats struct {
	Ops    uint64 `json:"ops"`
	Reads  uint64 `json:"reads"`
	Writes uint64 `json:"writes"`
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
}

type report struct {
	Chains    int     `json:"chains"`
	Levels    int     `json:"levels"`
	Ops       uint64  `json:"ops"`
	Reads     uint64  `json:"reads"`
	Writes    uint64  `json:"writes"`
	Hits      uint64  `json:"hits"`
	Misses    uint64  `json:"misses"`
	HitRate   float64 `json:"hit_rate"`
	ElapsedMS int64   `json:"elapsed_ms"`
	OpsPerSec float64 `json:"ops_per_sec"`
}

func main() {
	var (
		cfgPath = flag.String("config", "", "YAML chain description; overrides -levels/-cap/-policy/-history")
		levels  = flag.Int("levels", 3, "number of cache levels")
		capFlag = flag.Int("cap", 1024, "front level capacity (entries)")
		growth  = flag.Int("growth", 4, "capacity multiplier per deeper level")
		policy  = flag.String("policy", "lru", "eviction policy: lru | fifo")
		history = flag.Int("history", 0, "response history depth (0 = default)")

		chains  = flag.Int("chains", 1, "independent chains run in parallel (one goroutine each)")
		ops     = flag.Int("ops", 1_000_000, "operations per chain")
		readPct = flag.Int("reads", 80, "read percentage [0..100]")

		keys    = flag.Int("keys", 100_000, "keyspace size")
		zipfS   = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV   = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		opsRate = flag.Float64("rate", 0, "aggregate ops/sec limit (0 = unlimited)")

		metricsAddr = flag.String("http", "", "serve Prometheus metrics at addr (e.g. :8080); empty = disabled")
		verbose     = flag.Bool("v", false, "debug logging (includes per-level miss logs)")
	)
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&prefixed.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if *metricsAddr != "" {
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Infof("metrics: serving at %s", *metricsAddr)
			log.Error(http.ListenAndServe(*metricsAddr, nil))
		}()
	}

	// Prometheus counters are labelled by level and shared across chains;
	// the counters are goroutine-safe even though the caches are not.
	// Register them up front so buildChain only reads the map.
	adapters := map[string]*prom.Adapter{}
	if *metricsAddr != "" && *cfgPath == "" {
		for i := 0; i < *levels; i++ {
			name := "l" + strconv.Itoa(i+1)
			adapters[name] = prom.New(nil, "tiercache", "bench", prometheus.Labels{"level": name})
		}
	}

	// buildChain constructs one chain; called once per worker so that no
	// cache state is shared between goroutines.
	buildChain := func() (*tier.Multilevel[string, string], error) {
		lopt := tier.LevelOptions{}
		if *verbose {
			lopt.Logger = log
		}
		if *cfgPath != "" {
			c, err := config.Load(*cfgPath)
			if err != nil {
				return nil, err
			}
			return config.Build[string, string](c, lopt)
		}

		m := tier.NewMultilevel[string, string](tier.Options{History: *history})
		capacity := *capFlag
		for i := 0; i < *levels; i++ {
			name := "l" + strconv.Itoa(i+1)
			met := cache.Metrics(cache.NoopMetrics{})
			if a, ok := adapters[name]; ok {
				met = a
			}
			cc := cache.New[string, string](cache.Options[string, string]{
				Capacity: capacity,
				Policy:   newPolicy(*policy),
				Metrics:  met,
			})
			m.AddLevel(tier.NewLevel(name, cc, lopt))
			capacity *= *growth
		}
		return m, nil
	}

	var limiter *rate.Limiter
	if *opsRate > 0 {
		burst := int(*opsRate)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(*opsRate), burst)
	}

	workers := *chains
	if workers < 1 {
		workers = 1
	}
	stats := make([]chainStats, workers)

	log.Infof("bench: chains=%d levels=%d cap=%d policy=%s ops=%d reads=%d%% keys=%d seed=%d",
		workers, *levels, *capFlag, *policy, *ops, *readPct, *keys, *seed)

	start := time.Now()
	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			m, err := buildChain()
			if err != nil {
				return err
			}

			// Independent RNG stream per chain.
			r := rand.New(rand.NewSource(*seed + int64(w)*9973))
			zipf := rand.NewZipf(r, *zipfS, *zipfV, uint64(*keys-1))
			st := &stats[w]

			for i := 0; i < *ops; i++ {
				if limiter != nil {
					if err := limiter.Wait(ctx); err != nil {
						return err
					}
				}
				k := "k:" + strconv.FormatUint(zipf.Uint64(), 10)
				st.Ops++
				if int(r.Int31n(100)) < *readPct {
					st.Reads++
					switch _, err := m.Get(k); {
					case err == nil:
						st.Hits++
					case errors.Is(err, cache.ErrNotFound):
						st.Misses++
					default:
						return fmt.Errorf("get %q: %w", k, err)
					}
				} else {
					st.Writes++
					if err := m.Put(k, "v"+strconv.Itoa(r.Int())); err != nil {
						return fmt.Errorf("put %q: %w", k, err)
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("bench: %v", err)
	}
	elapsed := time.Since(start)

	rep := report{Chains: workers, Levels: *levels}
	for _, st := range stats {
		rep.Ops += st.Ops
		rep.Reads += st.Reads
		rep.Writes += st.Writes
		rep.Hits += st.Hits
		rep.Misses += st.Misses
	}
	if rep.Reads > 0 {
		rep.HitRate = float64(rep.Hits) / float64(rep.Reads)
	}
	rep.ElapsedMS = elapsed.Milliseconds()
	rep.OpsPerSec = float64(rep.Ops) / elapsed.Seconds()

	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Fatalf("bench: encoding report: %v", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
}

func newPolicy(name string) policy.Policy[string] {
	switch name {
	case "", "lru":
		return nil // cache.New defaults to LRU
	case "fifo":
		return fifo.New[string]()
	default:
		logrus.Fatalf("unknown policy: %q (use lru or fifo)", name)
		return nil
	}
}
