package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	sinew "github.com/23skdu/longbow-sinew"
	_ "github.com/23skdu/longbow-sinew/backends"
	"github.com/23skdu/longbow-sinew/internal/client"
)

var (
	flagProbe   = flag.Bool("probe", false, "Enumerate devices and registered backends")
	flagBench   = flag.String("bench", "", "Benchmark routines, comma-separated (axpy,dot,gemm) or 'all'")
	flagVerify  = flag.String("verify", "", "Verify routines against the reference backend, comma-separated or 'all'")
	flagDevice  = flag.String("device", "", "Target device: cpu, cuda or cuda:N (default: best available)")
	flagBackend = flag.String("backend", "", "Pin a registered backend by name")
	flagN       = flag.Int64("n", 1<<20, "Vector length; matrix dimensions are derived from it")
	flagIters   = flag.Int("iters", 50, "Benchmark iterations per routine")
	flagWorkers = flag.Int64("workers", 4, "Concurrent benchmark workers")
	flagSeed    = flag.Int64("seed", 1, "Seed for generated operands")
	flagFormat  = flag.String("format", "json", "Report encoding: json or cbor")
	pushAddr    = flag.String("push", "", "Longbow server address to push benchmark records to (e.g. localhost:3000)")
	datasetName = flag.String("dataset", "sinew_bench", "Target dataset name on server")
	metricsAddr = flag.String("metrics", "", "Address to serve prometheus metrics on (e.g. :8080)")
	enableOTel  = flag.Bool("otel", false, "Enable OpenTelemetry tracing (stdout)")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	cpuProfile  = flag.String("cpuprofile", "", "Write cpu profile to file")
)

func main() {
	// Initialize logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Caller().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	flag.Parse()

	if *flagDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *enableOTel {
		shutdown, err := initTracer()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize tracer")
		}
		defer shutdown(context.Background())
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create CPU profile file")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("Could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	if *metricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			log.Info().Str("addr", *metricsAddr).Msg("Serving prometheus metrics")
			if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
				log.Error().Err(err).Msg("Metrics endpoint failed")
			}
		}()
	}

	ctx := context.Background()

	switch {
	case *flagProbe:
		if err := runProbe(os.Stdout, *flagFormat); err != nil {
			log.Fatal().Err(err).Msg("Probe failed")
		}

	case *flagBench != "":
		dev, err := pickDevice(*flagDevice)
		if err != nil {
			log.Fatal().Err(err).Msg("Device selection failed")
		}
		log.Info().Str("device", dev.String()).Str("backend", activeBackend(dev)).Msg("Benchmarking")

		samples, err := runBench(ctx, dev, *flagBench, *flagN, *flagIters, *flagWorkers)
		if err != nil {
			log.Fatal().Err(err).Msg("Benchmark failed")
		}
		if err := writeReport(os.Stdout, *flagFormat, samples); err != nil {
			log.Fatal().Err(err).Msg("Report encoding failed")
		}
		if *pushAddr != "" {
			pushSamples(ctx, samples)
		}

	case *flagVerify != "":
		dev, err := pickDevice(*flagDevice)
		if err != nil {
			log.Fatal().Err(err).Msg("Device selection failed")
		}
		log.Info().Str("device", dev.String()).Str("backend", activeBackend(dev)).Msg("Verifying against reference backend")

		if err := runVerify(ctx, dev, *flagVerify, *flagN, *flagSeed); err != nil {
			log.Fatal().Err(err).Msg("VERIFICATION FAILED")
		}
		log.Info().Msg("Verification passed")

	default:
		fmt.Fprintln(os.Stderr, "sinew: one of -probe, -bench or -verify is required")
		flag.Usage()
		os.Exit(2)
	}
}

// pickDevice resolves a -device spec ("", "cpu", "cuda", "cuda:1") to an
// enumerated device.
func pickDevice(spec string) (*sinew.Device, error) {
	if spec == "" {
		return sinew.Default(), nil
	}
	kindStr, ordStr, hasOrd := strings.Cut(spec, ":")

	var kind sinew.DeviceKind
	switch kindStr {
	case "cpu":
		kind = sinew.KindCPU
	case "cuda":
		kind = sinew.KindCUDA
	default:
		return nil, fmt.Errorf("unknown device kind %q", kindStr)
	}

	ordinal := 0
	if hasOrd {
		v, err := strconv.Atoi(ordStr)
		if err != nil {
			return nil, fmt.Errorf("bad device ordinal %q: %w", ordStr, err)
		}
		ordinal = v
	}

	for _, d := range sinew.ByKind(kind) {
		if d.Info().Ordinal == ordinal {
			return d, nil
		}
	}
	return nil, fmt.Errorf("no %s device with ordinal %d", kindStr, ordinal)
}

// queueOptions translates the -backend pin into queue options.
func queueOptions() []sinew.QueueOption {
	if *flagBackend != "" {
		return []sinew.QueueOption{sinew.WithBackend(*flagBackend)}
	}
	return nil
}

func pushSamples(ctx context.Context, samples []client.Sample) {
	p, err := client.NewPusher(*pushAddr)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create push client")
	}
	defer func() {
		if err := p.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close push client")
		}
	}()

	pctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	if err := p.PushSamples(pctx, *datasetName, samples); err != nil {
		log.Fatal().Err(err).Msg("Flight DoPut failed")
	}
	log.Info().Int("samples", len(samples)).Str("dataset", *datasetName).Msg("Pushed benchmark records")
}

func initTracer() (func(context.Context) error, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("sinew"),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp.Shutdown, nil
}
