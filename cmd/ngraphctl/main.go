// Command ngraphctl validates, round-trips, and exposes metrics for ngraph
// graph documents from the command line.
//
// Usage:
//
//	ngraphctl validate [-strict-schema] [-max-functions N] [-max-nodes-per-function N] <file>
//	ngraphctl roundtrip [-out path] [-store-as name] <file>
//	ngraphctl serve-metrics [-addr :9090]
//
// validate parses a document and reports the first error found, optionally
// running the gojsonschema structural pre-pass first (pkg/schema). roundtrip
// loads a document and re-serializes it, the idempotence check from spec.md
// §8 turned into a one-shot CLI operation; -store-as additionally registers
// the result in an in-memory pkg/store.GraphStore. serve-metrics stands up
// the OpenTelemetry/Prometheus provider from pkg/telemetry and exposes it
// over HTTP until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ngraph-go/ngraph"
	"github.com/ngraph-go/ngraph/pkg/config"
	"github.com/ngraph-go/ngraph/pkg/store"
	"github.com/ngraph-go/ngraph/pkg/telemetry"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "validate":
		runValidate(os.Args[2:])
	case "roundtrip":
		runRoundtrip(os.Args[2:])
	case "serve-metrics":
		runServeMetrics(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: ngraphctl <validate|roundtrip|serve-metrics> [flags]")
}

func runValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	strictSchema := fs.Bool("strict-schema", false, "run the gojsonschema structural pre-validation pass before decoding")
	maxFunctions := fs.Int("max-functions", 10_000, "maximum number of functions allowed in the document")
	maxNodes := fs.Int("max-nodes-per-function", 1_000_000, "maximum ops entries allowed per function")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "validate requires exactly one file argument")
		os.Exit(2)
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open %s: %v\n", fs.Arg(0), err)
		os.Exit(1)
	}
	defer f.Close()

	cfg := config.Default()
	cfg.StrictSchemaValidation = *strictSchema
	cfg.MaxFunctions = *maxFunctions
	cfg.MaxNodesPerFunction = *maxNodes

	root, err := ngraph.DeserializeWithOptions(f, &ngraph.Options{Config: cfg})
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid document: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("valid: root function %q, %d ops\n", root.Name, len(root.Ops))
}

func runRoundtrip(args []string) {
	fs := flag.NewFlagSet("roundtrip", flag.ExitOnError)
	out := fs.String("out", "", "write the re-serialized document to this path instead of stdout")
	storeAs := fs.String("store-as", "", "also register the round-tripped document in an in-memory graph store under this name")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "roundtrip requires exactly one file argument")
		os.Exit(2)
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open %s: %v\n", fs.Arg(0), err)
		os.Exit(1)
	}
	defer f.Close()

	root, err := ngraph.Deserialize(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load document: %v\n", err)
		os.Exit(1)
	}

	doc, err := ngraph.Serialize(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to re-serialize document: %v\n", err)
		os.Exit(1)
	}

	if *storeAs != "" {
		s := store.New()
		id, err := s.Register(*storeAs, "round-tripped via ngraphctl", doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to register document: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "registered as %s\n", id)
	}

	if *out == "" {
		fmt.Println(doc)
		return
	}
	if err := os.WriteFile(*out, []byte(doc), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", *out, err)
		os.Exit(1)
	}
}

func runServeMetrics(args []string) {
	fs := flag.NewFlagSet("serve-metrics", flag.ExitOnError)
	addr := fs.String("addr", ":9090", "metrics server address")
	fs.Parse(args)

	ctx := context.Background()
	provider, err := telemetry.NewProvider(ctx, telemetry.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start telemetry provider: %v\n", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: *addr, Handler: mux}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		fmt.Printf("Serving metrics on http://localhost%s/metrics\n", *addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		fmt.Fprintf(os.Stderr, "metrics server error: %v\n", err)
		os.Exit(1)
	case <-sigChan:
		fmt.Println("\nShutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		_ = provider.Shutdown(shutdownCtx)
	}
}
