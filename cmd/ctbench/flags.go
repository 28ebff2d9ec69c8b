package main

import (
	"flag"
)

// config holds ctbench's resolved CLI configuration, mirroring the
// teacher's cmd/eth2030 Config-plus-flagSet split so run() stays testable
// without touching os.Args.
type config struct {
	Curve     string
	Op        string
	Samples   int
	Seed      string
	Serve     bool
	Addr      string
	Namespace string
}

// defaultConfig returns ctbench's defaults: secp256k1's scalar multiply,
// 2000 samples per class, no Prometheus server.
func defaultConfig() config {
	return config{
		Curve:     "secp256k1",
		Op:        "scalarmul",
		Samples:   2000,
		Seed:      "ctbench-default-seed",
		Serve:     false,
		Addr:      ":9100",
		Namespace: "ctbench",
	}
}

// newFlagSet binds every CLI flag to cfg. Uses flag.ContinueOnError, same
// as the teacher's newCustomFlagSet, so callers control error handling
// instead of the flag package calling os.Exit directly.
func newFlagSet(cfg *config) *flag.FlagSet {
	fs := flag.NewFlagSet("ctbench", flag.ContinueOnError)
	fs.StringVar(&cfg.Curve, "curve", cfg.Curve, "registered curve to benchmark (secp256k1, bn254_snarks, bls12381, bandersnatch, banderwagon)")
	fs.StringVar(&cfg.Op, "op", cfg.Op, "operation to benchmark (scalarmul, fp_mul)")
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "number of timing samples per class")
	fs.StringVar(&cfg.Seed, "seed", cfg.Seed, "seed for deterministic vector derivation")
	fs.BoolVar(&cfg.Serve, "serve", cfg.Serve, "serve collected histograms over /metrics instead of printing a verdict")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address for -serve")
	fs.StringVar(&cfg.Namespace, "namespace", cfg.Namespace, "Prometheus metric namespace")
	return fs
}
