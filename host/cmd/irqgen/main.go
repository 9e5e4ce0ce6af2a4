package main

import (
	"flag"
	"fmt"
	"os"

	"irqscope/gen"
)

var (
	configPath = flag.String("config", "lines.yaml", "Interrupt line list (YAML)")
	outPath    = flag.String("out", "", "Output file (default: stdout)")
)

func main() {
	flag.Parse()

	data, err := os.ReadFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to read config: %v\n", err)
		os.Exit(1)
	}

	cfg, err := gen.ParseConfig(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	src, err := gen.Generate(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outPath == "" {
		os.Stdout.Write(src)
		return
	}

	if err := os.WriteFile(*outPath, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to write %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d lines)\n", *outPath, len(cfg.Lines))
}
