package main

import (
	"fmt"
	"io"
	"log"

	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// printerConfig controls how results are written.
type printerConfig struct {
	format string
	logger *log.Logger
}

// printerOption mutates a printerConfig.
type printerOption func(*printerConfig)

func withFormat(format string) printerOption {
	return func(cfg *printerConfig) {
		if format != "" {
			cfg.format = format
		}
	}
}

// withLogger sends diagnostics to logger. A nil logger discards them.
func withLogger(logger *log.Logger) printerOption {
	return func(cfg *printerConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

type printer struct {
	w   io.Writer
	cfg printerConfig
}

func newPrinter(w io.Writer, opts ...printerOption) (*printer, error) {
	cfg := printerConfig{format: formatText, logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	switch cfg.format {
	case formatText, formatYAML:
	default:
		return nil, fmt.Errorf("unknown output format %q (want %s or %s)", cfg.format, formatText, formatYAML)
	}
	return &printer{w: w, cfg: cfg}, nil
}

// result is the record printed by the arithmetic commands.
type result struct {
	Op     string   `yaml:"op"`
	Inputs []string `yaml:"inputs"`
	Value  string   `yaml:"value,omitempty"`
	Values []string `yaml:"values,omitempty"`
}

func (p *printer) logf(format string, args ...any) {
	p.cfg.logger.Printf(format, args...)
}

func (p *printer) result(r result) error {
	p.logf("%s %v", r.Op, r.Inputs)
	if p.cfg.format == formatYAML {
		return p.yaml(r)
	}
	if r.Values == nil {
		_, err := fmt.Fprintln(p.w, r.Value)
		return err
	}
	for _, v := range r.Values {
		if _, err := fmt.Fprintln(p.w, v); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) yaml(v any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
