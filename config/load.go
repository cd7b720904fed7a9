package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/1hpEcVns/ComplierFrontEnd/ast"
	"github.com/1hpEcVns/ComplierFrontEnd/rewrite"
)

// Load reads a pipeline file, applies defaults, and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pipeline file %q: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a validated Config from raw YAML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse pipeline file: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("pipeline validation failed: %w", err)
	}
	return &cfg, nil
}

// ApplyDefaults fills in unset fields that have sensible defaults.
func ApplyDefaults(cfg *Config) {
	for i := range cfg.Passes {
		p := &cfg.Passes[i]
		if p.Name != PassLoopUnroll {
			continue
		}
		if p.Factor == 0 {
			p.Factor = rewrite.DefaultUnrollFactor
		}
		if p.RangeFunc == "" {
			p.RangeFunc = "range"
		}
	}
}

// Build turns a validated Config into the pass chain it describes.
func (c *Config) Build() []rewrite.Pass {
	passes := make([]rewrite.Pass, 0, len(c.Passes))
	for _, p := range c.Passes {
		switch p.Name {
		case PassCallMigration:
			passes = append(passes, rewrite.CallMigration{
				Old:     p.Old,
				New:     p.New,
				Keyword: p.Keyword,
				Wrapper: p.Wrapper,
			})
		case PassGuardInjection:
			registry := make(map[string]rewrite.GuardSpec, len(p.Guards))
			for callee, g := range p.Guards {
				registry[callee] = rewrite.GuardSpec{
					Exception: g.Exception,
					Fallback:  &ast.Constant{Value: normalizeScalar(g.Fallback)},
				}
			}
			passes = append(passes, rewrite.GuardInjection{Registry: registry})
		case PassLoopUnroll:
			passes = append(passes, rewrite.LoopUnroll{
				Factor:    p.Factor,
				RangeFunc: p.RangeFunc,
			})
		}
	}
	return passes
}

// normalizeScalar maps YAML's integer types onto the tree's constant domain.
func normalizeScalar(v any) any {
	switch x := v.(type) {
	case int64:
		return int(x)
	case uint64:
		return int(x)
	default:
		return v
	}
}
