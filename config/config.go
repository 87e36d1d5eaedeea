// Package config builds a multi-level cache chain from declarative YAML
// configuration, so chain topology (number of levels, per-level capacity
// and policy, history depth) comes from the caller rather than from
// constants in code.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/epsi95/tiercache/cache"
	"github.com/epsi95/tiercache/policy"
	"github.com/epsi95/tiercache/policy/fifo"
	"github.com/epsi95/tiercache/policy/lru"
	"github.com/epsi95/tiercache/tier"
)

// Chain describes a full multilevel cache.
//
//	history: 10
//	levels:
//	  - name: l1
//	    capacity: 64
//	  - name: l2
//	    capacity: 4096
//	    policy: fifo
type Chain struct {
	// History bounds the read/write response histories (0 = default).
	History int `yaml:"history"`
	// Levels lists the tiers front (fastest) first.
	Levels []Level `yaml:"levels"`
}

// Level describes one cache level.
type Level struct {
	Name string `yaml:"name"`
	// Capacity is the entry limit; a negative value means unbounded.
	Capacity int `yaml:"capacity"`
	// Policy selects the eviction strategy: "lru" (default) or "fifo".
	Policy string `yaml:"policy"`
}

// Parse decodes and validates a YAML chain description.
// Unknown fields are rejected.
func Parse(r io.Reader) (Chain, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Chain{}, fmt.Errorf("config: reading: %w", err)
	}
	var c Chain
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return Chain{}, fmt.Errorf("config: parsing: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Chain{}, err
	}
	return c, nil
}

// Load reads and parses a chain description file.
func Load(path string) (Chain, error) {
	f, err := os.Open(path)
	if err != nil {
		return Chain{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Validate checks the description for structural problems.
func (c Chain) Validate() error {
	if c.History < 0 {
		return errors.New("config: history must be >= 0")
	}
	if len(c.Levels) == 0 {
		return errors.New("config: at least one level is required")
	}
	for i, l := range c.Levels {
		if l.Name == "" {
			return fmt.Errorf("config: level %d: name is required", i)
		}
		if l.Capacity == 0 {
			return fmt.Errorf("config: level %q: capacity is required (negative = unbounded)", l.Name)
		}
		if _, err := newPolicy[int](l.Policy); err != nil {
			return fmt.Errorf("config: level %q: %w", l.Name, err)
		}
	}
	return nil
}

// Build wires a Multilevel cache from the description. Every level gets
// its own MapStorage and its own policy instance; opt (clock, logger) is
// applied to each level.
func Build[K comparable, V any](c Chain, opt tier.LevelOptions) (*tier.Multilevel[K, V], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	m := tier.NewMultilevel[K, V](tier.Options{History: c.History})
	for _, lc := range c.Levels {
		p, err := newPolicy[K](lc.Policy)
		if err != nil {
			return nil, fmt.Errorf("config: level %q: %w", lc.Name, err)
		}
		cc := cache.New[K, V](cache.Options[K, V]{
			Capacity: lc.Capacity,
			Policy:   p,
		})
		m.AddLevel(tier.NewLevel(lc.Name, cc, opt))
	}
	return m, nil
}

func newPolicy[K comparable](name string) (policy.Policy[K], error) {
	switch name {
	case "", "lru":
		return lru.New[K](), nil
	case "fifo":
		return fifo.New[K](), nil
	default:
		return nil, fmt.Errorf("unknown policy %q (use lru or fifo)", name)
	}
}
