// Package typechart provides the elemental effectiveness chart used by the
// damage model.
//
// The chart is an 18x18 matrix over the standard element types, with
// multipliers drawn from {0, 0.5, 1, 2}. Pairs absent from the data default
// to neutral (1.0), so the chart is total over arbitrary type names.
package typechart

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed chart.yaml
var chartData []byte

// chartFile is the YAML shape of the embedded chart data.
type chartFile struct {
	Types       []string                      `yaml:"types"`
	Multipliers map[string]map[string]float64 `yaml:"multipliers"`
}

// Chart is the loaded effectiveness matrix. Immutable after Load; safe for
// concurrent use.
type Chart struct {
	multipliers map[string]map[string]float64
}

// Load parses the embedded chart data and validates every entry.
//
// Postcondition: every multiplier in the returned Chart is one of
// 0, 0.5, 1, or 2, and every row and column key is a declared type.
func Load() (*Chart, error) {
	var file chartFile
	dec := yaml.NewDecoder(bytes.NewReader(chartData))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing type chart: %w", err)
	}

	known := make(map[string]bool, len(file.Types))
	for _, t := range file.Types {
		known[t] = true
	}

	chart := &Chart{multipliers: make(map[string]map[string]float64, len(file.Multipliers))}
	for attacking, row := range file.Multipliers {
		if !known[attacking] {
			return nil, fmt.Errorf("type chart: unknown attacking type %q", attacking)
		}
		dst := make(map[string]float64, len(row))
		for defending, mult := range row {
			if !known[defending] {
				return nil, fmt.Errorf("type chart: unknown defending type %q under %q", defending, attacking)
			}
			if mult != 0 && mult != 0.5 && mult != 1 && mult != 2 {
				return nil, fmt.Errorf("type chart: illegal multiplier %v for %s vs %s", mult, attacking, defending)
			}
			dst[defending] = mult
		}
		chart.multipliers[attacking] = dst
	}
	return chart, nil
}

// MustLoad is Load for wiring and tests; it panics if the embedded data is
// invalid.
func MustLoad() *Chart {
	c, err := Load()
	if err != nil {
		panic("typechart: MustLoad failed: " + err.Error())
	}
	return c
}

// Multiplier returns the effectiveness multiplier for a single attacking type
// against a single defending type. Type names are matched case-insensitively;
// any pair not present in the chart is neutral.
//
// Postcondition: return value is one of 0, 0.5, 1, 2.
func (c *Chart) Multiplier(attacking, defending string) float64 {
	row, ok := c.multipliers[strings.ToLower(attacking)]
	if !ok {
		return 1
	}
	mult, ok := row[strings.ToLower(defending)]
	if !ok {
		return 1
	}
	return mult
}

// Effectiveness returns the combined multiplier of attacking against every
// type of a (possibly dual-typed) defender: the product of the per-type
// multipliers.
//
// Postcondition: a 0 for any defending type zeroes the product; an empty
// defending list is neutral.
func (c *Chart) Effectiveness(attacking string, defending []string) float64 {
	product := 1.0
	for _, d := range defending {
		product *= c.Multiplier(attacking, d)
	}
	return product
}

// Describe renders the battle-log annotation for a combined multiplier.
// Immune hits (0) share the resisted wording; neutral hits carry no text.
func Describe(multiplier float64) string {
	switch {
	case multiplier > 1:
		return "It's super effective!"
	case multiplier < 1:
		return "It's not very effective..."
	default:
		return ""
	}
}
