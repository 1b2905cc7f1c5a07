package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wavegrid/render"
	"github.com/katalvlaran/wavegrid/wfc"
)

// errNoSample indicates a spec file without sample rows.
var errNoSample = errors.New("spec must contain at least one sample row")

// sampleSpec is the YAML file format wavegen consumes: the example rows
// the rules are learned from, an optional palette, and optional output
// parameters that flags may override.
//
// Example:
//
//	sample:
//	  - LLLL
//	  - LCCL
//	  - CSSC
//	  - SSSS
//	palette:
//	  L: green
//	  C: yellow
//	  S: blue
//	width: 60
//	height: 12
//	seed: 7
type sampleSpec struct {
	Sample  []string          `yaml:"sample"`
	Palette map[string]string `yaml:"palette,omitempty"`
	Width   int               `yaml:"width,omitempty"`
	Height  int               `yaml:"height,omitempty"`
	Seed    int64             `yaml:"seed,omitempty"`
}

// defaultSpec is the built-in shoreline sample from which wavegen
// generates when no --input file is given: land above coast above sea.
func defaultSpec() sampleSpec {
	return sampleSpec{
		Sample: []string{
			"LLLL",
			"LLLL",
			"LLLL",
			"LCCL",
			"CSSC",
			"SSSS",
			"SSSS",
		},
		Palette: map[string]string{
			"L": "green",
			"C": "yellow",
			"S": "blue",
		},
		Width:  100,
		Height: 10,
	}
}

// loadSpec reads and validates a sampleSpec from a YAML file.
func loadSpec(path string) (sampleSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sampleSpec{}, err
	}

	var spec sampleSpec
	if err = yaml.Unmarshal(data, &spec); err != nil {
		return sampleSpec{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(spec.Sample) == 0 {
		return sampleSpec{}, fmt.Errorf("%s: %w", path, errNoSample)
	}

	return spec, nil
}

// buildPalette resolves the spec's tile→color-name mapping. Tiles without
// an entry fall back to plain (uncolored) output so that a sparse palette
// never fails rendering.
func buildPalette(spec sampleSpec, tiles wfc.Weights) (render.Palette, error) {
	palette := make(render.Palette, len(tiles))
	for t := range tiles {
		name, ok := spec.Palette[string(t)]
		if !ok {
			palette[t] = render.PlainColor()
			continue
		}
		c, err := render.ColorByName(name)
		if err != nil {
			return nil, fmt.Errorf("tile %q: %w", t, err)
		}
		palette[t] = c
	}

	return palette, nil
}
