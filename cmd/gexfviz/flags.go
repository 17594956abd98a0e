package main

import (
	"github.com/spf13/pflag"

	"github.com/matsen/gexfviz/internal/layout"
)

// layoutFlags are the layout parameters that can override the config file.
type layoutFlags struct {
	algorithm  string
	seed       int64
	k          float64
	iterations int
	scale      float64
}

func (l *layoutFlags) register(f *pflag.FlagSet) {
	d := layout.DefaultOptions()
	f.StringVar(&l.algorithm, "layout", d.Algorithm, "Layout algorithm: kamada-kawai, spring, or circular")
	f.Int64Var(&l.seed, "seed", d.Seed, "Random seed for the spring layout")
	f.Float64Var(&l.k, "k", d.K, "Optimal node distance for the spring layout (0 = 1/sqrt(n))")
	f.IntVar(&l.iterations, "iterations", d.Iterations, "Maximum layout iterations")
	f.Float64Var(&l.scale, "scale", d.Scale, "Largest absolute coordinate after layout")
}

// apply copies the flags the user set onto opts.
func (l *layoutFlags) apply(f *pflag.FlagSet, opts *layout.Options) {
	if f.Lookup("layout") == nil {
		return
	}
	if f.Changed("layout") {
		opts.Algorithm = l.algorithm
	}
	if f.Changed("seed") {
		opts.Seed = l.seed
	}
	if f.Changed("k") {
		opts.K = l.k
	}
	if f.Changed("iterations") {
		opts.Iterations = l.iterations
	}
	if f.Changed("scale") {
		opts.Scale = l.scale
	}
}
