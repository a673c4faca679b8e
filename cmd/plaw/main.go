// Copyright 2026 The go-powerlaw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// plaw draws, histograms and plots samples of power-law distributed
// random variables.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/bedartha/go-powerlaw/plot"
	"github.com/bedartha/go-powerlaw/powerlaw"
)

var (
	alphaFlag = &cli.Float64Flag{Name: "alpha", Value: 2.5, Usage: "power-law exponent (> 1)"}
	xminFlag  = &cli.Float64Flag{Name: "xmin", Value: 1, Usage: "lower bound of the support (> 0)"}
	xmaxFlag  = &cli.Float64Flag{Name: "xmax", Value: math.Inf(1), Usage: "upper bound of the support (+Inf for none)"}
	sizeFlag  = &cli.IntFlag{Name: "size", Value: 1000, Usage: "number of variates to draw"}
	seedFlag  = &cli.Int64Flag{Name: "seed", Value: 1, Usage: "seed for the random source"}
	binsFlag  = &cli.IntFlag{Name: "bins", Usage: "number of bin edges (default: Sturges' rule)"}
	densFlag  = &cli.BoolFlag{Name: "density", Usage: "normalize counts to a density"}
	outFlag   = &cli.StringFlag{Name: "out", Value: "powerlaw.html", Usage: "output HTML file"}
)

var app = &cli.App{
	Name:  "plaw",
	Usage: "analyse power-law distributed random variables",
	Commands: []*cli.Command{
		{
			Name:   "sample",
			Usage:  "draw random variates and print them one per line",
			Flags:  []cli.Flag{alphaFlag, xminFlag, xmaxFlag, sizeFlag, seedFlag},
			Action: runSample,
		},
		{
			Name:   "hist",
			Usage:  "log-bin newline-separated numbers read from stdin",
			Flags:  []cli.Flag{binsFlag, densFlag},
			Action: runHist,
		},
		{
			Name:   "plot",
			Usage:  "render a sampled histogram with its theoretical density",
			Flags:  []cli.Flag{alphaFlag, xminFlag, xmaxFlag, sizeFlag, seedFlag, binsFlag, outFlag},
			Action: runPlot,
		},
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newDist(c *cli.Context) (powerlaw.Dist, error) {
	return powerlaw.NewBounded(c.Float64("alpha"), c.Float64("xmin"), c.Float64("xmax"))
}

func runSample(c *cli.Context) error {
	d, err := newDist(c)
	if err != nil {
		return err
	}
	rg := rand.New(rand.NewSource(c.Int64("seed")))
	xs, err := d.Sample(rg, c.Int("size"))
	if err != nil {
		return err
	}
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, x := range xs {
		fmt.Fprintf(w, "%g\n", x)
	}
	return nil
}

func runHist(c *cli.Context) error {
	s, err := readSample(os.Stdin)
	if err != nil {
		return err
	}
	edges, err := histEdges(s, c.Int("bins"))
	if err != nil {
		return err
	}
	hist, err := powerlaw.LogHistogram{Edges: edges, Density: c.Bool("density")}.From(s)
	if err != nil {
		return err
	}
	for i, count := range hist.Counts {
		fmt.Printf("%-14g %-14g %g\n", hist.Edges[i], hist.Edges[i+1], count)
	}
	return nil
}

func runPlot(c *cli.Context) error {
	d, err := newDist(c)
	if err != nil {
		return err
	}
	rg := rand.New(rand.NewSource(c.Int64("seed")))
	xs, err := d.Sample(rg, c.Int("size"))
	if err != nil {
		return err
	}
	s := powerlaw.Sample{Xs: xs}
	edges, err := histEdges(s, c.Int("bins"))
	if err != nil {
		return err
	}
	hist, err := powerlaw.LogHistogram{Edges: edges, Density: true}.From(s)
	if err != nil {
		return err
	}
	f, err := os.Create(c.String("out"))
	if err != nil {
		return err
	}
	defer f.Close()
	return plot.LogLog(f, hist, plot.PDFCurve(d, 100), plot.Options{})
}

// histEdges returns nil for num <= 0, leaving the edge choice to the
// histogram's Sturges default.
func histEdges(s powerlaw.Sample, num int) ([]float64, error) {
	if num <= 0 {
		return nil, nil
	}
	return powerlaw.LogBins(s, num)
}

// readSample reads newline-separated numbers from r.
func readSample(r io.Reader) (powerlaw.Sample, error) {
	var s powerlaw.Sample
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		value, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return powerlaw.Sample{}, err
		}
		s.Xs = append(s.Xs, value)
	}
	return s, scanner.Err()
}
