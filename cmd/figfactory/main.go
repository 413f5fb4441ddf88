// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command figfactory builds chart documents from request files.
//
// Each request file is a YAML (or JSON) stream of one or more
// requests. A request names the chart kind and gives its arguments:
//
//	kind: distplot
//	name: heights
//	hist_data: [[1.2, 1.5, 1.7], [2.0, 2.2, 2.9]]
//	group_labels: [a, b]
//
// The kinds are distplot, streamline, dendrogram, trisurf,
// scatterplotmatrix, gantt and swatch. Scatterplot matrices and Gantt
// charts read their table from the CSV file named by "csv", resolved
// relative to the request file.
//
// figfactory writes each figure as JSON, either to stdout or, with -o,
// to <name>.json in the output directory. With -svg it also writes a
// rough <name>.svg preview of the figure's 2-D traces, if it has any.
// A swatch request writes a <name>.png gradient of a colorscale and
// requires -o.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/aclements/figfactory/figure"
	"github.com/aclements/figfactory/internal/preview"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

func main() {
	log.SetPrefix("figfactory: ")
	log.SetFlags(0)

	var (
		flagOut    = flag.String("o", "", "write outputs to `dir` (default: JSON to stdout)")
		flagLayout = flag.String("layout", "", "shell-quoted `key=value` layout overrides, such as 'title=\"A title\" xaxis.showgrid=true'")
		flagSVG    = flag.Bool("svg", false, "also write an SVG preview of each figure (requires -o)")
		flagJ      = flag.Int("j", runtime.GOMAXPROCS(0), "build up to `n` figures in parallel")
		flagIndent = flag.Bool("indent", term.IsTerminal(int(os.Stdout.Fd())), "indent JSON output")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] requests...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *flagSVG && *flagOut == "" {
		log.Fatal("-svg requires -o")
	}
	if *flagJ < 1 {
		log.Fatal("-j must be at least 1")
	}

	overrides, err := parseLayout(*flagLayout)
	if err != nil {
		log.Fatal(err)
	}

	var reqs []*request
	for _, path := range flag.Args() {
		rs, err := readRequests(path)
		if err != nil {
			log.Fatal(err)
		}
		reqs = append(reqs, rs...)
	}
	if *flagOut == "" {
		for _, r := range reqs {
			if r.Kind == "swatch" {
				log.Fatalf("%s: swatch requests require -o", r.Name)
			}
		}
	} else if err := os.MkdirAll(*flagOut, 0777); err != nil {
		log.Fatal(err)
	}

	// Build all figures, then write them in request order.
	results := make([]*result, len(reqs))
	var g errgroup.Group
	g.SetLimit(*flagJ)
	for i, r := range reqs {
		i, r := i, r
		g.Go(func() error {
			res, err := r.build()
			if err != nil {
				return fmt.Errorf("%s: %w", r.Name, err)
			}
			if res.fig != nil {
				res.fig.Layout.Update(overrides.Copy())
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	for i, res := range results {
		if err := write(reqs[i].Name, res, *flagOut, *flagIndent, *flagSVG); err != nil {
			log.Fatal(err)
		}
	}
}

// write emits the outputs of one request.
func write(name string, res *result, dir string, indent, svg bool) error {
	if res.swatch != nil {
		var buf bytes.Buffer
		if err := png.Encode(&buf, res.swatch); err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(dir, name+".png"), buf.Bytes(), 0666)
	}

	js, err := marshal(res.fig, indent)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if dir == "" {
		_, err := os.Stdout.Write(js)
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, name+".json"), js, 0666); err != nil {
		return err
	}
	if svg {
		var buf bytes.Buffer
		err := preview.WriteSVG(&buf, res.fig, 640, 480)
		if errors.Is(err, preview.ErrNothingToDraw) {
			log.Printf("%s: no SVG preview: %v", name, err)
			return nil
		} else if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name+".svg"), buf.Bytes(), 0666); err != nil {
			return err
		}
	}
	return nil
}

func marshal(fig *figure.Figure, indent bool) ([]byte, error) {
	js, err := json.Marshal(fig)
	if err != nil || !indent {
		return append(js, '\n'), err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, js, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
