// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cluster implements agglomerative hierarchical clustering
// and the leaf layout used to draw dendrograms.
//
// The linkage format follows the widely used convention: for n
// observations, merge k creates cluster n+k from clusters A and B.
package cluster

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// PDist returns the condensed Euclidean distance matrix between the
// rows of x. Entry (i, j) with i < j is at index Index(n, i, j).
func PDist(x mat.Matrix) []float64 {
	n, _ := x.Dims()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = mat.Row(nil, i, x)
	}
	d := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d = append(d, floats.Distance(rows[i], rows[j], 2))
		}
	}
	return d
}

// Index returns the index of pair (i, j) in a condensed distance
// matrix over n observations.
func Index(n, i, j int) int {
	if i > j {
		i, j = j, i
	}
	return n*i - i*(i+1)/2 + (j - i - 1)
}

// Method is a rule for the distance between merged clusters.
type Method int

const (
	// Complete linkage uses the farthest pair of members.
	Complete Method = iota
	// Single linkage uses the nearest pair of members.
	Single
	// Average linkage uses the mean distance over all member pairs.
	Average
)

func (m Method) String() string {
	switch m {
	case Complete:
		return "complete"
	case Single:
		return "single"
	case Average:
		return "average"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod returns the Method named s.
func ParseMethod(s string) (Method, error) {
	for _, m := range []Method{Complete, Single, Average} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown linkage method %q", s)
}

// A Link records one merge of two clusters.
type Link struct {
	// A and B are the merged cluster IDs, A < B. IDs below n are
	// observations.
	A, B int
	// Dist is the distance between A and B when merged.
	Dist float64
	// Size is the number of observations in the merged cluster.
	Size int
}

// Linkage is the sequence of merges of a hierarchical clustering, in
// order of non-decreasing distance.
type Linkage []Link

// Leaves returns the number of observations clustered by z.
func (z Linkage) Leaves() int {
	return len(z) + 1
}

// MaxDist returns the largest merge distance in z.
func (z Linkage) MaxDist() float64 {
	max := math.Inf(-1)
	for _, l := range z {
		max = math.Max(max, l.Dist)
	}
	return max
}

// Cluster performs agglomerative clustering of n observations given
// their condensed distance matrix d.
func Cluster(d []float64, n int, method Method) (Linkage, error) {
	if n < 1 {
		return nil, fmt.Errorf("no observations")
	}
	if len(d) != n*(n-1)/2 {
		return nil, fmt.Errorf("condensed distance matrix has %d entries, want %d for %d observations", len(d), n*(n-1)/2, n)
	}

	// dist[a][b] is the distance between live clusters a and b,
	// indexed by cluster ID.
	total := 2*n - 1
	dist := make([][]float64, total)
	for i := range dist {
		dist[i] = make([]float64, total)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist[i][j] = d[Index(n, i, j)]
			dist[j][i] = dist[i][j]
		}
	}
	size := make([]int, total)
	live := make([]int, n)
	for i := range live {
		size[i] = 1
		live[i] = i
	}

	z := make(Linkage, 0, n-1)
	for next := n; next < total; next++ {
		// Find the closest pair of live clusters. live is in
		// ascending ID order, so ties go to the lowest IDs.
		ai, bi := 0, 1
		best := math.Inf(1)
		for i := 0; i < len(live); i++ {
			for j := i + 1; j < len(live); j++ {
				if dd := dist[live[i]][live[j]]; dd < best {
					best, ai, bi = dd, i, j
				}
			}
		}
		a, b := live[ai], live[bi]
		size[next] = size[a] + size[b]
		z = append(z, Link{A: a, B: b, Dist: best, Size: size[next]})

		// Replace a and b with the merged cluster.
		live = append(live[:bi], live[bi+1:]...)
		live = append(live[:ai], live[ai+1:]...)
		for _, k := range live {
			var dk float64
			switch method {
			case Complete:
				dk = math.Max(dist[a][k], dist[b][k])
			case Single:
				dk = math.Min(dist[a][k], dist[b][k])
			case Average:
				na, nb := float64(size[a]), float64(size[b])
				dk = (na*dist[a][k] + nb*dist[b][k]) / (na + nb)
			default:
				return nil, fmt.Errorf("unknown linkage method %v", method)
			}
			dist[next][k], dist[k][next] = dk, dk
		}
		live = append(live, next)
	}
	return z, nil
}
