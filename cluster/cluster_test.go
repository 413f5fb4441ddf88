// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cluster

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var fourPoints = mat.NewDense(4, 4, []float64{
	1, 2, 3, 4,
	1, 1, 3, 4,
	1, 2, 1, 4,
	1, 2, 3, 1,
})

func TestPDist(t *testing.T) {
	got := PDist(fourPoints)
	want := []float64{1, 2, 3, math.Sqrt(5), math.Sqrt(10), math.Sqrt(13)}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("PDist mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 4, Index(4, 1, 3))
	require.Equal(t, Index(4, 2, 0), Index(4, 0, 2))
}

func TestCluster(t *testing.T) {
	d := PDist(fourPoints)
	for _, test := range []struct {
		method Method
		want   Linkage
	}{
		{Complete, Linkage{
			{0, 1, 1, 2},
			{2, 4, math.Sqrt(5), 3},
			{3, 5, math.Sqrt(13), 4},
		}},
		{Single, Linkage{
			{0, 1, 1, 2},
			{2, 4, 2, 3},
			{3, 5, 3, 4},
		}},
		{Average, Linkage{
			{0, 1, 1, 2},
			{2, 4, (2 + math.Sqrt(5)) / 2, 3},
			{3, 5, (3 + math.Sqrt(10) + math.Sqrt(13)) / 3, 4},
		}},
	} {
		got, err := Cluster(d, 4, test.method)
		require.NoError(t, err)
		if diff := cmp.Diff(test.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Errorf("%v linkage mismatch (-want +got):\n%s", test.method, diff)
		}
	}

	_, err := Cluster(d, 5, Complete)
	require.Error(t, err)
	_, err = Cluster(d, 4, Method(7))
	require.Error(t, err)
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("average")
	require.NoError(t, err)
	require.Equal(t, Average, m)
	_, err = ParseMethod("ward")
	require.ErrorContains(t, err, "ward")
}

func TestDendrogram(t *testing.T) {
	z, err := Cluster(PDist(fourPoints), 4, Complete)
	require.NoError(t, err)
	got := Dendrogram(z, nil, 0)
	want := &Tree{
		Icoord: [][4]float64{
			{25, 25, 35, 35},
			{15, 15, 30, 30},
			{5, 5, 22.5, 22.5},
		},
		Dcoord: [][4]float64{
			{0, 1, 1, 0},
			{0, math.Sqrt(5), math.Sqrt(5), 1},
			{0, math.Sqrt(13), math.Sqrt(13), math.Sqrt(5)},
		},
		ColorKeys: []string{"g", "g", "b"},
		Ivl:       []string{"3", "2", "0", "1"},
		Leaves:    []int{3, 2, 0, 1},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Dendrogram mismatch (-want +got):\n%s", diff)
	}

	// Every link is above a negative threshold.
	got = Dendrogram(z, []string{"a", "b", "c", "d"}, -1)
	require.Equal(t, []string{"b", "b", "b"}, got.ColorKeys)
	require.Equal(t, []string{"d", "c", "a", "b"}, got.Ivl)

	// Two separate low subtrees get different colors.
	pairs := mat.NewDense(4, 1, []float64{0, 1, 10, 11})
	z, err = Cluster(PDist(pairs), 4, Complete)
	require.NoError(t, err)
	got = Dendrogram(z, nil, 0)
	require.Equal(t, []string{"g", "r", "b"}, got.ColorKeys)
}

func TestDendrogramSingleLeaf(t *testing.T) {
	got := Dendrogram(nil, []string{"only"}, 0)
	require.Equal(t, []string{"only"}, got.Ivl)
	require.Empty(t, got.Icoord)
}
