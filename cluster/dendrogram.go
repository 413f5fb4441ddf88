// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cluster

import "strconv"

// LinkColors is the cycle of color keys given to subtrees that merge
// below the color threshold.
var LinkColors = []string{"g", "r", "c", "m", "y", "k"}

// AboveThreshold is the color key of links at or above the color
// threshold.
const AboveThreshold = "b"

// A Tree is the drawing layout of a dendrogram.
//
// Leaf i of the ordered leaves is centered at x = 10*i + 5. Each link
// is an upside-down U from (Icoord[0], Dcoord[0]) to (Icoord[3],
// Dcoord[3]) at height Dcoord[1].
type Tree struct {
	// Icoord and Dcoord are the x and y coordinates of each link's
	// four corners, in post-order.
	Icoord, Dcoord [][4]float64

	// ColorKeys is the color key of each link.
	ColorKeys []string

	// Ivl is the label of each leaf, left to right.
	Ivl []string

	// Leaves is the observation index of each leaf, left to right.
	Leaves []int
}

// Dendrogram lays out the clustering z.
//
// labels names the observations; if nil, leaves are labeled by their
// observation index. Links merged at a distance of at least threshold
// get the AboveThreshold color key, and each maximal subtree below it
// gets the next key from LinkColors. If threshold is 0, it defaults
// to 0.7 times the largest merge distance. A negative threshold puts
// every link above it.
func Dendrogram(z Linkage, labels []string, threshold float64) *Tree {
	if threshold == 0 && len(z) > 0 {
		threshold = 0.7 * z.MaxDist()
	}
	l := &layout{z: z, n: z.Leaves(), labels: labels, threshold: threshold}
	l.walk(2*l.n-2, 0)
	return &l.tree
}

type layout struct {
	z         Linkage
	n         int
	labels    []string
	threshold float64

	tree  Tree
	color int  // Index into LinkColors.
	below bool // Last link was below threshold.
}

// walk lays out the subtree rooted at cluster id with its leftmost
// leaf edge at iv. It returns the center x of the subtree, its width
// and its height.
func (l *layout) walk(id int, iv float64) (center, width, height float64) {
	if id < l.n {
		label := strconv.Itoa(id)
		if l.labels != nil {
			label = l.labels[id]
		}
		l.tree.Ivl = append(l.tree.Ivl, label)
		l.tree.Leaves = append(l.tree.Leaves, id)
		return iv + 5, 10, 0
	}

	link := l.z[id-l.n]
	ua, wa, ha := l.walk(link.A, iv)

	h := link.Dist
	var key string
	if l.threshold <= 0 || h >= l.threshold {
		key = AboveThreshold
		if l.below {
			l.color = (l.color + 1) % len(LinkColors)
		}
		l.below = false
	} else {
		l.below = true
		key = LinkColors[l.color]
	}

	ub, wb, hb := l.walk(link.B, iv+wa)

	l.tree.Icoord = append(l.tree.Icoord, [4]float64{ua, ua, ub, ub})
	l.tree.Dcoord = append(l.tree.Dcoord, [4]float64{ha, h, h, hb})
	l.tree.ColorKeys = append(l.tree.ColorKeys, key)
	return (ua + ub) / 2, wa + wb, h
}
