// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"reflect"
	"sort"
	"strconv"

	"github.com/aclements/go-gg/generic/slice"
)

// A column is a table column whose entries are either all numbers or
// all strings.
type column struct {
	name  string
	isNum bool
	nums  []float64
	strs  []string
}

// readColumn classifies the entries of a go-gg table column. It
// returns false if the column mixes numbers and strings or holds
// anything else.
func readColumn(name string, data interface{}) (column, bool) {
	c := column{name: name}
	switch data := data.(type) {
	case []string:
		c.strs = data
		return c, true
	case []float64:
		c.isNum, c.nums = true, data
		return c, true
	case []interface{}:
		var nstr int
		for _, v := range data {
			if _, ok := v.(string); ok {
				nstr++
			}
		}
		if nstr == len(data) {
			c.strs = make([]string, len(data))
			for i, v := range data {
				c.strs[i] = v.(string)
			}
			return c, true
		}
		if nstr > 0 {
			return c, false
		}
		c.isNum = true
		c.nums = make([]float64, len(data))
		for i, v := range data {
			x, ok := toFloat(v)
			if !ok {
				return c, false
			}
			c.nums[i] = x
		}
		return c, true
	}
	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Slice {
		return c, false
	}
	switch rv.Type().Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		c.isNum = true
		slice.Convert(&c.nums, data)
		return c, true
	}
	return c, false
}

// toFloat converts a decoded JSON, YAML or table number to float64.
func toFloat(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

func (c column) len() int {
	if c.isNum {
		return len(c.nums)
	}
	return len(c.strs)
}

// values returns the entries of c as a []float64 or []string.
func (c column) values() interface{} {
	if c.isNum {
		return c.nums
	}
	return c.strs
}

// subset returns the entries of c at rows.
func (c column) subset(rows []int) interface{} {
	if c.isNum {
		out := make([]float64, len(rows))
		for i, r := range rows {
			out[i] = c.nums[r]
		}
		return out
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = c.strs[r]
	}
	return out
}

// key returns the string form of entry i, used to name groups.
func (c column) key(i int) string {
	if c.isNum {
		return strconv.FormatFloat(c.nums[i], 'g', -1, 64)
	}
	return c.strs[i]
}

// groupRows partitions the rows of c by value. Groups are returned in
// sorted order of their values, along with the order in which each
// group first appears in c.
func (c column) groupRows() (groups []group, firstSeen []int) {
	byKey := make(map[string]int)
	for i := 0; i < c.len(); i++ {
		k := c.key(i)
		g, ok := byKey[k]
		if !ok {
			g = len(groups)
			byKey[k] = g
			groups = append(groups, group{name: k, first: i})
		}
		groups[g].rows = append(groups[g].rows, i)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i].first, groups[j].first
		if c.isNum {
			return c.nums[a] < c.nums[b]
		}
		return c.strs[a] < c.strs[b]
	})
	firstSeen = make([]int, len(groups))
	for i := range firstSeen {
		firstSeen[i] = i
	}
	sort.Slice(firstSeen, func(i, j int) bool {
		return groups[firstSeen[i]].first < groups[firstSeen[j]].first
	})
	return groups, firstSeen
}

// A group is a named subset of table rows drawn as one trace.
type group struct {
	name  string
	first int
	rows  []int
	color string
}
