// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// readCSV reads a CSV file with a header row into a table.
func readCSV(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := parseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// parseCSV parses CSV data into a table. A column whose every entry
// parses as a number becomes a []float64 column; any other column is
// a []string column.
func parseCSV(r io.Reader) (*table.Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	header, rows := records[0], records[1:]

	b := new(table.Builder)
	for c, name := range header {
		strs := make([]string, len(rows))
		nums := make([]float64, len(rows))
		numeric := true
		for i, row := range rows {
			strs[i] = row[c]
			if numeric {
				nums[i], err = strconv.ParseFloat(strings.TrimSpace(row[c]), 64)
				numeric = err == nil
			}
		}
		if numeric {
			b.Add(name, nums)
		} else {
			b.Add(name, strs)
		}
	}
	return b.Done(), nil
}
