// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/aclements/figfactory/figure"
	"github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"
)

// parseLayout parses shell-quoted key=value layout overrides. A key
// may be a dotted path into nested layout objects. Values are parsed
// as YAML scalars or flow collections, so "true" is a bool and "[0, 1]"
// is a list.
func parseLayout(s string) (figure.Object, error) {
	words, err := shellquote.Split(s)
	if err != nil {
		return nil, fmt.Errorf("bad -layout: %w", err)
	}
	out := figure.Object{}
	for _, w := range words {
		key, val, ok := strings.Cut(w, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("bad -layout override %q: want key=value", w)
		}
		var v interface{}
		if err := yaml.Unmarshal([]byte(val), &v); err != nil {
			return nil, fmt.Errorf("bad -layout value for %s: %w", key, err)
		}
		if v == nil && val != "null" {
			v = val
		}
		path := strings.Split(key, ".")
		obj := out
		for _, p := range path[:len(path)-1] {
			obj = obj.Sub(p)
		}
		obj[path[len(path)-1]] = v
	}
	return out, nil
}
