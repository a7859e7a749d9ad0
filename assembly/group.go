// Copyright ©2025 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Group is the set of records sharing a genus, in input order.
type Group struct {
	Genus   string
	Records []Record
}

// GroupByGenus partitions annotated records by genus. Groups are
// returned sorted by genus.
func GroupByGenus(recs []Record) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, r := range recs {
		i, ok := index[r.Genus]
		if !ok {
			i = len(groups)
			index[r.Genus] = i
			groups = append(groups, Group{Genus: r.Genus})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Genus < groups[j].Genus })
	return groups
}

// Folder returns the directory name used for the group.
func (g Group) Folder() string { return strings.ReplaceAll(g.Genus, " ", "-") }

// Path returns the path of the group's table below root for the given
// date.
func (g Group) Path(root, date string) string {
	f := g.Folder()
	return filepath.Join(root, f, fmt.Sprintf("%s_%s.tsv", f, date))
}

// WriteGroup writes the group's table below root, creating the group
// directory if needed and replacing any existing table. The table is
// written in a single write. WriteGroup returns the path written.
func WriteGroup(root, date string, g Group) (string, error) {
	var buf bytes.Buffer
	err := Write(&buf, g.Records)
	if err != nil {
		return "", err
	}
	err = os.MkdirAll(filepath.Join(root, g.Folder()), 0o755)
	if err != nil {
		return "", err
	}
	path := g.Path(root, date)
	err = os.WriteFile(path, buf.Bytes(), 0o644)
	if err != nil {
		return "", err
	}
	return path, nil
}

// WriteGroups writes each group's table below root.
func WriteGroups(root, date string, groups []Group) error {
	for _, g := range groups {
		_, err := WriteGroup(root, date, g)
		if err != nil {
			return fmt.Errorf("assembly: genus %q: %w", g.Genus, err)
		}
	}
	return nil
}
