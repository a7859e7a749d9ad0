// Copyright ©2025 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const summary = "Assembly Accession\tOrganism Name\tOrganism Infraspecific Names Strain\tAssembly Stats Total Sequence Length\tAssembly Stats Number of Contigs\tAssembly Stats Contig N50\tAssembly Stats GC Count\tAssembly Stats GC Percent\n" +
	"GCF_000005845.2\tEscherichia coli K-12\tK-12\t4641652\t1\t4641652\t2346035\t50.5\n" +
	"GCF_000006945.2\tSalmonella enterica\tLT2\t4951383\t2\t4857450\t2584467\t52\n" +
	"GCF_000009045.1\tBacillus subtilis\t168\t4215606\t1\t4215606\t1833724\t43.5\n"

func (s *S) TestSplit(c *check.C) {
	for _, t := range []struct {
		name string
		date string
	}{
		{name: "eubacteria_26-02-2025_latest.tsv", date: "26-02-2025"},
		{name: "eubacteria_latest.tsv", date: "None"},
	} {
		dir := c.MkDir()
		inf := filepath.Join(dir, t.name)
		c.Assert(os.WriteFile(inf, []byte(summary), 0o644), check.IsNil)
		outd := filepath.Join(dir, "out")

		groups, err := split(inf, outd)
		c.Assert(err, check.IsNil)
		c.Check(groups, check.HasLen, 2)
		for _, genus := range []string{"Bacillus", "Escherichia"} {
			_, err := os.Stat(filepath.Join(outd, genus, genus+"_"+t.date+".tsv"))
			c.Check(err, check.IsNil, check.Commentf("%s %s", t.name, genus))
		}
		_, err = os.Stat(filepath.Join(outd, "Salmonella"))
		c.Check(os.IsNotExist(err), check.Equals, true)

		var buf strings.Builder
		report(&buf, groups)
		c.Check(buf.String(), check.Equals, "genus       assemblies\nBacillus    1\nEscherichia 1\ntotal       2\n")
	}
}

func (s *S) TestSplitMissingInput(c *check.C) {
	dir := c.MkDir()
	_, err := split(filepath.Join(dir, "absent.tsv"), filepath.Join(dir, "out"))
	c.Check(err, check.ErrorMatches, `failed to open .*absent\.tsv.*`)
	_, err = os.Stat(filepath.Join(dir, "out"))
	c.Check(os.IsNotExist(err), check.Equals, true)
}
