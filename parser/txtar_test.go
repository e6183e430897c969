// Copyright 2026 The Dhall-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"fmt"
	"testing"

	"github.com/dhall-lang/dhall-go/internal/dhalltxtar"
)

// TestDumpFixtures runs every testdata/dump/*.txtar fixture: parse the
// input.dhall source in the archive and check dumpExpr's rendering of the
// result against the "out/dump" golden entry.
func TestDumpFixtures(t *testing.T) {
	(&dhalltxtar.TxTarTest{
		Root: "testdata/dump",
		Name: "dump",
	}).Run(t, func(tc *dhalltxtar.Test) {
		src := tc.Source("")
		got, err := ParseExpr(tc.Name(), string(src))
		if err != nil {
			tc.Fatalf("parse error: %v", err)
		}
		fmt.Fprintln(tc, dumpExpr(got))
	})
}
