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

package literal

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestDecodeDoubleQuoteEscape(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`"`, `"`},
		{"$", "$"},
		{`\`, `\`},
		{"/", "/"},
		{"n", "\n"},
		{"t", "\t"},
		{"u0041", "A"},
		{"u{1F600}", "\U0001F600"},
	}
	for _, c := range cases {
		got, err := DecodeDoubleQuoteEscape(c.in)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(got, c.want))
	}
}

func TestDecodeDoubleQuoteEscapeRejectsSurrogates(t *testing.T) {
	_, err := DecodeDoubleQuoteEscape("uD800")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestDecodeDoubleQuoteEscapeRejectsNonCharacters(t *testing.T) {
	_, err := DecodeDoubleQuoteEscape("uFFFE")
	qt.Assert(t, qt.IsNotNil(err))

	_, err = DecodeDoubleQuoteEscape("u{1FFFF}")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestDecodePosixEnvVarChar(t *testing.T) {
	got, err := DecodePosixEnvVarChar(`\n`)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "\n"))

	got, err = DecodePosixEnvVarChar("X")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "X"))
}

func TestEncodeQuotedPathComponent(t *testing.T) {
	got := EncodeQuotedPathComponent("a b/c")
	qt.Assert(t, qt.Equals(got, "a b%2Fc"))
}

func TestParseHash(t *testing.T) {
	algo, digest, err := ParseHash("sha256:" + hexOf64Zeroes())
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(algo, "sha256"))
	qt.Assert(t, qt.Equals(len(digest), 32))

	_, _, err = ParseHash("md5:abcd")
	qt.Assert(t, qt.IsNotNil(err))
}

func hexOf64Zeroes() string {
	b := make([]byte, 64)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

func TestParseNaturalAndInteger(t *testing.T) {
	n, err := ParseNatural("42")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(n, uint64(42)))

	_, err = ParseNatural("-1")
	qt.Assert(t, qt.IsNotNil(err))

	i, err := ParseInteger("+7")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(i, int64(7)))

	_, err = ParseInteger("7")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestParseDouble(t *testing.T) {
	d, err := ParseDouble("3.14")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(d, 3.14))

	d, err = ParseDouble("Infinity")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(d > 0, true))
}
