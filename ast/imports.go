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

package ast

// FilePrefix distinguishes the four ways a local import's path can be
// anchored.
type FilePrefix int

const (
	Absolute FilePrefix = iota // /usr/...
	Here                       // ./...
	Parent                     // ../...
	Home                       // ~/...
)

// Scheme is a remote import's URL scheme.
type Scheme int

const (
	HTTP Scheme = iota
	HTTPS
)

// ImportMode controls how an import's resolved contents are interpreted.
type ImportMode int

const (
	// Code: resolve the target and parse it as Dhall source (the default).
	Code ImportMode = iota
	// RawText: read the target's bytes as a Text literal ("as Text").
	RawText
	// Location: don't fetch the target at all; produce its ast.ImportLocation
	// value as a Dhall <Local : ... | Remote : ... | Environment : ... |
	// Missing> union literal ("as Location").
	Location
)

// URL is a remote import's address, already split into Dhall's own
// grammar-level components (no transport concerns here; an external
// fetcher resolves this).
type URL struct {
	Scheme   Scheme
	Authority string
	Path     []string
	Query    *string
	Headers  Expr // optional `using headerExpr`, nil if absent
}

// Hash is a parsed `sha256:<64 hex digits>` integrity check suffix.
type Hash struct {
	Algorithm string
	Digest    []byte
}

// ImportLocation is the target an Import points at, before any "as"
// suffix is applied.
type ImportLocation struct {
	Kind ImportLocationKind

	Local  *LocalLocation
	Remote *URL
	Env    *Label
	// Missing carries no payload.
}

// ImportLocationKind discriminates ImportLocation's payload.
type ImportLocationKind int

const (
	LocalImport ImportLocationKind = iota
	RemoteImport
	EnvImport
	MissingImport
)

// LocalLocation is a filesystem-relative import target.
type LocalLocation struct {
	Prefix FilePrefix
	Path   []string
}

// Import is a fully parsed import expression: where to fetch from, how to
// interpret what comes back, and an optional integrity hash.
type Import struct {
	Location ImportLocation
	Mode     ImportMode
	Hash     *Hash
}
