// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package prsync implements the pull operation: it lists pull requests
// through the gh adapter, normalizes each record, and replaces the contents
// of the output directory with one YAML descriptor per pull request.
//
// A sync is a single linear pipeline. There is no retry, no resumption and
// no state carried between runs; the output directory listing is the only
// record of the previous sync.
//
// Descriptor files are named "<number>-<slug>.<ext>", where the slug is
// derived from the title by Slugify. Because the number leads the name,
// distinct pull requests never share a file.
package prsync
