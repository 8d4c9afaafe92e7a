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

package output

// OutputWriter defines the interface for persisting normalized pull
// requests. The sync pipeline calls Prepare, then ClearStale, then Write
// once per record.
type OutputWriter interface {
	// Prepare creates the output location if it does not exist.
	Prepare() error

	// ClearStale removes outputs left by a previous sync and reports how
	// many were removed. Files that are not sync outputs are kept.
	ClearStale() (int, error)

	// Write serializes record under name, replacing any existing output,
	// and returns the path written.
	Write(name string, record interface{}) (string, error)
}
