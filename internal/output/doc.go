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

// Package output persists normalized pull requests as YAML descriptor files,
// one file per pull request, in a directory the sync owns.
//
// The directory is the only index: there is no manifest. Files whose
// extension matches the writer's are treated as outputs of a previous sync
// and are removed by ClearStale; anything else in the directory is kept.
//
// Example usage:
//
//	w := output.NewDirWriter(".prs", "yaml")
//	if err := w.Prepare(); err != nil {
//	    return err
//	}
//	if _, err := w.ClearStale(); err != nil {
//	    return err
//	}
//	path, err := w.Write("42-fix-bug", record)
package output
