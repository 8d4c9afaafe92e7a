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

import (
	"os"
	"testing"
)

// Compile-time check that DirWriter implements OutputWriter
var _ OutputWriter = (*DirWriter)(nil)

func TestDirWriterImplementsInterface(t *testing.T) {
	var w OutputWriter = NewDirWriter(t.TempDir(), "yaml")

	if err := w.Prepare(); err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if _, err := w.ClearStale(); err != nil {
		t.Fatalf("ClearStale() error = %v", err)
	}

	path, err := w.Write("1-test", map[string]string{"test": "data"})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("Expected data to be written to %s", path)
	}
}
