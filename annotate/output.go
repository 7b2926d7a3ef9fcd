// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2024 Department of Linguistics,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package annotate

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
)

// SaveJSON writes entries into a file as a pretty-printed JSON array
// preserving their order.
func SaveJSON(path string, entries []WordEntry) error {
	data, err := sonic.ConfigDefault.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to save results to %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to save results to %s: %w", path, err)
	}
	return nil
}
