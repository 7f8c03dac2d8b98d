// Copyright 2025 Poiesic Systems
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

package analysis

import (
	"fmt"
	"slices"

	"github.com/poiesic/jobscout/core"
)

// DefaultExclude lists identifier-like columns never worth correlating.
var DefaultExclude = []string{"_jobspy_index", "id", "job_id", "listing_id", "index", "maximum_pay"}

const (
	// MinAmountColumn and MaxAmountColumn bound a posting's advertised pay.
	MinAmountColumn = "min_amount"
	MaxAmountColumn = "max_amount"
	// PayRangeColumn holds MaxAmountColumn minus MinAmountColumn.
	PayRangeColumn = "pay_range"
)

// CorrelationCandidates returns the numeric columns of groups worth
// correlating: those not listed in exclude that exist in t with at least two
// distinct values. Order follows groups.
func CorrelationCandidates(t *core.Table, groups *core.TypeGroups, exclude []string) []string {
	if t == nil || groups == nil {
		return nil
	}
	var out []string
	for _, name := range groups.Columns(core.TypeNumeric) {
		if slices.Contains(exclude, name) {
			continue
		}
		col, ok := t.Column(name)
		if !ok || distinct(col) < 2 {
			continue
		}
		out = append(out, name)
	}
	return out
}

func distinct(col *core.Column) int {
	seen := make(map[any]struct{})
	for _, v := range col.Values {
		if v == nil {
			continue
		}
		seen[core.DistinctKey(v)] = struct{}{}
	}
	return len(seen)
}

// AddPayRange returns a copy of t with PayRangeColumn set to the difference
// between the max and min amount columns. Rows missing either amount get an
// absent range.
func AddPayRange(t *core.Table) (*core.Table, error) {
	if t == nil {
		return nil, ErrTableRequired
	}
	if err := core.ValidateColumns(t, MinAmountColumn, MaxAmountColumn); err != nil {
		return nil, err
	}

	minCol, _ := t.Column(MinAmountColumn)
	maxCol, _ := t.Column(MaxAmountColumn)
	for _, col := range []*core.Column{minCol, maxCol} {
		if !isNumeric(col) {
			return nil, fmt.Errorf("%w: %q has %s storage", ErrNonNumericColumn, col.Name, col.Kind)
		}
	}

	ranges := make([]any, t.NumRows())
	for i := range ranges {
		lo, okLo := toFloat(minCol.Values[i])
		hi, okHi := toFloat(maxCol.Values[i])
		if okLo && okHi {
			ranges[i] = hi - lo
		}
	}
	return t.WithColumn(core.NewColumnOfKind(PayRangeColumn, core.KindFloat, ranges))
}
