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

package profile

import (
	"strconv"
	"strings"

	"github.com/poiesic/jobscout/core"
)

// Inferencer classifies columns into semantic types.
type Inferencer struct {
	thresholds Thresholds
}

// NewInferencer creates an inferencer with the given thresholds.
func NewInferencer(thresholds Thresholds) (*Inferencer, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}
	return &Inferencer{thresholds: thresholds}, nil
}

// InferType classifies col using the default thresholds.
func InferType(col *core.Column) core.InferredType {
	return (&Inferencer{thresholds: DefaultThresholds()}).Infer(col)
}

// Infer returns the semantic type of col. The first matching rule wins:
// datetime storage, boolean storage, numeric storage, then text probing.
// A column with no present values is mixed/unknown.
func (inf *Inferencer) Infer(col *core.Column) core.InferredType {
	st := columnStats(col)
	if st.present == 0 {
		return core.TypeUnknown
	}

	switch col.Kind {
	case core.KindTime:
		return core.TypeDatetime
	case core.KindBool:
		return core.TypeBoolean
	case core.KindInt, core.KindFloat:
		ratio := float64(st.distinct) / float64(st.total)
		if ratio < inf.thresholds.CategoricalRatioMax && st.distinct < inf.thresholds.CategoricalCountMax {
			return core.TypeCategorical
		}
		return core.TypeNumeric
	case core.KindObject:
		return inf.inferText(col, st)
	default:
		return core.TypeUnknown
	}
}

func (inf *Inferencer) inferText(col *core.Column, st stats) core.InferredType {
	if allNumeric(col.Values) {
		return core.TypeNumericText
	}
	if allBooleanSpellings(col.Values) {
		return core.TypeBooleanText
	}
	ratio := float64(st.distinct) / float64(st.present)
	if ratio < inf.thresholds.CategoricalRatioMax && st.distinct < inf.thresholds.TextCategoricalCountMax {
		return core.TypeCategorical
	}
	return core.TypeText
}

// stats holds the counts inference and summaries are derived from.
type stats struct {
	total    int
	present  int
	distinct int
}

func columnStats(col *core.Column) stats {
	seen := make(map[any]struct{})
	st := stats{total: col.Len()}
	for _, v := range col.Values {
		if v == nil {
			continue
		}
		st.present++
		seen[core.DistinctKey(v)] = struct{}{}
	}
	st.distinct = len(seen)
	return st
}

func allNumeric(values []any) bool {
	for _, v := range values {
		switch x := v.(type) {
		case nil, int64, float64:
			continue
		case string:
			if _, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err != nil {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func allBooleanSpellings(values []any) bool {
	for _, v := range values {
		if v == nil {
			continue
		}
		s := strings.ToLower(strings.TrimSpace(core.FormatValue(v)))
		if _, ok := booleanSpellings[s]; !ok {
			return false
		}
	}
	return true
}
