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

package core

import (
	"fmt"
	"strconv"
	"time"
)

// Kind is the native storage kind of a column, independent of what its
// values mean.
type Kind int

const (
	// KindUnknown holds values of a Go type the table model does not know.
	KindUnknown Kind = iota
	// KindBool holds bool values with no absent entries.
	KindBool
	// KindInt holds int64 values with no absent entries.
	KindInt
	// KindFloat holds float64 values; absent entries are allowed.
	KindFloat
	// KindTime holds time.Time values; absent entries are allowed.
	KindTime
	// KindObject holds strings or a mix of kinds.
	KindObject
)

// String returns the storage label reported in column summaries.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int64"
	case KindFloat:
		return "float64"
	case KindTime:
		return "datetime64[ns]"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// NormalizeValue converts a Go value to the representation stored in a
// column: nil for absent, otherwise bool, int64, float64, time.Time or string.
// Values of any other type are returned unchanged.
func NormalizeValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case bool, int64, float64, string, time.Time:
		return x
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case float32:
		return float64(x)
	case *string:
		if x == nil {
			return nil
		}
		return *x
	default:
		return v
	}
}

// DetectKind derives the storage kind of a sequence of normalized values.
// Integer columns with absent entries widen to float, boolean columns with
// absent entries fall back to object storage.
func DetectKind(values []any) Kind {
	if len(values) == 0 {
		return KindObject
	}

	var hasAbsent, hasBool, hasInt, hasFloat, hasTime, hasString, hasOther bool
	for _, v := range values {
		switch v.(type) {
		case nil:
			hasAbsent = true
		case bool:
			hasBool = true
		case int64:
			hasInt = true
		case float64:
			hasFloat = true
		case time.Time:
			hasTime = true
		case string:
			hasString = true
		default:
			hasOther = true
		}
	}

	present := 0
	for _, b := range []bool{hasBool, hasInt || hasFloat, hasTime, hasString, hasOther} {
		if b {
			present++
		}
	}

	switch {
	case present == 0:
		// all absent
		return KindFloat
	case present > 1:
		return KindObject
	case hasOther:
		return KindUnknown
	case hasBool:
		if hasAbsent {
			return KindObject
		}
		return KindBool
	case hasInt && !hasFloat && !hasAbsent:
		return KindInt
	case hasInt || hasFloat:
		return KindFloat
	case hasTime:
		return KindTime
	default:
		return KindObject
	}
}

// coerce converts a normalized value to the representation required by kind.
func coerce(v any, kind Kind) any {
	if kind == KindFloat {
		if i, ok := v.(int64); ok {
			return float64(i)
		}
	}
	return v
}

// FormatValue renders a value as text. Absent values render as the empty string.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return x.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(x)
	}
}

// DistinctKey returns a comparable key identifying a value for cardinality
// counting.
func DistinctKey(v any) any {
	switch x := v.(type) {
	case bool, int64, float64, string:
		return x
	case time.Time:
		return x.UnixNano()
	default:
		return fmt.Sprintf("%T:%v", x, x)
	}
}
