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
	"fmt"
	"math"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/jobscout/core"
)

func summarySize(s core.ColumnSummary) int {
	return ord.String.Size(s.Name) +
		ord.String.Size(string(s.InferredType)) +
		ord.String.Size(s.StorageType) +
		varint.Int64.Size(int64(s.UniqueValues)) +
		varint.Uint64.Size(math.Float64bits(s.MissingPct))
}

func marshalSummary(s core.ColumnSummary, bs []byte) int {
	n := ord.String.Marshal(s.Name, bs)
	n += ord.String.Marshal(string(s.InferredType), bs[n:])
	n += ord.String.Marshal(s.StorageType, bs[n:])
	n += varint.Int64.Marshal(int64(s.UniqueValues), bs[n:])
	n += varint.Uint64.Marshal(math.Float64bits(s.MissingPct), bs[n:])
	return n
}

func unmarshalSummary(bs []byte) (s core.ColumnSummary, n int, err error) {
	var (
		m       int
		str     string
		unique  int64
		missing uint64
	)
	if s.Name, m, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	n += m
	if str, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	s.InferredType = core.InferredType(str)
	n += m
	if s.StorageType, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	if unique, m, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return
	}
	s.UniqueValues = int(unique)
	n += m
	if missing, m, err = varint.Uint64.Unmarshal(bs[n:]); err != nil {
		return
	}
	s.MissingPct = math.Float64frombits(missing)
	n += m
	return
}

// MarshalSummaries serializes summaries to bytes. Equal summary lists
// always produce identical bytes.
func MarshalSummaries(summaries []core.ColumnSummary) []byte {
	size := varint.Int64.Size(int64(len(summaries)))
	for _, s := range summaries {
		size += summarySize(s)
	}
	buf := make([]byte, size)
	n := varint.Int64.Marshal(int64(len(summaries)), buf)
	for _, s := range summaries {
		n += marshalSummary(s, buf[n:])
	}
	return buf
}

// UnmarshalSummaries deserializes summaries written by MarshalSummaries.
func UnmarshalSummaries(data []byte) ([]core.ColumnSummary, error) {
	count, n, err := varint.Int64.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSummaries, err)
	}
	if count < 0 || count > int64(len(data)) {
		return nil, fmt.Errorf("%w: bad count %d", ErrCorruptSummaries, count)
	}
	out := make([]core.ColumnSummary, 0, count)
	for range count {
		s, m, err := unmarshalSummary(data[n:])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptSummaries, err)
		}
		n += m
		out = append(out, s)
	}
	return out, nil
}

// Fingerprint returns a content digest of summaries. Two summary lists have
// the same fingerprint exactly when their serialized forms match.
func Fingerprint(summaries []core.ColumnSummary) core.ID {
	return core.IDFromContent(MarshalSummaries(summaries))
}
