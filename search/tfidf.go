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

package search

import (
	"math"
	"slices"
)

// Model is a TF-IDF model fitted on a corpus. Document vectors use raw term
// counts scaled by smoothed inverse document frequency and are L2 normalized.
// A Model is read-only after Fit and safe for concurrent queries.
type Model struct {
	vocabulary map[string]int
	idf        []float64
	documents  []Vector
}

// Fit builds a model over corpus. Only corpus terms enter the vocabulary;
// documents that are empty or consist solely of stop words get empty vectors.
func Fit(corpus []string) *Model {
	m := &Model{vocabulary: make(map[string]int)}

	tokenized := make([][]string, len(corpus))
	var df []int
	for d, doc := range corpus {
		tokens := tokenize(doc)
		tokenized[d] = tokens
		seen := make(map[int]bool, len(tokens))
		for _, token := range tokens {
			idx, ok := m.vocabulary[token]
			if !ok {
				idx = len(df)
				m.vocabulary[token] = idx
				df = append(df, 0)
			}
			if !seen[idx] {
				seen[idx] = true
				df[idx]++
			}
		}
	}

	n := float64(len(corpus))
	m.idf = make([]float64, len(df))
	for i, count := range df {
		m.idf[i] = math.Log((1+n)/(1+float64(count))) + 1
	}

	m.documents = make([]Vector, len(corpus))
	for d, tokens := range tokenized {
		m.documents[d] = m.weigh(tokens)
	}
	return m
}

// weigh turns tokens into a normalized TF-IDF vector. Out of vocabulary
// tokens are ignored.
func (m *Model) weigh(tokens []string) Vector {
	counts := make(map[int]float64, len(tokens))
	for _, token := range tokens {
		if idx, ok := m.vocabulary[token]; ok {
			counts[idx]++
		}
	}

	v := Vector{
		Indices: make([]int, 0, len(counts)),
		Weights: make([]float64, len(counts)),
	}
	for idx := range counts {
		v.Indices = append(v.Indices, idx)
	}
	slices.Sort(v.Indices)
	for i, idx := range v.Indices {
		v.Weights[i] = counts[idx] * m.idf[idx]
	}
	return v.Normalize()
}

// Transform projects text into the model's vector space.
func (m *Model) Transform(text string) Vector {
	return m.weigh(tokenize(text))
}

// Scores returns the cosine similarity between query and every document,
// in corpus order.
func (m *Model) Scores(query string) []float64 {
	q := m.Transform(query)
	scores := make([]float64, len(m.documents))
	for d, doc := range m.documents {
		scores[d] = doc.Dot(q)
	}
	return scores
}

// Len returns the number of fitted documents.
func (m *Model) Len() int {
	return len(m.documents)
}

// Vocabulary returns the fitted terms in sorted order.
func (m *Model) Vocabulary() []string {
	terms := make([]string, 0, len(m.vocabulary))
	for term := range m.vocabulary {
		terms = append(terms, term)
	}
	slices.Sort(terms)
	return terms
}

// IDF returns the inverse document frequency of term and whether the term
// is in the vocabulary.
func (m *Model) IDF(term string) (float64, bool) {
	idx, ok := m.vocabulary[term]
	if !ok {
		return 0, false
	}
	return m.idf[idx], true
}
