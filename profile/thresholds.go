package profile

import (
	"fmt"

	"github.com/poiesic/jobscout/core"
)

// Thresholds holds the cutoffs used by the inference cascade.
type Thresholds struct {
	// CategoricalRatioMax is the exclusive upper bound on distinct/total for a
	// column to be considered categorical.
	CategoricalRatioMax float64 `yaml:"categorical_ratio_max"`

	// CategoricalCountMax is the exclusive upper bound on distinct values for
	// a numeric column to be considered categorical.
	CategoricalCountMax int `yaml:"categorical_count_max"`

	// TextCategoricalCountMax is the exclusive upper bound on distinct values
	// for a text column to be considered categorical.
	TextCategoricalCountMax int `yaml:"text_categorical_count_max"`
}

// DefaultThresholds returns the standard cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CategoricalRatioMax:     0.05,
		CategoricalCountMax:     20,
		TextCategoricalCountMax: 50,
	}
}

// Validate checks the thresholds are usable.
func (t Thresholds) Validate() error {
	if t.CategoricalRatioMax <= 0 || t.CategoricalRatioMax > 1 {
		return fmt.Errorf("%w: categorical_ratio_max %v not in (0,1]", ErrInvalidThresholds, t.CategoricalRatioMax)
	}
	if t.CategoricalCountMax < 1 {
		return fmt.Errorf("%w: categorical_count_max %d < 1", ErrInvalidThresholds, t.CategoricalCountMax)
	}
	if t.TextCategoricalCountMax < 1 {
		return fmt.Errorf("%w: text_categorical_count_max %d < 1", ErrInvalidThresholds, t.TextCategoricalCountMax)
	}
	return nil
}

// typePriority orders summaries. Types not listed sort last.
var typePriority = []core.InferredType{
	core.TypeNumeric,
	core.TypeCategorical,
	core.TypeText,
	core.TypeBoolean,
	core.TypeDatetime,
	core.TypeUnknown,
}

// booleanSpellings is the closed set of lowercase strings accepted as boolean text.
var booleanSpellings = map[string]struct{}{
	"true": {}, "false": {}, "1": {}, "0": {}, "yes": {}, "no": {}, "nan": {}, "": {},
}
