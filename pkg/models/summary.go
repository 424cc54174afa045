package models

// FieldSummary is one row of the schema report. The json tags fix the field
// order the renderers rely on.
type FieldSummary struct {
	Count      int    `json:"$count" yaml:"count"`
	CountFalsy int    `json:"$count_falsy" yaml:"countFalsy"`
	Parse      Value  `json:"$parse" yaml:"parse"`
	Type       string `json:"$type" yaml:"type"`
	Key        string `json:"$key" yaml:"key"`
}

// VerboseFieldSummary adds derived descriptive fields to a row. It is purely
// a presentation variant, the aggregation key is untouched.
type VerboseFieldSummary struct {
	FieldSummary
	RatioFalsy float64 `json:"$ratio_falsy" yaml:"ratioFalsy"`
}

// Verbose derives the verbose variant of the row.
func (s FieldSummary) Verbose() VerboseFieldSummary {
	ratio := 0.0
	if s.Count > 0 {
		ratio = float64(s.CountFalsy) / float64(s.Count)
	}
	return VerboseFieldSummary{FieldSummary: s, RatioFalsy: ratio}
}
