package question

// Type identifies the answer input size of a question.
type Type string

const (
	// TypeShort renders a compact answer box.
	TypeShort Type = "short"
	// TypeLong renders an extended answer box.
	TypeLong Type = "long"
)

// Question is a single parsed freetext question.
type Question struct {
	// Body holds the question prompt, usually rendered HTML.
	Body        string
	Type        Type
	Marks       int
	Rows        int
	ShowAnswer  bool
	Placeholder string
	// Answer is the sample answer revealed after submission.
	Answer string
	// Extra preserves unrecognized config keys verbatim.
	Extra map[string]string
}

// Assessment is a titled group of questions parsed from one admonition.
type Assessment struct {
	Title string
	// Shuffle overrides the global shuffle option when set.
	Shuffle   *bool
	Questions []Question
}

// TotalMarks sums the marks of all questions in the assessment.
func (a Assessment) TotalMarks() int {
	total := 0
	for _, q := range a.Questions {
		total += q.Marks
	}
	return total
}

// ShuffleEnabled resolves the effective shuffle setting for an assessment.
// A per-assessment directive wins over the global option.
func ShuffleEnabled(a Assessment, global bool) bool {
	if a.Shuffle != nil {
		return *a.Shuffle
	}
	return global
}

// Warning reports a config problem that was recovered with a default.
type Warning struct {
	Field   string
	Message string
}

// Defaults supplies fallback values for absent or invalid config keys.
type Defaults struct {
	Marks       int
	Type        Type
	ShortRows   int
	LongRows    int
	Placeholder string
	ShowAnswer  bool
}

// RowsFor returns the default answer rows for a question type.
func (d Defaults) RowsFor(t Type) int {
	if t == TypeLong {
		return d.LongRows
	}
	return d.ShortRows
}
