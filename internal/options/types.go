package options

// Question type names accepted by default_question_type and per-question
// type: directives.
const (
	TypeShort = "short"
	TypeLong  = "long"
)

// Options is the full plugin option surface. Values are immutable after
// Load; the processor and widgets receive them by value.
type Options struct {
	QuestionClass      string `yaml:"question_class"`
	AssessmentClass    string `yaml:"assessment_class"`
	AnswerClass        string `yaml:"answer_class"`
	ContainerClass     string `yaml:"container_class"`
	EnableCSS          bool   `yaml:"enable_css"`
	DarkModeSupport    bool   `yaml:"dark_mode_support"`
	ShuffleQuestions   bool   `yaml:"shuffle_questions"`
	ShowCharacterCount bool   `yaml:"show_character_count"`
	EnableAutoSave     bool   `yaml:"enable_auto_save"`
	DefaultAnswerRows  int    `yaml:"default_answer_rows"`
	DefaultLongRows    int    `yaml:"default_long_answer_rows"`
	DefaultPlaceholder string `yaml:"default_placeholder"`
	DefaultMarks       int    `yaml:"default_marks"`
	DefaultShowAnswer  bool   `yaml:"default_show_answer"`
	DefaultType        string `yaml:"default_question_type"`
	Debug              bool   `yaml:"debug"`
	DebugDir           string `yaml:"debug_dir"`
}

// Default returns the option values used when no config file is present.
func Default() Options {
	return Options{
		QuestionClass:      "freetext-question",
		AssessmentClass:    "freetext-assessment",
		AnswerClass:        "freetext-answer",
		ContainerClass:     "freetext-container",
		EnableCSS:          true,
		DarkModeSupport:    true,
		ShuffleQuestions:   false,
		ShowCharacterCount: true,
		EnableAutoSave:     true,
		DefaultAnswerRows:  3,
		DefaultLongRows:    6,
		DefaultPlaceholder: "Enter your answer...",
		DefaultMarks:       0,
		DefaultShowAnswer:  true,
		DefaultType:        TypeShort,
		Debug:              false,
		DebugDir:           "debug",
	}
}
