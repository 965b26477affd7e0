package config

const (
	// MaxTopicTitleLength is the maximum length for topic titles.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (titles should be short and descriptive).
	MaxTopicTitleLength = 255

	// MaxQuestionLength is the maximum length for the topic question body.
	MaxQuestionLength = 10000

	// MaxSolutionLength is the maximum length for an answer's solution body.
	MaxSolutionLength = 10000

	// MaxCourseNameLength is the maximum length for course names.
	// Same bound as topic titles for consistency.
	MaxCourseNameLength = 255
)
