package widget

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a short random widget identifier.
func NewID() string {
	return uuid.NewString()[:8]
}

// QuestionID returns the identifier of the nth question inside an
// assessment, 1-based in canonical order.
func QuestionID(assessmentID string, index int) string {
	return fmt.Sprintf("%s_q%d", assessmentID, index+1)
}
