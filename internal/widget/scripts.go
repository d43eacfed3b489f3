package widget

import (
	"fmt"
	"strconv"
	"strings"

	"freetext/internal/options"
	"freetext/internal/question"
)

// noSampleAnswer is embedded when a question declares no sample answer.
const noSampleAnswer = "No sample answer provided."

// QuestionScripts returns the function definitions for a standalone
// question widget. Standalone questions need no DOM-ready work.
func QuestionScripts(q question.Question, id string, opts options.Options) string {
	var parts []string
	if opts.ShowCharacterCount {
		parts = append(parts, charCountFunc(id))
	}
	parts = append(parts, fmt.Sprintf(`function submitAnswer_%[1]s() {
  const answer = document.getElementById('answer_%[1]s').value;
  const feedback = document.getElementById('feedback_%[1]s');
  const submitBtn = document.querySelector('[data-question-id="%[1]s"] .submit-btn');
  if (answer.trim() === '') {
    feedback.innerHTML = '<div class="warning">Please enter an answer before submitting.</div>';
    feedback.style.display = 'block';
    return;
  }
  submitBtn.textContent = 'Submitted';
  submitBtn.title = 'Click to resubmit';
  if (%[2]s) {
    feedback.innerHTML = '<div class="answer-display"><strong>Sample Answer:</strong><br>%[3]s</div>';
    feedback.style.display = 'block';
  } else {
    feedback.style.display = 'none';
  }
}`, id, strconv.FormatBool(q.ShowAnswer), jsString(q.Answer)))
	return strings.Join(parts, "\n\n")
}

// AssessmentScripts returns the function definitions and the DOM-ready
// call for an assessment widget.
func AssessmentScripts(a question.Assessment, id string, opts options.Options) (functions, domReady string) {
	ids := make([]string, len(a.Questions))
	for i := range a.Questions {
		ids[i] = QuestionID(id, i)
	}

	var parts []string
	parts = append(parts, autoSaveFunc(id, ids, opts.EnableAutoSave))
	parts = append(parts, submitAssessmentFunc(id, ids, a.Questions))
	if opts.ShowCharacterCount {
		for _, qid := range ids {
			parts = append(parts, charCountFunc(qid))
		}
	}
	parts = append(parts, shuffleFunc(id))

	return strings.Join(parts, "\n\n"), fmt.Sprintf("shuffleQuestions_%s();", id)
}

// charCountFunc builds the character counter updater for one answer box.
func charCountFunc(id string) string {
	return fmt.Sprintf(`function updateCharCount_%[1]s() {
  const textarea = document.getElementById('answer_%[1]s');
  const counter = document.getElementById('charCount_%[1]s');
  if (counter) {
    counter.textContent = textarea.value.length + ' characters';
  }
}`, id)
}

// autoSaveFunc builds the localStorage auto-save routine. The enabled flag
// is baked in so the markup can call it unconditionally.
func autoSaveFunc(id string, questionIDs []string, enabled bool) string {
	var saves strings.Builder
	for _, qid := range questionIDs {
		fmt.Fprintf(&saves, "    answers[%[1]q] = document.getElementById('answer_%[1]s').value;\n", qid)
	}
	return fmt.Sprintf(`function autoSaveAssessment_%[1]s() {
  if (%[2]s) {
    const answers = {};
%[3]s    localStorage.setItem('freetext_assessment_%[1]s', JSON.stringify(answers));
  }
}`, id, strconv.FormatBool(enabled), saves.String())
}

// submitAssessmentFunc builds the submit handler: it requires every answer
// box to be filled, then reveals sample answers where enabled.
func submitAssessmentFunc(id string, questionIDs []string, questions []question.Question) string {
	var checks strings.Builder
	for _, qid := range questionIDs {
		fmt.Fprintf(&checks, `  const answer_%[1]s = document.getElementById('answer_%[1]s').value;
  if (answer_%[1]s.trim() === '') allAnswered = false;
`, qid)
	}
	var reveals strings.Builder
	for i, qid := range questionIDs {
		if !questions[i].ShowAnswer {
			continue
		}
		fmt.Fprintf(&reveals, `  const feedback_%[1]s = document.getElementById('feedback_%[1]s');
  feedback_%[1]s.innerHTML = '<div class="answer-display"><strong>Sample Answer:</strong><br>%[2]s</div>';
  feedback_%[1]s.style.display = 'block';
`, qid, jsString(questions[i].Answer))
	}
	return fmt.Sprintf(`function submitAssessment_%[1]s() {
  let allAnswered = true;
%[2]s  const assessmentFeedback = document.getElementById('assessment_feedback_%[1]s');
  const submitBtn = document.querySelector('[data-assessment-id="%[1]s"] .submit-assessment-btn');
  if (!allAnswered) {
    assessmentFeedback.innerHTML = '<div class="warning">Please answer all questions before submitting.</div>';
    assessmentFeedback.style.display = 'block';
    return;
  }
  submitBtn.textContent = 'Submitted';
  submitBtn.title = 'Click to resubmit';
  assessmentFeedback.style.display = 'none';
%[3]s}`, id, checks.String(), reveals.String())
}

// shuffleFunc builds the client-side Fisher-Yates shuffle. It reorders the
// question nodes and renumbers their labels; the data-shuffle attribute
// decides whether it runs.
func shuffleFunc(id string) string {
	return fmt.Sprintf(`function shuffleQuestions_%[1]s() {
  const assessment = document.querySelector('[data-assessment-id="%[1]s"]');
  if (!assessment || assessment.getAttribute('data-shuffle') !== 'true') {
    return;
  }
  const header = assessment.querySelector('.assessment-header');
  const buttons = assessment.querySelector('.assessment-buttons');
  const feedback = assessment.querySelector('.assessment-feedback');
  const questions = Array.from(assessment.querySelectorAll('.assessment-question'));
  for (let i = questions.length - 1; i > 0; i--) {
    const j = Math.floor(Math.random() * (i + 1));
    [questions[i], questions[j]] = [questions[j], questions[i]];
  }
  assessment.innerHTML = '';
  assessment.appendChild(header);
  questions.forEach((q, index) => {
    const number = q.querySelector('.question-number');
    if (number) {
      number.textContent = (index + 1) + '.';
    }
    assessment.appendChild(q);
  });
  assessment.appendChild(buttons);
  assessment.appendChild(feedback);
}`, id)
}

// jsString escapes text for embedding inside a single-quoted JavaScript
// string in inline HTML.
func jsString(s string) string {
	if s == "" {
		s = noSampleAnswer
	}
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"</", `<\/`,
	)
	return replacer.Replace(s)
}
