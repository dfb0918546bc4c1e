package models

// QuestionOptionCount is the number of answer options every question carries
const QuestionOptionCount = 4

// Quiz represents the optional quiz attached to a lesson
type Quiz struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions" validate:"dive"`
}

// Question represents a single multiple choice question of a quiz.
//
// Answer must equal one of Options, or be empty while the author has not picked one yet.
type Question struct {
	ID      ID       `json:"id,omitempty"`
	Text    string   `json:"text"`
	Options []string `json:"options" validate:"len=4"`
	Answer  string   `json:"answer" validate:"omitempty,answer_in_options"`
}
