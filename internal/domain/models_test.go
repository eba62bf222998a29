package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestQuizAnswerTimeSpentInMilliseconds(t *testing.T) {
	data, err := json.Marshal(QuizAnswer{QuestionID: "q1", TimeSpent: 1500 * time.Millisecond})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"timeSpent":1500`) || strings.Contains(string(data), "1500000000") {
		t.Fatalf("expected timeSpent in ms, got %s", data)
	}

	var back QuizAnswer
	if err := json.Unmarshal([]byte(`{"questionId":"q2","selectedOption":"map","isCorrect":true,"timeSpent":3000,"points":15}`), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.TimeSpent != 3*time.Second || back.SelectedOption == nil || *back.SelectedOption != "map" || back.Points != 15 {
		t.Fatalf("unexpected answer %+v", back)
	}
}

func TestQuizResultAnswersUseMilliseconds(t *testing.T) {
	data, err := json.Marshal(QuizResult{Answers: []QuizAnswer{{QuestionID: "q1", TimeSpent: 2 * time.Second}}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"timeSpent":2000`) {
		t.Fatalf("expected nested answer in ms, got %s", data)
	}
}

func TestQuizConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     QuizConfig
		wantErr error
	}{
		{name: "valid", cfg: QuizConfig{QuestionCount: 10, TimePerQuestion: 30}},
		{name: "bad count", cfg: QuizConfig{QuestionCount: 7, TimePerQuestion: 30}, wantErr: ErrInvalidQuestionCount},
		{name: "bad timer", cfg: QuizConfig{QuestionCount: 5, TimePerQuestion: 45}, wantErr: ErrInvalidTimeLimit},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); err != tc.wantErr {
				t.Fatalf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
