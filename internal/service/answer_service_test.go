package service

import (
	"context"
	"errors"
	"testing"
)

func newAnswerServiceForTest() (*AnswerService, *fakeAnswerRepo, *fakeStreakCache, *fakeBroadcaster) {
	repo := &fakeAnswerRepo{}
	streaks := &fakeStreakCache{}
	wellness := NewWellnessService(repo)
	svc := NewAnswerService(repo, streaks, wellness)
	broadcaster := &fakeBroadcaster{}
	svc.SetBroadcaster(broadcaster)
	return svc, repo, streaks, broadcaster
}

func TestSubmitRejectsEmptyBatch(t *testing.T) {
	svc, _, _, _ := newAnswerServiceForTest()

	_, err := svc.Submit(context.Background(), "u1", nil)
	if !errors.Is(err, ErrNoAnswers) {
		t.Errorf("err = %v, want ErrNoAnswers", err)
	}
}

func TestSubmitRejectsUnknownDimension(t *testing.T) {
	svc, repo, _, _ := newAnswerServiceForTest()

	_, err := svc.Submit(context.Background(), "u1", []AnswerSubmission{
		{QuestionID: 1, Dimension: "happiness", Value: 5},
	})
	if !errors.Is(err, ErrUnknownDimension) {
		t.Errorf("err = %v, want ErrUnknownDimension", err)
	}
	if len(repo.answers) != 0 {
		t.Errorf("invalid batch must not be stored, found %d answers", len(repo.answers))
	}
}

func TestSubmitRejectsValueOutOfRange(t *testing.T) {
	svc, _, _, _ := newAnswerServiceForTest()

	for _, value := range []int{0, 11, -3} {
		_, err := svc.Submit(context.Background(), "u1", []AnswerSubmission{
			{QuestionID: 1, Dimension: "mood", Value: value},
		})
		if !errors.Is(err, ErrValueOutOfRange) {
			t.Errorf("value %d: err = %v, want ErrValueOutOfRange", value, err)
		}
	}
}

func TestSubmitRejectsEmptyTextForReflection(t *testing.T) {
	svc, _, _, _ := newAnswerServiceForTest()

	_, err := svc.Submit(context.Background(), "u1", []AnswerSubmission{
		{QuestionID: 1, Dimension: "reflection", Text: "   "},
	})
	if !errors.Is(err, ErrEmptyText) {
		t.Errorf("err = %v, want ErrEmptyText", err)
	}
}

func TestSubmitIsAllOrNothing(t *testing.T) {
	svc, repo, _, _ := newAnswerServiceForTest()

	_, err := svc.Submit(context.Background(), "u1", []AnswerSubmission{
		{QuestionID: 1, Dimension: "mood", Value: 7},
		{QuestionID: 2, Dimension: "stress", Value: 0},
	})
	if err == nil {
		t.Fatal("expected an error for the invalid second answer")
	}
	if len(repo.answers) != 0 {
		t.Errorf("partial batch was stored: %d answers", len(repo.answers))
	}
}

func TestSubmitStoresAndNotifies(t *testing.T) {
	svc, repo, streaks, broadcaster := newAnswerServiceForTest()

	result, err := svc.Submit(context.Background(), "u1", []AnswerSubmission{
		{QuestionID: 1, Dimension: "mood", Value: 7},
		{QuestionID: 2, Dimension: "stress", Value: 4},
		{QuestionID: 3, Dimension: "reflection", Text: "steady week"},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if result.Stored != 3 {
		t.Errorf("Stored = %d, want 3", result.Stored)
	}
	if result.Streak != 1 {
		t.Errorf("Streak = %d, want 1", result.Streak)
	}
	if len(repo.answers) != 3 {
		t.Errorf("repo holds %d answers, want 3", len(repo.answers))
	}
	if streaks.count != 1 {
		t.Errorf("streak bumps = %d, want 1", streaks.count)
	}
	if len(broadcaster.checkins) != 1 || broadcaster.checkins[0] != "u1" {
		t.Errorf("checkin broadcasts = %v, want [u1]", broadcaster.checkins)
	}
	// too little history for the detector to fire
	if len(broadcaster.signals) != 0 {
		t.Errorf("unexpected signal broadcasts: %v", broadcaster.signals)
	}

	for _, a := range repo.answers {
		if a.ID == "" {
			t.Error("stored answer is missing an ID")
		}
		if a.UserID != "u1" {
			t.Errorf("stored answer has UserID %q", a.UserID)
		}
		if a.CreatedAt.IsZero() {
			t.Error("stored answer is missing CreatedAt")
		}
	}
}

func TestSubmitTrimsTextAnswers(t *testing.T) {
	svc, repo, _, _ := newAnswerServiceForTest()

	_, err := svc.Submit(context.Background(), "u1", []AnswerSubmission{
		{QuestionID: 1, Dimension: "support", Text: "  a teammate helped out  "},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if repo.answers[0].Text != "a teammate helped out" {
		t.Errorf("Text = %q, want trimmed", repo.answers[0].Text)
	}
}
