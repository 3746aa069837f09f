package service

import (
	"context"
	"time"

	"teampulse/internal/model"
)

// fakeAnswerRepo is an in-memory AnswerRepo for service tests.
type fakeAnswerRepo struct {
	answers []model.Answer
	err     error
}

func (f *fakeAnswerRepo) Create(ctx context.Context, answer *model.Answer) error {
	if f.err != nil {
		return f.err
	}
	f.answers = append(f.answers, *answer)
	return nil
}

func (f *fakeAnswerRepo) CreateMany(ctx context.Context, answers []*model.Answer) error {
	if f.err != nil {
		return f.err
	}
	for _, a := range answers {
		f.answers = append(f.answers, *a)
	}
	return nil
}

func (f *fakeAnswerRepo) FetchAnswers(ctx context.Context, userID string, start, end time.Time) ([]model.Answer, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Answer
	for _, a := range f.answers {
		if a.UserID != userID {
			continue
		}
		if a.CreatedAt.Before(start) || !a.CreatedAt.Before(end) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAnswerRepo) LastAnswerTime(ctx context.Context, userID string) (*time.Time, error) {
	if f.err != nil {
		return nil, f.err
	}
	var last *time.Time
	for _, a := range f.answers {
		if a.UserID != userID {
			continue
		}
		t := a.CreatedAt
		if last == nil || t.After(*last) {
			last = &t
		}
	}
	return last, nil
}

// fakeCheckinCache stores one check-in per user per day.
type fakeCheckinCache struct {
	store map[string]*model.CheckIn
}

func newFakeCheckinCache() *fakeCheckinCache {
	return &fakeCheckinCache{store: make(map[string]*model.CheckIn)}
}

func (f *fakeCheckinCache) GetToday(ctx context.Context, userID, day string) (*model.CheckIn, error) {
	return f.store[userID+":"+day], nil
}

func (f *fakeCheckinCache) SetToday(ctx context.Context, userID, day string, checkin *model.CheckIn) error {
	f.store[userID+":"+day] = checkin
	return nil
}

// fakeStreakCache counts bumps without the day arithmetic.
type fakeStreakCache struct {
	count int64
}

func (f *fakeStreakCache) Bump(ctx context.Context, userID, day string) (int64, error) {
	f.count++
	return f.count, nil
}

func (f *fakeStreakCache) Get(ctx context.Context, userID string) (int64, error) {
	return f.count, nil
}

// fakeBroadcaster records what would have gone to the admin feed.
type fakeBroadcaster struct {
	checkins []string
	signals  []string
}

func (f *fakeBroadcaster) BroadcastCheckinReceived(userID string, count int) {
	f.checkins = append(f.checkins, userID)
}

func (f *fakeBroadcaster) BroadcastEarlySignal(userID string, signal model.EarlySignal) {
	f.signals = append(f.signals, userID)
}
