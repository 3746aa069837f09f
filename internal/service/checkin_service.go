package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"teampulse/internal/cache"
	"teampulse/internal/model"
	"teampulse/internal/repository"
)

const checkinQuestionCount = 3

type questionVariant struct {
	Text  string
	Emoji string
}

// questionBank holds the rotating phrasings per dimension. Variants
// keep the daily prompt from feeling like the same form every day.
var questionBank = map[model.Dimension][]questionVariant{
	model.DimMood: {
		{"How is your mood today?", "😊"},
		{"How are you feeling this morning?", "🌅"},
		{"Rate your emotional state right now", "💭"},
		{"How positive do you feel today?", "✨"},
	},
	model.DimEnergy: {
		{"What is your energy level?", "⚡"},
		{"How refreshed do you feel?", "🔋"},
		{"How is your stamina today?", "💪"},
		{"Do you have fuel for a productive day?", "🚀"},
	},
	model.DimStress: {
		{"How stressed do you feel?", "😰"},
		{"Are you feeling pressure or tension?", "⚠️"},
		{"How calm do you feel right now?", "🧘"},
		{"Is anything weighing on your mind?", "💭"},
	},
	model.DimSleep: {
		{"How did you sleep last night?", "😴"},
		{"How good was your sleep quality?", "🌙"},
		{"Do you feel rested?", "🛌"},
		{"How many hours did you sleep?", "⏰"},
	},
	model.DimWorkload: {
		{"How heavy is your workload?", "📊"},
		{"Are you keeping up with your tasks?", "✅"},
		{"How is your work-rest balance?", "⚖️"},
		{"Is there enough time for what matters?", "⏱️"},
	},
	model.DimMotivation: {
		{"How motivated are you today?", "🎯"},
		{"Do you feel inspired to work?", "💡"},
		{"How is your productivity today?", "📈"},
		{"Do you feel driven to achieve?", "🚀"},
	},
	model.DimFocus: {
		{"How easy is it to concentrate?", "🎯"},
		{"How is your ability to focus?", "🧠"},
		{"Are you managing to avoid distractions?", "🔕"},
	},
	model.DimWellbeing: {
		{"How would you rate your overall wellbeing?", "🌟"},
		{"How satisfied are you with life right now?", "😊"},
		{"Do you feel comfortable?", "✨"},
	},
	model.DimReflection: {
		{"What drained your energy the most today?", "🧭"},
		{"What was the hardest moment of the day?", "🧩"},
		{"What is the one thing worrying you most?", "🫧"},
	},
	model.DimSupport: {
		{"How supported do you feel by the people around you?", "🤝"},
		{"Is there anything that would make your day easier?", "💬"},
		{"How safe do you feel talking about difficulties?", "🛟"},
	},
}

var adaptiveIntros = map[model.Dimension]string{
	model.DimStress:     "Good day! 🌅 Stress has been running high lately. How is today?",
	model.DimSleep:      "Hi! 😴 How did you sleep? Rest matters more than it seems.",
	model.DimEnergy:     "Hello! ⚡ How is your energy? Take care of yourself.",
	model.DimMood:       "Good morning! 💙 How is your mood? You are not alone here.",
	model.DimReflection: "Things have looked tense lately. Let's do a quick check.",
	model.DimSupport:    "Good day! 🤝 I want to understand how you are, to support you better.",
}

var weekdayIntros = [7]string{
	"Good morning! 🌅 A fresh week begins. How is your mood?",
	"Hi! ☀️ Tuesday is a productive day. How are things?",
	"Hello! 💪 Midweek already. How are you feeling?",
	"Hi! 🚀 Thursday, the weekend is close. How is your mood?",
	"Good day! 🎉 Friday! How are you feeling?",
	"Hello! 🌈 Saturday is for recovery. How are things?",
	"Hi! ☕ Sunday, a day of rest. How is your mood?",
}

// weekdayDefaults maps days-from-Monday to the stock question rotation
// used when no adaptive priorities fired.
func weekdayDefaults(dayOfWeek int) []model.Dimension {
	switch dayOfWeek {
	case 0:
		return []model.Dimension{model.DimMood, model.DimEnergy, model.DimMotivation}
	case 1, 2, 3:
		return []model.Dimension{model.DimMood, model.DimStress, model.DimWorkload}
	case 4:
		return []model.Dimension{model.DimMood, model.DimWellbeing, model.DimEnergy}
	default:
		return []model.Dimension{model.DimMood, model.DimSleep, model.DimWellbeing}
	}
}

// CheckinService builds the adaptive daily check-in and the cadence
// schedule. Generated check-ins are cached per user per day so a user
// sees the same phrasing on repeat fetches.
type CheckinService struct {
	wellness   *WellnessService
	answerRepo repository.AnswerRepo
	cache      cache.CheckinCache
	rng        *rand.Rand
}

// NewCheckinService creates a new check-in service
func NewCheckinService(wellness *WellnessService, answerRepo repository.AnswerRepo, checkinCache cache.CheckinCache) *CheckinService {
	return &CheckinService{
		wellness:   wellness,
		answerRepo: answerRepo,
		cache:      checkinCache,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateToday returns the user's check-in for the current day,
// serving the cached copy when one exists.
func (s *CheckinService) GenerateToday(ctx context.Context, userID string) (*model.CheckIn, error) {
	now := time.Now().UTC()
	day := now.Format("2006-01-02")

	if cached, err := s.cache.GetToday(ctx, userID, day); err == nil && cached != nil {
		return cached, nil
	}

	checkin, err := s.generate(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetToday(ctx, userID, day, checkin); err != nil {
		// serve the check-in anyway, the cache is an optimization
		return checkin, nil
	}
	return checkin, nil
}

func (s *CheckinService) generate(ctx context.Context, userID string, now time.Time) (*model.CheckIn, error) {
	dayOfWeek := int(now.Weekday()+6) % 7

	priorities, err := s.wellness.GetQuestionPriorities(ctx, userID)
	if err != nil {
		return nil, err
	}
	adaptive := len(priorities) > 0

	dims := append([]model.Dimension(nil), priorities...)
	if len(dims) < checkinQuestionCount {
		for _, d := range weekdayDefaults(dayOfWeek) {
			if !containsDim(dims, d) {
				dims = append(dims, d)
			}
			if len(dims) >= checkinQuestionCount {
				break
			}
		}
	}

	needsSupport, err := s.wellness.NeedsSupport(ctx, userID)
	if err != nil {
		return nil, err
	}
	if needsSupport {
		prioritized := []model.Dimension{model.DimReflection, model.DimSupport}
		for _, d := range dims {
			if !containsDim(prioritized, d) {
				prioritized = append(prioritized, d)
			}
		}
		dims = prioritized
	}
	if len(dims) > checkinQuestionCount {
		dims = dims[:checkinQuestionCount]
	}

	questions := make([]model.Question, 0, len(dims))
	for i, dim := range dims {
		variants := questionBank[dim]
		v := variants[s.rng.Intn(len(variants))]
		scale := "1-10"
		if !dim.IsNumeric() {
			scale = "text"
		}
		questions = append(questions, model.Question{
			ID:        i + 1,
			Dimension: dim,
			Text:      v.Text,
			Emoji:     v.Emoji,
			Scale:     scale,
		})
	}

	intro := weekdayIntros[dayOfWeek]
	if adaptive {
		if msg, ok := adaptiveIntros[dims[0]]; ok {
			intro = msg
		}
	}

	return &model.CheckIn{
		ID:            fmt.Sprintf("checkin_%s", now.Format("20060102")),
		UserID:        userID,
		Date:          now,
		DayOfWeek:     dayOfWeek,
		Questions:     questions,
		IntroMessage:  intro,
		EstimatedTime: "2-3 minutes",
	}, nil
}

// Schedule reports whether a check-in is due under the user's cadence
// and when the next one lands.
func (s *CheckinService) Schedule(ctx context.Context, user *model.User) (*model.CheckinSchedule, error) {
	now := time.Now().UTC()
	cadence := user.Frequency.CadenceDays()

	last, err := s.answerRepo.LastAnswerTime(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if last == nil {
		return &model.CheckinSchedule{
			Due:         true,
			NextDueDate: now,
			DaysUntil:   0,
		}, nil
	}

	lastDay := last.UTC().Truncate(24 * time.Hour)
	today := now.Truncate(24 * time.Hour)
	nextDue := lastDay.AddDate(0, 0, cadence)

	daysUntil := int(nextDue.Sub(today).Hours() / 24)
	if daysUntil < 0 {
		daysUntil = 0
	}
	return &model.CheckinSchedule{
		Due:         !today.Before(nextDue),
		NextDueDate: nextDue,
		DaysUntil:   daysUntil,
		LastDate:    last,
	}, nil
}

func containsDim(dims []model.Dimension, d model.Dimension) bool {
	for _, have := range dims {
		if have == d {
			return true
		}
	}
	return false
}
