package service

import (
	"context"
	"fmt"
	"time"

	"teampulse/internal/model"
)

// PlanService builds the individualized daily wellness plan from the
// user's current 7-day metrics and personal goals. Candidates carry a
// priority; the plan keeps the top entries with at most two per
// category, sized by how severe the metrics look.
type PlanService struct {
	wellness *WellnessService
}

// NewPlanService creates a new plan service
func NewPlanService(wellness *WellnessService) *PlanService {
	return &PlanService{wellness: wellness}
}

type planCandidate struct {
	priority int
	item     model.PlanItem
}

// GenerateDaily returns today's plan for the user. Works with or
// without metrics; universal items keep the plan non-empty when the
// user has too little history.
func (s *PlanService) GenerateDaily(ctx context.Context, userID string, goals model.GoalSettings) ([]model.PlanItem, error) {
	report, err := s.wellness.GetMetrics(ctx, userID, benchmarkWindowDays)
	if err != nil {
		return nil, err
	}
	var metrics *model.MetricsSnapshot
	if report != nil {
		metrics = &report.Metrics
	}
	return buildDailyPlan(metrics, goals, time.Now().UTC()), nil
}

func buildDailyPlan(m *model.MetricsSnapshot, goals model.GoalSettings, now time.Time) []model.PlanItem {
	var candidates []planCandidate
	weekday := int(now.Weekday()+6) % 7

	if m != nil {
		candidates = append(candidates, sleepItems(m, goals)...)
		candidates = append(candidates, stressItems(m, goals)...)
		candidates = append(candidates, anxietyItems(m)...)
		candidates = append(candidates, depressionItems(m)...)
		candidates = append(candidates, balanceItems(m)...)
		candidates = append(candidates, wellbeingItems(m)...)
		candidates = append(candidates, combinedItems(m, goals)...)
		candidates = append(candidates, reinforcementItems(m)...)
	}
	candidates = append(candidates, universalItems(m, goals, weekday)...)

	// stable sort keeps insertion order between equal priorities
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidates[j].priority > candidates[j-1].priority; j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}

	maxItems := 4
	if m != nil {
		switch {
		case m.Burnout >= 70 || m.StressLevel >= 28 || m.PHQ9 >= 15:
			maxItems = 6
		case m.Burnout >= 50 || m.StressLevel >= 20 || m.PHQ9 >= 10:
			maxItems = 5
		}
	}

	selected := make([]model.PlanItem, 0, maxItems)
	seen := make(map[string]bool)
	perCategory := make(map[string]int)
	for _, c := range candidates {
		if len(selected) >= maxItems {
			break
		}
		if seen[c.item.ID] || perCategory[c.item.Category] >= 2 {
			continue
		}
		seen[c.item.ID] = true
		perCategory[c.item.Category]++
		selected = append(selected, c.item)
	}

	if len(selected) == 0 {
		selected = append(selected, model.PlanItem{
			ID:              "reset",
			Title:           "Reset",
			Description:     "5 minutes of breathing, a stretch, and one small win.",
			Category:        "recovery",
			DurationMinutes: 5,
		})
	}
	return selected
}

func sleepItems(m *model.MetricsSnapshot, goals model.GoalSettings) []planCandidate {
	target := float64(goals.SleepTarget)
	var c []planCandidate

	switch {
	case m.SleepHours < 4:
		c = append(c, planCandidate{99, model.PlanItem{
			ID:    "sleep_emergency",
			Title: "Sleep: urgent",
			Description: fmt.Sprintf("Critically little sleep (%.1fh against a %dh goal). Tonight: go to bed 2 hours earlier, no caffeine after 1pm, screens off 90 minutes before bed. Everything else can wait until tomorrow.",
				m.SleepHours, goals.SleepTarget),
			Category: "sleep", DurationMinutes: 20,
		}})
	case m.SleepHours < 5.5:
		c = append(c, planCandidate{96, model.PlanItem{
			ID:    "sleep_deficit",
			Title: "Sleep: deficit",
			Description: fmt.Sprintf("Serious sleep deficit (%.1fh / %dh goal). Set a hard stop for work at 8pm, no screens for the last hour, keep the room cool, and try 4-7-8 breathing before bed.",
				m.SleepHours, goals.SleepTarget),
			Category: "sleep", DurationMinutes: 15,
		}})
	case m.SleepHours < target || m.SleepHours < 6.5:
		c = append(c, planCandidate{88, model.PlanItem{
			ID:    "sleep_improve",
			Title: "Sleep: improve",
			Description: fmt.Sprintf("Sleep (%.1fh) is below your %.0fh goal. Shift bedtime 15-20 minutes earlier, skip caffeine after 3pm, and swap the phone for a book in the last hour.",
				m.SleepHours, target),
			Category: "sleep", DurationMinutes: 10,
		}})
	case m.SleepHours < 8:
		c = append(c, planCandidate{30, model.PlanItem{
			ID:    "sleep_good",
			Title: "Sleep: on target",
			Description: fmt.Sprintf("%.1fh of sleep, goal reached. To lock it in, get up at the same time even on weekends and catch daylight within 15 minutes of waking.",
				m.SleepHours),
			Category: "sleep", DurationMinutes: 5,
		}})
	default:
		c = append(c, planCandidate{25, model.PlanItem{
			ID:    "sleep_excellent",
			Title: "Sleep: excellent",
			Description: fmt.Sprintf("Great sleep (%.1fh). Write down what helped (bedtime, routine, room temperature) so you can repeat it on harder weeks.",
				m.SleepHours),
			Category: "sleep", DurationMinutes: 3,
		}})
	}

	if m.SleepHours >= 5 && m.SleepHours < 7 && m.StressLevel >= 16 {
		c = append(c, planCandidate{78, model.PlanItem{
			ID:    "sleep_hygiene_stress",
			Title: "Evening wind-down",
			Description: fmt.Sprintf("With stress at %.0f/40 and short sleep (%.1fh) the brain struggles to switch off. 45 minutes before bed, write down the 3 thoughts that keep circling so the mind can let go.",
				m.StressLevel, m.SleepHours),
			Category: "sleep", DurationMinutes: 10,
		}})
	}
	return c
}

func stressItems(m *model.MetricsSnapshot, goals model.GoalSettings) []planCandidate {
	var c []planCandidate

	switch {
	case m.StressLevel >= 32 || m.Burnout >= 85:
		c = append(c, planCandidate{99, model.PlanItem{
			ID:    "stress_crisis",
			Title: "Stress: critical",
			Description: fmt.Sprintf("Stress %.0f/40, burnout %.0f%%. Right now: 5 minutes of box breathing, cancel or move one non-critical meeting, and get 10 minutes of fresh air. If this keeps up, talk to your manager.",
				m.StressLevel, m.Burnout),
			Category: "stress", DurationMinutes: 15,
		}})
	case m.StressLevel >= 24 || m.Burnout >= 65:
		c = append(c, planCandidate{94, model.PlanItem{
			ID:    "stress_high",
			Title: "Active decompression",
			Description: fmt.Sprintf("Stress is elevated (%.0f/40). 10 minutes of slow breathing (inhale 4s, hold 7s, exhale 8s), then neck and shoulder stretches. Tonight: 20 minutes with no screens at all.",
				m.StressLevel),
			Category: "stress", DurationMinutes: 15,
		}})
	case m.StressLevel >= 16 || m.Burnout >= 50:
		c = append(c, planCandidate{78, model.PlanItem{
			ID:    "stress_moderate",
			Title: "Stress management",
			Description: fmt.Sprintf("Stress is moderate (%.0f/40). Schedule %d micro-breaks of 3-5 minutes today: stand up, five deep breaths, a glass of water, a look out the window.",
				m.StressLevel, goals.BreakTarget),
			Category: "stress", DurationMinutes: 5,
		}})
	case m.StressLevel >= 10:
		c = append(c, planCandidate{50, model.PlanItem{
			ID:    "stress_light",
			Title: "Light stress care",
			Description: fmt.Sprintf("Stress is fine (%.0f/40) but prevention matters. Do one small thing for yourself: favorite music, coffee in silence, a 5-minute stretch.",
				m.StressLevel),
			Category: "stress", DurationMinutes: 5,
		}})
	}

	if m.Burnout >= 55 && m.StressLevel < 20 {
		c = append(c, planCandidate{82, model.PlanItem{
			ID:    "burnout_creeping",
			Title: "Quiet burnout",
			Description: fmt.Sprintf("Burnout at %.0f%% with moderate stress is the classic quiet kind. Check whether work still gives you anything back, pick the one task that grates most and delegate or park it.",
				m.Burnout),
			Category: "recovery", DurationMinutes: 10,
		}})
	}
	return c
}

func anxietyItems(m *model.MetricsSnapshot) []planCandidate {
	var c []planCandidate
	switch {
	case m.GAD7 >= 15:
		c = append(c, planCandidate{95, model.PlanItem{
			ID:    "anxiety_severe",
			Title: "Anxiety: grounding",
			Description: fmt.Sprintf("GAD-7 at %.0f/21 means pronounced anxiety. Try 5-4-3-2-1 grounding: name 5 things you see, 4 you hear, 3 you feel, 2 you smell, 1 you taste. If anxiety blocks your work, consider talking to a specialist.",
				m.GAD7),
			Category: "anxiety", DurationMinutes: 10,
		}})
	case m.GAD7 >= 10:
		c = append(c, planCandidate{83, model.PlanItem{
			ID:    "anxiety_moderate",
			Title: "Worry time",
			Description: fmt.Sprintf("Anxiety is elevated (%.0f/21). Set aside 10 minutes to write down every worry, split them into \"can influence\" and \"cannot\", and pick one concrete step for the first column.",
				m.GAD7),
			Category: "anxiety", DurationMinutes: 10,
		}})
	case m.GAD7 >= 5:
		c = append(c, planCandidate{55, model.PlanItem{
			ID:    "anxiety_light",
			Title: "Anxiety prevention",
			Description: fmt.Sprintf("Mild anxiety (%.0f/21). Three minutes of diaphragmatic breathing, hand on the belly, works well as a daily habit.",
				m.GAD7),
			Category: "anxiety", DurationMinutes: 5,
		}})
	}
	return c
}

func depressionItems(m *model.MetricsSnapshot) []planCandidate {
	var c []planCandidate
	switch {
	case m.PHQ9 >= 15:
		c = append(c, planCandidate{94, model.PlanItem{
			ID:    "depression_support",
			Title: "Emotional support",
			Description: fmt.Sprintf("PHQ-9 at %.0f/27 is a signal to reach for help. Today: message or call one close person, get outside for at least 10 minutes, and finish one tiny concrete task. Small actions break the loop. You are not alone.",
				m.PHQ9),
			Category: "mood", DurationMinutes: 15,
		}})
	case m.PHQ9 >= 10:
		c = append(c, planCandidate{84, model.PlanItem{
			ID:    "depression_activation",
			Title: "Behavioral activation",
			Description: fmt.Sprintf("The mood index (%.0f/27) needs attention. Plan one pleasant activity even if you do not feel like it: a short walk, a favorite meal, a call with a friend. Action creates motivation, not the other way round.",
				m.PHQ9),
			Category: "mood", DurationMinutes: 15,
		}})
	case m.PHQ9 >= 5:
		c = append(c, planCandidate{58, model.PlanItem{
			ID:    "mood_nurture",
			Title: "Mood nurture",
			Description: fmt.Sprintf("Mood is slightly low (%.0f/27). Invest 10 minutes in something that brings joy, and write down 3 moments of the day you are grateful for.",
				m.PHQ9),
			Category: "mood", DurationMinutes: 10,
		}})
	}
	return c
}

func balanceItems(m *model.MetricsSnapshot) []planCandidate {
	var c []planCandidate
	switch {
	case m.WorkLifeBalance < 2.5:
		c = append(c, planCandidate{92, model.PlanItem{
			ID:    "balance_crisis",
			Title: "Balance: red zone",
			Description: fmt.Sprintf("Balance is critical (%.1f/10) and work is swallowing everything. Set a hard stop time and do not work after it, protect one hour just for yourself, and mute work notifications for the evening.",
				m.WorkLifeBalance),
			Category: "balance", DurationMinutes: 60,
		}})
	case m.WorkLifeBalance < 4:
		c = append(c, planCandidate{82, model.PlanItem{
			ID:    "balance_restore",
			Title: "Restore balance",
			Description: fmt.Sprintf("Work-life balance (%.1f/10) needs correction. Take 30 guilt-free minutes for yourself and keep the hour before bed completely work-free. Which task drains you most, and can it be delegated?",
				m.WorkLifeBalance),
			Category: "balance", DurationMinutes: 30,
		}})
	case m.WorkLifeBalance < 6:
		c = append(c, planCandidate{55, model.PlanItem{
			ID:    "balance_tune",
			Title: "Balance tuning",
			Description: fmt.Sprintf("Balance (%.1f/10) has room to improve. Try 3-3-3: three hours of focused work, three of lighter work, three fully away from work.",
				m.WorkLifeBalance),
			Category: "balance", DurationMinutes: 10,
		}})
	case m.WorkLifeBalance >= 7.5:
		c = append(c, planCandidate{28, model.PlanItem{
			ID:    "balance_celebrate",
			Title: "Balance: holding!",
			Description: fmt.Sprintf("Balance at %.1f/10 is rare and earned. Write down what exactly is working; you will want the recipe on harder weeks.",
				m.WorkLifeBalance),
			Category: "balance", DurationMinutes: 5,
		}})
	}
	return c
}

func wellbeingItems(m *model.MetricsSnapshot) []planCandidate {
	var c []planCandidate
	switch {
	case m.WHO5 < 30:
		c = append(c, planCandidate{93, model.PlanItem{
			ID:    "wellbeing_crisis",
			Title: "Wellbeing: attention",
			Description: fmt.Sprintf("WHO-5 at %.0f/100 is a signal you need support. Right now: cover the basics (food, water, fresh air), do one very small pleasant thing, and talk to someone. Asking for help is strength, not weakness.",
				m.WHO5),
			Category: "mood", DurationMinutes: 15,
		}})
	case m.WHO5 < 50:
		c = append(c, planCandidate{85, model.PlanItem{
			ID:    "wellbeing_low",
			Title: "Mood support",
			Description: fmt.Sprintf("Wellbeing is low (%.0f/100). Do something today that is only for you: a walk outside, favorite music, a talk with a friend. Write down 3 things you are grateful for.",
				m.WHO5),
			Category: "mood", DurationMinutes: 15,
		}})
	case m.WHO5 < 65:
		c = append(c, planCandidate{62, model.PlanItem{
			ID:    "wellbeing_moderate",
			Title: "Emotional recharge",
			Description: fmt.Sprintf("WHO-5 (%.0f/100) has room to grow. Twenty minutes outdoors measurably lower cortisol; go out without headphones, or do one creative act instead.",
				m.WHO5),
			Category: "mood", DurationMinutes: 20,
		}})
	case m.WHO5 >= 80:
		c = append(c, planCandidate{22, model.PlanItem{
			ID:    "wellbeing_great",
			Title: "Mood: shining",
			Description: fmt.Sprintf("Wellbeing at %.0f/100 is excellent. Share some of it: write something kind to someone. Helping others lifts your own mood too.",
				m.WHO5),
			Category: "mood", DurationMinutes: 5,
		}})
	}
	return c
}

func combinedItems(m *model.MetricsSnapshot, goals model.GoalSettings) []planCandidate {
	var c []planCandidate

	if m.WHO5 < 40 && m.StressLevel >= 24 && m.SleepHours < 5.5 {
		c = append(c, planCandidate{100, model.PlanItem{
			ID:    "multi_crisis",
			Title: "Full recovery mode",
			Description: fmt.Sprintf("Sleep (%.1fh), stress (%.0f/40) and mood (%.0f/100) all need attention. Priority: basics only. Eat something nourishing, drink water, get 5 minutes of fresh air, go to bed as early as you can. Ask nothing else of yourself today.",
				m.SleepHours, m.StressLevel, m.WHO5),
			Category: "recovery", DurationMinutes: 10,
		}})
	}
	if m.StressLevel >= 20 && m.SleepHours < 6 {
		c = append(c, planCandidate{97, model.PlanItem{
			ID:    "burnout_trajectory",
			Title: "Burnout prevention",
			Description: fmt.Sprintf("Stress (%.0f/40) plus a sleep deficit (%.1fh) is a direct route to burnout. No work after 7pm today, bed at least an hour earlier, and delegate or postpone one task.",
				m.StressLevel, m.SleepHours),
			Category: "recovery", DurationMinutes: 15,
		}})
	}
	if m.WHO5 < 50 && m.GAD7 >= 10 {
		c = append(c, planCandidate{91, model.PlanItem{
			ID:    "anxious_depressive",
			Title: "Anxiety plus mood",
			Description: fmt.Sprintf("Low mood (%.0f/100) and anxiety (%.0f/21) reinforce each other. Write yourself a letter as if to a friend, then take a 10-minute walk; rhythmic movement eases both.",
				m.WHO5, m.GAD7),
			Category: "mood", DurationMinutes: 15,
		}})
	}
	if m.StressLevel >= 20 && m.GAD7 >= 10 {
		c = append(c, planCandidate{90, model.PlanItem{
			ID:    "hyperarousal",
			Title: "Nervous system on edge",
			Description: fmt.Sprintf("Stress (%.0f/40) plus anxiety (%.0f/21) means the nervous system is wound up. Two minutes of long slow exhales and a splash of cold water on the face dial the fight-or-flight response down.",
				m.StressLevel, m.GAD7),
			Category: "anxiety", DurationMinutes: 5,
		}})
	}
	if m.WHO5 < 45 && m.PHQ9 >= 12 && m.Burnout < 60 {
		c = append(c, planCandidate{89, model.PlanItem{
			ID:    "emotional_exhaustion",
			Title: "Emotional exhaustion",
			Description: "Mood and energy are at a low. Do not demand feats of yourself today: talk to someone close for 10 minutes, take a 15-minute walk even without the urge, and look after the body. Small actions accumulate.",
			Category: "mood", DurationMinutes: 25,
		}})
	}
	if m.WorkLifeBalance < 4 && m.Burnout >= 55 {
		c = append(c, planCandidate{86, model.PlanItem{
			ID:    "overload_signal",
			Title: "Overload",
			Description: fmt.Sprintf("Low balance (%.1f/10) at %.0f%% burnout calls for an inventory: list every task, mark one to delegate and one to push a week out, then align priorities with your manager. Working more is not doing more.",
				m.WorkLifeBalance, m.Burnout),
			Category: "balance", DurationMinutes: 15,
		}})
	}
	if m.SleepHours >= float64(goals.SleepTarget) && m.StressLevel >= 20 {
		c = append(c, planCandidate{74, model.PlanItem{
			ID:    "recovery_potential",
			Title: "Recovery potential",
			Description: fmt.Sprintf("Sleep is fine (%.1fh) so the body recovers, but stress (%.0f/40) is high. Trade raw output for quality pauses today: 10 minutes fully off after every 45 of work.",
				m.SleepHours, m.StressLevel),
			Category: "recovery", DurationMinutes: 10,
		}})
	}
	return c
}

func reinforcementItems(m *model.MetricsSnapshot) []planCandidate {
	green := 0
	for _, ok := range []bool{
		m.WHO5 >= 70,
		m.StressLevel < 12,
		m.SleepHours >= 7.5,
		m.Burnout < 30,
		m.GAD7 < 5,
		m.PHQ9 < 5,
		m.WorkLifeBalance >= 7,
	} {
		if ok {
			green++
		}
	}

	var c []planCandidate
	if green >= 5 {
		c = append(c, planCandidate{35, model.PlanItem{
			ID:    "all_green",
			Title: "All good!",
			Description: fmt.Sprintf("%d of 7 indicators are in the green zone and it shows. Write down your recipe for a good day while it is fresh; the notes will help on harder ones.",
				green),
			Category: "motivation", DurationMinutes: 5,
		}})
	} else if green >= 3 {
		c = append(c, planCandidate{30, model.PlanItem{
			ID:    "partial_green",
			Title: "Progress",
			Description: fmt.Sprintf("%d of 7 indicators are in range, a base to build on. Focus on the weakest area: %s.",
				green, weakestAreaTip(m)),
			Category: "motivation", DurationMinutes: 5,
		}})
	}
	return c
}

func weakestAreaTip(m *model.MetricsSnapshot) string {
	type area struct {
		name string
		bad  float64
	}
	areas := []area{
		{"sleep", 0},
		{"stress", m.StressLevel / 40},
		{"mood", (100 - m.WHO5) / 100},
		{"anxiety", m.GAD7 / 21},
		{"burnout", m.Burnout / 100},
		{"balance", (10 - m.WorkLifeBalance) / 10},
	}
	if m.SleepHours < 8 {
		areas[0].bad = (8 - m.SleepHours) / 8
	}

	worst := areas[0]
	for _, a := range areas[1:] {
		if a.bad > worst.bad {
			worst = a
		}
	}
	switch worst.name {
	case "sleep":
		return "sleep, go to bed 30 minutes earlier tonight"
	case "stress":
		return "stress, do a 5-minute breathing exercise"
	case "mood":
		return "mood, do one pleasant thing for yourself"
	case "anxiety":
		return "anxiety, try the 5-4-3-2-1 grounding technique"
	case "burnout":
		return "burnout, delegate or postpone one task"
	default:
		return "balance, set a hard stop time for work today"
	}
}

func universalItems(m *model.MetricsSnapshot, goals model.GoalSettings, weekday int) []planCandidate {
	var c []planCandidate

	movePriority := 60
	moveDesc := fmt.Sprintf("Move for %d minutes today: a walk, the stairs, a stretch. Regular movement lowers burnout risk and improves sleep.", goals.MoveTarget)
	if m != nil && m.StressLevel >= 20 {
		movePriority = 80
		moveDesc = fmt.Sprintf("With stress at %.0f/40, movement is the most effective antidote. %d minutes of brisk walking, stairs or stretching releases the pressure.", m.StressLevel, goals.MoveTarget)
	} else if m != nil && m.WHO5 < 50 {
		movePriority = 75
		moveDesc = fmt.Sprintf("Movement lifts mood through serotonin. %d minutes of any activity helps, even 10 will do.", goals.MoveTarget)
	}
	c = append(c, planCandidate{movePriority, model.PlanItem{
		ID: "movement", Title: "Movement", Description: moveDesc,
		Category: "movement", DurationMinutes: goals.MoveTarget,
	}})

	c = append(c, planCandidate{48, model.PlanItem{
		ID:    "hydrate",
		Title: "Water",
		Description: "Drink two glasses of water right now. Even mild dehydration dulls cognition; keep a bottle on the desk as a reminder.",
		Category: "recovery", DurationMinutes: 3,
	}})

	switch weekday {
	case 0:
		c = append(c, planCandidate{56, model.PlanItem{
			ID:    "monday_planning",
			Title: "Plan the week",
			Description: "Monday is for priorities. Write down 3 main goals for the week with one concrete first step each. It lowers anxiety and gives a sense of control.",
			Category: "focus", DurationMinutes: 10,
		}})
	case 2:
		c = append(c, planCandidate{45, model.PlanItem{
			ID:    "midweek_check",
			Title: "Midweek check",
			Description: "Wednesday is for review. Look at the week's 3 goals: any progress, anything to change? Behind is fine, adjust and keep moving. Give yourself 5 quiet minutes.",
			Category: "focus", DurationMinutes: 5,
		}})
	case 4:
		c = append(c, planCandidate{55, model.PlanItem{
			ID:    "friday_closure",
			Title: "Close the week",
			Description: "Friday is for finishing properly. Write down 3 achievements from this week, note what rolls over, and let the work brain switch off for the weekend.",
			Category: "balance", DurationMinutes: 10,
		}})
	case 5, 6:
		c = append(c, planCandidate{55, model.PlanItem{
			ID:    "weekend_recovery",
			Title: "Weekend recovery",
			Description: "The weekend is for real recovery. Do not plan much: one thing for the body (sport, a walk) and one for the soul (hobby, friends, nature).",
			Category: "balance", DurationMinutes: 30,
		}})
	}

	gratitudeDesc := "Write down 3 things you are grateful for today. A regular gratitude practice lowers cortisol and improves sleep."
	if m != nil && m.WHO5 < 50 {
		gratitudeDesc = "When mood is low, gratitude matters most. Write down 3 concrete things, not abstract ones: the warm coffee, the message from a friend."
	} else if m != nil && m.StressLevel >= 16 {
		gratitudeDesc = "Under stress the brain fixates on threats. Writing down 3 good things from today switches it over and helps sleep."
	}
	c = append(c, planCandidate{42, model.PlanItem{
		ID: "gratitude", Title: "Gratitude", Description: gratitudeDesc,
		Category: "mindfulness", DurationMinutes: 5,
	}})

	socialDesc := "Write or call someone you care about. Social ties are the strongest predictor of wellbeing; 5 minutes of warm conversation lifts the whole hour."
	if m != nil && (m.WHO5 < 45 || m.PHQ9 >= 10) {
		socialDesc = "Isolation makes mood worse. Even 5 minutes of talking with a close person helps; message or call someone now instead of waiting for a better moment."
	}
	c = append(c, planCandidate{40, model.PlanItem{
		ID: "social_connect", Title: "Social contact", Description: socialDesc,
		Category: "social", DurationMinutes: 5,
	}})

	breathingPriority := 38
	breathingDesc := "Three minutes of conscious breathing: slow inhale for 4 counts, slow exhale for 6. Works right at the desk."
	if m != nil && m.GAD7 >= 10 {
		breathingPriority = 70
		breathingDesc = fmt.Sprintf("With anxiety at %.0f/21, breathing is the fastest tool. 4-7-8: inhale 4s, hold 7s, exhale 8s, three cycles.", m.GAD7)
	} else if m != nil && m.StressLevel >= 20 {
		breathingPriority = 70
		breathingDesc = fmt.Sprintf("At stress %.0f/40, box breathing settles the pulse within 90 seconds: 4s in, 4s hold, 4s out, 4s hold, five cycles.", m.StressLevel)
	}
	c = append(c, planCandidate{breathingPriority, model.PlanItem{
		ID: "mindful_breathing", Title: "Breathing exercise", Description: breathingDesc,
		Category: "mindfulness", DurationMinutes: 5,
	}})

	if m != nil && (m.SleepHours < 7 || m.StressLevel >= 16) {
		c = append(c, planCandidate{62, model.PlanItem{
			ID:    "evening_routine",
			Title: "Evening ritual",
			Description: "Sixty minutes before bed, start winding down: dump the circling thoughts onto paper, switch to warm light, and trade the phone for a book or quiet music.",
			Category: "sleep", DurationMinutes: 15,
		}})
	}
	return c
}
