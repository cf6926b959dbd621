package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/mindful/pkg/entity"
)

var achievementNamespace = uuid.MustParse("0b6a4f3e-8d7e-4a8c-bf51-2c9a1e7d5f20")

// AchievementState is what unlock predicates look at.
type AchievementState struct {
	Stats        entity.UserStatistics
	TodaySeconds int
}

type AchievementRule struct {
	Key         string
	Title       string
	Description string
	IconRef     string
	Unlocked    func(state AchievementState) bool
}

// ID is stable per key so an achievement keeps its id across resets.
func (r AchievementRule) ID() uuid.UUID {
	return uuid.NewSHA1(achievementNamespace, []byte(r.Key))
}

func (r AchievementRule) achievement(at time.Time) entity.Achievement {
	unlockedAt := at
	return entity.Achievement{
		ID:          r.ID(),
		Key:         r.Key,
		Title:       r.Title,
		Description: r.Description,
		IconRef:     r.IconRef,
		Unlocked:    true,
		UnlockedAt:  &unlockedAt,
	}
}

func StreakRule(days int, key, title, description string) AchievementRule {
	return AchievementRule{
		Key:         key,
		Title:       title,
		Description: description,
		IconRef:     "flame.fill",
		Unlocked: func(state AchievementState) bool {
			return state.Stats.CurrentStreakDays >= days || state.Stats.LongestStreakDays >= days
		},
	}
}

func SessionCountRule(count int, key, title, description string) AchievementRule {
	return AchievementRule{
		Key:         key,
		Title:       title,
		Description: description,
		IconRef:     "star.fill",
		Unlocked: func(state AchievementState) bool {
			completed := 0
			for _, s := range state.Stats.SessionHistory {
				if s.Completed {
					completed++
				}
			}
			return completed >= count
		},
	}
}

func MindfulTimeRule(seconds int, key, title, description string) AchievementRule {
	return AchievementRule{
		Key:         key,
		Title:       title,
		Description: description,
		IconRef:     "hourglass",
		Unlocked: func(state AchievementState) bool {
			return state.Stats.TotalMindfulSeconds >= seconds
		},
	}
}

func DefaultAchievementRules() []AchievementRule {
	return []AchievementRule{
		SessionCountRule(1, "first_session", "Erste Meditation", "Du hast deine erste Meditation abgeschlossen!"),
		StreakRule(3, "streak_3", "3-Tage-Streak", "Drei Tage in Folge meditiert."),
		StreakRule(7, "streak_7", "7-Tage-Streak", "Eine ganze Woche in Folge meditiert."),
		StreakRule(30, "streak_30", "30-Tage-Streak", "Einen Monat lang jeden Tag meditiert."),
		SessionCountRule(10, "sessions_10", "Zehn Sitzungen", "Zehn Meditationen abgeschlossen."),
		MindfulTimeRule(3600, "mindful_1h", "Eine Stunde Achtsamkeit", "Insgesamt eine Stunde achtsam verbracht."),
		{
			Key:         "daily_goal",
			Title:       "Tagesziel erreicht",
			Description: "Dein tägliches Meditationsziel erreicht.",
			IconRef:     "target",
			Unlocked: func(state AchievementState) bool {
				return state.Stats.DailyGoalSeconds > 0 && state.TodaySeconds >= state.Stats.DailyGoalSeconds
			},
		},
	}
}
