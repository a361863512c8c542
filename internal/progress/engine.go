package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"goalsmith/internal/spec"
	"goalsmith/internal/store"
)

const (
	dateLayout    = "2006-01-02"
	maxEntries    = 50
	maxStreakDays = 30
	chartDays     = 14
	recentEntries = 5
)

var achievementThresholds = []int{25, 50, 75, 100}

// Entry is one logged amount against one tracker on one calendar day.
type Entry struct {
	ID       string    `json:"id"`
	Date     string    `json:"date"`
	Tracker  string    `json:"tracker"`
	Value    float64   `json:"value"`
	Note     string    `json:"note,omitempty"`
	LoggedAt time.Time `json:"logged_at"`
}

// Achievement is a permanent unlock for crossing a percent-of-target
// threshold on a tracker.
type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Tracker     string    `json:"tracker"`
	Threshold   int       `json:"threshold"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}

// State is the persisted progress aggregate for one goal. Entries are
// bounded to the most recent 50; Totals and Recorded survive the
// trim. Recorded keeps the last value logged per (date, tracker) so
// re-logging a trimmed pair still replaces rather than adds.
type State struct {
	Entries             []Entry            `json:"entries"`
	Totals              map[string]float64 `json:"totals"`
	Recorded            map[string]float64 `json:"recorded"`
	Achievements        []Achievement      `json:"achievements"`
	Streak              int                `json:"streak"`
	CompletedMilestones []int              `json:"completed_milestones"`
	LastUpdated         time.Time          `json:"last_updated"`
}

func recordKey(date, tracker string) string {
	return date + "|" + tracker
}

// ChartPoint is one day of the trailing 14-day activity window.
// Cumulative accumulates only within the window.
type ChartPoint struct {
	Date       string  `json:"date"`
	Daily      float64 `json:"daily"`
	Cumulative float64 `json:"cumulative"`
}

// ActivityItem is one row of the recent-activity view.
type ActivityItem struct {
	Tracker string  `json:"tracker"`
	Value   float64 `json:"value"`
	Note    string  `json:"note,omitempty"`
	Date    string  `json:"date"`
	Age     string  `json:"age"`
}

// Notifier receives user-visible progress events. The engine calls it
// synchronously; implementations must not block.
type Notifier interface {
	AchievementUnlocked(goalTitle string, a Achievement)
	MilestoneCompleted(goalTitle string, m spec.Milestone)
}

// Engine drives progress tracking for a single goal. It is not safe
// for concurrent use; callers serialize access per goal.
type Engine struct {
	spec     *spec.GoalSpec
	state    State
	store    store.Store
	notifier Notifier

	now func() time.Time
}

// NewEngine creates an engine for the goal, loading any persisted
// state from the store. A nil store disables persistence; a nil
// notifier disables event delivery.
func NewEngine(ctx context.Context, s *spec.GoalSpec, st store.Store, notifier Notifier) *Engine {
	e := &Engine{
		spec:     s,
		store:    st,
		notifier: notifier,
		now:      time.Now,
		state: State{
			Totals:   make(map[string]float64),
			Recorded: make(map[string]float64),
		},
	}
	e.load(ctx)
	return e
}

func (e *Engine) load(ctx context.Context) {
	if e.store == nil {
		return
	}
	blob, err := e.store.Get(ctx, e.spec.Title)
	if err != nil {
		if err != store.ErrNotFound {
			log.Printf("[Progress] Failed to load state for %q: %v", e.spec.Title, err)
		}
		return
	}
	var st State
	if err := json.Unmarshal(blob, &st); err != nil {
		log.Printf("[Progress] Corrupt state for %q, starting fresh: %v", e.spec.Title, err)
		return
	}
	if st.Totals == nil {
		st.Totals = make(map[string]float64)
	}
	if st.Recorded == nil {
		// State written before Recorded existed: rebuild from the
		// surviving history.
		st.Recorded = make(map[string]float64)
		for _, en := range st.Entries {
			st.Recorded[recordKey(en.Date, en.Tracker)] = en.Value
		}
	}
	e.state = st
}

// persist is fire-and-forget: a store failure is logged, never
// surfaced, and the in-memory state remains authoritative.
func (e *Engine) persist(ctx context.Context) {
	if e.store == nil {
		return
	}
	e.state.LastUpdated = e.now()
	blob, err := json.Marshal(e.state)
	if err != nil {
		log.Printf("[Progress] Failed to serialize state for %q: %v", e.spec.Title, err)
		return
	}
	if err := e.store.Set(ctx, e.spec.Title, blob); err != nil {
		log.Printf("[Progress] Failed to persist state for %q: %v", e.spec.Title, err)
	}
}

// State returns a snapshot of the current aggregate.
func (e *Engine) State() State {
	st := e.state
	st.Entries = append([]Entry(nil), e.state.Entries...)
	st.Achievements = append([]Achievement(nil), e.state.Achievements...)
	st.CompletedMilestones = append([]int(nil), e.state.CompletedMilestones...)
	st.Totals = make(map[string]float64, len(e.state.Totals))
	for k, v := range e.state.Totals {
		st.Totals[k] = v
	}
	st.Recorded = make(map[string]float64, len(e.state.Recorded))
	for k, v := range e.state.Recorded {
		st.Recorded[k] = v
	}
	return st
}

// CoerceValue parses a raw logged value. Anything non-numeric counts
// as zero rather than an error.
func CoerceValue(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// LogEntry upserts the entry for (date, tracker), recomputes that
// tracker's total, evaluates achievements, recomputes the streak, and
// trims history to the most recent entries. date may be empty for
// today; the raw value is coerced, never rejected. Returns any
// achievements unlocked by this call.
func (e *Engine) LogEntry(ctx context.Context, trackerName, raw, note, date string) []Achievement {
	value := CoerceValue(raw)
	if date == "" {
		date = e.now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		date = e.now().Format(dateLayout)
	}

	prevTotal := e.state.Totals[trackerName]

	// Upsert: replace the last value for this (date, tracker) pair.
	// Recorded covers entries already trimmed from the history, so an
	// old day re-logged is still a replacement, never an addition.
	key := recordKey(date, trackerName)
	if prev, ok := e.state.Recorded[key]; ok && prev > 0 {
		e.state.Totals[trackerName] -= prev
	}
	e.state.Recorded[key] = value

	kept := e.state.Entries[:0]
	for _, en := range e.state.Entries {
		if en.Date == date && en.Tracker == trackerName {
			continue
		}
		kept = append(kept, en)
	}
	e.state.Entries = kept

	e.state.Entries = append(e.state.Entries, Entry{
		ID:       uuid.New().String(),
		Date:     date,
		Tracker:  trackerName,
		Value:    value,
		Note:     note,
		LoggedAt: e.now(),
	})
	if value > 0 {
		e.state.Totals[trackerName] += value
	}

	unlocked := e.evaluateAchievements(trackerName, prevTotal, e.state.Totals[trackerName])
	e.state.Streak = e.computeStreak()

	// Oldest entries drop first, regardless of tracker.
	if len(e.state.Entries) > maxEntries {
		e.state.Entries = append([]Entry(nil), e.state.Entries[len(e.state.Entries)-maxEntries:]...)
	}

	e.persist(ctx)
	return unlocked
}

// evaluateAchievements unlocks thresholds crossed from below by this
// total change. Unlocks are permanent; re-crossing is a no-op.
func (e *Engine) evaluateAchievements(trackerName string, prevTotal, newTotal float64) []Achievement {
	tracker := e.spec.TrackerByName(trackerName)
	if tracker == nil || tracker.Target <= 0 {
		return nil
	}
	prevPct := prevTotal / tracker.Target * 100
	newPct := newTotal / tracker.Target * 100

	var unlocked []Achievement
	for _, th := range achievementThresholds {
		if prevPct >= float64(th) || newPct < float64(th) {
			continue
		}
		if e.hasAchievement(trackerName, th) {
			continue
		}
		icon := "⭐"
		if th == 100 {
			icon = "🏆"
		}
		a := Achievement{
			ID:          fmt.Sprintf("%s-%d", trackerName, th),
			Title:       fmt.Sprintf("%d%% Complete!", th),
			Description: fmt.Sprintf("Reached %d%% of your %s goal", th, trackerName),
			Icon:        icon,
			Tracker:     trackerName,
			Threshold:   th,
			UnlockedAt:  e.now(),
		}
		e.state.Achievements = append(e.state.Achievements, a)
		unlocked = append(unlocked, a)
		if e.notifier != nil {
			e.notifier.AchievementUnlocked(e.spec.Title, a)
		}
	}
	return unlocked
}

func (e *Engine) hasAchievement(trackerName string, threshold int) bool {
	for _, a := range e.state.Achievements {
		if a.Tracker == trackerName && a.Threshold == threshold {
			return true
		}
	}
	return false
}

// computeStreak walks backward from today over days with any positive
// entry. Today being inactive does not break a streak ending
// yesterday. Capped at maxStreakDays.
func (e *Engine) computeStreak() int {
	active := make(map[string]bool)
	for _, en := range e.state.Entries {
		if en.Value > 0 {
			active[en.Date] = true
		}
	}

	streak := 0
	day := e.now()
	if !active[day.Format(dateLayout)] {
		day = day.AddDate(0, 0, -1)
	}
	for active[day.Format(dateLayout)] {
		streak++
		if streak >= maxStreakDays {
			return maxStreakDays
		}
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// MarkMilestoneComplete is an idempotent set-insert. Out-of-range
// indices are ignored.
func (e *Engine) MarkMilestoneComplete(ctx context.Context, index int) {
	if index < 0 || index >= len(e.spec.Milestones) {
		return
	}
	for _, i := range e.state.CompletedMilestones {
		if i == index {
			return
		}
	}
	e.state.CompletedMilestones = append(e.state.CompletedMilestones, index)
	sort.Ints(e.state.CompletedMilestones)
	if e.notifier != nil {
		e.notifier.MilestoneCompleted(e.spec.Title, e.spec.Milestones[index])
	}
	e.persist(ctx)
}

// ChartData returns the trailing 14-day window ending today,
// zero-filled, with a cumulative series that resets at the window
// start.
func (e *Engine) ChartData() []ChartPoint {
	daily := make(map[string]float64)
	for _, en := range e.state.Entries {
		if en.Value > 0 {
			daily[en.Date] += en.Value
		}
	}

	points := make([]ChartPoint, 0, chartDays)
	cumulative := 0.0
	today := e.now()
	for i := chartDays - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format(dateLayout)
		cumulative += daily[date]
		points = append(points, ChartPoint{
			Date:       date,
			Daily:      daily[date],
			Cumulative: cumulative,
		})
	}
	return points
}

// RecentActivity returns the last entries, most recent first, each
// annotated with a relative age.
func (e *Engine) RecentActivity() []ActivityItem {
	n := len(e.state.Entries)
	count := recentEntries
	if n < count {
		count = n
	}
	items := make([]ActivityItem, 0, count)
	for i := n - 1; i >= n-count; i-- {
		en := e.state.Entries[i]
		items = append(items, ActivityItem{
			Tracker: en.Tracker,
			Value:   en.Value,
			Note:    en.Note,
			Date:    en.Date,
			Age:     timeAgo(e.now(), en.LoggedAt),
		})
	}
	return items
}

// CompletionPercent is the mean over trackers of min(1, total/target),
// rounded to a whole percentage.
func (e *Engine) CompletionPercent() int {
	if len(e.spec.Trackers) == 0 {
		return 0
	}
	sum := 0.0
	for _, t := range e.spec.Trackers {
		if t.Target <= 0 {
			continue
		}
		ratio := e.state.Totals[t.Name] / t.Target
		if ratio > 1 {
			ratio = 1
		}
		sum += ratio
	}
	return int(math.Round(sum / float64(len(e.spec.Trackers)) * 100))
}

func timeAgo(now, then time.Time) string {
	d := now.Sub(then)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
