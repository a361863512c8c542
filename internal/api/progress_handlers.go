package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"goalsmith/internal/goalrepo"
	"goalsmith/internal/progress"
	"goalsmith/internal/spec"
	"goalsmith/internal/store"
)

type LogEntryRequest struct {
	Tracker string      `json:"tracker"`
	Value   interface{} `json:"value"`
	Note    string      `json:"note"`
	Date    string      `json:"date"`
}

// rawValue renders the request value to the engine's string input.
// The engine coerces non-numeric strings to zero.
func (r *LogEntryRequest) rawValue() string {
	switch v := r.Value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// engineFor builds a per-request engine with the user's storage
// namespace, so identical goal titles never collide across users.
func (deps *Deps) engineFor(c *gin.Context, s *spec.GoalSpec) *progress.Engine {
	var st store.Store
	if deps.Store != nil {
		st = store.NewPrefixed(deps.Store, fmt.Sprintf("u%d:", currentUserID(c)))
	}
	return progress.NewEngine(c.Request.Context(), s, st, deps.Hub)
}

func (deps *Deps) progressLock(c *gin.Context, s *spec.GoalSpec) *sync.Mutex {
	return deps.lockFor(fmt.Sprintf("u%d:%s", currentUserID(c), s.Title))
}

func (deps *Deps) loadSpec(c *gin.Context) (*spec.GoalSpec, bool) {
	g, err := deps.Repo.ByTitle(currentUserID(c), c.Param("title"))
	if errors.Is(err, goalrepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Goal not found"}})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to load goal"}})
		return nil, false
	}
	s, err := g.Spec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Corrupt goal record"}})
		return nil, false
	}
	return s, true
}

// POST /goals/:title/log
func LogEntryHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LogEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		// Reject before touching any state: a zero-coerced empty
		// value would upsert over the day's real entry.
		if req.Value == nil || strings.TrimSpace(req.rawValue()) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Value required"}})
			return
		}
		if req.Date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Date required"}})
			return
		}
		s, ok := deps.loadSpec(c)
		if !ok {
			return
		}
		if req.Tracker == "" || s.TrackerByName(req.Tracker) == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Unknown tracker"}})
			return
		}

		lock := deps.progressLock(c, s)
		lock.Lock()
		defer lock.Unlock()

		eng := deps.engineFor(c, s)
		unlocked := eng.LogEntry(c.Request.Context(), req.Tracker, req.rawValue(), req.Note, req.Date)

		st := eng.State()
		c.JSON(http.StatusOK, gin.H{
			"unlocked":   unlocked,
			"streak":     st.Streak,
			"totals":     st.Totals,
			"completion": eng.CompletionPercent(),
		})
	}
}

// GET /goals/:title/progress
func ProgressHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := deps.loadSpec(c)
		if !ok {
			return
		}
		lock := deps.progressLock(c, s)
		lock.Lock()
		defer lock.Unlock()

		eng := deps.engineFor(c, s)
		st := eng.State()
		c.JSON(http.StatusOK, gin.H{
			"state":      st,
			"completion": eng.CompletionPercent(),
			"recent":     eng.RecentActivity(),
		})
	}
}

// GET /goals/:title/chart
func ChartHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := deps.loadSpec(c)
		if !ok {
			return
		}
		lock := deps.progressLock(c, s)
		lock.Lock()
		defer lock.Unlock()

		eng := deps.engineFor(c, s)
		c.JSON(http.StatusOK, gin.H{"chart": eng.ChartData()})
	}
}

// POST /goals/:title/milestones/:index/complete
func CompleteMilestoneHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid milestone index"}})
			return
		}
		s, ok := deps.loadSpec(c)
		if !ok {
			return
		}
		if index < 0 || index >= len(s.Milestones) {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Milestone index out of range"}})
			return
		}

		lock := deps.progressLock(c, s)
		lock.Lock()
		defer lock.Unlock()

		eng := deps.engineFor(c, s)
		eng.MarkMilestoneComplete(c.Request.Context(), index)
		c.JSON(http.StatusOK, gin.H{"completed": eng.State().CompletedMilestones})
	}
}
