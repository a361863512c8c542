package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"goalsmith/internal/auth"
	"goalsmith/internal/compiler"
	"goalsmith/internal/config"
	"goalsmith/internal/goalrepo"
	"goalsmith/internal/store"
)

// Deps carries the wired services the handlers close over.
type Deps struct {
	Compiler *compiler.Compiler
	Repo     *goalrepo.Repository
	Store    store.Store
	Hub      *EventHub

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// lockFor serializes progress mutations per goal. The engine itself
// is single-writer.
func (d *Deps) lockFor(key string) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.locks == nil {
		d.locks = make(map[string]*sync.Mutex)
	}
	l, ok := d.locks[key]
	if !ok {
		l = &sync.Mutex{}
		d.locks[key] = l
	}
	return l
}

func SetupRouter(cfg *config.Config, rdb *redis.Client, deps *Deps) *gin.Engine {
	r := gin.Default()
	subpath := cfg.Server.Subpath

	group := r.Group(subpath)
	{
		group.GET("/health", healthHandler(rdb))
		group.GET("/config", configHandler(cfg))

		// Setup: only if no users
		group.POST("/setup", SetupHandler())

		// Auth
		group.POST("/auth/login", LoginHandler(cfg, rdb))
		group.POST("/auth/logout", auth.AuthMiddleware(cfg, rdb), LogoutHandler(rdb))
		group.GET("/auth/me", auth.AuthMiddleware(cfg, rdb), MeHandler())

		// Goals
		authed := group.Group("", auth.AuthMiddleware(cfg, rdb))
		authed.POST("/goals", CreateGoalHandler(deps))
		authed.GET("/goals", ListGoalsHandler(deps))
		authed.GET("/goals/:title", GetGoalHandler(deps))
		authed.DELETE("/goals/:title", DeleteGoalHandler(deps))

		// Progress
		authed.POST("/goals/:title/log", LogEntryHandler(deps))
		authed.GET("/goals/:title/progress", ProgressHandler(deps))
		authed.GET("/goals/:title/chart", ChartHandler(deps))
		authed.POST("/goals/:title/milestones/:index/complete", CompleteMilestoneHandler(deps))

		// Live progress events, scoped to one goal per socket
		authed.GET("/goals/:title/events", EventsHandler(deps.Hub))
	}

	// Redirect /subpath/ to /subpath (no duplicate panic)
	if subpath != "" && subpath != "/" {
		r.GET(subpath+"/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, subpath)
		})
	}

	return r
}
