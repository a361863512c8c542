package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"goalsmith/internal/goalrepo"
	"goalsmith/internal/security"
)

type CreateGoalRequest struct {
	Text  string `json:"text"`
	UseAI bool   `json:"use_ai"`
}

func currentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	id, _ := v.(uint)
	return id
}

// POST /goals compiles the text and persists the resulting spec. With
// use_ai the AI path is tried first; compilation itself never fails,
// so the only error surfaces are validation and storage.
func CreateGoalHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateGoalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		text := security.SanitizeInput(req.Text)
		if text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Goal text required"}})
			return
		}

		spec := deps.Compiler.CompileWithMode(c.Request.Context(), text, req.UseAI)

		g, err := goalrepo.FromSpec(currentUserID(c), text, spec)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to encode goal"}})
			return
		}
		if err := deps.Repo.Create(g); err != nil {
			if errors.Is(err, goalrepo.ErrDuplicate) {
				c.JSON(http.StatusConflict, gin.H{"error": gin.H{"message": "A goal with this title already exists"}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to save goal"}})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"goal": g, "spec": spec})
	}
}

func ListGoalsHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		goals, err := deps.Repo.List(currentUserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to list goals"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"goals": goals})
	}
}

func GetGoalHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		g, err := deps.Repo.ByTitle(currentUserID(c), c.Param("title"))
		if errors.Is(err, goalrepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Goal not found"}})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to load goal"}})
			return
		}
		s, err := g.Spec()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Corrupt goal record"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"goal": g, "spec": s})
	}
}

func DeleteGoalHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.Param("title")
		err := deps.Repo.Delete(currentUserID(c), title)
		if errors.Is(err, goalrepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Goal not found"}})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to delete goal"}})
			return
		}
		if deps.Store != nil {
			// Drop the goal's progress state too.
			_ = deps.Store.Delete(c.Request.Context(), fmt.Sprintf("u%d:%s", currentUserID(c), title))
		}
		c.JSON(http.StatusOK, gin.H{"deleted": title})
	}
}
