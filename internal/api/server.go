// Package api exposes the goaltrack operations as a JSON HTTP API.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goaltrack/goaltrack/internal/notion"
	"github.com/goaltrack/goaltrack/internal/storage"
)

// Notifier runs one notification sweep and reports how many emails went out.
type Notifier interface {
	Run(kind string) (int, error)
}

// NotionClient is the upstream surface the sync proxy forwards to.
type NotionClient interface {
	ListTasks() ([]notion.Task, error)
	CreateTask(task notion.Task) error
	UpdateTask(update notion.TaskUpdate) error
	ArchiveTask(id string) error
}

// Server is the goaltrack API server. The notifier and notion client may be
// nil when their credentials are not configured; the matching endpoints then
// answer 503.
type Server struct {
	store    storage.Provider
	notifier Notifier
	notion   NotionClient
	router   *gin.Engine
}

func NewServer(store storage.Provider, notifier Notifier, notionClient NotionClient) *Server {
	router := gin.Default()

	s := &Server{
		store:    store,
		notifier: notifier,
		notion:   notionClient,
		router:   router,
	}

	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		user := api.Group("")
		user.Use(requireUser())
		{
			user.GET("/tasks", s.handleListTasks)
			user.POST("/tasks", s.handleCreateTask)
			user.PATCH("/tasks/:id", s.handleUpdateTask)
			user.DELETE("/tasks/:id", s.handleDeleteTask)
			user.POST("/tasks/:id/toggle", s.handleToggleTask)

			user.GET("/habits", s.handleHabits)
			user.GET("/calendar", s.handleCalendar)
			user.GET("/today", s.handleToday)

			user.GET("/notifications", s.handleListNotifications)
		}

		api.POST("/notifications/send", s.handleSendNotifications)

		api.GET("/notion/tasks", s.handleNotionList)
		api.POST("/notion/tasks", s.handleNotionCreate)
		api.PATCH("/notion/tasks/:id", s.handleNotionUpdate)
		api.DELETE("/notion/tasks/:id", s.handleNotionDelete)
	}

	return s
}

// Run starts the API server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router for in-process serving and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type, x-user-id")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// requireUser resolves the acting user from the X-User-ID header. Auth proper
// is delegated to the front proxy; an absent header is the only failure mode.
func requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}

func (s *Server) client(c *gin.Context) *storage.Client {
	return storage.NewClient(s.store, c.GetString("userID"))
}
