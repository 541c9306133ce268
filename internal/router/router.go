package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/lifeboard/backend/api/handler"
)

type Handlers struct {
	Event        *apiHandler.EventHandler
	Note         *apiHandler.NoteHandler
	Project      *apiHandler.ProjectHandler
	Task         *apiHandler.TaskHandler
	Baby         *apiHandler.BabyHandler
	Upload       *apiHandler.UploadHandler
	Notification *apiHandler.NotificationHandler
	Health       *apiHandler.HealthHandler
}

func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Calendar events
	r.GET("/api/v1/events", handlers.Event.ListEvents)
	r.POST("/api/v1/events", handlers.Event.CreateEvent)
	r.GET("/api/v1/events/{id}", handlers.Event.GetEvent)
	r.PUT("/api/v1/events/{id}", handlers.Event.UpdateEvent)
	r.DELETE("/api/v1/events/{id}", handlers.Event.DeleteEvent)
	r.POST("/api/v1/events/{id}/image", handlers.Event.AttachImage)

	// Notes
	r.GET("/api/v1/notes", handlers.Note.ListNotes)
	r.POST("/api/v1/notes", handlers.Note.CreateNote)
	r.GET("/api/v1/notes/{id}", handlers.Note.GetNote)
	r.PUT("/api/v1/notes/{id}", handlers.Note.UpdateNote)
	r.DELETE("/api/v1/notes/{id}", handlers.Note.DeleteNote)

	// Planner board
	r.GET("/api/v1/projects", handlers.Project.ListProjects)
	r.POST("/api/v1/projects", handlers.Project.CreateProject)
	r.PUT("/api/v1/projects/{id}", handlers.Project.UpdateProject)
	r.DELETE("/api/v1/projects/{id}", handlers.Project.DeleteProject)

	r.GET("/api/v1/tasks", handlers.Task.ListTasks)
	r.POST("/api/v1/tasks", handlers.Task.CreateTask)
	r.PUT("/api/v1/tasks/{id}", handlers.Task.UpdateTask)
	r.DELETE("/api/v1/tasks/{id}", handlers.Task.DeleteTask)
	r.POST("/api/v1/tasks/{id}/images", handlers.Task.AttachImage)

	// Baby tracker
	r.GET("/api/v1/baby/savings", handlers.Baby.GetSavings)
	r.PUT("/api/v1/baby/savings", handlers.Baby.UpdateSavings)
	r.GET("/api/v1/baby/items", handlers.Baby.ListItems)
	r.POST("/api/v1/baby/items", handlers.Baby.CreateItem)
	r.PUT("/api/v1/baby/items/{id}", handlers.Baby.UpdateItem)
	r.DELETE("/api/v1/baby/items/{id}", handlers.Baby.DeleteItem)

	// Image uploads
	r.POST("/api/v1/uploads", handlers.Upload.Upload)
	r.POST("/api/v1/uploads/hero", handlers.Upload.UploadHero)

	// Notification control surface
	r.POST("/api/v1/notifications/test", handlers.Notification.SendTest)
	r.GET("/api/v1/notifications/status", handlers.Notification.Status)
	r.PUT("/api/v1/notifications/enabled", handlers.Notification.SetEnabled)

	return r
}
