// Package rest exposes the PlantPal JSON API over HTTP using gin.
package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/plantpal/internal/logging"
	"github.com/dmitrijs2005/plantpal/internal/models"
)

type UserService interface {
	SignUp(ctx context.Context, fullName, email, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	Authenticate(token string) (string, error)
}

type PlantService interface {
	List(ctx context.Context, userID string) ([]models.Plant, error)
	Create(ctx context.Context, userID string, draft models.PlantDraft, photo *models.Photo) (models.Plant, error)
	Update(ctx context.Context, userID, id string, patch []byte) (models.Plant, error)
	Delete(ctx context.Context, userID, id string) error
	LogActivity(ctx context.Context, userID, id, activity string) (models.Plant, error)
	Stats(ctx context.Context, userID string) (models.Stats, error)
}

type JournalService interface {
	List(ctx context.Context, userID string) ([]models.JournalEntry, error)
	Create(ctx context.Context, userID, title, content string, file *models.Photo) (models.JournalEntry, error)
	Delete(ctx context.Context, userID, id string) error
}

type AIService interface {
	Chat(ctx context.Context, prompt string, history []models.ChatTurn) (string, error)
	Identify(ctx context.Context, img models.Photo) (models.Identification, error)
	Autofill(ctx context.Context, img models.Photo) (models.CareDetails, error)
	FertilizerSuggestion(ctx context.Context, name, scientificName string) (string, error)
}

type ArticleSource interface {
	List() []models.Article
}

// HTTPObserver records request outcomes.
type HTTPObserver interface {
	ObserveHTTP(route, method string, code int, d time.Duration)
}

// Deps are the collaborators of the API. Observer, MetricsHandler and
// Ping are optional.
type Deps struct {
	Users    UserService
	Plants   PlantService
	Journal  JournalService
	AI       AIService
	Articles ArticleSource

	Observer       HTTPObserver
	MetricsHandler http.Handler
	Ping           func(ctx context.Context) error

	Log            logging.Logger
	MaxUploadBytes int64
}

type handler struct {
	Deps
	log logging.Logger
}

// NewRouter builds the gin engine serving every API route.
func NewRouter(d Deps) *gin.Engine {
	h := &handler{Deps: d, log: d.Log.With("module", "rest")}

	r := gin.New()
	r.Use(gin.Recovery(), h.observe())

	r.GET("/healthz", h.health)
	if d.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(d.MetricsHandler))
	}

	r.POST("/auth/signin", h.signIn)
	r.POST("/auth/signup", h.signUp)

	api := r.Group("/", h.requireUser())
	api.GET("/plants", h.listPlants)
	api.POST("/plants", h.createPlant)
	api.PUT("/plants/:id", h.updatePlant)
	api.DELETE("/plants/:id", h.deletePlant)
	api.POST("/plants/:id/activity", h.logActivity)

	api.GET("/journal", h.listJournal)
	api.POST("/journal", h.createJournalEntry)
	api.DELETE("/journal/:id", h.deleteJournalEntry)

	api.GET("/articles", h.listArticles)
	api.GET("/stats", h.stats)

	api.POST("/ai/chat", h.chat)
	api.POST("/ai/identify", h.identify)
	api.POST("/ai/autofill", h.autofill)
	api.POST("/ai/fertilizer-suggestion", h.fertilizerSuggestion)

	return r
}

func (h *handler) health(c *gin.Context) {
	if h.Ping != nil {
		if err := h.Ping(c.Request.Context()); err != nil {
			h.log.Warn(c.Request.Context(), "health check failed", "error", err)
			c.String(http.StatusServiceUnavailable, "unavailable")
			return
		}
	}
	c.String(http.StatusOK, "ok")
}
