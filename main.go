package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	resumePath := os.Getenv("RESUME_PATH")
	if resumePath == "" {
		resumePath = "data/resume.json"
	}

	resume, err := loadResume(resumePath)
	if err != nil {
		log.Fatal("Failed to load resume: ", err)
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("WARNING: GEMINI_API_KEY not set; chat requests will fail with 401")
	}

	s := &server{
		store:   NewSessionStore(),
		llm:     NewGeminiClient(apiKey, os.Getenv("GEMINI_MODEL")),
		resume:  resume,
		persona: selectPersona(os.Getenv("PERSONA")),
		appEnv:  os.Getenv("APP_ENV"),
	}

	// Usage metrics are best-effort; the chat service never depends on
	// them. Opened before the router so the tracking middleware sits
	// ahead of the routes it counts.
	metricsPath := os.Getenv("METRICS_DB")
	if metricsPath == "" {
		metricsPath = "portfolio.db"
	}
	metrics, err := openUsageMetrics(metricsPath)
	if err != nil {
		log.Printf("Usage metrics disabled: %v", err)
	}

	r := newRouter(s, metrics)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	now := time.Now()
	log.Printf("Portfolio chatbot server running on :%s", port)
	log.Printf("Persona: %s | Started: %s at %s", s.persona.Name, formatDate(now), formatTime(now))
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed: ", err)
	}
}

// newRouter wires the chat API. The chat endpoints allow all origins on
// purpose: the widget is embedded on a public site. Gin freezes each
// route's handler chain at registration, so the metrics middleware must
// go on before any route; metrics may be nil when the DB failed to open.
func newRouter(s *server, metrics *usageMetrics) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	if metrics != nil {
		r.Use(metrics.middleware())
	}

	r.POST("/chat", s.handleChat)
	r.DELETE("/chat/:sessionId", s.handleDeleteSession)
	r.GET("/health", s.handleHealth)
	r.GET("/sessions", s.handleListSessions)
	r.POST("/contact", s.handleContact)

	if metrics != nil {
		metrics.setupAdminRoutes(r)
	}

	return r
}
