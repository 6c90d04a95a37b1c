package main

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	_ "modernc.org/sqlite"
)

// usageMetrics records privacy-conscious request counts in sqlite. Only
// hashed IPs, paths, user agents, and timestamps are stored - never message
// content and never session ids. The chat service works fine without it.
type usageMetrics struct {
	db         *sql.DB
	salt       string
	adminToken string
}

func openUsageMetrics(path string) (*usageMetrics, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open metrics database")
	}

	createTable := `
	CREATE TABLE IF NOT EXISTS requests (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,
		user_agent TEXT,
		path TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to create requests table")
	}

	m := &usageMetrics{
		db:         db,
		salt:       randomToken(),
		adminToken: randomToken(),
	}

	log.Printf("Admin stats available at: /admin/stats")
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", m.adminToken)
	}
	log.Println("Privacy: request tracking enabled with hashed IP addresses")

	// Privacy compliance: drop records older than 12 months.
	go m.cleanupOldData()

	return m, nil
}

func randomToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate random token:", err)
	}
	return hex.EncodeToString(bytes)
}

// hashIP hashes an IP with the per-process salt, truncated for storage
// efficiency. Consistent per IP within one process lifetime.
func (m *usageMetrics) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + m.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// middleware tracks requests in the background. Static assets and admin
// pages are skipped, and the Do Not Track header is respected.
func (m *usageMetrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/admin/") ||
			strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/favicon") {
			c.Next()
			return
		}

		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		go m.track(c.ClientIP(), c.GetHeader("User-Agent"), path)
		c.Next()
	}
}

func (m *usageMetrics) track(ip, userAgent, path string) {
	_, err := m.db.Exec(`
		INSERT INTO requests (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, m.hashIP(ip), userAgent, path, time.Now())
	if err != nil {
		log.Printf("Error recording request: %v", err)
	}
}

func (m *usageMetrics) cleanupOldData() {
	result, err := m.db.Exec(`
		DELETE FROM requests
		WHERE timestamp < datetime('now', '-12 months')
	`)
	if err != nil {
		log.Printf("Error cleaning up old request data: %v", err)
		return
	}
	if rowsDeleted, _ := result.RowsAffected(); rowsDeleted > 0 {
		log.Printf("Privacy cleanup: removed %d request records older than 12 months", rowsDeleted)
	}
}

type pathCount struct {
	Path  string `json:"path"`
	Count int64  `json:"count"`
}

type usageStats struct {
	TotalRequests    int64       `json:"total_requests"`
	UniqueVisitors   int64       `json:"unique_visitors"`
	RequestsToday    int64       `json:"requests_today"`
	RequestsThisWeek int64       `json:"requests_this_week"`
	ByPath           []pathCount `json:"by_path"`
}

func (m *usageMetrics) stats() (*usageStats, error) {
	stats := &usageStats{}

	if err := m.db.QueryRow("SELECT COUNT(*) FROM requests").Scan(&stats.TotalRequests); err != nil {
		return nil, err
	}

	if err := m.db.QueryRow("SELECT COUNT(DISTINCT hashed_ip) FROM requests").Scan(&stats.UniqueVisitors); err != nil {
		return nil, err
	}

	if err := m.db.QueryRow(`
		SELECT COUNT(*) FROM requests
		WHERE DATE(timestamp) = DATE('now')
	`).Scan(&stats.RequestsToday); err != nil {
		return nil, err
	}

	if err := m.db.QueryRow(`
		SELECT COUNT(*) FROM requests
		WHERE timestamp >= datetime('now', '-7 days')
	`).Scan(&stats.RequestsThisWeek); err != nil {
		return nil, err
	}

	rows, err := m.db.Query(`
		SELECT path, COUNT(*) as count
		FROM requests
		GROUP BY path
		ORDER BY count DESC
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var pc pathCount
		if err := rows.Scan(&pc.Path, &pc.Count); err != nil {
			continue
		}
		stats.ByPath = append(stats.ByPath, pc)
	}

	return stats, nil
}

// adminAuthMiddleware guards the stats API with the per-process token.
func (m *usageMetrics) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Admin-Token")
		if subtle.ConstantTimeCompare([]byte(token), []byte(m.adminToken)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin token"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// setupAdminRoutes wires the metrics endpoints onto the router.
func (m *usageMetrics) setupAdminRoutes(r *gin.Engine) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(m.adminAuthMiddleware())

	adminGroup.GET("/stats", func(c *gin.Context) {
		stats, err := m.stats()
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})
}
