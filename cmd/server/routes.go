// Package main provides the campus chatbot server entry point.
package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campustrack/chatbot-go/internal/api"
	"github.com/campustrack/chatbot-go/internal/config"
	"github.com/campustrack/chatbot-go/internal/storage"
	"github.com/campustrack/chatbot-go/internal/warmup"
)

// setupRoutes configures all HTTP routes
func setupRoutes(router *gin.Engine, handler *api.Handler, db *storage.DB, readiness *warmup.Readiness, registry *prometheus.Registry, cfg *config.Config) {
	// Root endpoint - redirect to the project page
	rootHandler := func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "https://github.com/campustrack/chatbot-go")
	}
	router.GET("/", rootHandler)
	router.HEAD("/", rootHandler)

	// Liveness probe - checks that the process is running, nothing more.
	// Never checks dependencies.
	liveHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/livez", liveHandler)
	router.HEAD("/livez", liveHandler)

	// Readiness probe - serving traffic requires a reachable database and
	// completed (or timed-out) warmup
	readyHandler := func(c *gin.Context) {
		if !readiness.Ready() {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"warmup": readiness.Status(),
			})
			return
		}

		if err := db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"reason": err.Error(),
			})
			return
		}

		facultyCount, _ := db.CountFaculty(c.Request.Context())
		sessionCount, _ := db.CountSyllabusSessions(c.Request.Context())
		faqCount, _ := db.CountFAQs(c.Request.Context())

		c.JSON(http.StatusOK, gin.H{
			"status":   "ready",
			"database": "connected",
			"warmup":   readiness.Status(),
			"catalog": gin.H{
				"faculty":           facultyCount,
				"syllabus_sessions": sessionCount,
				"faqs":              faqCount,
			},
		})
	}
	router.GET("/readyz", readyHandler)
	router.HEAD("/readyz", readyHandler)

	// Chatbot API
	apiGroup := router.Group("/api")
	apiGroup.POST("/chatbot", handler.Chat)
	apiGroup.GET("/admin/today-summary", handler.TodaySummary)

	// Prometheus metrics endpoint, behind Basic Auth when a password is set
	metricsHandler := gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	if cfg.MetricsPassword != "" {
		authorized := router.Group("/", gin.BasicAuth(gin.Accounts{
			cfg.MetricsUsername: cfg.MetricsPassword,
		}))
		authorized.GET("/metrics", metricsHandler)
	} else {
		router.GET("/metrics", metricsHandler)
	}
}
