package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"communityapp/database"
	"communityapp/handlers"
	"communityapp/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// connectWithRetry tries connect up to attempts times, sleeping between
// failures but not after the last one. Returns nil when every attempt fails.
func connectWithRetry(attempts int, sleep func(time.Duration), connect func() (*database.DB, error)) *database.DB {
	for i := 1; i <= attempts; i++ {
		db, err := connect()
		if err == nil {
			return db
		}
		log.Printf("❌ MongoDB connection attempt %d failed: %v", i, err)
		if i < attempts {
			sleep(2 * time.Second)
		}
	}
	return nil
}

func main() {
	log.Println("🚀 Starting Community API...")

	if err := godotenv.Load(); err == nil {
		log.Println("📄 Loaded environment from .env")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Println("MONGODB_URI not set, using default localhost")
		uri = "mongodb://127.0.0.1:27017"
	}

	// ===== CONNECT TO MONGODB WITH RETRY =====
	// The store is optional: if the connection never comes up the service
	// still starts, reads degrade to empty responses and writes fail.
	log.Println("🔌 Connecting to MongoDB...")

	db := connectWithRetry(3, time.Sleep, func() (*database.DB, error) {
		return database.Connect(uri)
	})

	if db == nil {
		log.Println("⚠️ Running without a database: reads degrade, writes fail")
	} else {
		log.Println("✅ MongoDB connected successfully")
	}

	// ===== GIN MODE =====
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
		log.Println("⚙️ Running in RELEASE mode")
	}

	// ===== ROUTER =====
	router := routes.SetupRouter(handlers.New(db))

	// ===== SERVER CONFIG =====
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Server error:", err)
		}
	}()

	// ===== GRACEFUL SHUTDOWN =====
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("❌ Forced shutdown:", err)
	}

	if db != nil {
		if err := db.Disconnect(); err != nil {
			log.Println("❌ MongoDB disconnect:", err)
		}
	}

	log.Println("👋 Server stopped gracefully")
}
