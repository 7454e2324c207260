package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"recipely/internal/config"
	"recipely/internal/connections"
	"recipely/internal/dbmysql"
	"recipely/internal/di"
	"recipely/internal/remote"
	"recipely/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system env variables")
	}

	cfg := config.LoadConfig()
	log.Println("Configuration loaded")

	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize local database: %v", err)
	}
	log.Println("Local database initialized")

	mongoClient, err := remote.NewMongoConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to remote store: %v", err)
	}
	defer mongoClient.Close(context.Background())
	log.Println("Remote store connected")

	// The sync core is per-session: the signed-in user comes from the
	// session token, not from ambient state.
	sess, err := session.FromToken(os.Getenv("SESSION_TOKEN"))
	if err != nil {
		log.Fatalf("Failed to establish session: %v", err)
	}
	log.Printf("Session established for user %s", sess.UserID)

	app, err := di.InitializeApplication(sess, cfg, db, mongoClient)
	if err != nil {
		log.Fatalf("Failed to wire application: %v", err)
	}
	log.Println("Dependencies wired successfully")

	if err := app.Connections.LoadConnections(context.Background(), sess.UserID); err != nil {
		log.Printf("Initial reconciliation failed, continuing with local state: %v", err)
	}

	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	go runTombstoneCleanup(cleanupCtx, app)

	httpServer := connections.NewHTTPServer(app.Connections, app.Remote, sess)
	server := &http.Server{
		Addr:    ":" + cfg.Server.SyncServicePort,
		Handler: httpServer.Router(),
	}

	go func() {
		log.Printf("Sync service listening on port %s", cfg.Server.SyncServicePort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down, draining operation queue")
	stopCleanup()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown: %v", err)
	}

	app.Connections.Shutdown()
	app.Bus.Close()
	log.Println("Sync service stopped")
}

// runTombstoneCleanup purges expired tombstones on the configured interval.
func runTombstoneCleanup(ctx context.Context, app *di.Application) {
	interval := time.Duration(app.Config.Tombstone.CleanupIntervalHours) * time.Hour
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := app.Tombstones.CleanupOldTombstones(ctx)
			if err != nil {
				log.Printf("Tombstone cleanup failed: %v", err)
				continue
			}
			if purged > 0 {
				log.Printf("Purged %d expired tombstones", purged)
			}
		}
	}
}
