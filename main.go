package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hearhut/storefront-api/auth"
	"github.com/hearhut/storefront-api/cart"
	"github.com/hearhut/storefront-api/checkout"
	"github.com/hearhut/storefront-api/config"
	orderControllers "github.com/hearhut/storefront-api/controllers/order"
	"github.com/hearhut/storefront-api/orders"
	"github.com/hearhut/storefront-api/routes"
	"github.com/hearhut/storefront-api/store"
	"github.com/hearhut/storefront-api/wishlist"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("❌ Config load failed: %v", err)
	}

	// Init storage
	kv := initStore(cfg)

	// Components: initialized from persisted storage here, torn down only
	// by explicit sign-out.
	identity := auth.NewStore(kv)
	cartStore := cart.NewStore(kv, identity.Session)
	saved := wishlist.NewStore(kv)
	archive := orders.NewArchive(kv)

	gateway, err := checkout.NewHostedGateway(cfg.Gateway)
	if err != nil {
		log.Fatalf("❌ Payment gateway setup failed: %v", err)
	}
	notifier := checkout.NewEmailNotifier(cfg.Email)

	checkoutSvc := checkout.NewService(kv, cartStore, archive, gateway, notifier, identity.Session)
	checkoutSvc.OnOrderPlaced = orderControllers.BroadcastOrder

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, &routes.Deps{
		Identity:      identity,
		Cart:          cartStore,
		Wishlist:      saved,
		Archive:       archive,
		Checkout:      checkoutSvc,
		WebhookSecret: cfg.WebhookSecret,
		GatewayMode:   cfg.Gateway.Mode,
	})

	// Start store backup routine at 2 AM daily, keep 4 days of backups
	if cfg.BackupDir != "" && cfg.DatabaseURL == "" {
		go startDailyBackupAtFixedTime(cfg.StorePath, cfg.BackupDir, 4*24*time.Hour, 2, 0)
	}

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStore picks the KV backend: Postgres when DATABASE_URL is set, else
// the local sqlite store file.
func initStore(cfg *config.Config) store.KV {
	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		kv, err := store.NewGorm(db)
		if err != nil {
			log.Fatalf("❌ KV migration failed: %v", err)
		}
		return kv
	}

	kv, err := store.OpenSQLite(cfg.StorePath)
	if err != nil {
		log.Fatalf("❌ Failed to open store file: %v", err)
	}
	return kv
}

// startDailyBackupAtFixedTime copies the store file daily at a fixed hour
// and removes old backups
func startDailyBackupAtFixedTime(storePath, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		sleepDuration := next.Sub(now)
		log.Printf("⏳ Next store backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(sleepDuration)

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destPath := filepath.Join(backupDir, timestamp+"_"+filepath.Base(storePath))

		if err := copyFile(storePath, destPath); err != nil {
			log.Printf("❌ Failed to back up store: %v", err)
		} else {
			log.Printf("✅ Store backed up to %s", destPath)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// copyFile copies a single file
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backups older than retention duration
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		path := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				log.Printf("❌ Failed to remove old backup %s: %v", path, err)
			} else {
				log.Printf("🗑️ Removed old backup: %s", path)
			}
		}
	}
}
