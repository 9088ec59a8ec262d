package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"filmio-backend/internal/db"
	"filmio-backend/internal/handlers"
	"filmio-backend/internal/repositories/photos"
	"filmio-backend/internal/repositories/posts"
	"filmio-backend/internal/repositories/users"
	"filmio-backend/internal/services"
	"filmio-backend/internal/storage"
	"filmio-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Services bundles the constructed services the HTTP layer needs.
type Services struct {
	Users  *services.UserService
	Photos *services.PhotoService
	Posts  *services.PostService
	Tokens *services.TokenService
}

// New builds the Fiber app with every route wired to the given services.
func New(svc Services) *fiber.App {
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// Public Routes
	app.Post("/token", handlers.TokenHandler(svc.Users, svc.Tokens))
	app.Post("/users", handlers.RegisterHandler(svc.Users))
	app.Get("/users/:username", handlers.GetUserHandler(svc.Users))
	app.Get("/users/:username/posts", handlers.ListUserPostsHandler(svc.Posts))
	app.Get("/users/:username/posts/count", handlers.CountUserPostsHandler(svc.Posts))
	app.Get("/photos/:hash/content", handlers.PhotoContentHandler(svc.Photos))
	app.Get("/photos/:hash/info", handlers.PhotoInfoHandler(svc.Photos))
	app.Get("/posts/random", handlers.RandomPostHandler(svc.Posts))
	app.Get("/posts/location/:place", handlers.PostsByLocationHandler(svc.Posts))
	app.Get("/posts/:id", handlers.GetPostHandler(svc.Posts))

	// Protected Routes
	auth := handlers.AuthRequired(svc.Tokens, svc.Users)
	app.Get("/me", auth, handlers.MeHandler())
	app.Post("/photos/", auth, handlers.UploadPhotoHandler(svc.Photos))
	app.Post("/posts", auth, handlers.CreatePostHandler(svc.Posts))
	app.Put("/posts/:id", auth, handlers.UpdatePostHandler(svc.Posts))
	app.Delete("/posts/:id", auth, handlers.DeletePostHandler(svc.Posts))

	// Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return app
}

func Run() {
	// Load Env
	if err := utils.LoadEnv(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// The signing secret has no fallback on purpose: a default secret makes
	// every issued token forgeable.
	secret := utils.GetEnv("JWT_SECRET", "")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	tokenTTL := utils.GetEnvDuration("TOKEN_TTL", services.DefaultTokenTTL)

	// Init DB
	connString := utils.GetEnv("DATABASE_URL", "")
	if connString == "" {
		// Fallback to individual vars
		connString = "postgres://" + utils.GetEnv("POSTGRES_USER", "postgres") + ":" +
			utils.GetEnv("POSTGRES_PASSWORD", "postgres") + "@" +
			utils.GetEnv("POSTGRES_HOST", "localhost") + ":" +
			utils.GetEnv("POSTGRES_PORT", "5432") + "/" +
			utils.GetEnv("POSTGRES_DB", "filmio") + "?sslmode=disable"
	}

	ctx := context.Background()
	if err := db.Migrate(ctx, connString); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	pool, err := db.Connect(ctx, connString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Photo file storage
	blobs, err := newBlobStore(ctx)
	if err != nil {
		log.Fatalf("Failed to init photo storage: %v", err)
	}

	// Repositories and services
	userRepo := users.NewPostgresRepository(pool)
	photoRepo := photos.NewPostgresRepository(pool)
	postRepo := posts.NewPostgresRepository(pool)

	app := New(Services{
		Users:  services.NewUserService(userRepo),
		Photos: services.NewPhotoService(photoRepo, blobs),
		Posts:  services.NewPostService(postRepo, photoRepo),
		Tokens: services.NewTokenService([]byte(secret), tokenTTL),
	})

	// Start Server
	port := utils.GetEnv("PORT", "8000")
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Block until signal
	log.Println("Gracefully shutting down...")
	_ = app.Shutdown()
	log.Println("Server shutdown complete")
}

// newBlobStore selects the photo file backend. The default keeps files on
// the local filesystem; STORAGE_BACKEND=s3 switches to an S3-compatible
// object store.
func newBlobStore(ctx context.Context) (storage.BlobStore, error) {
	if utils.GetEnv("STORAGE_BACKEND", "fs") == "s3" {
		return storage.NewS3Store(ctx, storage.S3Config{
			Region:    utils.GetEnv("S3_REGION", "us-east-1"),
			Endpoint:  utils.GetEnv("S3_ENDPOINT", ""),
			AccessKey: utils.GetEnv("S3_ACCESS_KEY", ""),
			SecretKey: utils.GetEnv("S3_SECRET_KEY", ""),
			Bucket:    utils.GetEnv("S3_BUCKET", "photos"),
		})
	}

	dir := utils.GetEnv("PHOTOS_DIR", "photos")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return storage.NewFSStore(dir), nil
}
