package main

import (
	"net/http"
	"os"

	"quibble/internal/db"
	"quibble/internal/middleware"
	"quibble/internal/router"
	"quibble/internal/services"
	"quibble/internal/store"
	"quibble/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const threadCacheSize = 500

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, reading config from environment")
	}

	gdb, err := db.Connect(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	st := store.New(gdb)

	cache, err := utils.NewCache(threadCacheSize)
	if err != nil {
		log.Fatalf("failed to create cache: %v", err)
	}

	threadSvc := services.NewThreadService(st, cache)
	commentSvc := services.NewCommentService(st, threadSvc,
		services.ParseDeletePolicy(os.Getenv("COMMENT_DELETE_POLICY")))
	likeSvc := services.NewLikeService(st, threadSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// Sessions: signed cookie carrying the user id
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
		log.Warn("SESSION_SECRET not set, using insecure default")
	}
	sessionStore := cookie.NewStore([]byte(secret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   86400 * 30,
	})
	r.Use(sessions.Sessions("quibble_session", sessionStore))
	r.Use(middleware.LoadViewer(st))

	router.RegisterRoutes(r, st, threadSvc, commentSvc, likeSvc)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infof("quibble server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
