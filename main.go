package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gin-bookreview/constants"
	"gin-bookreview/controllers"
	"gin-bookreview/infra"
	"gin-bookreview/middlewares"
	"gin-bookreview/models"
	"gin-bookreview/repositories"
	"gin-bookreview/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, tokenDB *gorm.DB) *gin.Engine {

	userRepository := repositories.NewUserRepository(db)
	tokenRepository := repositories.NewTokenRepository(tokenDB)
	authService := services.NewAuthService(userRepository, tokenRepository)
	authController := controllers.NewAuthController(authService)

	bookRepository := repositories.NewBookRepository(db)
	bookService := services.NewBookService(bookRepository)
	bookController := controllers.NewBookController(bookService)

	reviewRepository := repositories.NewReviewRepository(db)
	reviewService := services.NewReviewService(reviewRepository, bookRepository)
	reviewController := controllers.NewReviewController(reviewService)

	r := gin.Default()
	r.Use(cors.Default())

	bookRouter := r.Group("/api/books")
	bookAdminRouter := r.Group("/api/books",
		middlewares.AuthMiddleware(authService),
		middlewares.RequireGroup(constants.GroupBookAdmin))
	reviewRouter := r.Group("/api/reviews")
	reviewAuthRouter := r.Group("/api/reviews",
		middlewares.AuthMiddleware(authService))
	reviewAdminRouter := r.Group("/api/reviews",
		middlewares.AuthMiddleware(authService),
		middlewares.RequireGroup(constants.GroupBookAdmin))
	userRouter := r.Group("/api/users")

	bookRouter.GET("/", bookController.FindAll)
	bookRouter.GET("/:id/", bookController.FindById)
	bookAdminRouter.POST("/", bookController.Create)
	bookAdminRouter.PUT("/:id/", bookController.Update)
	bookAdminRouter.DELETE("/:id/", bookController.Delete)

	reviewRouter.GET("/", reviewController.FindAll)
	reviewRouter.GET("/:id/", reviewController.FindById)
	reviewAuthRouter.POST("/", reviewController.Create)
	reviewAdminRouter.PUT("/:id/", reviewController.Update)
	reviewAdminRouter.DELETE("/:id/", reviewController.Delete)

	userRouter.POST("/register/", authController.Register)
	userRouter.POST("/login/", authController.Login)
	userRouter.POST("/refresh/", authController.Refresh)
	userRouter.POST("/logout/", authController.Logout)

	return r
}

func initDB() (*gorm.DB, *gorm.DB) {
	infra.Initialize()

	db := infra.SetupDB()
	tokenDB := infra.SetupTokenDB()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(&models.User{}, &models.Group{}, &models.Book{}, &models.Review{}); err != nil {
			panic("Failed to migrate database")
		}
		if err := db.FirstOrCreate(&models.Group{}, models.Group{Name: constants.GroupBookAdmin}).Error; err != nil {
			panic("Failed to seed groups")
		}
		if err := tokenDB.AutoMigrate(&models.BlacklistedToken{}); err != nil {
			log.Printf("Failed to migrate token blacklist database: %v", err)
		}
	}

	return db, tokenDB
}

func main() {
	db, tokenDB := initDB()
	r := setupRouter(db, tokenDB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
