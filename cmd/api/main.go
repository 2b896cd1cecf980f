package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"filmoteka/internal/config"
	"filmoteka/internal/database"
	"filmoteka/internal/middleware"
	"filmoteka/internal/modules/catalog"
	"filmoteka/internal/modules/film"
	"filmoteka/internal/modules/user"
	"filmoteka/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	genreRepo := repository.NewGenreRepository(db)
	mpaRepo := repository.NewMpaRepository(db)
	filmRepo := repository.NewFilmRepository(db)
	userRepo := repository.NewUserRepository(db)

	catalogService := catalog.NewService(genreRepo, mpaRepo, filmRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	filmService := film.NewService(filmRepo, userRepo)
	filmHandler := film.NewHandler(filmService)

	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.CORS(), middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		catalogHandler.RegisterRoutes(v1)
		filmHandler.RegisterRoutes(v1)
		userHandler.RegisterRoutes(v1)
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
