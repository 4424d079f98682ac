package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saent-x/tors-x.dev/pkg/config"
	"github.com/saent-x/tors-x.dev/pkg/handlers"
	"github.com/saent-x/tors-x.dev/pkg/services"
)

func main() {
	// Initialize config
	config.Init()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	site, err := services.LoadSiteConfig(config.SiteConfigPath)
	if err != nil {
		logger.Fatal("load site config", zap.Error(err))
	}
	handlers.Site = site

	r := gin.Default()

	// Static Files & Templates
	r.LoadHTMLGlob("templates/*")
	r.Static("/static", config.StaticPath)

	// --- Pages ---
	r.GET("/", handlers.Index)
	r.GET("/blog", handlers.BlogIndex)
	r.GET("/blog/:slug", handlers.BlogPost)

	// --- JSON API ---
	api := r.Group("/api")
	{
		api.GET("/posts", handlers.ListPosts)
		api.GET("/posts/:slug", handlers.GetPost)
		api.POST("/contact", handlers.SubmitContact)
	}

	r.Run(config.Addr)
}
