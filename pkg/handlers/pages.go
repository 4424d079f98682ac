package handlers

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saent-x/tors-x.dev/pkg/config"
	"github.com/saent-x/tors-x.dev/pkg/models"
	"github.com/saent-x/tors-x.dev/pkg/services"
)

// Site holds the profile shared by all page templates, loaded once at startup.
var Site *models.SiteConfig

// Index renders the landing page: about, services and work sections from the
// site profile plus the featured posts. A broken blog listing should not take
// the landing page down, so listing errors only drop that section.
func Index(c *gin.Context) {
	var featured []models.Post
	posts, err := services.ListPosts(config.ContentPath)
	if err != nil {
		zap.L().Warn("index without posts", zap.Error(err))
	}
	for _, p := range posts {
		if p.Featured {
			featured = append(featured, p)
		}
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Site":     Site,
		"Featured": featured,
	})
}

func BlogIndex(c *gin.Context) {
	posts, err := services.ListPosts(config.ContentPath)
	if err != nil {
		zap.L().Error("blog listing", zap.Error(err))
		c.String(http.StatusInternalServerError, "Blog listing unavailable")
		return
	}

	c.HTML(http.StatusOK, "blog.html", gin.H{
		"Site":  Site,
		"Posts": posts,
	})
}

func BlogPost(c *gin.Context) {
	post, err := services.GetPost(config.ContentPath, c.Param("slug"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.String(http.StatusNotFound, "Post not found")
			return
		}
		zap.L().Error("blog post", zap.String("slug", c.Param("slug")), zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to load post")
		return
	}

	c.HTML(http.StatusOK, "post.html", gin.H{
		"Site": Site,
		"Post": post,
	})
}
