package handlers

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saent-x/tors-x.dev/pkg/config"
	"github.com/saent-x/tors-x.dev/pkg/services"
)

func ListPosts(c *gin.Context) {
	posts, err := services.ListPosts(config.ContentPath)
	if err != nil {
		zap.L().Error("list posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Listing unavailable"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func GetPost(c *gin.Context) {
	post, err := services.GetPost(config.ContentPath, c.Param("slug"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		zap.L().Error("get post", zap.String("slug", c.Param("slug")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load post"})
		return
	}
	c.JSON(http.StatusOK, post)
}

func SubmitContact(c *gin.Context) {
	var msg services.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact message"})
		return
	}

	if err := services.SendContactMessage(msg); err != nil {
		zap.L().Error("contact delivery failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to deliver message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}
