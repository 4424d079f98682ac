package services

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/saent-x/tors-x.dev/pkg/models"
)

const postContentFile = "index.md"

// ListPosts scans the immediate subdirectories of root, one post per
// directory, and returns them sorted by date descending. A directory whose
// content file cannot be read is logged and skipped; only a failure to
// enumerate root itself is an error. Every call rereads the filesystem.
func ListPosts(root string) ([]models.Post, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read content root %s: %w", root, err)
	}

	var posts []models.Post
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		content, err := os.ReadFile(filepath.Join(root, entry.Name(), postContentFile))
		if err != nil {
			zap.L().Warn("skipping post", zap.String("slug", entry.Name()), zap.Error(err))
			continue
		}
		fields, _ := ExtractFrontMatter(content)
		posts = append(posts, buildPost(entry.Name(), fields))
	}

	// Stable: posts sharing a date keep their scan order.
	sort.SliceStable(posts, func(i, j int) bool {
		return postDate(posts[i]).After(postDate(posts[j]))
	})
	return posts, nil
}

// GetPost reads a single post by slug, including its raw body and rendered
// HTML. A missing or malformed slug reports fs.ErrNotExist through the chain.
func GetPost(root, slug string) (*models.PostDetail, error) {
	if !validSlug(slug) {
		return nil, fmt.Errorf("invalid slug %q: %w", slug, os.ErrNotExist)
	}

	content, err := os.ReadFile(filepath.Join(root, slug, postContentFile))
	if err != nil {
		return nil, fmt.Errorf("read post %s: %w", slug, err)
	}

	fields, body := ExtractFrontMatter(content)
	html, err := RenderMarkdown(body)
	if err != nil {
		return nil, fmt.Errorf("render post %s: %w", slug, err)
	}

	return &models.PostDetail{
		Post: buildPost(slug, fields),
		Body: body,
		HTML: html,
	}, nil
}

// buildPost applies the defaulting policy field by field. A frontmatter value
// is used only when it carries the expected type; anything else falls back to
// the default.
func buildPost(slug string, fields map[string]any) models.Post {
	post := models.Post{
		Slug:        slug,
		Title:       "Untitled",
		Date:        time.Now().Format("2006-01-02"),
		ReadingTime: 5,
		Category:    "General",
	}

	if v, ok := fields["title"].(string); ok {
		post.Title = v
	}
	if v, ok := fields["description"].(string); ok {
		post.Description = v
	}
	if v, ok := fields["date"].(string); ok {
		post.Date = v
	}
	if v, ok := fields["readingTime"].(float64); ok {
		post.ReadingTime = int(v)
	}
	if v, ok := fields["category"].(string); ok {
		post.Category = v
	}
	if v, ok := fields["featured"].(bool); ok {
		post.Featured = v
	}
	return post
}

// postDate parses the record date for ordering. Unparseable dates sort last.
func postDate(p models.Post) time.Time {
	t, err := time.Parse("2006-01-02", p.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

func validSlug(slug string) bool {
	if slug == "" || strings.Contains(slug, "..") {
		return false
	}
	return !strings.ContainsAny(slug, `/\`)
}
