// Package server exposes a local review API over a processed video library:
// listing rendered clips with their metadata, triggering the pipeline for a
// folder, and streaming clip files to a browser player.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/clipsafari/viralcut/internal/pipeline"
	"github.com/clipsafari/viralcut/internal/types"
	"github.com/clipsafari/viralcut/internal/usecase"
)

type Server struct {
	root string
	log  zerolog.Logger

	// newConfig builds a pipeline config for a resolved input/output folder
	// pair; runPipeline executes it. Split out so tests can stub execution.
	newConfig   func(inputDir, outDir string) pipeline.Config
	runPipeline func(ctx context.Context, cfg pipeline.Config) error
}

func New(libraryRoot string, log zerolog.Logger, newConfig func(inputDir, outDir string) pipeline.Config) *Server {
	return &Server{
		root:        libraryRoot,
		log:         log.With().Str("component", "server").Logger(),
		newConfig:   newConfig,
		runPipeline: pipeline.Run,
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.GET("/videos", s.listVideos)
	api.POST("/process", s.processFolder)
	api.GET("/files/stat", s.statFile)

	r.GET("/videos/*filepath", s.streamVideo)
	return r
}

type videoEntry struct {
	Name     string               `json:"name"`
	Path     string               `json:"path"`
	Metadata *types.ClipCandidate `json:"metadata"`
}

// listVideos returns the video files in a library folder. Clip metadata is
// associated by position: the metadata file is an ordered array and the
// rendered clips are numbered in the same order.
func (s *Server) listVideos(c *gin.Context) {
	folder := c.Query("folder")
	if folder == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "folder parameter is required"})
		return
	}
	dir, err := s.resolve(folder)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "folder does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read folder"})
		return
	}

	var metadata []types.ClipCandidate
	if b, err := os.ReadFile(filepath.Join(dir, usecase.MetadataFileName)); err == nil {
		if err := json.Unmarshal(b, &metadata); err != nil {
			s.log.Warn().Str("folder", folder).Err(err).Msg("unreadable clip metadata")
		}
	}

	videos := make([]videoEntry, 0)
	for _, e := range entries {
		if e.IsDir() || !pipeline.IsVideoFile(e.Name()) {
			continue
		}
		v := videoEntry{
			Name: e.Name(),
			Path: "/videos/" + joinURL(folder, e.Name()),
		}
		if i := len(videos); i < len(metadata) {
			m := metadata[i]
			v.Metadata = &m
		}
		videos = append(videos, v)
	}
	c.JSON(http.StatusOK, videos)
}

type processRequest struct {
	InputFolder  string `json:"input_folder"`
	OutputFolder string `json:"output_folder"`
}

func (s *Server) processFolder(c *gin.Context) {
	var req processRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.InputFolder == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "input folder is required"})
		return
	}

	inputDir, err := s.resolve(req.InputFolder)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	outDir := ""
	if req.OutputFolder != "" {
		if outDir, err = s.resolve(req.OutputFolder); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	cfg := s.newConfig(inputDir, outDir)
	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.log.Info().Str("input", inputDir).Msg("processing requested")
	if err := s.runPipeline(c.Request.Context(), cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "processing completed", "input_folder": req.InputFolder})
}

func (s *Server) statFile(c *gin.Context) {
	rel := c.Query("path")
	if rel == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path parameter is required"})
		return
	}
	full, err := s.resolve(rel)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := os.Stat(full)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"exists": false, "path": rel})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"exists":  true,
		"is_file": !info.IsDir(),
		"size":    info.Size(),
		"path":    rel,
	})
}

// streamVideo serves a clip file; http.ServeFile underneath handles Range
// requests so players can seek.
func (s *Server) streamVideo(c *gin.Context) {
	rel := strings.TrimPrefix(c.Param("filepath"), "/")
	full, err := s.resolve(rel)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	info, err := os.Stat(full)
	if err != nil || info.IsDir() || !pipeline.IsVideoFile(full) {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	c.File(full)
}

var errOutsideLibrary = errors.New("path escapes the library root")

// resolve maps a client-supplied relative path under the library root and
// rejects traversal outside it.
func (s *Server) resolve(rel string) (string, error) {
	full := filepath.Join(s.root, filepath.FromSlash(rel))
	within, err := filepath.Rel(s.root, full)
	if err != nil {
		return "", errOutsideLibrary
	}
	if within == ".." || strings.HasPrefix(within, ".."+string(filepath.Separator)) {
		return "", errOutsideLibrary
	}
	return full, nil
}

func joinURL(parts ...string) string {
	return strings.Join(parts, "/")
}
