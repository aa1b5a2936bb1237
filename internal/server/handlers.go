package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quizd/quizd/internal/cache"
	"github.com/quizd/quizd/internal/resolver"
)

// SearchRequest is the inbound resolution request. Type must be one of the
// seven known question categories; the resolver itself never sees an
// unvalidated shape.
type SearchRequest struct {
	Title   string `json:"title" form:"title" binding:"required"`
	Type    string `json:"type" form:"type" binding:"required,oneof=single multiple judgement completion line fill reader"`
	Options string `json:"options" form:"options"`
}

// ErrorResponse is the response body for management-route errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleSearchPost handles POST /search requests.
func (s *Server) handleSearchPost(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resolver.Result{
			Status: resolver.StatusFailure,
			Answer: "",
			Msg:    "请求错误",
		})
		return
	}
	s.search(c, req)
}

// handleSearchGet handles GET /search requests.
func (s *Server) handleSearchGet(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, resolver.Result{
			Status: resolver.StatusFailure,
			Answer: "",
			Msg:    "请求错误",
		})
		return
	}
	s.search(c, req)
}

func (s *Server) search(c *gin.Context, req SearchRequest) {
	result := s.resolver.Resolve(c.Request.Context(), resolver.Question{
		Title:   req.Title,
		Type:    req.Type,
		Options: req.Options,
	})

	c.JSON(http.StatusOK, result)
}

// handleRoot handles GET / requests, as a liveness probe for quiz clients.
func (s *Server) handleRoot(c *gin.Context) {
	c.String(http.StatusOK, "服务已启动")
}

// HealthResponse is the response body for /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
}

// handleHealth handles GET /health requests.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Provider: s.dispatcher.ActiveName(),
	})
}

// CachePageResponse is one page of cache entries plus the total count.
type CachePageResponse struct {
	Total   int64         `json:"total"`
	Entries []cache.Entry `json:"entries"`
}

// handleCacheList handles GET /cache requests with offset/limit paging.
func (s *Server) handleCacheList(c *gin.Context) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid offset"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		return
	}

	entries, total, err := s.store.List(offset, limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("Cache list failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "cache list failed"})
		return
	}

	c.JSON(http.StatusOK, CachePageResponse{Total: total, Entries: entries})
}

// handleCacheSearch handles GET /cache/search?q= substring lookups.
func (s *Server) handleCacheSearch(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "q is required"})
		return
	}

	entries, err := s.store.Search(q)
	if err != nil {
		s.logger.Error().Err(err).Msg("Cache search failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "cache search failed"})
		return
	}

	c.JSON(http.StatusOK, CachePageResponse{Total: int64(len(entries)), Entries: entries})
}

// handleCacheDelete handles DELETE /cache/:id requests.
func (s *Server) handleCacheDelete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
		return
	}

	if err := s.store.Delete(id); err != nil {
		s.logger.Error().Err(err).Int64("id", id).Msg("Cache delete failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "cache delete failed"})
		return
	}

	c.Status(http.StatusNoContent)
}

// handleCacheClear handles DELETE /cache requests. Irreversible.
func (s *Server) handleCacheClear(c *gin.Context) {
	if err := s.store.Clear(); err != nil {
		s.logger.Error().Err(err).Msg("Cache clear failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "cache clear failed"})
		return
	}

	c.Status(http.StatusNoContent)
}

// handleStats handles GET /stats requests.
func (s *Server) handleStats(c *gin.Context) {
	stats, err := s.store.Stats()
	if err != nil {
		s.logger.Error().Err(err).Msg("Cache stats failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "cache stats failed"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
