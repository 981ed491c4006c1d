package gateway

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/infra/wire"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/usecase"
)

const (
	msgSaved    = "Framework saved successfully"
	msgNotFound = "Framework not found"
)

func (s *Server) handleSave(c *gin.Context) {
	var req wire.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.metrics.saved("invalid")
		c.JSON(status, saveFailure(err))
		return
	}

	f, err := s.save.Execute(c.Request.Context(), usecase.SaveRequest{
		Draft:    req.Draft.ToDraft(),
		Document: req.Document,
	})
	if err != nil {
		s.metrics.saved("error")
		s.log.Error("gateway.save_failed", "request_id", c.GetString(ctxRequestID), "err", err)
		c.JSON(http.StatusInternalServerError, saveFailure(err))
		return
	}

	s.metrics.saved("ok")
	s.log.Info("gateway.saved", "request_id", c.GetString(ctxRequestID), "framework_id", f.ID, "title", f.Title)
	c.JSON(http.StatusOK, wire.SaveResponse{
		Success:     boolPtr(true),
		FrameworkID: f.ID,
		Message:     msgSaved,
	})
}

func (s *Server) handleList(c *gin.Context) {
	refs, err := s.catalog.List(c.Request.Context())
	if err != nil {
		s.internalError(c, err)
		return
	}

	out := make([]wire.FrameworkRef, 0, len(refs))
	for _, r := range refs {
		out = append(out, wire.FromRef(r))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGet(c *gin.Context) {
	f, ok := s.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, wire.FromSaved(f))
}

func (s *Server) handleDocument(c *gin.Context) {
	f, ok := s.lookup(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+f.ID+`.md"`)
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(f.Document))
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": s.now().UTC(),
		"storage":   s.storage,
	})
}

func (s *Server) lookup(c *gin.Context) (domain.SavedFramework, bool) {
	f, err := s.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": msgNotFound})
			return domain.SavedFramework{}, false
		}
		s.internalError(c, err)
		return domain.SavedFramework{}, false
	}
	return f, true
}

func (s *Server) internalError(c *gin.Context, err error) {
	s.log.Error("gateway.request_failed", "request_id", c.GetString(ctxRequestID), "path", c.FullPath(), "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func saveFailure(err error) wire.SaveResponse {
	return wire.SaveResponse{Success: boolPtr(false), Error: err.Error()}
}

func boolPtr(b bool) *bool { return &b }
