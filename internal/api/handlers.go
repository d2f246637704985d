package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/priyanshu/opportunity-board/internal/alert"
	"github.com/priyanshu/opportunity-board/internal/auth"
	"github.com/priyanshu/opportunity-board/internal/catalog"
	"github.com/priyanshu/opportunity-board/internal/intake"
	"github.com/priyanshu/opportunity-board/internal/models"
)

// ListResponse distinguishes "no matches" (loading=false, empty items) from
// "not loaded yet" (loading=true).
type ListResponse struct {
	Items         []models.Opportunity `json:"items"`
	Total         int                  `json:"total"`
	Loading       bool                 `json:"loading"`
	Kind          models.Kind          `json:"kind"`
	LastRefreshed *time.Time           `json:"last_refreshed,omitempty"`
}

func (s *Server) handleListOpportunities(c echo.Context) error {
	kind := models.ParseKind(c.QueryParam("kind"))
	search := c.QueryParam("q")

	snap := s.Catalog.Snapshot()
	items := catalog.Query(snap.Records, kind, search)
	if items == nil {
		items = []models.Opportunity{}
	}

	resp := ListResponse{
		Items:   items,
		Total:   len(items),
		Loading: !s.Catalog.Loaded(),
		Kind:    kind,
	}
	if !snap.RefreshedAt.IsZero() {
		t := snap.RefreshedAt
		resp.LastRefreshed = &t
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleGetOpportunity(c echo.Context) error {
	opp, ok := s.Catalog.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}
	return c.JSON(http.StatusOK, opp)
}

func (s *Server) handleGetAlert(c echo.Context) error {
	opp, ok := s.Catalog.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"mailto": alert.ComposeMailto(opp)})
}

func (s *Server) handleGetStats(c echo.Context) error {
	snap := s.Catalog.Snapshot()
	counts := map[models.Kind]int{}
	for _, rec := range snap.Records {
		counts[rec.Kind]++
	}
	return c.JSON(http.StatusOK, map[string]any{
		"total":         len(snap.Records),
		"jobs":          counts[models.KindJob],
		"internships":   counts[models.KindInternship],
		"events":        counts[models.KindEvent],
		"from_fallback": snap.FromFallback,
	})
}

func (s *Server) handleSubmitOpportunity(c echo.Context) error {
	var form intake.Form
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	result := intake.Validate(form)
	if !result.Accepted {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"errors": result.FieldErrors})
	}

	opp := intake.BuildOpportunity(form)
	s.Catalog.Prepend(opp)

	// Write-back keeps the submission alive across refreshes; failure is a
	// diagnostic, the local record stays visible until then regardless. The
	// refresh must not start before the append lands, or its fetch rebuilds
	// the snapshot from a table that does not contain the new row yet.
	row := intake.SourceRow(form, time.Now())
	go func() {
		if s.appender != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := s.appender.Append(ctx, row); err != nil {
				log.Printf("submission write-back failed: %v", err)
			}
			cancel()
		}
		// Re-run the full refresh the way the page does after a post.
		s.Catalog.Refresh(context.Background())
	}()

	return c.JSON(http.StatusCreated, opp)
}

func (s *Server) handleLogin(c echo.Context) error {
	var req struct {
		Secret string `json:"secret"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	token, err := s.AuthService.Login(req.Secret)
	if err != nil {
		if err == auth.ErrInvalidCreds || err == auth.ErrNotConfigured {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"token": token})
}

func (s *Server) handleRefresh(c echo.Context) error {
	snap := s.Catalog.Refresh(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]any{
		"total":          len(snap.Records),
		"from_fallback":  snap.FromFallback,
		"last_refreshed": snap.RefreshedAt,
	})
}
