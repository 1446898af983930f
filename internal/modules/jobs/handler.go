package jobs

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/bitlance/web/internal/domain"
	"github.com/bitlance/web/internal/middleware"
	"github.com/bitlance/web/internal/view"
	"github.com/bitlance/web/web/src/templates/layouts"
	"github.com/bitlance/web/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// MsgListError replaces the job list when it cannot be loaded.
const MsgListError = "Failed to fetch jobs. Please try again."

// Handler serves the job browsing pages.
type Handler struct {
	marketplace domain.Marketplace
}

// NewHandler creates a new jobs handler.
func NewHandler(marketplace domain.Marketplace) *Handler {
	return &Handler{marketplace: marketplace}
}

// Browse lists open jobs (GET /job).
func (h *Handler) Browse(c echo.Context) error {
	ctx := c.Request().Context()

	var data pages.JobsData
	jobs, err := h.marketplace.ListJobs(ctx)
	if err != nil {
		middleware.FromContext(ctx).Error("Failed to list jobs", "error", err)
		data.Error = MsgListError
	} else {
		data.Jobs = jobs
	}

	page := view.AdaptGomponentToTempl(pages.Jobs(data))
	return c.Render(http.StatusOK, "", layouts.Base("Jobs", view.GetFlashData(c), page))
}

// Requests shows a single job and its requests (GET /requests/:job_id).
func (h *Handler) Requests(c echo.Context) error {
	ctx := c.Request().Context()
	jobID := c.Param("job_id")
	if unescaped, err := url.PathUnescape(jobID); err == nil {
		jobID = unescaped
	}

	job, err := h.marketplace.GetJob(ctx, jobID)
	if errors.Is(err, domain.ErrNotFound) {
		page := view.AdaptGomponentToTempl(pages.JobNotFound())
		return c.Render(http.StatusNotFound, "", layouts.Base("Job not found", view.FlashData{}, page))
	}
	if err != nil {
		middleware.FromContext(ctx).Error("Failed to fetch job", "job_id", jobID, "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "Failed to load job.").SetInternal(err)
	}

	page := view.AdaptGomponentToTempl(pages.JobDetail(*job))
	return c.Render(http.StatusOK, "", layouts.Base(job.Title, view.GetFlashData(c), page))
}
