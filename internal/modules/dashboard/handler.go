package dashboard

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/bitlance/web/internal/domain"
	"github.com/bitlance/web/internal/events"
	"github.com/bitlance/web/internal/handlers"
	"github.com/bitlance/web/internal/middleware"
	"github.com/bitlance/web/internal/rendering"
	"github.com/bitlance/web/internal/view"
	"github.com/bitlance/web/web/src/templates/layouts"
	"github.com/bitlance/web/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// Messages for the create-job flow.
const (
	MsgJobCreated     = "Job created."
	MsgInvalidJob     = "Please check the job details and try again."
	MsgCreateJobError = "Failed to create job. Please try again."
)

// Handler serves the dashboard pages.
type Handler struct {
	marketplace domain.Marketplace
	emitter     *events.Emitter
	renderer    rendering.Renderer
}

// NewHandler creates a new dashboard handler.
func NewHandler(marketplace domain.Marketplace, emitter *events.Emitter, renderer rendering.Renderer) *Handler {
	return &Handler{
		marketplace: marketplace,
		emitter:     emitter,
		renderer:    renderer,
	}
}

// Get renders the full dashboard (GET /dashboard?role=).
func (h *Handler) Get(c echo.Context) error {
	user := middleware.CurrentUser(c)
	role := domain.ParseRole(c.QueryParam("role"))
	ctx := c.Request().Context()

	data, err := Resolve(ctx, h.marketplace, *user, role)
	if err != nil {
		return middleware.ExpireSession(c)
	}
	h.emitter.Emit(ctx, events.TopicDashboardViewed, events.Event{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      string(role),
		RequestID: middleware.RequestID(c),
	})

	page := view.AdaptGomponentToTempl(pages.Dashboard(data))
	return c.Render(http.StatusOK, "", layouts.Base("Dashboard", view.GetFlashData(c), page))
}

// Panel renders only the role panel, for the htmx role toggle
// (GET /dashboard/panel?role=).
func (h *Handler) Panel(c echo.Context) error {
	user := middleware.CurrentUser(c)
	role := domain.ParseRole(c.QueryParam("role"))
	ctx := c.Request().Context()

	data, err := Resolve(ctx, h.marketplace, *user, role)
	if err != nil {
		return middleware.ExpireSession(c)
	}
	body, err := h.renderer.RenderComponent(ctx, pages.RolePanel(data))
	if err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, body)
}

// createJobForm is the raw create-job submission. Price stays a string so
// an empty field means "no price" rather than zero.
type createJobForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Category    string `form:"category"`
	Price       string `form:"price"`
}

func (f createJobForm) toNewJob() (domain.NewJob, error) {
	job := domain.NewJob{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Category:    domain.Category(f.Category),
	}
	if p := strings.TrimSpace(f.Price); p != "" {
		price, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return job, err
		}
		job.Price = &price
	}
	return job, nil
}

// CreateJob handles the create-job dialog (POST /dashboard/jobs).
func (h *Handler) CreateJob(c echo.Context) error {
	const back = "/dashboard?role=client"
	user := middleware.CurrentUser(c)
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var form createJobForm
	if err := c.Bind(&form); err != nil {
		logger.Debug("Failed to bind create-job form", "error", err)
	}
	job, err := form.toNewJob()
	if err == nil {
		err = c.Validate(&job)
	}
	if err != nil {
		logger.Info("Invalid create-job form", "fields", handlers.FieldErrors(err), "error", err)
		view.SetFlashError(c, MsgInvalidJob)
		return c.Redirect(http.StatusSeeOther, back)
	}

	client, err := h.marketplace.ClientDetails(ctx, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return middleware.ExpireSession(c)
		case errors.Is(err, domain.ErrNoProfile):
			view.SetFlashError(c, MsgNoClientProfile)
		default:
			logger.Error("Failed to fetch client profile", "user_id", user.ID, "error", err)
			view.SetFlashError(c, MsgCreateJobError)
		}
		return c.Redirect(http.StatusSeeOther, back)
	}
	job.ClientID = client.ID
	job.UserID = user.ID

	created, err := h.marketplace.CreateJob(ctx, job)
	if errors.Is(err, domain.ErrUnauthorized) {
		return middleware.ExpireSession(c)
	}
	if err != nil {
		logger.Error("Failed to create job", "user_id", user.ID, "error", err)
		view.SetFlashError(c, MsgCreateJobError)
		return c.Redirect(http.StatusSeeOther, back)
	}

	h.emitter.Emit(ctx, events.TopicJobCreated, events.Event{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      string(domain.RoleClient),
		JobID:     created.ID,
		RequestID: middleware.RequestID(c),
	})
	view.SetFlashSuccess(c, MsgJobCreated)
	return c.Redirect(http.StatusSeeOther, back)
}
