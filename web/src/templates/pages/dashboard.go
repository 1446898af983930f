package pages

import (
	"github.com/bitlance/web/internal/domain"
	"github.com/bitlance/web/web/src/templates/partials"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// RolePanelID is the element swapped by the role toggle.
const RolePanelID = "role-panel"

// Dashboard renders the signed-in user's dashboard.
func Dashboard(data DashboardData) g.Node {
	return h.Main(
		h.Class("dashboard"),
		h.Header(
			h.Class("dashboard-header"),
			h.H1(g.Text("Welcome: "+data.User.Email)),
			h.Form(
				h.Method("post"),
				h.Action("/logout"),
				h.Button(h.Type("submit"), h.Class("btn btn-secondary"), g.Text("Sign Out")),
			),
		),
		userInfo(data.User),
		RolePanel(data),
	)
}

func userInfo(u domain.User) g.Node {
	return h.Section(
		h.Class("user-info"),
		h.H2(g.Text("User Information")),
		h.Dl(
			detail("Username", u.Username),
			detail("Email", u.Email),
			detail("Name", u.Name),
			detail("Role", u.Role),
		),
	)
}

// RolePanel is the role-dependent part of the dashboard: the toggle, the
// profile details, the user's jobs and the role's action. It is rendered on
// its own for htmx swaps.
func RolePanel(data DashboardData) g.Node {
	next := data.Role.Toggle()
	return h.Section(
		h.ID(RolePanelID),
		h.Class("role-panel"),
		h.Div(
			h.Class("role-toggle"),
			h.Span(g.Text(RoleLabel(data.Role))),
			h.A(
				h.Href("/dashboard?role="+string(next)),
				hx.Get("/dashboard/panel?role="+string(next)),
				hx.Target("#"+RolePanelID),
				hx.Swap("outerHTML"),
				hx.Indicator("#role-loading"),
				hx.PushURL("/dashboard?role="+string(next)),
				h.Class("switch"),
				g.Text("Switch to "+RoleLabel(next)),
			),
			h.Span(
				h.ID("role-loading"),
				h.Class("htmx-indicator"),
				g.Text("Loading "+string(next)+" data..."),
			),
		),
		details(data),
		userJobs(data),
		action(data.Role),
	)
}

func details(data DashboardData) g.Node {
	heading := h.H2(g.Text(RoleLabel(data.Role) + " Details"))
	if data.Error != "" {
		return h.Div(h.Class("role-details"), heading, partials.Notification(data.Error))
	}
	if data.Role.IsFreelancer() {
		p := data.Freelancer
		if p == nil {
			p = &domain.FreelancerProfile{}
		}
		return h.Div(
			h.Class("role-details"),
			heading,
			h.Dl(
				detail("Bio", p.Bio),
				detail("Skills", p.Skills.String()),
				detail("Portfolio Link", p.PortfolioLink),
				detail("Social Link", p.SocialLink),
			),
		)
	}
	p := data.Client
	if p == nil {
		p = &domain.ClientProfile{}
	}
	return h.Div(
		h.Class("role-details"),
		heading,
		h.Dl(
			detail("Company Name", p.CompanyName),
			detail("Company Description", p.CompanyDescription),
			detail("Website Link", p.WebsiteLink),
		),
	)
}

func userJobs(data DashboardData) g.Node {
	return h.Div(
		h.Class("user-jobs"),
		h.H2(g.Text("My Jobs")),
		g.If(len(data.Jobs) == 0, h.P(g.Text("No jobs found."))),
		h.Div(h.Class("job-list"), g.Map(data.Jobs, JobLink)),
	)
}

func action(role domain.Role) g.Node {
	if role.IsFreelancer() {
		return h.A(h.Href("/job"), h.Class("btn btn-primary"), g.Text("Browse Jobs"))
	}
	return g.Group{
		h.Button(
			h.Type("button"),
			h.Class("btn btn-primary"),
			g.Attr("onclick", "document.getElementById('create-job-dialog').showModal()"),
			g.Text("Create Job"),
		),
		CreateJobDialog(),
	}
}

// CreateJobDialog is the client's job creation form.
func CreateJobDialog() g.Node {
	return h.Dialog(
		h.ID("create-job-dialog"),
		h.Form(
			h.Method("post"),
			h.Action("/dashboard/jobs"),
			h.H2(g.Text("Create Job")),
			h.Label(h.For("job-title"), g.Text("Title")),
			h.Input(h.ID("job-title"), h.Type("text"), h.Name("title"), h.Required(), h.MaxLength("120")),
			h.Label(h.For("job-description"), g.Text("Description")),
			h.Textarea(h.ID("job-description"), h.Name("description"), h.Required()),
			h.Label(h.For("job-category"), g.Text("Category")),
			h.Select(
				h.ID("job-category"),
				h.Name("category"),
				g.Map(domain.Categories, func(c domain.Category) g.Node {
					return h.Option(h.Value(string(c)), g.Text(CategoryLabel(c)))
				}),
			),
			h.Label(h.For("job-price"), g.Text("Price")),
			h.Input(h.ID("job-price"), h.Type("number"), h.Name("price"), h.Min("0"), h.Step("any")),
			h.Div(
				h.Class("dialog-actions"),
				h.Button(
					h.Type("button"),
					g.Attr("onclick", "this.closest('dialog').close()"),
					g.Text("Cancel"),
				),
				h.Button(h.Type("submit"), h.Class("btn btn-primary"), g.Text("Create")),
			),
		),
	)
}
