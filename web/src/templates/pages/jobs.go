package pages

import (
	"net/url"
	"strconv"

	"github.com/bitlance/web/internal/domain"
	"github.com/bitlance/web/web/src/templates/partials"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// JobPath is the path of the requests page for a job.
func JobPath(jobID string) string {
	return "/requests/" + url.PathEscape(jobID)
}

// JobLink renders one job as a link to its requests page.
func JobLink(job domain.Job) g.Node {
	return h.A(
		h.Href(JobPath(job.ID)),
		h.Class("job-card"),
		h.H3(h.Class("job-title"), g.Text(job.Title)),
		h.P(h.Class("job-description"), g.Text(job.Description)),
	)
}

// Jobs lists open jobs for freelancers to browse.
func Jobs(data JobsData) g.Node {
	return h.Main(
		h.Class("container mx-auto p-8"),
		h.H1(g.Text("Browse Jobs")),
		partials.Notification(data.Error),
		g.If(data.Error == "" && len(data.Jobs) == 0, h.P(g.Text("No jobs found."))),
		h.Div(h.Class("job-list"), g.Map(data.Jobs, JobLink)),
		h.A(h.Href("/dashboard"), g.Text("Back to Dashboard")),
	)
}

// JobDetail shows a single job.
func JobDetail(job domain.Job) g.Node {
	return h.Main(
		h.Class("container mx-auto p-8"),
		h.H1(g.Text(job.Title)),
		h.P(g.Text(job.Description)),
		h.Dl(
			detail("Category", CategoryLabel(job.Category)),
			detail("Status", string(job.Status)),
			g.If(job.Price != nil, detail("Price", formatPrice(job.Price))),
		),
		h.A(h.Href("/dashboard"), g.Text("Back to Dashboard")),
	)
}

// JobNotFound is rendered with a 404 status.
func JobNotFound() g.Node {
	return h.Main(
		h.Class("container mx-auto p-8"),
		h.H1(g.Text("Job not found.")),
		h.A(h.Href("/job"), g.Text("Browse Jobs")),
	)
}

func detail(label, value string) g.Node {
	return g.Group{h.Dt(g.Text(label)), h.Dd(g.Text(value))}
}

func formatPrice(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
