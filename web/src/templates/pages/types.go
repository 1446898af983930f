package pages

import (
	"github.com/bitlance/web/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LoginData is the state of the login form.
type LoginData struct {
	Email string
	Error string
}

// DashboardData is everything the dashboard renders for one role.
type DashboardData struct {
	User       domain.User
	Role       domain.Role
	Freelancer *domain.FreelancerProfile
	Client     *domain.ClientProfile
	Jobs       []domain.Job
	Error      string
}

// HomeData drives the landing page.
type HomeData struct {
	SignedIn bool
}

// JobsData is the open job list.
type JobsData struct {
	Jobs  []domain.Job
	Error string
}

// RoleLabel renders a role for display, e.g. "Freelancer".
func RoleLabel(r domain.Role) string {
	return cases.Title(language.English).String(string(r))
}

// CategoryLabel renders WEB_DEVELOPMENT as "Web Development".
func CategoryLabel(c domain.Category) string {
	words := []rune(string(c))
	for i, r := range words {
		if r == '_' {
			words[i] = ' '
		}
	}
	return cases.Title(language.English).String(string(words))
}
