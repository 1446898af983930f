package domain

import (
	"encoding/json"
	"strings"
)

// FreelancerProfile holds the freelancer-specific details of a user.
type FreelancerProfile struct {
	ID            string    `json:"f_id,omitempty"`
	UserID        string    `json:"u_id,omitempty"`
	Bio           string    `json:"bio"`
	Skills        SkillList `json:"skills"`
	PortfolioLink string    `json:"portfolio_link"`
	SocialLink    string    `json:"social_link"`
}

// ClientProfile holds the client-specific (company) details of a user.
type ClientProfile struct {
	ID                 string `json:"c_id,omitempty"`
	UserID             string `json:"u_id,omitempty"`
	CompanyName        string `json:"company_name"`
	CompanyDescription string `json:"company_description"`
	WebsiteLink        string `json:"websiteLink"`
}

// SkillList accepts either a JSON array of strings or a single
// comma-separated string.
type SkillList []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *SkillList) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*s = list
		return nil
	}

	var raw *string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		*s = nil
		return nil
	}

	var out SkillList
	for _, part := range strings.Split(*raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	*s = out
	return nil
}

// String renders the list the way the dashboard displays it.
func (s SkillList) String() string {
	return strings.Join(s, ", ")
}
