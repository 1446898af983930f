package domain

import (
	"encoding/json"
	"time"
)

// Category is the marketplace category of a job.
type Category string

const (
	CategoryWebDevelopment    Category = "WEB_DEVELOPMENT"
	CategoryMobileDevelopment Category = "MOBILE_DEVELOPMENT"
	CategoryDesign            Category = "DESIGN"
	CategoryWriting           Category = "WRITING"
	CategoryMarketing         Category = "MARKETING"
	CategoryBlockchain        Category = "BLOCKCHAIN"
	CategoryData              Category = "DATA"
	CategoryOther             Category = "OTHER"
)

// Categories lists the categories offered by the create-job form, in display order.
var Categories = []Category{
	CategoryWebDevelopment,
	CategoryMobileDevelopment,
	CategoryDesign,
	CategoryWriting,
	CategoryMarketing,
	CategoryBlockchain,
	CategoryData,
	CategoryOther,
}

// Status is the lifecycle state of a job. The backend owns transitions.
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// Job is a work request created by a client.
type Job struct {
	ID               string     `json:"job_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Category         Category   `json:"category"`
	Status           Status     `json:"status"`
	ClientID         string     `json:"client_id"`
	FreelancerID     *string    `json:"freelancer_id"`
	ClientAddress    string     `json:"client_address,omitempty"`
	UserID           string     `json:"u_id,omitempty"`
	Price            *float64   `json:"price"`
	FreelancerRating *float64   `json:"f_rating"`
	ClientRating     *float64   `json:"c_rating"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
}

// JobAssignment links a freelancer to a job. The freelancer side of the
// job list endpoint returns these instead of bare jobs.
type JobAssignment struct {
	ID                string `json:"id"`
	JobID             string `json:"job_id"`
	ClientID          string `json:"client_id"`
	FreelancerID      string `json:"freelancer_id"`
	FreelancerAddress string `json:"freelancer_address"`
	Job               *Job   `json:"job"`
}

// JobListing decodes one element of a job list, which may be either a flat
// Job or a JobAssignment wrapping one.
type JobListing struct {
	Job
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *JobListing) UnmarshalJSON(b []byte) error {
	var a JobAssignment
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if a.Job != nil {
		l.Job = *a.Job
		if l.Job.ID == "" {
			l.Job.ID = a.JobID
		}
		return nil
	}
	return json.Unmarshal(b, &l.Job)
}

// NewJob is the payload for creating a job.
type NewJob struct {
	Title       string   `json:"title" form:"title" validate:"required,min=1,max=120"`
	Description string   `json:"description" form:"description" validate:"required"`
	Category    Category `json:"category" form:"category" validate:"required,oneof=WEB_DEVELOPMENT MOBILE_DEVELOPMENT DESIGN WRITING MARKETING BLOCKCHAIN DATA OTHER"`
	Price       *float64 `json:"price,omitempty" form:"price" validate:"omitempty,gte=0"`
	ClientID    string   `json:"client_id" form:"-"`
	UserID      string   `json:"u_id" form:"-"`
}
