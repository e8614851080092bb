package jobposting

import "time"

// Job is one posted opening.
type Job struct {
	ID              string    `json:"_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements"`
	Salary          int64     `json:"salary"`
	ExperienceLevel int       `json:"experienceLevel"`
	Location        string    `json:"location"`
	JobType         string    `json:"jobType"`
	Positions       int       `json:"position"`
	Company         string    `json:"company,omitempty"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"createdAt"`
}
