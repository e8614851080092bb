package jobposting

// PostJobRequest carries the fields required to publish an opening.
// Requirements arrive comma-separated, like profile skills.
type PostJobRequest struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description" validate:"required"`
	Requirements    string `json:"requirements" validate:"required"`
	Salary          int64  `json:"salary" validate:"required,gt=0"`
	ExperienceLevel int    `json:"experienceLevel" validate:"gte=0"`
	Location        string `json:"location" validate:"required"`
	JobType         string `json:"jobType" validate:"required"`
	Positions       int    `json:"position" validate:"required,gt=0"`
	Company         string `json:"company"`
}
