package dto

// CreateProjectRequest carries the client-settable fields for a new project.
// Owner, status and timestamps are assigned server-side.
type CreateProjectRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	ApplicationName string `json:"application_name"`
	Version         string `json:"version"`
	Color           string `json:"color"`
}

// UpdateProjectRequest carries a partial update: nil fields are left
// untouched, so "absent" and "explicitly empty" stay distinguishable.
type UpdateProjectRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	ApplicationName *string `json:"application_name"`
	Version         *string `json:"version"`
	Color           *string `json:"color"`
}
