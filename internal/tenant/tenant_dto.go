package tenant

import "time"

type CreateTenantRequest struct {
	Code     string         `json:"code" binding:"required"`
	Name     string         `json:"name" binding:"required,max=150"`
	Features []string       `json:"features"`
	Settings map[string]any `json:"settings"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateSettingsRequest struct {
	Features []string       `json:"features"`
	Settings map[string]any `json:"settings"`
}

type TenantResponse struct {
	ID        string         `json:"id"`
	Code      string         `json:"code"`
	Name      string         `json:"name"`
	Status    string         `json:"status"`
	Database  string         `json:"database"`
	Features  []string       `json:"features"`
	Settings  map[string]any `json:"settings"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
