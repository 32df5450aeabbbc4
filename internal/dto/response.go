package dto

// Response wraps every single-item response.
type Response struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Links are absolute URLs to neighbouring pages of a collection.
// Previous and Next are nil at the edges.
type Links struct {
	Self     string  `json:"self"`
	First    string  `json:"first"`
	Last     string  `json:"last"`
	Previous *string `json:"previous"`
	Next     *string `json:"next"`
}

// PagedResponse wraps every collection response.
type PagedResponse struct {
	Data            interface{} `json:"data"`
	Page            int         `json:"page"`
	PageSize        int         `json:"pageSize"`
	TotalCount      int64       `json:"totalCount"`
	TotalPages      int         `json:"totalPages"`
	HasPreviousPage bool        `json:"hasPreviousPage"`
	HasNextPage     bool        `json:"hasNextPage"`
	Links           Links       `json:"links"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Storage   string `json:"storage"`
}
