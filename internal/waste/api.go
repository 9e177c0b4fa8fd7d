package waste

// ClassifyRequest is the body of POST /classify. Image is base64, optionally
// in data-URL form.
type ClassifyRequest struct {
	Image string `json:"image"`
}

// ClassifyResponse is the body of every /classify reply. Error is set on
// 4xx and 5xx replies.
type ClassifyResponse struct {
	Success        bool            `json:"success,omitempty"`
	Classification *Classification `json:"classification,omitempty"`
	Error          string          `json:"error,omitempty"`
}

type HealthResponse struct {
	Status           string   `json:"status"`
	ModelLoaded      bool     `json:"model_loaded"`
	AvailableClasses []string `json:"available_classes"`
}

type InfoResponse struct {
	ModelName   string   `json:"model_name"`
	Classes     []string `json:"classes"`
	InputShape  []int    `json:"input_shape"`
	Description string   `json:"description"`
}
