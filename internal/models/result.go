package models

type AnalyzeResponse struct {
	ID        string `json:"id"`
	State     string `json:"state"`
	Feedback  string `json:"feedback"`
	Truncated bool   `json:"truncated"`
}

type ErrorResponse struct {
	ID    string `json:"id,omitempty"`
	State string `json:"state"`
	Error string `json:"error"`
	Code  string `json:"code"`
}
