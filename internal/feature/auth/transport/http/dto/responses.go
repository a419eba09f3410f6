package dto

// StatusRes is the uniform {success, message} envelope every operation
// returns on failure. Message is a localized, display-ready string.
type StatusRes struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// AuthRes is returned on successful authentication.
type AuthRes struct {
	Success   bool   `json:"success"`
	SubjectID string `json:"subject_id"`
	Name      string `json:"name"`
	Token     string `json:"token"`
}
