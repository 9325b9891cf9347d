package alerts

// registerRequest mirrors the registration form.
type registerRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

type registerResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// loginRequest carries a single identifier field named "phone" for
// frontend compatibility; it accepts a phone number or an email address.
type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginResponse struct {
	Status string `json:"status"`
	User   string `json:"user"`
	Role   string `json:"role"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type triggerResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
