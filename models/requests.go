package models

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateTaskRequest is the body of POST /api/tasks. Absent optional fields
// fall back to their defaults (priority medium, category General).
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	DueDate     string `json:"due_date"`
}

// UpdateTaskRequest is the full-replacement body of PUT /api/tasks/:id.
// Completed arrives as a JSON boolean and is stored as 0/1.
type UpdateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	DueDate     string `json:"due_date"`
	Completed   bool   `json:"completed"`
}

// CreateSubtaskRequest is the body of POST /api/tasks/:taskId/subtasks.
type CreateSubtaskRequest struct {
	Title string `json:"title"`
}

// UpdateSubtaskRequest is the body of PUT /api/subtasks/:id.
type UpdateSubtaskRequest struct {
	Completed bool `json:"completed"`
}
