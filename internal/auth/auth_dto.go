package auth

import "github.com/BMarcano/dispatcher/internal/domain"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
	WorkerID string `json:"worker_id" binding:"omitempty,uuid"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type WorkerSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	DailyRate string `json:"daily_rate"`
}

type UserResponse struct {
	ID       string         `json:"id"`
	Email    string         `json:"email"`
	Role     string         `json:"role"`
	WorkerID *string        `json:"worker_id,omitempty"`
	HomePath string         `json:"home_path"`
	Worker   *WorkerSummary `json:"worker,omitempty"`
}

type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"`
}

func mapToUserResponse(u domain.UserProfile) UserResponse {
	res := UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Role:     string(u.Role),
		WorkerID: u.WorkerID,
		HomePath: u.Role.HomePath(),
	}
	if u.Worker != nil {
		res.Worker = &WorkerSummary{
			ID:        u.Worker.ID,
			Name:      u.Worker.Name,
			Email:     u.Worker.Email,
			DailyRate: u.Worker.DailyRate.StringFixed(2),
		}
	}
	return res
}
