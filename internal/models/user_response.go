package models

type UserResponse struct {
	ID           uint    `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	ProfilePhoto *string `json:"profile_photo,omitempty"`
}

type GetUsersResponse struct {
	Users []*UserResponse `json:"users"`
	Page  int             `json:"page"`
	Size  int             `json:"size"`
	Total int64           `json:"total"`
}

type LoginResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}
