package user

import (
	userapp "folios/internal/application/user"
)

type CreateUserRequest struct {
	FullName  string `json:"full_name"`
	LoginName string `json:"login_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	RoleID    *int64 `json:"role_id"`
	PlantID   *int64 `json:"plant_id"`
}

func (r CreateUserRequest) ToCommand() userapp.CreateUserCommand {
	return userapp.CreateUserCommand{
		FullName:  r.FullName,
		LoginName: r.LoginName,
		Email:     r.Email,
		Password:  r.Password,
		RoleID:    r.RoleID,
		PlantID:   r.PlantID,
	}
}

type UpdateUserRequest struct {
	FullName  *string `json:"full_name"`
	LoginName *string `json:"login_name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	RoleID    *int64  `json:"role_id"`
	PlantID   *int64  `json:"plant_id"`
}

func (r UpdateUserRequest) ToCommand() userapp.UpdateUserCommand {
	return userapp.UpdateUserCommand{
		FullName:  r.FullName,
		LoginName: r.LoginName,
		Email:     r.Email,
		Password:  r.Password,
		RoleID:    r.RoleID,
		PlantID:   r.PlantID,
	}
}

type LoginRequest struct {
	LoginName string `json:"login_name" binding:"required"`
	Password  string `json:"password" binding:"required"`
}
