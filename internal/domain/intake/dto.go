package intake

type RegisterUserInput struct {
	FullName string `json:"full_name" example:"Jane Doe"`
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"password123"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" example:"oldPass123"`
	NewPassword string `json:"new_password" example:"newPass123"`
}
