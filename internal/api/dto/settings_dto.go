package dto

// UpdateProfileRequest payload for profile changes. Name may be cleared by
// sending an empty string; email and username are ignored when empty.
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Email    string  `json:"email"`
	Username string  `json:"username"`
}

// ChangePasswordRequest payload for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
