package dto

// CreateTeamRequest payload for a new team.
type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateTeamRequest payload for team changes.
type UpdateTeamRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// AddMemberRequest payload naming the user to add.
type AddMemberRequest struct {
	UserIDToAdd string `json:"userIdToAdd"`
}
