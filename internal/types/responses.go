package types

// UserResponse is the public projection of an account. The password hash
// is never part of any response.
type UserResponse struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Frontend  bool   `json:"frontend"`
	Backend   bool   `json:"backend"`
}

// ProjectResponse is the public projection of a project lead, carrying the
// owner's identity alongside the project fields.
type ProjectResponse struct {
	ID          uint   `json:"id"`
	OwnerEmail  string `json:"owner_email"`
	FirstName   string `json:"fname"`
	LastName    string `json:"lname"`
	ProjectName string `json:"projectname"`
	Description string `json:"description"`
	Frontend    bool   `json:"frontend"`
	Backend     bool   `json:"backend"`
}

// MemberProjectResponse is the projection of a project as seen from the
// member's side of a request or membership. The owner's name travels under
// owner_fname/owner_lname and the member's message rides along.
type MemberProjectResponse struct {
	ProjectName    string `json:"projectname"`
	Description    string `json:"description"`
	OwnerEmail     string `json:"owner_email"`
	OwnerFirstName string `json:"owner_fname"`
	OwnerLastName  string `json:"owner_lname"`
	Frontend       bool   `json:"frontend"`
	Backend        bool   `json:"backend"`
	Message        string `json:"message"`
}

// RequestResponse is the projection of a join request or an accepted
// member, as shown to the project's lead.
type RequestResponse struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Message   string `json:"message"`
}
