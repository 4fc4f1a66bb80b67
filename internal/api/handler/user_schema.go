package handler

// --- Request / Response types ---

// createUserRequest is bound from the JSON body on POST /user; the path
// variant fills it from path parameters.
type createUserRequest struct {
	Username string `json:"username" validate:"required,max=80"`
	Email    string `json:"email"    validate:"required,max=80"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// usernameResponse is the body of a successful create and one element of the
// list response.
type usernameResponse struct {
	Username string `json:"username"`
}

type userResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	IsActive  bool   `json:"is_active"`
}

type noteResponse struct {
	Note string `json:"note"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Legacy not-found envelopes: {"name": null} for a single user and
// {"users": null} for an empty listing.

type userNotFoundResponse struct {
	Name *string `json:"name"`
}

type noUsersResponse struct {
	Users []usernameResponse `json:"users"`
}
