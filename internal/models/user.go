package models

// User is the stored record for an account. The password hash never leaves
// the server; response views are built with PublicProfile and OwnProfile.
type User struct {
	Username     string `json:"username"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	ProfilePhoto string `json:"profile_photo"`
}

// PublicProfile is the user view returned to anyone.
type PublicProfile struct {
	Username     string `json:"username"`
	Name         string `json:"name,omitempty"`
	ProfilePhoto string `json:"profile_photo"`
}

// OwnProfile is the view returned to the account owner. It carries the email
// on top of the public fields.
type OwnProfile struct {
	PublicProfile
	Email string `json:"email"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{
		Username:     u.Username,
		Name:         u.Name,
		ProfilePhoto: u.ProfilePhoto,
	}
}

func (u *User) Own() OwnProfile {
	return OwnProfile{
		PublicProfile: u.Public(),
		Email:         u.Email,
	}
}

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	if r.Username == "" {
		return &ValidationError{Field: "username", Reason: "required"}
	}
	if len(r.Username) > 32 {
		return &ValidationError{Field: "username", Reason: "too long (max 32)"}
	}
	for _, c := range r.Username {
		if !isUsernameRune(c) {
			return &ValidationError{Field: "username", Reason: "only letters, digits, '.', '-' and '_' allowed"}
		}
	}
	if r.Email == "" {
		return &ValidationError{Field: "email", Reason: "required"}
	}
	if r.Password == "" {
		return &ValidationError{Field: "password", Reason: "required"}
	}
	return nil
}

func isUsernameRune(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '.' || c == '-' || c == '_':
		return true
	}
	return false
}
