package user

// Contact is the subset of a user needed to address a notification.
type Contact struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

func (u User) Contact() Contact {
	return Contact{ID: u.ID, Username: u.Username, FullName: u.FullName, Email: u.Email}
}
