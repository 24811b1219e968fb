package models

// User is the session identity snapshot. It never carries the credential;
// passwords live only inside the auth registry.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	JoinDate  string `json:"joinDate"`
	Avatar    string `json:"avatar,omitempty"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
