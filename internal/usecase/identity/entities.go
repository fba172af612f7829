package identity

type CredentialsInput struct {
	Username string
	Password string
}

type UserDTO struct {
	Username string `json:"username"`
}

type AdminDTO struct {
	Username string `json:"username"`
}
