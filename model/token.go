// file: model/token.go

package model

// LoginResponse is what POST /user/login returns on success.
type LoginResponse struct {
	Token       string   `json:"token"`
	Permissions []string `json:"permissions"`
}
