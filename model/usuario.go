package model

// Usuario is an operator account on the backend.
type Usuario struct {
	ID        int64  `json:"id"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	UserGroup Ref    `json:"userGroup"`
}
