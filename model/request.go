// file: model/request.go

package model

// LoginRequest defines the payload for operator authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest carries the change-password form. Only SenhaAtual and
// NovaSenha are sent to the backend; the confirmation is checked locally.
type ChangePasswordRequest struct {
	SenhaAtual        string `json:"senhaAtual" validate:"required"`
	NovaSenha         string `json:"novaSenha" validate:"required,min=6"`
	ConfirmaNovaSenha string `json:"-" validate:"eqfield=NovaSenha"`
}

// TipoDocumentoRequest creates or updates a document type.
// Validade uses the YYYY-MM-DD layout.
type TipoDocumentoRequest struct {
	Nome     string `json:"nome" validate:"required,max=255"`
	Validade string `json:"validade" validate:"omitempty,datetime=2006-01-02"`
}

// UsuarioPayload registers or updates an operator account.
// Password may be nil on update to keep the current one.
type UsuarioPayload struct {
	Nome     string  `json:"nome" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
	GroupID  string  `json:"groupId" validate:"required,numeric"`
}

// PermissionRef references a permission by id inside a group payload.
type PermissionRef struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

// GroupFormData creates or updates a user group.
type GroupFormData struct {
	Nome        string          `json:"nome" validate:"required"`
	Permissions []PermissionRef `json:"permissions" validate:"dive"`
}
