package model

// TipoDocumento is a configured document type.
type TipoDocumento struct {
	ID               int64   `json:"id"`
	Nome             string  `json:"nome"`
	UsuarioRegistro  *string `json:"usuarioRegistro"`
	UsuarioAlteracao *string `json:"usuarioAlteracao"`
	DataAlteracao    *string `json:"dataAlteracao"`
	DataRegistro     *string `json:"dataRegistro"`
	Validade         *string `json:"validade"`
	Ativo            *bool   `json:"ativo,omitempty"`
}

// EstaAtivo reports the active flag, treating a missing flag as active.
func (t TipoDocumento) EstaAtivo() bool {
	return t.Ativo == nil || *t.Ativo
}
