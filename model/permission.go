package model

// Permission strings granted to user groups by the backend.
const (
	PermissionAlunos           = "ALUNOS"
	PermissionDocumentos       = "DOCUMENTOS"
	PermissionTipoDocumento    = "TIPO_DOCUMENTO"
	PermissionGerenciarUsuario = "GERENCIAR_USUARIO"
	PermissionGruposPermissoes = "GRUPOS_PERMISSOES"
)

// AllPermissions lists every module permission, in menu order.
var AllPermissions = []string{
	PermissionAlunos,
	PermissionDocumentos,
	PermissionTipoDocumento,
	PermissionGruposPermissoes,
	PermissionGerenciarUsuario,
}
