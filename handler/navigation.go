// file: handler/navigation.go

package handler

import (
	"context"
	"ged-apae-console/model"
	"ged-apae-console/web"
)

type navItem struct {
	link        web.NavLink
	permissions []string
}

// navItems is the console menu. A link is shown when the operator holds any
// of its permissions.
var navItems = []navItem{
	{web.NavLink{Path: "/", Text: "Início"}, model.AllPermissions},
	{web.NavLink{Path: "/alunos", Text: "Alunos"}, []string{model.PermissionAlunos}},
	{web.NavLink{Path: "/documentos", Text: "Documentos"}, []string{model.PermissionDocumentos}},
	{web.NavLink{Path: "/tipo-documento", Text: "Tipos de Documento"}, []string{model.PermissionTipoDocumento}},
	{web.NavLink{Path: "/admin/grupos", Text: "Grupos de Usuários"}, []string{model.PermissionGruposPermissoes}},
	{web.NavLink{Path: "/cadastro", Text: "Cadastrar Usuário"}, []string{model.PermissionGerenciarUsuario}},
}

// VisibleNav filters the menu down to what the operator may open.
func (c *Console) VisibleNav(ctx context.Context) []web.NavLink {
	links := make([]web.NavLink, 0, len(navItems))
	for _, item := range navItems {
		if c.Sessions.HasAnyPermission(ctx, item.permissions...) {
			links = append(links, item.link)
		}
	}
	return links
}
