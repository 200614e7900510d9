// file: router/router.go

package router

import (
	_ "ged-apae-console/docs"
	"ged-apae-console/handler"
	"ged-apae-console/model"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Console       *handler.Console
	Auth          *handler.AuthHandler
	Home          *handler.HomeHandler
	Aluno         *handler.AlunoHandler
	Documento     *handler.DocumentoHandler
	TipoDocumento *handler.TipoDocumentoHandler
	Usuario       *handler.UsuarioHandler
	Grupo         *handler.GrupoHandler
}

// NewRouter mounts the console. Every module subtree sits behind
// AuthMiddleware and a single-permission RequirePermission guard, and every
// state-changing request must come from the console's own origin.
func NewRouter(h Handlers) http.Handler {
	mux := http.NewServeMux()
	c := h.Console
	wrap := c.ErrorHandlingMiddleware

	authenticated := handler.AuthMiddleware(c.Sessions, c.LoginRoute)
	denied := http.HandlerFunc(c.Denied)
	guarded := func(permission string) func(http.Handler) http.Handler {
		guard := handler.RequirePermission(c.Sessions, permission, denied)
		return func(next http.Handler) http.Handler {
			return authenticated(guard(next))
		}
	}

	// Public
	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	mux.Handle("GET "+c.LoginRoute, wrap(h.Auth.LoginPage))
	mux.Handle("POST "+c.LoginRoute, wrap(h.Auth.Login))

	// Session
	mux.Handle("GET /{$}", authenticated(wrap(h.Home.Home)))
	mux.Handle("GET /api/session", authenticated(wrap(h.Home.Session)))
	mux.Handle("POST /sair", authenticated(wrap(h.Auth.Logout)))
	mux.Handle("GET /senha", authenticated(wrap(h.Auth.ChangePasswordPage)))
	mux.Handle("POST /senha", authenticated(wrap(h.Auth.ChangePassword)))

	// Alunos
	alunos := guarded(model.PermissionAlunos)
	mux.Handle("GET /alunos", alunos(wrap(h.Aluno.List)))
	mux.Handle("GET /alunos/novo", alunos(wrap(h.Aluno.New)))
	mux.Handle("GET /alunos/buscar", alunos(wrap(h.Aluno.Search)))
	mux.Handle("POST /alunos", alunos(wrap(h.Aluno.Create)))
	mux.Handle("POST /alunos/importar", alunos(wrap(h.Aluno.Import)))
	mux.Handle("GET /alunos/{id}", alunos(wrap(h.Aluno.Edit)))
	mux.Handle("POST /alunos/{id}", alunos(wrap(h.Aluno.Update)))
	mux.Handle("POST /alunos/{id}/excluir", alunos(wrap(h.Aluno.Delete)))
	mux.Handle("/alunos/", alunos(wrap(c.NotFound)))

	// Documentos
	documentos := guarded(model.PermissionDocumentos)
	mux.Handle("GET /documentos", documentos(wrap(h.Documento.List)))
	mux.Handle("GET /documentos/novo", documentos(wrap(h.Documento.New)))
	mux.Handle("POST /documentos", documentos(wrap(h.Documento.Create)))
	mux.Handle("GET /documentos/{id}", documentos(wrap(h.Documento.Edit)))
	mux.Handle("POST /documentos/{id}", documentos(wrap(h.Documento.Update)))
	mux.Handle("POST /documentos/{id}/status", documentos(wrap(h.Documento.ToggleStatus)))
	mux.Handle("GET /documentos/{id}/arquivo", documentos(wrap(h.Documento.Download)))
	mux.Handle("/documentos/", documentos(wrap(c.NotFound)))

	// Tipos de documento
	tipos := guarded(model.PermissionTipoDocumento)
	mux.Handle("GET /tipo-documento", tipos(wrap(h.TipoDocumento.List)))
	mux.Handle("POST /tipo-documento", tipos(wrap(h.TipoDocumento.Create)))
	mux.Handle("POST /tipo-documento/{id}", tipos(wrap(h.TipoDocumento.Update)))
	mux.Handle("POST /tipo-documento/{id}/status", tipos(wrap(h.TipoDocumento.ToggleStatus)))
	mux.Handle("POST /tipo-documento/{id}/excluir", tipos(wrap(h.TipoDocumento.Delete)))
	mux.Handle("/tipo-documento/", tipos(wrap(c.NotFound)))

	// Usuários
	usuarios := guarded(model.PermissionGerenciarUsuario)
	mux.Handle("GET /usuario", usuarios(wrap(h.Usuario.List)))
	mux.Handle("GET /cadastro", usuarios(wrap(h.Usuario.New)))
	mux.Handle("POST /cadastro", usuarios(wrap(h.Usuario.Register)))
	mux.Handle("GET /usuario/{id}", usuarios(wrap(h.Usuario.Edit)))
	mux.Handle("POST /usuario/{id}", usuarios(wrap(h.Usuario.Update)))
	mux.Handle("POST /usuario/{id}/excluir", usuarios(wrap(h.Usuario.Delete)))
	mux.Handle("/usuario/", usuarios(wrap(c.NotFound)))

	// Grupos
	grupos := guarded(model.PermissionGruposPermissoes)
	mux.Handle("GET /admin/grupos", grupos(wrap(h.Grupo.List)))
	mux.Handle("GET /admin/grupos/novo", grupos(wrap(h.Grupo.New)))
	mux.Handle("POST /admin/grupos", grupos(wrap(h.Grupo.Create)))
	mux.Handle("GET /admin/grupos/{id}", grupos(wrap(h.Grupo.Edit)))
	mux.Handle("POST /admin/grupos/{id}", grupos(wrap(h.Grupo.Update)))
	mux.Handle("POST /admin/grupos/{id}/excluir", grupos(wrap(h.Grupo.Delete)))
	mux.Handle("/admin/grupos/", grupos(wrap(c.NotFound)))

	mux.Handle("/", authenticated(wrap(c.NotFound)))

	return c.SameOriginMiddleware(mux)
}
