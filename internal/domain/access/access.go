// Package access deriva los permisos del operador a partir de su rol.
//
// Conviven dos mecanismos independientes:
//   - la tabla estática rol → Permissions (HasPermission), y
//   - la jerarquía de roles [USER, STAFF, MANAGER, ADMIN] (CanAccess).
//
// No se unifican: Disagreements informa dónde la tabla no respeta la jerarquía.
package access

import "github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"

// Permission nombre de un permiso, tal como lo consulta la UI.
type Permission string

const (
	CanCreate         Permission = "canCreate"
	CanRead           Permission = "canRead"
	CanUpdate         Permission = "canUpdate"
	CanDelete         Permission = "canDelete"
	CanManageUsers    Permission = "canManageUsers"
	CanViewReports    Permission = "canViewReports"
	CanManageSettings Permission = "canManageSettings"
)

// AllPermissions en orden estable (útil para listados y verificaciones).
var AllPermissions = []Permission{
	CanCreate, CanRead, CanUpdate, CanDelete, CanManageUsers, CanViewReports, CanManageSettings,
}

// Permissions conjunto de permisos de un rol.
type Permissions struct {
	CanCreate         bool `json:"canCreate"`
	CanRead           bool `json:"canRead"`
	CanUpdate         bool `json:"canUpdate"`
	CanDelete         bool `json:"canDelete"`
	CanManageUsers    bool `json:"canManageUsers"`
	CanViewReports    bool `json:"canViewReports"`
	CanManageSettings bool `json:"canManageSettings"`
}

// Has consulta un permiso por nombre. Nombres desconocidos devuelven false.
func (p Permissions) Has(perm Permission) bool {
	switch perm {
	case CanCreate:
		return p.CanCreate
	case CanRead:
		return p.CanRead
	case CanUpdate:
		return p.CanUpdate
	case CanDelete:
		return p.CanDelete
	case CanManageUsers:
		return p.CanManageUsers
	case CanViewReports:
		return p.CanViewReports
	case CanManageSettings:
		return p.CanManageSettings
	}
	return false
}

// table configuración estática; no se calcula a partir de la jerarquía.
var table = map[entity.Role]Permissions{
	entity.RoleAdmin: {
		CanCreate: true, CanRead: true, CanUpdate: true, CanDelete: true,
		CanManageUsers: true, CanViewReports: true, CanManageSettings: true,
	},
	entity.RoleManager: {
		CanCreate: true, CanRead: true, CanUpdate: true, CanDelete: true,
		CanViewReports: true,
	},
	entity.RoleStaff: {
		CanCreate: true, CanRead: true, CanUpdate: true,
	},
	entity.RoleUser: {
		CanRead: true,
	},
}

// hierarchy de menor a mayor rango.
var hierarchy = []entity.Role{entity.RoleUser, entity.RoleStaff, entity.RoleManager, entity.RoleAdmin}

// Rank posición del rol en la jerarquía; -1 si el rol no existe.
func Rank(r entity.Role) int {
	for i, h := range hierarchy {
		if h == r {
			return i
		}
	}
	return -1
}

// PermissionsFor busca el rol en la tabla; roles desconocidos reciben los permisos de USER.
func PermissionsFor(r entity.Role) Permissions {
	if p, ok := table[r]; ok {
		return p
	}
	return table[entity.RoleUser]
}

// Checker responde preguntas de acceso para el usuario actual.
type Checker struct {
	role entity.Role
}

// For construye el checker del usuario; nil o sin rol equivale a USER.
func For(u *entity.User) Checker {
	role := entity.RoleUser
	if u != nil {
		if r := entity.NormalizeRole(string(u.Role)); r != "" {
			role = r
		}
	}
	return Checker{role: role}
}

// Role rol efectivo del usuario.
func (c Checker) Role() entity.Role { return c.role }

// Permissions permisos del rol según la tabla estática.
func (c Checker) Permissions() Permissions { return PermissionsFor(c.role) }

// HasPermission consulta la tabla estática.
func (c Checker) HasPermission(p Permission) bool { return c.Permissions().Has(p) }

// CanAccess compara rangos en la jerarquía: true si el rango actual es >= al requerido.
// Un rol requerido desconocido nunca se concede.
func (c Checker) CanAccess(required entity.Role) bool {
	need := Rank(entity.NormalizeRole(string(required)))
	if need < 0 {
		return false
	}
	return Rank(c.role) >= need
}

// Disagreement permiso que un rol inferior tiene y uno superior no.
type Disagreement struct {
	Permission Permission  `json:"permission"`
	Lower      entity.Role `json:"lower"`
	Higher     entity.Role `json:"higher"`
}

// Disagreements recorre la tabla y devuelve los pares que rompen la monotonía de la jerarquía.
func Disagreements() []Disagreement {
	var out []Disagreement
	for i, lower := range hierarchy {
		for _, higher := range hierarchy[i+1:] {
			for _, p := range AllPermissions {
				if PermissionsFor(lower).Has(p) && !PermissionsFor(higher).Has(p) {
					out = append(out, Disagreement{Permission: p, Lower: lower, Higher: higher})
				}
			}
		}
	}
	return out
}
