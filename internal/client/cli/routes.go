package cli

import (
	"github.com/carbontrail/carbontrail/internal/client/guard"
	"github.com/carbontrail/carbontrail/internal/client/session"
)

// routes is the application's navigation surface: every view, with the
// roles allowed to enter it. An empty role set admits any authenticated
// user; the guard enforces the rest.
var routes = []guard.Route{
	{Name: "login", Title: "Sign in", Public: true},
	{Name: "dashboard", Title: "Dashboard"},
	{Name: "projects", Title: "Projects"},
	{Name: "species", Title: "Tree species"},
	{Name: "farms", Title: "Farms", Roles: []session.Role{session.RoleAdmin, session.RoleFarmer}},
	{Name: "contracts", Title: "Contracts", Roles: []session.Role{session.RoleAdmin, session.RoleUser}},
	{Name: "credits", Title: "Carbon credits"},
	{Name: "payments", Title: "Payments", Roles: []session.Role{session.RoleAdmin}},
	{Name: "partners", Title: "Partners", Roles: []session.Role{session.RoleAdmin, session.RoleUser}},
	{Name: "chat", Title: "Assistant"},
}

func findRoute(name string) (guard.Route, bool) {
	for _, r := range routes {
		if r.Name == name {
			return r, true
		}
	}
	return guard.Route{}, false
}
