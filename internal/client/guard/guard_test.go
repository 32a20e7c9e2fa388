package guard

import (
	"testing"

	"github.com/carbontrail/carbontrail/internal/client/session"
	"github.com/stretchr/testify/assert"
)

func authedAs(role session.Role) session.Session {
	return session.Session{
		Credential:  "tok",
		SubjectID:   "u-1",
		DisplayName: "Amina",
		Role:        role,
	}
}

func TestEvaluate_Ordering(t *testing.T) {
	gated := Route{Name: "payments", Roles: []session.Role{session.RoleAdmin}}
	anyAuth := Route{Name: "dashboard"}

	tests := []struct {
		name  string
		route Route
		snap  session.Session
		want  Verdict
	}{
		// Loading wins over everything, even a would-be denial.
		{"loading anonymous", gated, session.Session{Loading: true}, VerdictLoading},
		{"loading authenticated", gated, func() session.Session {
			s := authedAs(session.RoleUser)
			s.Loading = true
			return s
		}(), VerdictLoading},

		// Anonymous users are sent to login, never shown access-denied.
		{"anonymous gated", gated, session.Session{}, VerdictRedirectLogin},
		{"anonymous ungated", anyAuth, session.Session{}, VerdictRedirectLogin},

		// Authenticated but under-privileged: denied, not redirected.
		{"wrong role", gated, authedAs(session.RoleFarmer), VerdictDenied},
		{"right role", gated, authedAs(session.RoleAdmin), VerdictAllow},

		// Empty role set admits any authenticated role.
		{"any role suffices", anyAuth, authedAs(session.RoleFarmer), VerdictAllow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.route, tt.snap).Verdict)
		})
	}
}

func TestEvaluate_RedirectCapturesReturnTo(t *testing.T) {
	d := Evaluate(Route{Name: "contracts"}, session.Session{})
	assert.Equal(t, VerdictRedirectLogin, d.Verdict)
	assert.Equal(t, "contracts", d.ReturnTo)
}

func TestEvaluate_PublicRouteBypassesSession(t *testing.T) {
	d := Evaluate(Route{Name: "login", Public: true}, session.Session{Loading: true})
	assert.Equal(t, VerdictAllow, d.Verdict)
}
