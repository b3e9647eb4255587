package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aula-dev/aula/internal/log"
)

// Role is the role derived for the current session. It is never persisted;
// resolution is performed on demand.
type Role int

const (
	RoleUnknown Role = iota
	RoleStudent
	RoleTeacher
	RoleSuperuser
)

func (r Role) String() string {
	switch r {
	case RoleStudent:
		return "student"
	case RoleTeacher:
		return "teacher"
	case RoleSuperuser:
		return "superuser"
	default:
		return "unknown"
	}
}

// Route identifies the view a resolved role lands on.
type Route string

const (
	RouteLogin   Route = "login"
	RouteStudent Route = "student"
	RouteTeacher Route = "teacher"
	RouteAdmin   Route = "admin"
)

// Resolution is the outcome of a role resolution.
type Resolution struct {
	Role  Role
	Route Route
}

// Probe endpoints. The backend has no single identity endpoint, so the
// client infers role from which protected resource accepts the current
// credential.
const (
	studentProbePath = "/usuario/alumno"
	teacherProbePath = "/usuario/docente"
)

// ResolveRole infers the session's role by probing role-scoped endpoints in
// a fixed order, short-circuiting on the first success:
//
//  1. The student probe. Status exactly 200 means student; the teacher
//     probe is not issued.
//  2. The teacher probe. On success the payload's super-user indicator
//     decides between superuser and plain teacher.
//  3. Neither succeeded: unknown, routed to login.
//
// Transport failures on a probe are swallowed and treated the same as a
// non-success status. That conflates "not this role" with "the network
// failed"; it matches the backend's existing contract and is preserved
// deliberately.
func (s *Session) ResolveRole(ctx context.Context) Resolution {
	status, err := s.api.GetStatus(ctx, studentProbePath, nil)
	if err != nil {
		s.log(log.LogEvent{Event: log.EventProbeError, Probe: studentProbePath, Error: err.Error()})
	} else if status == http.StatusOK {
		res := Resolution{Role: RoleStudent, Route: RouteStudent}
		s.log(log.LogEvent{Event: log.EventRoleResolved, Role: res.Role.String()})
		return res
	}

	var payload json.RawMessage
	status, err = s.api.GetStatus(ctx, teacherProbePath, &payload)
	if err != nil {
		s.log(log.LogEvent{Event: log.EventProbeError, Probe: teacherProbePath, Error: err.Error()})
	} else if status >= 200 && status <= 299 {
		res := Resolution{Role: RoleTeacher, Route: RouteTeacher}
		if super, _ := SuperFromPayload(payload); super {
			res = Resolution{Role: RoleSuperuser, Route: RouteAdmin}
		}
		s.log(log.LogEvent{Event: log.EventRoleResolved, Role: res.Role.String()})
		return res
	}

	s.log(log.LogEvent{Event: log.EventRoleResolved, Role: RoleUnknown.String()})
	return Resolution{Role: RoleUnknown, Route: RouteLogin}
}

// VerifyStudent re-validates that the current credential belongs to a
// student, with error-on-failure semantics. The student view gate calls
// this on every entry, independent of the synchronous session guard: one
// extra round trip buys protection against a stale locally-cached
// authenticated flag.
func (s *Session) VerifyStudent(ctx context.Context) error {
	return s.api.Get(ctx, studentProbePath, nil)
}
