// Package auth owns the client-side session: login, signup, logout, role
// resolution, and the normalization of backend user payloads. All other
// packages see one canonical Profile shape; the defensive lookups over the
// backend's inconsistent payloads live here and nowhere else.
package auth

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Profile is the canonical, normalized user record.
type Profile struct {
	Name    string
	Email   string
	Teacher *TeacherInfo // nil for students
}

// TeacherInfo is the teacher sub-record, present when the backend payload
// carries one at any of its recognized nesting depths.
type TeacherInfo struct {
	ID    int
	Super bool
}

// superKey is the backend's super-user flag field.
const superKey = "es_superusuario"

// NormalizeProfile maps any of the recognized backend user payload shapes
// into a canonical Profile. The backend emits the same logical record with
// fields at varying depths; normalization happens once, at this boundary.
func NormalizeProfile(raw []byte) (*Profile, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("auth: parsing profile payload: %w", err)
	}

	p := &Profile{
		Name:  firstString(m, "nombre", "name"),
		Email: firstString(m, "email"),
	}

	// Some payloads wrap the user under "usuario".
	if inner, ok := m["usuario"].(map[string]any); ok {
		if p.Name == "" {
			p.Name = firstString(inner, "nombre", "name")
		}
		if p.Email == "" {
			p.Email = firstString(inner, "email")
		}
	}

	if super, found := SuperFromPayload(raw); found || hasTeacherRecord(m) {
		p.Teacher = &TeacherInfo{
			ID:    teacherID(m),
			Super: super,
		}
	}

	return p, nil
}

// SuperFromPayload inspects a backend payload for the super-user indicator.
// The flag may appear at one of three nesting depths, checked in fixed
// order: top level, under "docente", under "usuario.docente". The first
// truthy candidate wins; a falsy flag at one depth does not mask a truthy
// one deeper. found reports whether any candidate existed.
func SuperFromPayload(raw []byte) (super, found bool) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return false, false
	}

	candidates := []any{
		m[superKey],
		lookup(m, "docente", superKey),
		lookup(m, "usuario", "docente", superKey),
	}
	for _, c := range candidates {
		if c == nil {
			continue
		}
		found = true
		if Truthy(c) {
			return true, true
		}
	}
	return false, found
}

// Truthy reports whether v is one of the backend's truthy encodings of the
// super-user flag: 1, "1", true, or "true" (case-insensitive). Everything
// else (0, "0", false, null, other strings) is falsy.
func Truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t == 1
	case int:
		return t == 1
	case string:
		return t == "1" || strings.EqualFold(t, "true")
	default:
		return false
	}
}

// teacherID extracts the teacher's numeric id, checking the recognized
// locations in fixed order: docente.id, usuario.docente.id, top-level id.
func teacherID(m map[string]any) int {
	candidates := []any{
		lookup(m, "docente", "id"),
		lookup(m, "usuario", "docente", "id"),
		m["id"],
	}
	for _, c := range candidates {
		if n, ok := asInt(c); ok {
			return n
		}
	}
	return 0
}

// hasTeacherRecord reports whether the payload embeds a teacher sub-record.
func hasTeacherRecord(m map[string]any) bool {
	if _, ok := m["docente"].(map[string]any); ok {
		return true
	}
	return lookup(m, "usuario", "docente") != nil
}

// lookup walks nested maps by key path, returning nil when any hop is
// missing or not an object.
func lookup(m map[string]any, path ...string) any {
	var cur any = m
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = obj[key]
	}
	return cur
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	case string:
		var n int
		if _, err := fmt.Sscanf(t, "%d", &n); err == nil {
			return n, true
		}
	}
	return 0, false
}
