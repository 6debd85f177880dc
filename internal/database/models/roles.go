package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// RoleID identifies a capability a person may hold and an event slot may
// require (e.g. "greeter", "musician"). Free-text role labels coming from
// clients are normalized into this type at the ingestion boundary and never
// handled as raw strings past it.
type RoleID string

// RoleVolunteer is the implicit role used for events that declare no role
// requirements: any person may fill such an event.
const RoleVolunteer RoleID = "volunteer"

// NormalizeRole lowercases and trims a client-supplied role label.
func NormalizeRole(s string) RoleID {
	return RoleID(strings.ToLower(strings.TrimSpace(s)))
}

// RoleList is a set of roles stored as a JSONB array.
type RoleList []RoleID

// Contains reports whether the list holds the given role.
func (r RoleList) Contains(role RoleID) bool {
	for _, have := range r {
		if have == role {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer for JSONB storage
func (r RoleList) Value() (driver.Value, error) {
	if r == nil {
		r = RoleList{}
	}
	return json.Marshal(r)
}

// Scan implements sql.Scanner for JSONB storage
func (r *RoleList) Scan(value interface{}) error {
	if value == nil {
		*r = RoleList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			b = []byte(s)
		} else {
			return fmt.Errorf("cannot scan %T into RoleList", value)
		}
	}
	return json.Unmarshal(b, r)
}

// RoleCountMap maps required roles to headcounts for an event, stored as a
// JSONB object. An empty map means the event has no role gating.
type RoleCountMap map[RoleID]int

// SortedRoles returns the map keys in ascending order. The solver relies on
// this for deterministic demand ordering.
func (m RoleCountMap) SortedRoles() []RoleID {
	roles := make([]RoleID, 0, len(m))
	for role := range m {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// TotalSlots returns the sum of all required headcounts.
func (m RoleCountMap) TotalSlots() int {
	total := 0
	for _, count := range m {
		total += count
	}
	return total
}

// Value implements driver.Valuer for JSONB storage
func (m RoleCountMap) Value() (driver.Value, error) {
	if m == nil {
		m = RoleCountMap{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB storage
func (m *RoleCountMap) Scan(value interface{}) error {
	if value == nil {
		*m = RoleCountMap{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			b = []byte(s)
		} else {
			return fmt.Errorf("cannot scan %T into RoleCountMap", value)
		}
	}
	return json.Unmarshal(b, m)
}
