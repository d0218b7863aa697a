package projects_permissions

import (
	"encoding/json"
	"fmt"
)

type Resource string

const (
	ResourceMembers       Resource = "Members"
	ResourceAnalytics     Resource = "Analytics"
	ResourceOpenPositions Resource = "Open Positions"
	ResourceRoles         Resource = "Roles"
	ResourceSettings      Resource = "Settings"
)

var AllResources = []Resource{
	ResourceMembers,
	ResourceAnalytics,
	ResourceOpenPositions,
	ResourceRoles,
	ResourceSettings,
}

func (r Resource) IsValid() bool {
	switch r {
	case ResourceMembers, ResourceAnalytics, ResourceOpenPositions, ResourceRoles, ResourceSettings:
		return true
	default:
		return false
	}
}

type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

var AllActions = []Action{ActionView, ActionCreate, ActionUpdate, ActionDelete}

func (a Action) IsValid() bool {
	switch a {
	case ActionView, ActionCreate, ActionUpdate, ActionDelete:
		return true
	default:
		return false
	}
}

// Matrix maps resource -> action -> allowed. Missing entries mean denied.
type Matrix map[Resource]map[Action]bool

func (m Matrix) Allows(resource Resource, action Action) bool {
	if m == nil {
		return false
	}

	return m[resource][action]
}

// Covers reports whether m allows everything other allows.
func (m Matrix) Covers(other Matrix) bool {
	for resource, actions := range other {
		for action, allowed := range actions {
			if allowed && !m.Allows(resource, action) {
				return false
			}
		}
	}

	return true
}

func newMatrix(allowed func(Resource, Action) bool) Matrix {
	matrix := make(Matrix, len(AllResources))
	for _, resource := range AllResources {
		actions := make(map[Action]bool, len(AllActions))
		for _, action := range AllActions {
			actions[action] = allowed(resource, action)
		}
		matrix[resource] = actions
	}

	return matrix
}

// FullAccess is the synthetic matrix granted to project owners.
func FullAccess() Matrix {
	return newMatrix(func(Resource, Action) bool { return true })
}

// ReadOnly grants view on every resource and nothing else.
func ReadOnly() Matrix {
	return newMatrix(func(_ Resource, action Action) bool { return action == ActionView })
}

// Normalize returns a dense copy with every known resource/action present.
func (m Matrix) Normalize() Matrix {
	return newMatrix(m.Allows)
}

func (m Matrix) Validate() error {
	for resource, actions := range m {
		if !resource.IsValid() {
			return fmt.Errorf("unknown permission resource: %q", resource)
		}

		for action := range actions {
			if !action.IsValid() {
				return fmt.Errorf("unknown permission action %q for resource %q", action, resource)
			}
		}
	}

	return nil
}

// ParseMatrix decodes a JSON matrix and rejects resources or actions outside
// the known set.
func ParseMatrix(data []byte) (Matrix, error) {
	var matrix Matrix
	if err := json.Unmarshal(data, &matrix); err != nil {
		return nil, fmt.Errorf("invalid permissions format: %w", err)
	}

	if err := matrix.Validate(); err != nil {
		return nil, err
	}

	return matrix.Normalize(), nil
}
