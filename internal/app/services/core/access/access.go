package access

import (
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
)

// This package is the single source of truth for who may do what. Every
// handler consults it instead of re-implementing role conditionals inline,
// so the rules cannot drift between screens. It mirrors the authoritative
// checks that must also exist in the storage layer; it is not a substitute
// for them.

type Action string

const (
	ActionRead         Action = "read"
	ActionCreate       Action = "create"
	ActionUpdate       Action = "update"
	ActionUpdateStatus Action = "update_status"
	ActionDelete       Action = "delete"
)

// Permission is the outcome for a single (role, action, resource) cell.
// OwnOnly means the action is allowed only on records whose patientId equals
// the session's linked patient id.
type Permission struct {
	Allowed bool
	OwnOnly bool
}

var (
	denied  = Permission{}
	all     = Permission{Allowed: true}
	ownOnly = Permission{Allowed: true, OwnOnly: true}
)

// ruleTable is the full role x action x resource permission matrix.
// admin and doctor share mutation rights; receptionist is read/create-mostly
// on patients and appointments with no delete rights and no access to
// medicines, prescriptions or payments; patient sees own rows only.
var ruleTable = map[string]map[Action]map[string]Permission{
	constvars.ResourcePatients: {
		ActionRead: {
			constvars.RoleAdmin:        all,
			constvars.RoleDoctor:       all,
			constvars.RoleReceptionist: all,
			constvars.RolePatient:      ownOnly,
		},
		ActionCreate: {
			constvars.RoleAdmin:  all,
			constvars.RoleDoctor: all,
		},
		ActionUpdate: {
			constvars.RoleAdmin:   all,
			constvars.RoleDoctor:  all,
			constvars.RolePatient: ownOnly,
		},
		ActionDelete: {
			constvars.RoleAdmin:  all,
			constvars.RoleDoctor: all,
		},
	},
	constvars.ResourceDoctors: {
		ActionRead: {
			constvars.RoleAdmin:        all,
			constvars.RoleDoctor:       all,
			constvars.RoleReceptionist: all,
		},
		ActionCreate: {
			constvars.RoleAdmin:        all,
			constvars.RoleDoctor:       all,
			constvars.RoleReceptionist: all,
		},
		ActionUpdate: {
			constvars.RoleAdmin:        all,
			constvars.RoleDoctor:       all,
			constvars.RoleReceptionist: all,
		},
		ActionDelete: {
			constvars.RoleAdmin:  all,
			constvars.RoleDoctor: all,
		},
	},
	constvars.ResourceAppointments: {
		ActionRead: {
			constvars.RoleAdmin:        all,
			constvars.RoleDoctor:       all,
			constvars.RoleReceptionist: all,
			constvars.RolePatient:      ownOnly,
		},
		ActionCreate: {
			constvars.RoleAdmin:        all,
			constvars.RoleDoctor:       all,
			constvars.RoleReceptionist: all,
			constvars.RolePatient:      ownOnly,
		},
		ActionUpdate: {
			constvars.RoleAdmin:  all,
			constvars.RoleDoctor: all,
		},
		ActionUpdateStatus: {
			constvars.RoleAdmin:   all,
			constvars.RoleDoctor:  all,
			constvars.RolePatient: ownOnly,
		},
		ActionDelete: {
			constvars.RoleAdmin:  all,
			constvars.RoleDoctor: all,
		},
	},
	constvars.ResourceMedicines: {
		ActionRead: {
			constvars.RoleAdmin:  all,
			constvars.RoleDoctor: all,
		},
		ActionCreate: {
			constvars.RoleAdmin:  all,
			constvars.RoleDoctor: all,
		},
		ActionUpdate: {
			constvars.RoleAdmin:  all,
			constvars.RoleDoctor: all,
		},
		ActionDelete: {
			constvars.RoleAdmin:  all,
			constvars.RoleDoctor: all,
		},
	},
	constvars.ResourcePrescriptions: {
		ActionRead: {
			constvars.RoleAdmin:   all,
			constvars.RoleDoctor:  all,
			constvars.RolePatient: ownOnly,
		},
		ActionCreate: {
			constvars.RoleAdmin:  all,
			constvars.RoleDoctor: all,
		},
		ActionUpdate: {
			constvars.RoleAdmin:  all,
			constvars.RoleDoctor: all,
		},
		ActionDelete: {
			constvars.RoleAdmin:  all,
			constvars.RoleDoctor: all,
		},
	},
	constvars.ResourcePayments: {
		ActionRead: {
			constvars.RoleAdmin:   all,
			constvars.RoleDoctor:  all,
			constvars.RolePatient: ownOnly,
		},
		ActionCreate: {
			constvars.RoleAdmin:  all,
			constvars.RoleDoctor: all,
		},
		ActionUpdateStatus: {
			constvars.RoleAdmin:  all,
			constvars.RoleDoctor: all,
		},
		ActionDelete: {
			constvars.RoleAdmin:  all,
			constvars.RoleDoctor: all,
		},
	},
	constvars.ResourceDashboard: {
		ActionRead: {
			constvars.RoleAdmin:        all,
			constvars.RoleDoctor:       all,
			constvars.RoleReceptionist: all,
			constvars.RolePatient:      ownOnly,
		},
	},
}

// Lookup returns the permission cell for a role, action and resource.
// Unknown combinations are denied.
func Lookup(role string, action Action, resource string) Permission {
	actions, ok := ruleTable[resource]
	if !ok {
		return denied
	}
	roles, ok := actions[action]
	if !ok {
		return denied
	}
	return roles[role]
}

// CanAccess reports whether the role may perform the action on the resource
// at all, ignoring ownership. Handlers use it to decide between a flat
// denial and an ownership check.
func CanAccess(role string, action Action, resource string) bool {
	return Lookup(role, action, resource).Allowed
}

// Authorize is the handler-side re-check: it denies outright when the role
// has no permission, and for own-only permissions verifies the record's
// patient id against the session's linked patient id. An unlinked patient
// session fails every ownership check.
func Authorize(role string, action Action, resource string, recordPatientID, linkedPatientID string) error {
	permission := Lookup(role, action, resource)
	if !permission.Allowed {
		return exceptions.ErrPermissionDenied(role, string(action), resource)
	}
	if permission.OwnOnly {
		if linkedPatientID == "" || recordPatientID != linkedPatientID {
			return exceptions.ErrNotResourceOwner()
		}
	}
	return nil
}

// ScopeQuery returns the list predicate for a role on a resource: staff
// roles see everything, patient sessions are restricted to rows owned by
// their linked patient id. Callers must handle the unlinked state before
// querying; an empty linkedPatientID yields a predicate matching nothing.
func ScopeQuery(role string, linkedPatientID string, resource string) bson.M {
	permission := Lookup(role, ActionRead, resource)
	if !permission.OwnOnly {
		return bson.M{}
	}

	if resource == constvars.ResourcePatients {
		return bson.M{"_id": linkedPatientID}
	}
	return bson.M{"patientId": linkedPatientID}
}
