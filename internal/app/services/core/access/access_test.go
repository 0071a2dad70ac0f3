package access

import (
	"fmt"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

var allRoles = []string{
	constvars.RoleAdmin,
	constvars.RoleDoctor,
	constvars.RoleReceptionist,
	constvars.RolePatient,
}

var allActions = []Action{
	ActionRead,
	ActionCreate,
	ActionUpdate,
	ActionUpdateStatus,
	ActionDelete,
}

var allResources = []string{
	constvars.ResourcePatients,
	constvars.ResourceDoctors,
	constvars.ResourceAppointments,
	constvars.ResourceMedicines,
	constvars.ResourcePrescriptions,
	constvars.ResourcePayments,
	constvars.ResourceDashboard,
}

// expectedMatrix is the full permission cross-product. Cells absent from the
// map must be denied.
var expectedMatrix = map[string]Permission{
	"patients/read/admin":         {Allowed: true},
	"patients/read/doctor":        {Allowed: true},
	"patients/read/receptionist":  {Allowed: true},
	"patients/read/patient":       {Allowed: true, OwnOnly: true},
	"patients/create/admin":       {Allowed: true},
	"patients/create/doctor":      {Allowed: true},
	"patients/update/admin":       {Allowed: true},
	"patients/update/doctor":      {Allowed: true},
	"patients/update/patient":     {Allowed: true, OwnOnly: true},
	"patients/delete/admin":       {Allowed: true},
	"patients/delete/doctor":      {Allowed: true},

	"doctors/read/admin":          {Allowed: true},
	"doctors/read/doctor":         {Allowed: true},
	"doctors/read/receptionist":   {Allowed: true},
	"doctors/create/admin":        {Allowed: true},
	"doctors/create/doctor":       {Allowed: true},
	"doctors/create/receptionist": {Allowed: true},
	"doctors/update/admin":        {Allowed: true},
	"doctors/update/doctor":       {Allowed: true},
	"doctors/update/receptionist": {Allowed: true},
	"doctors/delete/admin":        {Allowed: true},
	"doctors/delete/doctor":       {Allowed: true},

	"appointments/read/admin":                {Allowed: true},
	"appointments/read/doctor":               {Allowed: true},
	"appointments/read/receptionist":         {Allowed: true},
	"appointments/read/patient":              {Allowed: true, OwnOnly: true},
	"appointments/create/admin":              {Allowed: true},
	"appointments/create/doctor":             {Allowed: true},
	"appointments/create/receptionist":       {Allowed: true},
	"appointments/create/patient":            {Allowed: true, OwnOnly: true},
	"appointments/update/admin":              {Allowed: true},
	"appointments/update/doctor":             {Allowed: true},
	"appointments/update_status/admin":       {Allowed: true},
	"appointments/update_status/doctor":      {Allowed: true},
	"appointments/update_status/patient":     {Allowed: true, OwnOnly: true},
	"appointments/delete/admin":              {Allowed: true},
	"appointments/delete/doctor":             {Allowed: true},

	"medicines/read/admin":    {Allowed: true},
	"medicines/read/doctor":   {Allowed: true},
	"medicines/create/admin":  {Allowed: true},
	"medicines/create/doctor": {Allowed: true},
	"medicines/update/admin":  {Allowed: true},
	"medicines/update/doctor": {Allowed: true},
	"medicines/delete/admin":  {Allowed: true},
	"medicines/delete/doctor": {Allowed: true},

	"prescriptions/read/admin":    {Allowed: true},
	"prescriptions/read/doctor":   {Allowed: true},
	"prescriptions/read/patient":  {Allowed: true, OwnOnly: true},
	"prescriptions/create/admin":  {Allowed: true},
	"prescriptions/create/doctor": {Allowed: true},
	"prescriptions/update/admin":  {Allowed: true},
	"prescriptions/update/doctor": {Allowed: true},
	"prescriptions/delete/admin":  {Allowed: true},
	"prescriptions/delete/doctor": {Allowed: true},

	"payments/read/admin":           {Allowed: true},
	"payments/read/doctor":          {Allowed: true},
	"payments/read/patient":         {Allowed: true, OwnOnly: true},
	"payments/create/admin":         {Allowed: true},
	"payments/create/doctor":        {Allowed: true},
	"payments/update_status/admin":  {Allowed: true},
	"payments/update_status/doctor": {Allowed: true},
	"payments/delete/admin":         {Allowed: true},
	"payments/delete/doctor":        {Allowed: true},

	"dashboard/read/admin":        {Allowed: true},
	"dashboard/read/doctor":       {Allowed: true},
	"dashboard/read/receptionist": {Allowed: true},
	"dashboard/read/patient":      {Allowed: true, OwnOnly: true},
}

func TestLookupFullMatrix(t *testing.T) {
	for _, resource := range allResources {
		for _, action := range allActions {
			for _, role := range allRoles {
				key := fmt.Sprintf("%s/%s/%s", resource, action, role)
				t.Run(key, func(t *testing.T) {
					expected := expectedMatrix[key]
					assert.Equal(t, expected, Lookup(role, action, resource))
				})
			}
		}
	}
}

func TestLookupUnknownCombinations(t *testing.T) {
	assert.Equal(t, Permission{}, Lookup("superuser", ActionRead, constvars.ResourcePatients))
	assert.Equal(t, Permission{}, Lookup(constvars.RoleAdmin, ActionRead, "invoices"))
	assert.Equal(t, Permission{}, Lookup(constvars.RoleAdmin, Action("approve"), constvars.ResourcePatients))
}

func TestAuthorizeOwnership(t *testing.T) {
	t.Run("patient reading own appointment passes", func(t *testing.T) {
		err := Authorize(constvars.RolePatient, ActionRead, constvars.ResourceAppointments, "7", "7")
		assert.NoError(t, err)
	})

	t.Run("patient reading another patients appointment fails", func(t *testing.T) {
		err := Authorize(constvars.RolePatient, ActionRead, constvars.ResourceAppointments, "9", "7")
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("unlinked patient fails every ownership check", func(t *testing.T) {
		err := Authorize(constvars.RolePatient, ActionRead, constvars.ResourceAppointments, "7", "")
		assert.Error(t, err)
	})

	t.Run("staff roles skip the ownership check", func(t *testing.T) {
		err := Authorize(constvars.RoleAdmin, ActionRead, constvars.ResourceAppointments, "9", "")
		assert.NoError(t, err)
		err = Authorize(constvars.RoleReceptionist, ActionRead, constvars.ResourceAppointments, "9", "")
		assert.NoError(t, err)
	})

	t.Run("denied cell fails before ownership", func(t *testing.T) {
		err := Authorize(constvars.RolePatient, ActionRead, constvars.ResourceDoctors, "7", "7")
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

func TestScopeQuery(t *testing.T) {
	t.Run("staff roles see everything", func(t *testing.T) {
		assert.Equal(t, bson.M{}, ScopeQuery(constvars.RoleAdmin, "", constvars.ResourceAppointments))
		assert.Equal(t, bson.M{}, ScopeQuery(constvars.RoleDoctor, "", constvars.ResourcePayments))
		assert.Equal(t, bson.M{}, ScopeQuery(constvars.RoleReceptionist, "", constvars.ResourcePatients))
	})

	t.Run("patient sees only own rows", func(t *testing.T) {
		assert.Equal(t, bson.M{"patientId": "7"}, ScopeQuery(constvars.RolePatient, "7", constvars.ResourceAppointments))
		assert.Equal(t, bson.M{"patientId": "7"}, ScopeQuery(constvars.RolePatient, "7", constvars.ResourcePrescriptions))
		assert.Equal(t, bson.M{"patientId": "7"}, ScopeQuery(constvars.RolePatient, "7", constvars.ResourcePayments))
	})

	t.Run("patient resource scopes on the record id itself", func(t *testing.T) {
		assert.Equal(t, bson.M{"_id": "7"}, ScopeQuery(constvars.RolePatient, "7", constvars.ResourcePatients))
	})

	t.Run("unlinked patient predicate matches nothing", func(t *testing.T) {
		assert.Equal(t, bson.M{"patientId": ""}, ScopeQuery(constvars.RolePatient, "", constvars.ResourceAppointments))
	})
}

func TestReceptionistDoctorScreen(t *testing.T) {
	// The receptionist manages doctor rows but never deletes them, and the
	// medicines screen is entirely off limits.
	assert.True(t, CanAccess(constvars.RoleReceptionist, ActionRead, constvars.ResourceDoctors))
	assert.True(t, CanAccess(constvars.RoleReceptionist, ActionCreate, constvars.ResourceDoctors))
	assert.True(t, CanAccess(constvars.RoleReceptionist, ActionUpdate, constvars.ResourceDoctors))
	assert.False(t, CanAccess(constvars.RoleReceptionist, ActionDelete, constvars.ResourceDoctors))

	for _, action := range allActions {
		assert.False(t, CanAccess(constvars.RoleReceptionist, action, constvars.ResourceMedicines))
		assert.False(t, CanAccess(constvars.RoleReceptionist, action, constvars.ResourcePrescriptions))
		assert.False(t, CanAccess(constvars.RoleReceptionist, action, constvars.ResourcePayments))
	}
}
