package rbac

import "github.com/BMarcano/dispatcher/internal/domain"

type Repository interface {
	GetRolePermissions() ([]RolePermissionRow, error)
}

type RolePermissionRow struct {
	Role     string
	Resource string
	Action   string
}

// DefaultPolicy is the role matrix of the service.
var DefaultPolicy = []RolePermissionRow{
	{Role: string(domain.RoleWorker), Resource: "assignment", Action: "read_own"},
	{Role: string(domain.RoleWorker), Resource: "profile", Action: "read"},

	{Role: string(domain.RoleSupervisor), Resource: "job", Action: "read"},
	{Role: string(domain.RoleSupervisor), Resource: "job", Action: "create"},
	{Role: string(domain.RoleSupervisor), Resource: "job", Action: "update"},
	{Role: string(domain.RoleSupervisor), Resource: "assignment", Action: "read"},
	{Role: string(domain.RoleSupervisor), Resource: "assignment", Action: "create"},
	{Role: string(domain.RoleSupervisor), Resource: "assignment", Action: "delete"},
	{Role: string(domain.RoleSupervisor), Resource: "worker", Action: "read"},
	{Role: string(domain.RoleSupervisor), Resource: "profile", Action: "read"},

	{Role: string(domain.RoleAdmin), Resource: "payroll", Action: "read"},
	{Role: string(domain.RoleAdmin), Resource: "payroll", Action: "export"},
	{Role: string(domain.RoleAdmin), Resource: "worker", Action: "read"},
	{Role: string(domain.RoleAdmin), Resource: "worker", Action: "create"},
	{Role: string(domain.RoleAdmin), Resource: "worker", Action: "update"},
	{Role: string(domain.RoleAdmin), Resource: "job", Action: "read"},
	{Role: string(domain.RoleAdmin), Resource: "profile", Action: "read"},
	{Role: string(domain.RoleAdmin), Resource: "rbac", Action: "read"},
}

type staticRepository struct {
	rows []RolePermissionRow
}

// NewRepository serves a fixed policy; nil rows means DefaultPolicy.
func NewRepository(rows []RolePermissionRow) Repository {
	if rows == nil {
		rows = DefaultPolicy
	}
	return &staticRepository{rows: rows}
}

func (r *staticRepository) GetRolePermissions() ([]RolePermissionRow, error) {
	out := make([]RolePermissionRow, len(r.rows))
	copy(out, r.rows)
	return out, nil
}
