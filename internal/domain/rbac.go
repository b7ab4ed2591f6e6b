package domain

// EnforceRequest asks whether Role may perform Action on Resource,
// e.g. supervisor / assignment / create.
type EnforceRequest struct {
	Role     string `json:"role" binding:"required,oneof=worker supervisor admin"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

// PermissionResponse renders as "resource:action" pairs in role listings.
type PermissionResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

type RolePermissionsResponse struct {
	Role        Role                 `json:"role"`
	HomePath    string               `json:"home_path"`
	Permissions []PermissionResponse `json:"permissions"`
}
