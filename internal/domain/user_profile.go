package domain

import "time"

type Role string

const (
	RoleWorker     Role = "worker"
	RoleSupervisor Role = "supervisor"
	RoleAdmin      Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleWorker, RoleSupervisor, RoleAdmin:
		return true
	default:
		return false
	}
}

// HomePath is where a signed-in user of this role lands.
func (r Role) HomePath() string {
	switch r {
	case RoleWorker:
		return "/worker/assignments"
	case RoleSupervisor:
		return "/supervisor/pending"
	case RoleAdmin:
		return "/admin/payroll"
	default:
		return "/login"
	}
}

type UserProfile struct {
	ID           string    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_user_profiles_email"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null"`
	Role         Role      `gorm:"column:role;type:varchar(20);not null;default:worker"`
	WorkerID     *string   `gorm:"column:worker_id;type:uuid;uniqueIndex"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`

	Worker *Worker `gorm:"foreignKey:WorkerID;references:ID"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
