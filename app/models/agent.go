package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	AGENT_ROLE_AGENT      = "agent"
	AGENT_ROLE_ADMIN      = "admin"
	AGENT_STATUS_ACTIVE   = "active"
	AGENT_STATUS_DISABLED = "disabled"
)

// Agent is a portal login for a travel agent.
type Agent struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(150)" json:"name" validate:"required,min=2,max=150"`
	Email       string         `gorm:"uniqueIndex;type:varchar(200)" json:"email" validate:"required,email,min=5,max=200"`
	Password    string         `gorm:"type:text" json:"-" validate:"required,min=8"`
	Role        string         `gorm:"type:varchar(50);default:'agent'" json:"role" validate:"oneof=agent admin"`
	Status      string         `gorm:"type:varchar(50);default:'active'" json:"status" validate:"oneof=active disabled"`
	LastLoginAt *time.Time     `gorm:"type:timestamp;default:null" json:"last_login_at"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Agent model
func (Agent) TableName() string {
	return "agents"
}

func (a *Agent) Validate() error {
	v := validator.New()

	return v.Struct(a)
}

func CreateAgent(name, email, password string) (*Agent, error) {
	pw, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	a := &Agent{
		Name:     name,
		Email:    email,
		Password: pw,
		Role:     AGENT_ROLE_AGENT,
		Status:   AGENT_STATUS_ACTIVE,
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPassword verifies the given password against the stored hash.
func (a *Agent) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) == nil
}

// IsActive reports whether the agent may log in.
func (a *Agent) IsActive() bool {
	return a.Status == AGENT_STATUS_ACTIVE
}
