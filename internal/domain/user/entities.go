package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Credential is the hashed password shared by users and admins. Never serialized.
type Credential struct {
	PasswordHash []byte `gorm:"column:password_hash;not null" json:"-"`
}

func (c *Credential) SetPassword(password string, cost int) error {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return err
	}
	c.PasswordHash = h
	return nil
}

func (c *Credential) ComparePassword(password string) error {
	return bcrypt.CompareHashAndPassword(c.PasswordHash, []byte(password))
}

// Table: users
type User struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	Username  string `gorm:"column:username;size:64;not null;uniqueIndex:ux_users_username" json:"username"`
	Credential
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (User) TableName() string { return "users" }

// Table: admins. Separate namespace from users; created out-of-band.
type Admin struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	Username  string `gorm:"column:username;size:64;not null;uniqueIndex:ux_admins_username" json:"username"`
	Credential
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Admin) TableName() string { return "admins" }
