package identity

import (
	"context"
	"errors"
	"strings"

	"pet-adoption-backend/internal/domain/apperr"
	"pet-adoption-backend/internal/domain/user"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Usecase is the identity store: a verification oracle, no sessions.
type Usecase struct {
	users  user.Repository
	admins user.AdminRepository
	cost   int
}

func NewUsecase(users user.Repository, admins user.AdminRepository, bcryptCost int) *Usecase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Usecase{users: users, admins: admins, cost: bcryptCost}
}

func normalize(in CredentialsInput) (CredentialsInput, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" {
		return in, apperr.InvalidInput("username is required")
	}
	if in.Password == "" {
		return in, apperr.InvalidInput("password is required")
	}
	return in, nil
}

func (u *Usecase) Register(ctx context.Context, in CredentialsInput) (*UserDTO, error) {
	in, err := normalize(in)
	if err != nil {
		return nil, err
	}

	_, err = u.users.GetByUsername(ctx, in.Username)
	switch {
	case err == nil:
		return nil, apperr.Conflict("username already exists")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	nu := &user.User{Username: in.Username}
	if err := nu.SetPassword(in.Password, u.cost); err != nil {
		return nil, err
	}
	if err := u.users.Create(ctx, nu); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("username already exists")
		}
		return nil, err
	}
	return &UserDTO{Username: nu.Username}, nil
}

func (u *Usecase) Login(ctx context.Context, in CredentialsInput) (*UserDTO, error) {
	in, err := normalize(in)
	if err != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}
	usr, err := u.users.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("invalid credentials")
		}
		return nil, err
	}
	if err := usr.ComparePassword(in.Password); err != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}
	return &UserDTO{Username: usr.Username}, nil
}

func (u *Usecase) AdminLogin(ctx context.Context, in CredentialsInput) (*AdminDTO, error) {
	in, err := normalize(in)
	if err != nil {
		return nil, apperr.Unauthorized("invalid admin credentials")
	}
	adm, err := u.admins.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("invalid admin credentials")
		}
		return nil, err
	}
	if err := adm.ComparePassword(in.Password); err != nil {
		return nil, apperr.Unauthorized("invalid admin credentials")
	}
	return &AdminDTO{Username: adm.Username}, nil
}

// CreateAdmin is the out-of-band admin provisioning path (CLI only).
func (u *Usecase) CreateAdmin(ctx context.Context, in CredentialsInput) (*AdminDTO, error) {
	in, err := normalize(in)
	if err != nil {
		return nil, err
	}
	_, err = u.admins.GetByUsername(ctx, in.Username)
	switch {
	case err == nil:
		return nil, apperr.Conflict("admin already exists")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}
	adm := &user.Admin{Username: in.Username}
	if err := adm.SetPassword(in.Password, u.cost); err != nil {
		return nil, err
	}
	if err := u.admins.Create(ctx, adm); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("admin already exists")
		}
		return nil, err
	}
	return &AdminDTO{Username: adm.Username}, nil
}

// ResolveAdmin re-verifies a caller-supplied admin identity.
func (u *Usecase) ResolveAdmin(ctx context.Context, username string) (*AdminDTO, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperr.Unauthorized("admin identity required")
	}
	adm, err := u.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("admin identity required")
		}
		return nil, err
	}
	return &AdminDTO{Username: adm.Username}, nil
}
