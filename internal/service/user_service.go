package service

import (
	"strings"

	"booknest/internal/core/auth"
	"booknest/internal/domain"
	"booknest/pkg/utils"
)

type UserService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewUserService(users domain.UserRepository, jwter *auth.JWTer) *UserService {
	return &UserService{users: users, jwter: jwter}
}

func (s *UserService) Register(username, email, password string) (uint, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return 0, domain.InvalidInput("username, email and password are required")
	}

	existing, err := s.users.FindByUsernameOrEmail(username, email)
	if err != nil {
		return 0, domain.Internal("lookup failed", err)
	}
	if existing != nil {
		return 0, domain.Conflict("username or email already exists")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return 0, domain.Internal("hash failed", err)
	}
	u := &domain.User{Username: username, Email: email, PasswordHash: hash}
	if err := s.users.Create(u); err != nil {
		// two racing registrations: the unique index decides
		return 0, domain.Conflict("username or email already exists")
	}
	return u.ID, nil
}

// Authenticate verifies credentials and issues a token carrying the admin
// claim. Unknown email and bad password are indistinguishable to the caller.
func (s *UserService) Authenticate(email, password string) (string, *domain.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return "", nil, domain.Internal("lookup failed", err)
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return "", nil, domain.Unauthenticated("invalid email or password")
	}
	token, err := s.jwter.Issue(u.ID, u.IsAdmin)
	if err != nil {
		return "", nil, domain.Internal("issue token failed", err)
	}
	return token, u, nil
}

func (s *UserService) Profile(userID uint) (*domain.User, error) {
	u, err := s.users.FindByID(userID)
	if err != nil {
		return nil, domain.Internal("lookup failed", err)
	}
	if u == nil {
		return nil, domain.NotFound("user not found")
	}
	return u, nil
}

// ProfileUpdate carries the optional fields of a PATCH. Nil means unchanged.
type ProfileUpdate struct {
	Username *string
	Email    *string
	Password *string
}

func (s *UserService) UpdateProfile(userID uint, in ProfileUpdate) (*domain.User, error) {
	u, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}
	if in.Username != nil {
		u.Username = strings.TrimSpace(*in.Username)
	}
	if in.Email != nil {
		u.Email = strings.TrimSpace(*in.Email)
	}
	if in.Password != nil {
		hash, err := utils.HashPassword(*in.Password)
		if err != nil {
			return nil, domain.Internal("hash failed", err)
		}
		u.PasswordHash = hash
	}
	if u.Username == "" || u.Email == "" {
		return nil, domain.InvalidInput("username and email must not be empty")
	}
	if err := s.users.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) List() ([]domain.User, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, domain.Internal("list users failed", err)
	}
	return users, nil
}

func (s *UserService) CreateUser(username, email, password string, isAdmin bool) (uint, error) {
	id, err := s.Register(username, email, password)
	if err != nil {
		return 0, err
	}
	if !isAdmin {
		return id, nil
	}
	return id, s.SetAdminFlag(id, true)
}

// AdminUpdate is the admin-side partial user update.
type AdminUpdate struct {
	Username *string
	Email    *string
	IsAdmin  *bool
}

func (s *UserService) UpdateUser(id uint, in AdminUpdate) (*domain.User, error) {
	u, err := s.Profile(id)
	if err != nil {
		return nil, err
	}
	if in.Username != nil {
		u.Username = strings.TrimSpace(*in.Username)
	}
	if in.Email != nil {
		u.Email = strings.TrimSpace(*in.Email)
	}
	if in.IsAdmin != nil {
		u.IsAdmin = *in.IsAdmin
	}
	if u.Username == "" || u.Email == "" {
		return nil, domain.InvalidInput("username and email must not be empty")
	}
	if err := s.users.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) SetAdminFlag(id uint, isAdmin bool) error {
	u, err := s.Profile(id)
	if err != nil {
		return err
	}
	u.IsAdmin = isAdmin
	return s.users.Update(u)
}

// DeleteUser removes the user and cascades its loans and reading list.
func (s *UserService) DeleteUser(id uint) error {
	return s.users.DeleteCascade(id)
}
