package services

import (
	"crypto/subtle"
	"errors"
	"strings"

	"hostel-backend/models"
)

// ErrInvalidCredentials is returned for an admin login that does not match
// the configured pair.
var ErrInvalidCredentials = errors.New("invalid admin credentials")

const adminName = "Hostel Administrator"

type Admin struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type ResidentLoginInput struct {
	Identifier string `json:"identifier"`
}

type AdminLoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthService identifies callers. It issues no sessions or tokens; the
// front end keeps the returned identity itself.
type AuthService struct {
	Residents     *ResidentService
	AdminEmail    string
	AdminPassword string
}

func NewAuthService(residents *ResidentService, adminEmail, adminPassword string) *AuthService {
	return &AuthService{Residents: residents, AdminEmail: adminEmail, AdminPassword: adminPassword}
}

func (s *AuthService) ResidentLogin(in ResidentLoginInput) (models.Resident, error) {
	return s.Residents.FindByIdentifier(in.Identifier)
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (s *AuthService) AdminLogin(in AdminLoginInput) (Admin, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return Admin{}, validationf("Email and password are required")
	}
	emailOK := equal(strings.ToLower(email), strings.ToLower(s.AdminEmail))
	passwordOK := equal(in.Password, s.AdminPassword)
	if !emailOK || !passwordOK {
		return Admin{}, ErrInvalidCredentials
	}
	return Admin{Email: s.AdminEmail, Name: adminName}, nil
}
