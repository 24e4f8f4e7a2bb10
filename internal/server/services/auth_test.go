package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/avolkau/fittrack/internal/common"
	"github.com/avolkau/fittrack/internal/server/auth"
	"github.com/avolkau/fittrack/internal/server/models"
)

func newAuthService(t *testing.T, rm *fakeRepoManager) *AuthService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	tokens := auth.NewTokenIssuer([]byte("test-secret"), "fittrack", "fittrack-client", time.Hour)
	return NewAuthService(db, rm, tokens)
}

func validRegisterParams() RegisterParams {
	return RegisterParams{
		Email:     "Alice@X.com",
		Password:  "password123",
		FirstName: "Alice",
		LastName:  "Smith",
	}
}

func TestRegister_Success_TokenRoundTrip(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{}}
	s := newAuthService(t, rm)

	res, err := s.Register(context.Background(), validRegisterParams())
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if res.Email != "alice@x.com" {
		t.Fatalf("email must be normalized, got %q", res.Email)
	}

	// the returned token must validate back to the created user's id
	tokens := auth.NewTokenIssuer([]byte("test-secret"), "fittrack", "fittrack-client", time.Hour)
	gotID, err := tokens.Validate(res.Token)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if gotID != res.UserID {
		t.Fatalf("token subject %d does not match registered user %d", gotID, res.UserID)
	}
}

func TestRegister_PasswordIsHashed(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{}}
	s := newAuthService(t, rm)

	p := validRegisterParams()
	if _, err := s.Register(context.Background(), p); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	stored := rm.u.created.PasswordHash
	if stored == p.Password {
		t.Fatalf("password must not be stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(p.Password)); err != nil {
		t.Fatalf("stored hash does not verify against the password: %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{createErr: common.ErrorDuplicateEmail}}
	s := newAuthService(t, rm)

	_, err := s.Register(context.Background(), validRegisterParams())
	if !errors.Is(err, common.ErrorDuplicateEmail) {
		t.Fatalf("want common.ErrorDuplicateEmail, got %v", err)
	}
}

func TestRegister_ValidationFailed(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{}}
	s := newAuthService(t, rm)

	tests := []struct {
		name   string
		mutate func(p *RegisterParams)
	}{
		{"malformed email", func(p *RegisterParams) { p.Email = "not-an-email" }},
		{"short password", func(p *RegisterParams) { p.Password = "short" }},
		{"missing first name", func(p *RegisterParams) { p.FirstName = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validRegisterParams()
			tc.mutate(&p)
			_, err := s.Register(context.Background(), p)
			if !errors.Is(err, common.ErrorValidation) {
				t.Fatalf("want common.ErrorValidation, got %v", err)
			}
		})
	}
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	rm := &fakeRepoManager{u: &fakeUsersRepo{
		getOut: &models.User{ID: 42, Email: "alice@x.com", PasswordHash: string(hash)},
	}}
	s := newAuthService(t, rm)

	res, err := s.Login(context.Background(), LoginParams{Email: "ALICE@x.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if res.UserID != 42 || res.Token == "" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestLogin_RepositoryErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	rm := &fakeRepoManager{u: &fakeUsersRepo{getErr: cause}}
	s := newAuthService(t, rm)

	_, err := s.Login(context.Background(), LoginParams{Email: "alice@x.com", Password: "password123"})
	if !errors.Is(err, cause) {
		t.Fatalf("repository error must be wrapped, got %v", err)
	}
	if errors.Is(err, common.ErrorInvalidCredentials) {
		t.Fatalf("an infrastructure failure must not read as bad credentials")
	}
}

func TestLogin_WrongPasswordAndUnknownEmail_Indistinguishable(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}

	wrongPW := newAuthService(t, &fakeRepoManager{u: &fakeUsersRepo{
		getOut: &models.User{ID: 42, Email: "alice@x.com", PasswordHash: string(hash)},
	}})
	_, errWrongPW := wrongPW.Login(context.Background(), LoginParams{Email: "alice@x.com", Password: "wrongpw99"})

	unknown := newAuthService(t, &fakeRepoManager{u: &fakeUsersRepo{getErr: common.ErrorNotFound}})
	_, errUnknown := unknown.Login(context.Background(), LoginParams{Email: "ghost@x.com", Password: "password123"})

	if !errors.Is(errWrongPW, common.ErrorInvalidCredentials) {
		t.Fatalf("wrong password: want common.ErrorInvalidCredentials, got %v", errWrongPW)
	}
	if !errors.Is(errUnknown, common.ErrorInvalidCredentials) {
		t.Fatalf("unknown email: want common.ErrorInvalidCredentials, got %v", errUnknown)
	}
	if errWrongPW.Error() != errUnknown.Error() {
		t.Fatalf("failure modes must be indistinguishable: %q vs %q", errWrongPW, errUnknown)
	}
}
