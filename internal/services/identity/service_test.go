package identity

import (
	"context"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	clockMocks "github.com/ironvale/gymd/internal/common/clock/mocks"
	uuidMocks "github.com/ironvale/gymd/internal/common/uuid/mocks"
	"github.com/ironvale/gymd/internal/models"
	userRepo "github.com/ironvale/gymd/internal/repositories/user"
	userMocks "github.com/ironvale/gymd/internal/repositories/user/mocks"
)

const testSecret = "test-signing-secret"

type IdentityServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUserRepo *userMocks.MockRepository
	mockClock    *clockMocks.MockClock
	mockUUID     *uuidMocks.MockUUID
	service      Service
	ctx          context.Context

	// Test data
	testTime   time.Time
	testUserID string
}

func (s *IdentityServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s.testUserID = "test-user-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return(s.testUserID).AnyTimes()

	service, err := New(&Config{
		UserRepo:      s.mockUserRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Secret:        testSecret,
		TokenTTL:      time.Hour,
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *IdentityServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestIdentityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityServiceTestSuite))
}

func (s *IdentityServiceTestSuite) validRegisterInput() *RegisterInput {
	return &RegisterInput{
		Name:     "Test User",
		Email:    "Member@Example.com",
		Password: "long-enough-password",
		Phone:    "555-0100",
	}
}

func (s *IdentityServiceTestSuite) TestRegister() {
	s.mockUserRepo.EXPECT().
		CreateUser(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *userRepo.CreateUserInput) error {
			u := input.User
			s.Equal(s.testUserID, u.ID)
			s.Equal("member@example.com", u.Email)
			s.Equal([]models.Role{models.RoleMember}, u.Roles)
			s.Equal(models.MembershipStatusPending, u.MembershipStatus)
			s.Equal(s.testTime, u.CreatedAt)

			// The stored hash must verify against the raw password
			s.NoError(bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("long-enough-password")))
			return nil
		})

	out, err := s.service.Register(s.ctx, s.validRegisterInput())
	s.Require().NoError(err)
	s.NotEmpty(out.Token)
	s.Equal(s.testUserID, out.User.ID)
}

func (s *IdentityServiceTestSuite) TestRegisterValidation() {
	cases := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{name: "missing name", mutate: func(in *RegisterInput) { in.Name = "" }},
		{name: "bad email", mutate: func(in *RegisterInput) { in.Email = "not-an-email" }},
		{name: "short password", mutate: func(in *RegisterInput) { in.Password = "short" }},
		{name: "missing phone", mutate: func(in *RegisterInput) { in.Phone = "" }},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			input := s.validRegisterInput()
			tc.mutate(input)

			_, err := s.service.Register(s.ctx, input)
			s.Require().ErrorIs(err, ErrValidation)
		})
	}
}

func (s *IdentityServiceTestSuite) TestRegisterEmailInUse() {
	s.mockUserRepo.EXPECT().
		CreateUser(s.ctx, gomock.Any()).
		Return(userRepo.ErrEmailTaken)

	_, err := s.service.Register(s.ctx, s.validRegisterInput())
	s.Require().ErrorIs(err, ErrEmailInUse)
}

func (s *IdentityServiceTestSuite) storedUser(password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(err)

	return &models.User{
		ID:           s.testUserID,
		Name:         "Test User",
		Email:        "member@example.com",
		PasswordHash: string(hash),
		Roles:        []models.Role{models.RoleMember, models.RoleStaff},
	}
}

func (s *IdentityServiceTestSuite) TestLoginAndVerifyToken() {
	s.mockUserRepo.EXPECT().
		GetUserByEmail(s.ctx, &userRepo.GetUserByEmailInput{Email: "member@example.com"}).
		Return(s.storedUser("correct-password"), nil)

	out, err := s.service.Login(s.ctx, &LoginInput{
		Email:    "member@example.com",
		Password: "correct-password",
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(out.Token)

	verified, err := s.service.VerifyToken(s.ctx, &VerifyTokenInput{Token: out.Token})
	s.Require().NoError(err)

	s.Equal(s.testUserID, verified.Identity.ID)
	s.Equal("member@example.com", verified.Identity.Email)
	s.Equal([]models.Role{models.RoleMember, models.RoleStaff}, verified.Identity.Roles)
}

func (s *IdentityServiceTestSuite) TestLoginWrongPassword() {
	s.mockUserRepo.EXPECT().
		GetUserByEmail(s.ctx, gomock.Any()).
		Return(s.storedUser("correct-password"), nil)

	_, err := s.service.Login(s.ctx, &LoginInput{
		Email:    "member@example.com",
		Password: "wrong-password",
	})
	s.Require().ErrorIs(err, ErrInvalidCredentials)
}

func (s *IdentityServiceTestSuite) TestLoginUnknownEmail() {
	s.mockUserRepo.EXPECT().
		GetUserByEmail(s.ctx, gomock.Any()).
		Return(nil, userRepo.ErrUserNotFound)

	_, err := s.service.Login(s.ctx, &LoginInput{
		Email:    "missing@example.com",
		Password: "any-password",
	})
	s.Require().ErrorIs(err, ErrInvalidCredentials)
}

// signTestToken builds a token the way an external issuer might,
// letting the role claim take arbitrary shapes.
func (s *IdentityServiceTestSuite) signTestToken(secret string, role any, expiresAt time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  s.testUserID,
		"role": role,
		"iat":  jwt.NewNumericDate(s.testTime),
		"exp":  jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString([]byte(secret))
	s.Require().NoError(err)

	return signed
}

func (s *IdentityServiceTestSuite) TestVerifyTokenStringRoleClaim() {
	// A single-valued role claim must decode to the same set an array
	// claim would
	token := s.signTestToken(testSecret, "ADMIN", s.testTime.Add(time.Hour))

	out, err := s.service.VerifyToken(s.ctx, &VerifyTokenInput{Token: token})
	s.Require().NoError(err)
	s.Equal([]models.Role{models.RoleAdmin}, out.Identity.Roles)
}

func (s *IdentityServiceTestSuite) TestVerifyTokenArrayRoleClaim() {
	token := s.signTestToken(testSecret, []string{"STAFF", "ADMIN", "STAFF"}, s.testTime.Add(time.Hour))

	out, err := s.service.VerifyToken(s.ctx, &VerifyTokenInput{Token: token})
	s.Require().NoError(err)
	s.Equal([]models.Role{models.RoleStaff, models.RoleAdmin}, out.Identity.Roles)
}

func (s *IdentityServiceTestSuite) TestVerifyTokenDropsUnknownRoles() {
	token := s.signTestToken(testSecret, []string{"SUPERUSER", "MEMBER"}, s.testTime.Add(time.Hour))

	out, err := s.service.VerifyToken(s.ctx, &VerifyTokenInput{Token: token})
	s.Require().NoError(err)
	s.Equal([]models.Role{models.RoleMember}, out.Identity.Roles)
}

func (s *IdentityServiceTestSuite) TestVerifyTokenExpired() {
	token := s.signTestToken(testSecret, "MEMBER", s.testTime.Add(-time.Minute))

	_, err := s.service.VerifyToken(s.ctx, &VerifyTokenInput{Token: token})
	s.Require().ErrorIs(err, ErrExpiredToken)
}

func (s *IdentityServiceTestSuite) TestVerifyTokenWrongSecret() {
	token := s.signTestToken("some-other-secret", "MEMBER", s.testTime.Add(time.Hour))

	_, err := s.service.VerifyToken(s.ctx, &VerifyTokenInput{Token: token})
	s.Require().ErrorIs(err, ErrInvalidToken)
}

func (s *IdentityServiceTestSuite) TestVerifyTokenGarbage() {
	_, err := s.service.VerifyToken(s.ctx, &VerifyTokenInput{Token: "not.a.token"})
	s.Require().ErrorIs(err, ErrInvalidToken)
}
