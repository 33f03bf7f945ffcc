package services

import (
	"context"
	"testing"
	"time"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/repository"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func registration() RegisterInput {
	return RegisterInput{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     " Asha@Example.com ",
		Phone:     "9876543210",
		Password:  "correct-horse",
		Address:   "12 MG Road",
		City:      "Pune",
		State:     "Maharashtra",
		Zipcode:   "411001",
	}
}

func authFixture() (*AuthService, *fakeUsers, *utils.TokenManager) {
	users := &fakeUsers{}
	tokens := utils.NewTokenManager("test-secret", 30*24*time.Hour)
	return NewAuthService(users, tokens, bcrypt.MinCost), users, tokens
}

func TestRegister(t *testing.T) {
	svc, users, _ := authFixture()

	u, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", u.Email)
	assert.Equal(t, models.RoleUser, u.Role)
	assert.NotEqual(t, "correct-horse", users.items[0].Password)

	_, err = svc.Register(context.Background(), registration())
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestRegisterValidation(t *testing.T) {
	svc, users, _ := authFixture()

	tests := []struct {
		name   string
		mutate func(*RegisterInput)
		msg    string
	}{
		{"short password", func(in *RegisterInput) { in.Password = "short" }, "password must be at least 8 characters"},
		{"bad email", func(in *RegisterInput) { in.Email = "asha" }, "email must be a valid email"},
		{"missing city", func(in *RegisterInput) { in.City = "" }, "city is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := registration()
			tt.mutate(&in)
			_, err := svc.Register(context.Background(), in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.msg, verr.Msg)
		})
	}
	assert.Empty(t, users.items)
}

func TestLogin(t *testing.T) {
	svc, _, tokens := authFixture()
	u, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)

	for _, identifier := range []string{"asha@example.com", "9876543210"} {
		token, err := svc.Login(context.Background(), LoginInput{Identifier: identifier, Password: "correct-horse"})
		require.NoError(t, err)

		claims, err := tokens.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, u.ID.Hex(), claims.UserID)
		assert.Equal(t, "user", claims.Role)
		assert.Equal(t, "Asha", claims.FirstName)
		assert.InDelta(t, time.Now().Add(30*24*time.Hour).Unix(), claims.ExpiresAt, 5)
	}

	_, err = svc.Login(context.Background(), LoginInput{Identifier: "asha@example.com", Password: "wrong-horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), LoginInput{Identifier: "nobody@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), LoginInput{Identifier: "asha@example.com"})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestBootstrapAdminAndMe(t *testing.T) {
	svc, _, _ := authFixture()

	admin, err := svc.Bootstrap(context.Background(), registration(), models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())

	me, err := svc.Me(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.Equal(t, admin.Email, me.Email)
}

func TestUpdateProfileKeepsEmptyFields(t *testing.T) {
	auth, users, _ := authFixture()
	u, err := auth.Register(context.Background(), registration())
	require.NoError(t, err)

	svc := NewUserService(users)
	updated, err := svc.UpdateProfile(context.Background(), u.ID, ProfileInput{City: "Mumbai", Phone: "  "})
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", updated.City)
	assert.Equal(t, "9876543210", updated.Phone)
	assert.Equal(t, "Asha", updated.FirstName)

	stored, err := svc.Profile(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", stored.City)
	assert.Equal(t, u.Password, stored.Password)
}
