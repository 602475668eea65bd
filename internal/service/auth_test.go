package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/parisbureaux/bureaux-api/internal/domain"
	"github.com/parisbureaux/bureaux-api/internal/repository"
)

type fakeUserRepo struct {
	byEmail map[string]domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := f.byEmail[user.Email]; ok {
		return domain.User{}, repository.ErrUserEmailExists
	}

	user.ID = uint(len(f.byEmail) + 1)
	f.byEmail[user.Email] = user

	return user, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func TestAuthService_Signup_HashesPassword(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]domain.User{}}
	svc := NewAuthService(repo)

	created, err := svc.Signup(context.Background(), domain.User{
		Email:    "admin@bureaux.paris",
		Password: "Secret1234",
		Name:     "Admin",
	})

	require.NoError(t, err)
	assert.NotEqual(t, "Secret1234", created.Password)
	stored := repo.byEmail["admin@bureaux.paris"]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("Secret1234")))
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]domain.User{
		"admin@bureaux.paris": {ID: 1, Email: "admin@bureaux.paris"},
	}}
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{
		Email:    "admin@bureaux.paris",
		Password: "Secret1234",
	})

	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestAuthService_Login(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]domain.User{}}
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{
		Email:    "admin@bureaux.paris",
		Password: "Secret1234",
	})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		user, err := svc.Login(context.Background(), "admin@bureaux.paris", "Secret1234")
		require.NoError(t, err)
		assert.Equal(t, "admin@bureaux.paris", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "admin@bureaux.paris", "nope")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "ghost@bureaux.paris", "Secret1234")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
