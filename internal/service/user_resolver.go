package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/missions/internal/error_values"
	"github.com/limbo/missions/internal/repository"
)

type TokenParser interface {
	ParseUserID(token string) (uuid.UUID, error)
}

type UserResolver struct {
	tokens    TokenParser
	usersRepo repository.UsersRepositoryI
}

func NewUserResolver(tokens TokenParser, usersRepo repository.UsersRepositoryI) *UserResolver {
	if tokens == nil || usersRepo == nil {
		log.Fatal("on user resolver provided nil dependencies")
	}
	return &UserResolver{
		tokens:    tokens,
		usersRepo: usersRepo,
	}
}

func (ur *UserResolver) ResolveUser(ctx context.Context, token string) (uuid.UUID, error) {
	uid, err := ur.tokens.ParseUserID(token)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidToken) {
			return uuid.UUID{}, err
		}
		return uuid.UUID{}, errors.New("token parsing error: " + err.Error())
	}
	user, err := ur.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return uuid.UUID{}, err
		}
		return uuid.UUID{}, errors.New("repository error: " + err.Error())
	}
	if user.Suspended {
		return uuid.UUID{}, errorvalues.ErrUserSuspended
	}
	return uid, nil
}
