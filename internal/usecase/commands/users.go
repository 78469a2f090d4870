package commands

import (
	"context"

	"petpromise/internal/domain/user"
	"petpromise/internal/infra"
	"petpromise/internal/pkg/clock"
	"petpromise/internal/pkg/errs"
)

type RegisterUserInput struct {
	Email    string
	Name     string
	PhotoURL string
}

type RegisterUserResult struct {
	User *user.User
	// Created is false when the email was already registered; the existing
	// record is returned untouched.
	Created bool
}

type UserCommands interface {
	Register(ctx context.Context, in RegisterUserInput) (*RegisterUserResult, error)
}

type userCommandsImpl struct {
	users UserRepository
	clock clock.Clock
}

func NewUserCommands(users UserRepository, clk clock.Clock) UserCommands {
	return &userCommandsImpl{users: users, clock: clk}
}

func (c *userCommandsImpl) Register(ctx context.Context, in RegisterUserInput) (*RegisterUserResult, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}

	existing, err := c.users.FindByEmail(ctx, email.Value())
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}
	if existing != nil {
		return &RegisterUserResult{User: existing, Created: false}, nil
	}

	u := user.New(email, in.Name, in.PhotoURL, c.clock.Now())
	if err := c.users.Create(ctx, u); err != nil {
		return nil, errs.Wrap(err, "failed to register user")
	}
	return &RegisterUserResult{User: u, Created: true}, nil
}
