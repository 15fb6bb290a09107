package identity

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

type firebaseIdentityService struct {
	Client *auth.Client
}

func NewFirebaseIdentityService(client *auth.Client) IdentityService {
	return &firebaseIdentityService{
		Client: client,
	}
}

func (svc *firebaseIdentityService) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	record, err := svc.Client.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &User{
		UID:   record.UID,
		Email: record.Email,
	}, nil
}

func (svc *firebaseIdentityService) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	params := (&auth.UserToUpdate{}).Password(newPassword)
	_, err := svc.Client.UpdateUser(ctx, uid, params)
	return err
}
