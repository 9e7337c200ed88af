package organizationuser

import (
	"errors"

	"connectrpc.com/connect"
)

var (
	ErrOrganizationUserNotFound = connect.NewError(connect.CodeNotFound, errors.New("organization user not found"))
	ErrUserNotFound             = connect.NewError(connect.CodeNotFound, errors.New("User not found."))
	ErrCannotRemoveYourself     = connect.NewError(connect.CodeInvalidArgument, errors.New("You cannot remove yourself."))
	ErrOnlyOwnersCanDeleteOwner = connect.NewError(connect.CodeInvalidArgument, errors.New("Only owners can delete other owners."))
	ErrNoConfirmedOwner         = connect.NewError(connect.CodeInvalidArgument, errors.New("Organization must have at least one confirmed owner."))
	ErrUsersInvalid             = connect.NewError(connect.CodeInvalidArgument, errors.New("Users invalid."))
	ErrPermissionDenied         = connect.NewError(connect.CodePermissionDenied, errors.New("you are not allowed to manage users of this organization"))
	ErrInvalidRequestBody       = connect.NewError(connect.CodeInvalidArgument, errors.New("invalid request body"))
)

// errorMessage returns the client facing message of err, without the code prefix
// connect adds to Error().
func errorMessage(err error) string {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr.Message()
	}
	return err.Error()
}
