package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/muhammadheryan/table-booking/model"
)

var (
	ErrUserExists       = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrUserNotConfirmed = errors.New("user not confirmed")
	ErrNotAuthorized    = errors.New("not authorized")
	// ErrRejected covers requests the provider refuses as invalid, such as a
	// password that fails the pool policy.
	ErrRejected = errors.New("rejected by identity provider")
)

// CognitoAPI is the subset of the Cognito user pool client the repository uses.
type CognitoAPI interface {
	SignUp(ctx context.Context, params *cip.SignUpInput, optFns ...func(*cip.Options)) (*cip.SignUpOutput, error)
	AdminCreateUser(ctx context.Context, params *cip.AdminCreateUserInput, optFns ...func(*cip.Options)) (*cip.AdminCreateUserOutput, error)
	AdminSetUserPassword(ctx context.Context, params *cip.AdminSetUserPasswordInput, optFns ...func(*cip.Options)) (*cip.AdminSetUserPasswordOutput, error)
	AdminDeleteUser(ctx context.Context, params *cip.AdminDeleteUserInput, optFns ...func(*cip.Options)) (*cip.AdminDeleteUserOutput, error)
	AdminGetUser(ctx context.Context, params *cip.AdminGetUserInput, optFns ...func(*cip.Options)) (*cip.AdminGetUserOutput, error)
	AdminConfirmSignUp(ctx context.Context, params *cip.AdminConfirmSignUpInput, optFns ...func(*cip.Options)) (*cip.AdminConfirmSignUpOutput, error)
	AdminInitiateAuth(ctx context.Context, params *cip.AdminInitiateAuthInput, optFns ...func(*cip.Options)) (*cip.AdminInitiateAuthOutput, error)
	GetUser(ctx context.Context, params *cip.GetUserInput, optFns ...func(*cip.Options)) (*cip.GetUserOutput, error)
}

var _ CognitoAPI = (*cip.Client)(nil)

type IdentityRepository interface {
	// SignUp registers the user; the pool sends its verification message.
	SignUp(ctx context.Context, email, password string) error
	// CreateConfirmedUser registers the user with a permanent password and no
	// verification message. A user whose password is refused is deleted again.
	CreateConfirmedUser(ctx context.Context, email, password string) error
	GetUserStatus(ctx context.Context, email string) (model.UserStatus, error)
	ConfirmUser(ctx context.Context, email string) error
	Authenticate(ctx context.Context, email, password string) (*model.AuthTokens, error)
	GetUser(ctx context.Context, accessToken string) (*model.Identity, error)
}

type Cognito struct {
	client     CognitoAPI
	userPoolID string
	clientID   string
}

func NewIdentityRepository(client CognitoAPI, userPoolID, clientID string) IdentityRepository {
	return &Cognito{client: client, userPoolID: userPoolID, clientID: clientID}
}

func (c *Cognito) SignUp(ctx context.Context, email, password string) error {
	_, err := c.client.SignUp(ctx, &cip.SignUpInput{
		ClientId: aws.String(c.clientID),
		Username: aws.String(email),
		Password: aws.String(password),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(email)},
		},
	})
	if err != nil {
		return fmt.Errorf("sign up %s: %w", email, mapError(err))
	}
	return nil
}

func (c *Cognito) CreateConfirmedUser(ctx context.Context, email, password string) error {
	_, err := c.client.AdminCreateUser(ctx, &cip.AdminCreateUserInput{
		UserPoolId:    aws.String(c.userPoolID),
		Username:      aws.String(email),
		MessageAction: types.MessageActionTypeSuppress,
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(email)},
			{Name: aws.String("email_verified"), Value: aws.String("true")},
		},
	})
	if err != nil {
		return fmt.Errorf("create user %s: %w", email, mapError(err))
	}

	_, err = c.client.AdminSetUserPassword(ctx, &cip.AdminSetUserPasswordInput{
		UserPoolId: aws.String(c.userPoolID),
		Username:   aws.String(email),
		Password:   aws.String(password),
		Permanent:  true,
	})
	if err != nil {
		// a user left without a password would block every retry as already existing
		_, delErr := c.client.AdminDeleteUser(context.WithoutCancel(ctx), &cip.AdminDeleteUserInput{
			UserPoolId: aws.String(c.userPoolID),
			Username:   aws.String(email),
		})
		if delErr != nil {
			return fmt.Errorf("set password %s: %w (delete user: %v)", email, mapError(err), delErr)
		}
		return fmt.Errorf("set password %s: %w", email, mapError(err))
	}
	return nil
}

func (c *Cognito) GetUserStatus(ctx context.Context, email string) (model.UserStatus, error) {
	out, err := c.client.AdminGetUser(ctx, &cip.AdminGetUserInput{
		UserPoolId: aws.String(c.userPoolID),
		Username:   aws.String(email),
	})
	if err != nil {
		return "", fmt.Errorf("get user %s: %w", email, mapError(err))
	}
	return model.UserStatus(out.UserStatus), nil
}

func (c *Cognito) ConfirmUser(ctx context.Context, email string) error {
	_, err := c.client.AdminConfirmSignUp(ctx, &cip.AdminConfirmSignUpInput{
		UserPoolId: aws.String(c.userPoolID),
		Username:   aws.String(email),
	})
	if err != nil {
		return fmt.Errorf("confirm user %s: %w", email, mapError(err))
	}
	return nil
}

func (c *Cognito) Authenticate(ctx context.Context, email, password string) (*model.AuthTokens, error) {
	out, err := c.client.AdminInitiateAuth(ctx, &cip.AdminInitiateAuthInput{
		AuthFlow:   types.AuthFlowTypeAdminNoSrpAuth,
		UserPoolId: aws.String(c.userPoolID),
		ClientId:   aws.String(c.clientID),
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("authenticate %s: %w", email, mapError(err))
	}

	// a challenge (e.g. NEW_PASSWORD_REQUIRED) comes back without tokens
	if out.AuthenticationResult == nil || aws.ToString(out.AuthenticationResult.AccessToken) == "" {
		return nil, fmt.Errorf("authenticate %s: challenge %q: %w", email, out.ChallengeName, ErrNotAuthorized)
	}

	return &model.AuthTokens{
		AccessToken: aws.ToString(out.AuthenticationResult.AccessToken),
		IDToken:     aws.ToString(out.AuthenticationResult.IdToken),
		ExpiresIn:   out.AuthenticationResult.ExpiresIn,
	}, nil
}

func (c *Cognito) GetUser(ctx context.Context, accessToken string) (*model.Identity, error) {
	out, err := c.client.GetUser(ctx, &cip.GetUserInput{
		AccessToken: aws.String(accessToken),
	})
	if err != nil {
		return nil, fmt.Errorf("get user by token: %w", mapError(err))
	}

	identity := &model.Identity{Username: aws.ToString(out.Username)}
	for _, attr := range out.UserAttributes {
		if aws.ToString(attr.Name) == "email" {
			identity.Email = aws.ToString(attr.Value)
		}
	}
	return identity, nil
}

// mapError translates Cognito exceptions into the package sentinels, keeping
// the Cognito error in the chain.
func mapError(err error) error {
	var (
		exists       *types.UsernameExistsException
		notFound     *types.UserNotFoundException
		notConfirmed *types.UserNotConfirmedException
		notAuth      *types.NotAuthorizedException
		badPassword  *types.InvalidPasswordException
		badParam     *types.InvalidParameterException
	)
	switch {
	case errors.As(err, &exists):
		return fmt.Errorf("%w: %w", ErrUserExists, err)
	case errors.As(err, &notFound):
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	case errors.As(err, &notConfirmed):
		return fmt.Errorf("%w: %w", ErrUserNotConfirmed, err)
	case errors.As(err, &notAuth):
		return fmt.Errorf("%w: %w", ErrNotAuthorized, err)
	case errors.As(err, &badPassword), errors.As(err, &badParam):
		return fmt.Errorf("%w: %w", ErrRejected, err)
	default:
		return err
	}
}
