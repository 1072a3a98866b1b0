package user_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	appuser "github.com/muhammadheryan/table-booking/application/user"
	"github.com/muhammadheryan/table-booking/cmd/config"
	"github.com/muhammadheryan/table-booking/constant"
	identitymocks "github.com/muhammadheryan/table-booking/mocks/repository/identity"
	"github.com/muhammadheryan/table-booking/model"
	identityrepo "github.com/muhammadheryan/table-booking/repository/identity"
	cerr "github.com/muhammadheryan/table-booking/utils/errors"
	"github.com/stretchr/testify/mock"
)

const (
	testEmail    = "test@example.com"
	testPassword = "Sup3rSecret!pass"
)

func testConfig(autoConfirm, suppress bool) *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			UserPoolID:           "eu-west-1_pool",
			ClientID:             "client",
			AutoConfirmUsers:     autoConfirm,
			SuppressVerification: suppress,
		},
	}
}

func assertCustomError(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestUserApp_SignUp(t *testing.T) {
	type fields struct {
		config       *config.Config
		identityRepo *identitymocks.IdentityRepository
	}
	type args struct {
		ctx context.Context
		req *model.SignUpRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.SignUpResponse
		wantErr  bool
		errCode  constant.ErrorType
		errMsg   string
	}{
		{
			name: "success: sign up sends verification",
			fields: fields{
				config:       testConfig(true, false),
				identityRepo: identitymocks.NewIdentityRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignUpRequest{Email: testEmail, Password: testPassword},
			},
			mockCall: func(f fields) {
				f.identityRepo.
					On("SignUp", mock.Anything, testEmail, testPassword).
					Return(nil).
					Once()
			},
			want: &model.SignUpResponse{Message: "User registered successfully."},
		},
		{
			name: "success: suppressed verification creates confirmed user",
			fields: fields{
				config:       testConfig(true, true),
				identityRepo: identitymocks.NewIdentityRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignUpRequest{Email: testEmail, Password: testPassword},
			},
			mockCall: func(f fields) {
				f.identityRepo.
					On("CreateConfirmedUser", mock.Anything, testEmail, testPassword).
					Return(nil).
					Once()
			},
			want: &model.SignUpResponse{Message: "User registered successfully."},
		},
		{
			name: "error: invalid email never reaches provider",
			fields: fields{
				config:       testConfig(true, false),
				identityRepo: identitymocks.NewIdentityRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignUpRequest{Email: "not-an-email", Password: testPassword},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
			errMsg:  "Invalid email format.",
		},
		{
			name: "error: weak password never reaches provider",
			fields: fields{
				config:       testConfig(true, false),
				identityRepo: identitymocks.NewIdentityRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignUpRequest{Email: testEmail, Password: "short"},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
			errMsg:  "Password does not meet security requirements.",
		},
		{
			name: "error: missing email",
			fields: fields{
				config:       testConfig(true, false),
				identityRepo: identitymocks.NewIdentityRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignUpRequest{Password: testPassword},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
			errMsg:  "Missing required field: email",
		},
		{
			name: "error: user already exists",
			fields: fields{
				config:       testConfig(true, false),
				identityRepo: identitymocks.NewIdentityRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignUpRequest{Email: testEmail, Password: testPassword},
			},
			mockCall: func(f fields) {
				f.identityRepo.
					On("SignUp", mock.Anything, testEmail, testPassword).
					Return(fmt.Errorf("sign up: %w", identityrepo.ErrUserExists)).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrUserExists,
		},
		{
			name: "error: provider rejects password",
			fields: fields{
				config:       testConfig(true, false),
				identityRepo: identitymocks.NewIdentityRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignUpRequest{Email: testEmail, Password: testPassword},
			},
			mockCall: func(f fields) {
				f.identityRepo.
					On("SignUp", mock.Anything, testEmail, testPassword).
					Return(fmt.Errorf("sign up: %w", identityrepo.ErrRejected)).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrProvider,
		},
		{
			name: "error: provider unavailable",
			fields: fields{
				config:       testConfig(true, false),
				identityRepo: identitymocks.NewIdentityRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignUpRequest{Email: testEmail, Password: testPassword},
			},
			mockCall: func(f fields) {
				f.identityRepo.
					On("SignUp", mock.Anything, testEmail, testPassword).
					Return(errors.New("dial tcp: timeout")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.identityRepo)

			got, err := app.SignUp(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SignUp() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertCustomError(t, err, tt.errCode)
				if tt.errMsg != "" && err.Error() != tt.errMsg {
					t.Fatalf("error message = %q, want %q", err.Error(), tt.errMsg)
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("SignUp() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_SignIn(t *testing.T) {
	type fields struct {
		config       *config.Config
		identityRepo *identitymocks.IdentityRepository
	}
	type args struct {
		ctx context.Context
		req *model.SignInRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.SignInResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: confirmed user",
			fields: fields{
				config:       testConfig(true, false),
				identityRepo: identitymocks.NewIdentityRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignInRequest{Email: testEmail, Password: testPassword},
			},
			mockCall: func(f fields) {
				f.identityRepo.
					On("GetUserStatus", mock.Anything, testEmail).
					Return(model.UserStatusConfirmed, nil).
					Once()
				f.identityRepo.
					On("Authenticate", mock.Anything, testEmail, testPassword).
					Return(&model.AuthTokens{AccessToken: "access-token", IDToken: "id-token"}, nil).
					Once()
			},
			want: &model.SignInResponse{AccessToken: "access-token"},
		},
		{
			name: "success: unconfirmed user is auto confirmed",
			fields: fields{
				config:       testConfig(true, false),
				identityRepo: identitymocks.NewIdentityRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignInRequest{Email: testEmail, Password: testPassword},
			},
			mockCall: func(f fields) {
				f.identityRepo.
					On("GetUserStatus", mock.Anything, testEmail).
					Return(model.UserStatusUnconfirmed, nil).
					Once()
				f.identityRepo.
					On("ConfirmUser", mock.Anything, testEmail).
					Return(nil).
					Once()
				f.identityRepo.
					On("Authenticate", mock.Anything, testEmail, testPassword).
					Return(&model.AuthTokens{AccessToken: "access-token"}, nil).
					Once()
			},
			want: &model.SignInResponse{AccessToken: "access-token"},
		},
		{
			name: "error: unconfirmed user with auto confirm disabled",
			fields: fields{
				config:       testConfig(false, false),
				identityRepo: identitymocks.NewIdentityRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignInRequest{Email: testEmail, Password: testPassword},
			},
			mockCall: func(f fields) {
				f.identityRepo.
					On("GetUserStatus", mock.Anything, testEmail).
					Return(model.UserStatusUnconfirmed, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrUserNotConfirmed,
		},
		{
			name: "error: invalid email format",
			fields: fields{
				config:       testConfig(true, false),
				identityRepo: identitymocks.NewIdentityRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignInRequest{Email: "bad@", Password: testPassword},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: user does not exist",
			fields: fields{
				config:       testConfig(true, false),
				identityRepo: identitymocks.NewIdentityRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignInRequest{Email: testEmail, Password: testPassword},
			},
			mockCall: func(f fields) {
				f.identityRepo.
					On("GetUserStatus", mock.Anything, testEmail).
					Return(model.UserStatus(""), fmt.Errorf("get user: %w", identityrepo.ErrUserNotFound)).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrUserNotFound,
		},
		{
			name: "error: wrong password",
			fields: fields{
				config:       testConfig(true, false),
				identityRepo: identitymocks.NewIdentityRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignInRequest{Email: testEmail, Password: testPassword},
			},
			mockCall: func(f fields) {
				f.identityRepo.
					On("GetUserStatus", mock.Anything, testEmail).
					Return(model.UserStatusConfirmed, nil).
					Once()
				f.identityRepo.
					On("Authenticate", mock.Anything, testEmail, testPassword).
					Return(nil, fmt.Errorf("authenticate: %w", identityrepo.ErrNotAuthorized)).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
		{
			name: "error: confirm fails",
			fields: fields{
				config:       testConfig(true, false),
				identityRepo: identitymocks.NewIdentityRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignInRequest{Email: testEmail, Password: testPassword},
			},
			mockCall: func(f fields) {
				f.identityRepo.
					On("GetUserStatus", mock.Anything, testEmail).
					Return(model.UserStatusUnconfirmed, nil).
					Once()
				f.identityRepo.
					On("ConfirmUser", mock.Anything, testEmail).
					Return(errors.New("throttled")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: provider failure on authenticate",
			fields: fields{
				config:       testConfig(true, false),
				identityRepo: identitymocks.NewIdentityRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignInRequest{Email: testEmail, Password: testPassword},
			},
			mockCall: func(f fields) {
				f.identityRepo.
					On("GetUserStatus", mock.Anything, testEmail).
					Return(model.UserStatusConfirmed, nil).
					Once()
				f.identityRepo.
					On("Authenticate", mock.Anything, testEmail, testPassword).
					Return(nil, errors.New("service unavailable")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.identityRepo)

			got, err := app.SignIn(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SignIn() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertCustomError(t, err, tt.errCode)
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("SignIn() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-sub",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	s, err := token.SignedString([]byte("any-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestUserApp_ValidateToken(t *testing.T) {
	validToken := signedToken(t, time.Now().Add(time.Hour))
	expiredToken := signedToken(t, time.Now().Add(-time.Minute))

	type fields struct {
		config       *config.Config
		identityRepo *identitymocks.IdentityRepository
	}
	tests := []struct {
		name        string
		fields      fields
		tokenString string
		mockCall    func(f fields)
		want        *model.Identity
		wantErr     bool
		errCode     constant.ErrorType
	}{
		{
			name: "success: provider accepts token",
			fields: fields{
				config:       testConfig(true, false),
				identityRepo: identitymocks.NewIdentityRepository(t),
			},
			tokenString: validToken,
			mockCall: func(f fields) {
				f.identityRepo.
					On("GetUser", mock.Anything, validToken).
					Return(&model.Identity{Username: "user-sub", Email: testEmail}, nil).
					Once()
			},
			want: &model.Identity{Username: "user-sub", Email: testEmail},
		},
		{
			name: "error: malformed token is rejected locally",
			fields: fields{
				config:       testConfig(true, false),
				identityRepo: identitymocks.NewIdentityRepository(t),
			},
			tokenString: "not-a-jwt",
			wantErr:     true,
			errCode:     constant.ErrUnauthorize,
		},
		{
			name: "error: expired token is rejected locally",
			fields: fields{
				config:       testConfig(true, false),
				identityRepo: identitymocks.NewIdentityRepository(t),
			},
			tokenString: expiredToken,
			wantErr:     true,
			errCode:     constant.ErrUnauthorize,
		},
		{
			name: "error: revoked token",
			fields: fields{
				config:       testConfig(true, false),
				identityRepo: identitymocks.NewIdentityRepository(t),
			},
			tokenString: validToken,
			mockCall: func(f fields) {
				f.identityRepo.
					On("GetUser", mock.Anything, validToken).
					Return(nil, fmt.Errorf("get user: %w", identityrepo.ErrNotAuthorized)).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name: "error: provider rejects token parameter",
			fields: fields{
				config:       testConfig(true, false),
				identityRepo: identitymocks.NewIdentityRepository(t),
			},
			tokenString: validToken,
			mockCall: func(f fields) {
				f.identityRepo.
					On("GetUser", mock.Anything, validToken).
					Return(nil, fmt.Errorf("get user: %w", identityrepo.ErrRejected)).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name: "error: provider unreachable is internal",
			fields: fields{
				config:       testConfig(true, false),
				identityRepo: identitymocks.NewIdentityRepository(t),
			},
			tokenString: validToken,
			mockCall: func(f fields) {
				f.identityRepo.
					On("GetUser", mock.Anything, validToken).
					Return(nil, errors.New("dial tcp: i/o timeout")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.identityRepo)

			got, err := app.ValidateToken(context.Background(), tt.tokenString)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateToken() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertCustomError(t, err, tt.errCode)
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ValidateToken() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
