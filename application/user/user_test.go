package user_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	appuser "github.com/emirhly/marketplace/application/user"
	"github.com/emirhly/marketplace/cmd/config"
	"github.com/emirhly/marketplace/constant"
	redismocks "github.com/emirhly/marketplace/mocks/repository/redis"
	usermocks "github.com/emirhly/marketplace/mocks/repository/user"
	"github.com/emirhly/marketplace/model"
	cerr "github.com/emirhly/marketplace/utils/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-key-for-jwt-signing",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
	}
}

func assertErrCode(t *testing.T, err error, code constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[code] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[code])
	}
}

func TestUserApp_Register(t *testing.T) {
	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}
	type args struct {
		ctx context.Context
		req *model.RegisterRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.RegisterResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new user",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					UserID:      "ayse42",
					UserName:    "Ayse Yilmaz",
					UserCity:    "Istanbul",
					UserAddress: "Kadikoy",
					UserPhone:   "05301234567",
					Password:    "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("GetByID", mock.Anything, "ayse42").
					Return(nil, nil).
					Once()

				f.userRepo.
					On("GetByPhone", mock.Anything, "05301234567").
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.UserID == "ayse42" &&
							ent.UserName == "Ayse Yilmaz" &&
							ent.UserPhone == "05301234567" &&
							ent.PasswordHash != "" &&
							ent.PasswordHash != "password123"
					})).
					Return(nil).
					Once()
			},
			want: &model.RegisterResponse{
				Message: "User registered successfully",
				UserID:  "ayse42",
			},
			wantErr: false,
		},
		{
			name: "error: user id already exists",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					UserID:      "ayse42",
					UserName:    "Ayse Yilmaz",
					UserCity:    "Istanbul",
					UserAddress: "Kadikoy",
					UserPhone:   "05301234567",
					Password:    "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("GetByID", mock.Anything, "ayse42").
					Return(&model.UserEntity{UserID: "ayse42"}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrUserIDExists,
		},
		{
			name: "error: phone number already registered",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					UserID:      "mehmet01",
					UserName:    "Mehmet Demir",
					UserCity:    "Ankara",
					UserAddress: "Cankaya",
					UserPhone:   "05301234567",
					Password:    "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("GetByID", mock.Anything, "mehmet01").
					Return(nil, nil).
					Once()

				f.userRepo.
					On("GetByPhone", mock.Anything, "05301234567").
					Return(&model.UserEntity{UserID: "ayse42", UserPhone: "05301234567"}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrPhoneExists,
		},
		{
			name: "error: repository GetByID returns error",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					UserID:      "ayse42",
					UserName:    "Ayse Yilmaz",
					UserCity:    "Istanbul",
					UserAddress: "Kadikoy",
					UserPhone:   "05301234567",
					Password:    "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("GetByID", mock.Anything, "ayse42").
					Return(nil, errors.New("db error")).
					Once()
			},
			want:    nil,
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
			app := appuser.NewUserApp(tt.fields.config, tt.fields.userRepo, tt.fields.redisRepo)

			got, err := app.Register(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Register() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.LoginRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login with correct credentials",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			req: &model.LoginRequest{
				UserID:   "ayse42",
				Password: "password123",
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("GetByID", mock.Anything, "ayse42").
					Return(&model.UserEntity{
						UserID:       "ayse42",
						UserName:     "Ayse Yilmaz",
						PasswordHash: string(hashed),
					}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), "ayse42", time.Hour).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: wrong password",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			req: &model.LoginRequest{
				UserID:   "ayse42",
				Password: "wrongpassword",
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("GetByID", mock.Anything, "ayse42").
					Return(&model.UserEntity{
						UserID:       "ayse42",
						PasswordHash: string(hashed),
					}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
		{
			name: "error: unknown user maps to the same generic error",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			req: &model.LoginRequest{
				UserID:   "nobody",
				Password: "password123",
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("GetByID", mock.Anything, "nobody").
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.userRepo, tt.fields.redisRepo)

			token, res, err := app.Login(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}

			if res == nil || res.UserID != tt.req.UserID {
				t.Fatalf("Login() response = %+v, want user id %s", res, tt.req.UserID)
			}

			// The decoded token subject must equal the supplied user id
			parsed, perr := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(*jwt.Token) (interface{}, error) {
				return []byte(tt.fields.config.Auth.JWTSecret), nil
			})
			if perr != nil || !parsed.Valid {
				t.Fatalf("token does not parse: %v", perr)
			}
			claims := parsed.Claims.(*jwt.RegisteredClaims)
			if claims.Subject != tt.req.UserID {
				t.Fatalf("token subject = %s, want %s", claims.Subject, tt.req.UserID)
			}
			if claims.ID == "" {
				t.Fatal("token missing jti")
			}
		})
	}
}

func TestUserApp_ValidateToken(t *testing.T) {
	cfg := testConfig()

	t.Run("success: valid token with live session", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRedisRepository(t)
		app := appuser.NewUserApp(cfg, userRepo, redisRepo)

		redisRepo.
			On("SetSession", mock.Anything, mock.AnythingOfType("string"), "ayse42", time.Hour).
			Return(nil).
			Once()
		hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		userRepo.
			On("GetByID", mock.Anything, "ayse42").
			Return(&model.UserEntity{UserID: "ayse42", PasswordHash: string(hashed)}, nil).
			Once()

		token, _, err := app.Login(context.Background(), &model.LoginRequest{UserID: "ayse42", Password: "password123"})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		redisRepo.
			On("GetSession", mock.Anything, mock.AnythingOfType("string")).
			Return("ayse42", nil).
			Once()

		subject, err := app.ValidateToken(context.Background(), token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if subject != "ayse42" {
			t.Fatalf("subject = %s, want ayse42", subject)
		}
	})

	t.Run("error: garbage token", func(t *testing.T) {
		app := appuser.NewUserApp(cfg, usermocks.NewUserRepository(t), redismocks.NewRedisRepository(t))

		if _, err := app.ValidateToken(context.Background(), "not-a-token"); err == nil {
			t.Fatal("ValidateToken() expected error for garbage token")
		}
	})

	t.Run("error: expired token", func(t *testing.T) {
		app := appuser.NewUserApp(cfg, usermocks.NewUserRepository(t), redismocks.NewRedisRepository(t))

		claims := jwt.RegisteredClaims{
			Subject:   "ayse42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			ID:        "expired-jti",
		}
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Auth.JWTSecret))

		if _, err := app.ValidateToken(context.Background(), token); err == nil {
			t.Fatal("ValidateToken() expected error for expired token")
		}
	})

	t.Run("error: session user mismatch", func(t *testing.T) {
		redisRepo := redismocks.NewRedisRepository(t)
		app := appuser.NewUserApp(cfg, usermocks.NewUserRepository(t), redisRepo)

		claims := jwt.RegisteredClaims{
			Subject:   "ayse42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        "some-jti",
		}
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Auth.JWTSecret))

		redisRepo.
			On("GetSession", mock.Anything, "some-jti").
			Return("someoneelse", nil).
			Once()

		if _, err := app.ValidateToken(context.Background(), token); err == nil {
			t.Fatal("ValidateToken() expected error for session mismatch")
		}
	})
}

func TestUserApp_UpdateProfile(t *testing.T) {
	cfg := testConfig()

	t.Run("error: updating someone else's profile", func(t *testing.T) {
		app := appuser.NewUserApp(cfg, usermocks.NewUserRepository(t), redismocks.NewRedisRepository(t))

		err := app.UpdateProfile(context.Background(), "ayse42", "mehmet01", &model.UserUpdateRequest{
			UserName:    "X",
			UserCity:    "Y",
			UserAddress: "Z",
			UserPhone:   "05300000000",
		})
		assertErrCode(t, err, constant.ErrForbidden)
	})

	t.Run("success: update with new password re-hashes", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		app := appuser.NewUserApp(cfg, userRepo, redismocks.NewRedisRepository(t))

		newPassword := "newpassword456"
		userRepo.
			On("Update", mock.Anything, "ayse42", mock.MatchedBy(func(u *model.UserProfileUpdate) bool {
				if u.PasswordHash == nil {
					return false
				}
				return u.UserName == "Ayse Y." &&
					bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(newPassword)) == nil
			})).
			Return(nil).
			Once()

		err := app.UpdateProfile(context.Background(), "ayse42", "ayse42", &model.UserUpdateRequest{
			UserName:    "Ayse Y.",
			UserCity:    "Istanbul",
			UserAddress: "Kadikoy",
			UserPhone:   "05301234567",
			NewPassword: &newPassword,
		})
		if err != nil {
			t.Fatalf("UpdateProfile() error = %v", err)
		}
	})

	t.Run("success: update without password leaves hash untouched", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		app := appuser.NewUserApp(cfg, userRepo, redismocks.NewRedisRepository(t))

		userRepo.
			On("Update", mock.Anything, "ayse42", mock.MatchedBy(func(u *model.UserProfileUpdate) bool {
				return u.PasswordHash == nil
			})).
			Return(nil).
			Once()

		err := app.UpdateProfile(context.Background(), "ayse42", "ayse42", &model.UserUpdateRequest{
			UserName:    "Ayse Y.",
			UserCity:    "Istanbul",
			UserAddress: "Kadikoy",
			UserPhone:   "05301234567",
		})
		if err != nil {
			t.Fatalf("UpdateProfile() error = %v", err)
		}
	})
}

func TestUserApp_Me(t *testing.T) {
	cfg := testConfig()

	t.Run("error: subject no longer exists", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		app := appuser.NewUserApp(cfg, userRepo, redismocks.NewRedisRepository(t))

		userRepo.
			On("GetByID", mock.Anything, "ghost").
			Return(nil, nil).
			Once()

		_, err := app.Me(context.Background(), "ghost")
		assertErrCode(t, err, constant.ErrNotFound)
	})

	t.Run("success: returns stored profile", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		app := appuser.NewUserApp(cfg, userRepo, redismocks.NewRedisRepository(t))

		want := &model.UserEntity{
			UserID:    "ayse42",
			UserName:  "Ayse Yilmaz",
			UserCity:  "Istanbul",
			UserPhone: "05301234567",
		}
		userRepo.
			On("GetByID", mock.Anything, "ayse42").
			Return(want, nil).
			Once()

		got, err := app.Me(context.Background(), "ayse42")
		if err != nil {
			t.Fatalf("Me() error = %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Me() = %+v, want %+v", got, want)
		}
	})
}
