package service

import (
	"context"
	"net/http"
	"time"

	"quicknotes/internal/contract"
	"quicknotes/internal/domain/entity"
	"quicknotes/internal/infrastructure/google"
	"quicknotes/internal/infrastructure/mail"
	"quicknotes/internal/utils"
	"quicknotes/internal/utils/apierror"
	"quicknotes/internal/utils/session"
	"quicknotes/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

const dobLayout = "2006-01-02"

// externalCallTimeout bounds mail dispatch and Google verification so a
// stuck upstream cannot pin a request forever.
const externalCallTimeout = 10 * time.Second

type UserRepository interface {
	FindByEmail(email string) (*entity.User, error)
	FindByID(id int64) (*entity.User, error)
	Save(user *entity.User) error
}

type AuthService struct {
	UserRepo UserRepository
	Mailer   mail.Sender
	Google   google.Verifier
	Validate *validator.Validate
	Secret   []byte
}

func NewAuthService(userRepo UserRepository, mailer mail.Sender, verifier google.Verifier, validate *validator.Validate, secret []byte) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Mailer:   mailer,
		Google:   verifier,
		Validate: validate,
		Secret:   secret,
	}
}

// SendOTP attaches a fresh code to the account (creating it on first
// contact) and dispatches the code by email. Re-issuing invalidates any
// prior pending code. The response never echoes the code.
func (a *AuthService) SendOTP(req *contract.SendOTPRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if err := a.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	user, err := a.UserRepo.FindByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch user (%s): %v", req.Email, err)
		return apierror.InternalServerError
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		log.Errorf("failed to generate OTP: %v", err)
		return apierror.InternalServerError
	}

	now := utils.NowUTC()
	if user == nil {
		if req.Name == "" || req.DOB == "" {
			return apierror.RegistrationFieldsError
		}

		dob, perr := time.ParseInLocation(dobLayout, req.DOB, time.UTC)
		if perr != nil {
			// The datetime tag already rejects malformed dates; this only
			// guards the direct-call path.
			verr := apierror.NewStructured(http.StatusBadRequest)
			verr.Add("dob", "Value must be a date formatted as "+dobLayout)
			return verr
		}

		id, uerr := uid.Generate()
		if uerr != nil {
			log.Errorf("failed to generate user ID: %v", uerr)
			return apierror.InternalServerError
		}

		user = &entity.User{
			ID:          id,
			Email:       req.Email,
			Name:        req.Name,
			DateOfBirth: dob.UnixMilli(),
			OTP:         code,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	} else {
		user.OTP = code
		user.UpdatedAt = now
	}

	if err = a.UserRepo.Save(user); err != nil {
		log.Errorf("failed to save user (%s): %v", req.Email, err)
		return apierror.InternalServerError
	}

	ctx, cancel := context.WithTimeout(context.Background(), externalCallTimeout)
	defer cancel()

	if err = a.Mailer.SendOTP(ctx, user.Email, code); err != nil {
		log.Errorf("failed to deliver OTP to %s: %v", user.Email, err)
		return apierror.OTPDeliveryError
	}
	return nil
}

// VerifyOTP exchanges a pending code for a session token. The code is
// single-use: it is cleared before the token is minted and an already
// cleared code never verifies again.
func (a *AuthService) VerifyOTP(req *contract.VerifyOTPRequest) (*contract.SessionResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := a.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	user, err := a.UserRepo.FindByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch user (%s): %v", req.Email, err)
		return nil, apierror.InternalServerError
	}

	// Exact string equality, no normalization
	if user == nil || user.OTP == "" || user.OTP != req.OTP {
		return nil, apierror.InvalidOTPError
	}

	user.OTP = ""
	user.UpdatedAt = utils.NowUTC()
	if err = a.UserRepo.Save(user); err != nil {
		log.Errorf("failed to clear OTP for user %d: %v", user.ID, err)
		return nil, apierror.InternalServerError
	}

	ttl := session.DefaultTTL
	if req.KeepMeLoggedIn {
		ttl = session.ExtendedTTL
	}

	token, err := session.Generate(user.ID, a.Secret, ttl)
	if err != nil {
		log.Errorf("failed to sign session token for user %d: %v", user.ID, err)
		return nil, apierror.InternalServerError
	}

	return &contract.SessionResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

// GoogleLogin verifies a Google-issued identity token, creating the account
// on first sign-in. An existing account is reused untouched, its
// GoogleSubjectID is never rewritten.
func (a *AuthService) GoogleLogin(req *contract.GoogleLoginRequest) (*contract.GoogleLoginResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := a.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), externalCallTimeout)
	defer cancel()

	identity, err := a.Google.Verify(ctx, req.Token)
	if err != nil {
		log.Warnf("google token verification failed: %v", err)
		return nil, apierror.GoogleLoginError
	}

	user, err := a.UserRepo.FindByEmail(identity.Email)
	if err != nil {
		log.Errorf("failed to fetch user (%s): %v", identity.Email, err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		id, uerr := uid.Generate()
		if uerr != nil {
			log.Errorf("failed to generate user ID: %v", uerr)
			return nil, apierror.InternalServerError
		}

		now := utils.NowUTC()
		user = &entity.User{
			ID:              id,
			Email:           identity.Email,
			Name:            identity.Name,
			GoogleSubjectID: identity.Subject,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		if err = a.UserRepo.Save(user); err != nil {
			log.Errorf("failed to create user (%s): %v", identity.Email, err)
			return nil, apierror.InternalServerError
		}
	}

	token, err := session.Generate(user.ID, a.Secret, session.GoogleTTL)
	if err != nil {
		log.Errorf("failed to sign session token for user %d: %v", user.ID, err)
		return nil, apierror.InternalServerError
	}

	return &contract.GoogleLoginResponse{
		Token: token,
		User:  &contract.ProfileResponse{Name: user.Name, Email: user.Email},
	}, nil
}

// GetProfile resolves the authenticated identity back to a live account.
func (a *AuthService) GetProfile(userID int64) (*contract.ProfileResponse, apierror.ErrorResponse) {
	user, err := a.UserRepo.FindByID(userID)
	if err != nil {
		log.Errorf("failed to fetch user %d: %v", userID, err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		return nil, apierror.UserNotFoundError
	}
	return &contract.ProfileResponse{Name: user.Name, Email: user.Email}, nil
}

func toUserResponse(user *entity.User) *contract.UserResponse {
	resp := &contract.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: utils.FormatEpoch(user.CreatedAt),
		UpdatedAt: utils.FormatEpoch(user.UpdatedAt),
	}
	if user.DateOfBirth != 0 {
		resp.DOB = time.UnixMilli(user.DateOfBirth).UTC().Format(dobLayout)
	}
	return resp
}
