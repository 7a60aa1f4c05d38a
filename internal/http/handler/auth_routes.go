package handler

import (
	"net/http"

	"quicknotes/internal/contract"
	"quicknotes/internal/utils"
	"quicknotes/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type AuthService interface {
	SendOTP(req *contract.SendOTPRequest) apierror.ErrorResponse
	VerifyOTP(req *contract.VerifyOTPRequest) (*contract.SessionResponse, apierror.ErrorResponse)
	GoogleLogin(req *contract.GoogleLoginRequest) (*contract.GoogleLoginResponse, apierror.ErrorResponse)
	GetProfile(userID int64) (*contract.ProfileResponse, apierror.ErrorResponse)
}

type DefaultAuthRoute struct {
	AuthService AuthService
}

func NewAuthDefault(authService AuthService) *DefaultAuthRoute {
	return &DefaultAuthRoute{AuthService: authService}
}

func (a *DefaultAuthRoute) SendOTP(c echo.Context) error {
	var req contract.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	if apierr := a.AuthService.SendOTP(&req); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "OTP sent successfully"}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAuthRoute) VerifyOTP(c echo.Context) error {
	var req contract.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := a.AuthService.VerifyOTP(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (a *DefaultAuthRoute) GoogleLogin(c echo.Context) error {
	var req contract.GoogleLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := a.AuthService.GoogleLogin(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (a *DefaultAuthRoute) Me(c echo.Context) error {
	userID, cerr := utils.GetUserIDFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	resp, apierr := a.AuthService.GetProfile(userID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
