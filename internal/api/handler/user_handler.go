package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Aman7097/taskie/internal/api/middleware"
	"github.com/Aman7097/taskie/internal/core/domain"
	"github.com/Aman7097/taskie/internal/core/ports"
)

// UserHandler handles profile maintenance for the authenticated user.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" validate:"omitempty,email"`
}

// UpdateProfile handles PUT /users/profile.
//
// @Summary      Update name and email
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Router       /users/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	userID, _ := c.Get(middleware.ContextUserID).(string)
	user, err := h.service.UpdateProfile(c.Request().Context(), userID, ports.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateAvatar handles PATCH /users/profile/avatar. Expects a multipart form
// with an "avatar" file field.
//
// @Summary      Replace the profile avatar
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar  formData  file  true  "Image file"
// @Success      200     {object}  userResponse
// @Failure      400     {object}  map[string]string
// @Router       /users/profile/avatar [patch]
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return domain.ErrNoFile
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	userID, _ := c.Get(middleware.ContextUserID).(string)
	user, err := h.service.UpdateAvatar(c.Request().Context(), userID, ports.AvatarUpload{
		Filename: fileHeader.Filename,
		Content:  src,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
