package handlers

import (
	"log"
	"propertyHub/internal/errs"
	"propertyHub/internal/models"
	"propertyHub/internal/msgs"

	"github.com/gin-gonic/gin"
)

// Login godoc
// @Summary      Login to an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /api/login [post]
func (rh *RestHandler) Login(ctx *gin.Context) {
	var loginData models.LoginRequestBody
	if err := ctx.BindJSON(&loginData); err != nil {
		log.Println("Error login data json binding:", err)
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	loginResponse, loginErrs := rh.authService.Login(&loginData)
	if len(loginErrs) > 0 {
		rh.abortWithErrors(ctx, loginErrs)
		return
	}

	rh.ok(ctx, loginResponse)
}

// Register godoc
// @Summary      Register a new account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /api/register [post]
func (rh *RestHandler) Register(ctx *gin.Context) {
	var user models.User
	if err := ctx.BindJSON(&user); err != nil {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	created, registerErrs := rh.authService.Register(&user)
	if len(registerErrs) > 0 {
		rh.abortWithErrors(ctx, registerErrs)
		return
	}

	ctx.JSON(200, models.Response{
		Success: true,
		Message: msgs.MsgUserCreatedSuccessfully,
		Data:    created.ToUserResponse(),
	})
}
