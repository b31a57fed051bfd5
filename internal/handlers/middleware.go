package handlers

import (
	"net/http"
	"propertyHub/internal/errs"
	"propertyHub/internal/models"
	"propertyHub/internal/msgs"
	"propertyHub/internal/utils"
	"strings"

	"github.com/gin-gonic/gin"
)

// MustAuthenticateMiddleware verifies the bearer token and loads the fresh
// user row. The role is read from the database rather than the claims so a
// role change takes effect on the next request, not at token expiry.
func (rh *RestHandler) MustAuthenticateMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		jwtToken := ctx.GetHeader("Authorization")
		if jwtToken != "" && strings.Contains(jwtToken, "Bearer") {
			jwtToken = strings.Replace(jwtToken, "Bearer ", "", 1)
		}

		if jwtToken == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgYouMustLoginFirst,
				Errors:  []error{errs.ErrUnauthorized},
			})
			return
		}

		claims, err := utils.VerifyToken(jwtToken, utils.GetJwtKey())
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgYouMustLoginFirst,
				Errors:  []error{errs.ErrUnauthorized},
			})
			return
		}

		user, userErrs := rh.authService.GetUserByID(claims.ID)
		if len(userErrs) > 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgYouMustLoginFirst,
				Errors:  []error{errs.ErrUnauthorized},
			})
			return
		}

		ctx.Set("user", user)
		ctx.Set("user_id", user.ID)
		ctx.Next()
	}
}

// RequireRolesMiddleware gates a route to the given roles. It must run after
// MustAuthenticateMiddleware.
func (rh *RestHandler) RequireRolesMiddleware(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := utils.GetUserFromContext(ctx)
		if user == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgYouMustLoginFirst,
				Errors:  []error{errs.ErrUnauthorized},
			})
			return
		}
		for _, role := range roles {
			if user.Role == role {
				ctx.Next()
				return
			}
		}
		ctx.AbortWithStatusJSON(http.StatusForbidden, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrForbidden},
		})
	}
}
