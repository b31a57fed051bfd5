package handlers

import (
	"propertyHub/internal/errs"
	"propertyHub/internal/models"
	"propertyHub/internal/msgs"
	"propertyHub/internal/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (rh *RestHandler) GetAllUsers(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	if err != nil || size < 1 {
		size = 10
	}

	response, listErrs := rh.authService.GetAllUsersWithPagination(page, size)
	if len(listErrs) > 0 {
		rh.abortWithErrors(ctx, listErrs)
		return
	}
	rh.ok(ctx, response)
}

func (rh *RestHandler) GetMyProfile(ctx *gin.Context) {
	user := utils.GetUserFromContext(ctx)
	rh.ok(ctx, user.ToUserResponse())
}

func (rh *RestHandler) UpdateMyProfile(ctx *gin.Context) {
	user := utils.GetUserFromContext(ctx)

	var request models.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}
	request.ID = user.ID
	// A user cannot change their own role.
	request.Role = nil

	updated, updateErrs := rh.authService.UpdateUser(&request)
	if len(updateErrs) > 0 {
		rh.abortWithErrors(ctx, updateErrs)
		return
	}
	rh.ok(ctx, updated)
}

func (rh *RestHandler) GetSingleUser(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id < 1 {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	user, userErrs := rh.authService.GetUserByID(uint(id))
	if len(userErrs) > 0 {
		rh.abortWithErrors(ctx, userErrs)
		return
	}
	rh.ok(ctx, user.ToUserResponse())
}

func (rh *RestHandler) UpdateUser(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id < 1 {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	var request models.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}
	request.ID = uint(id)

	updated, updateErrs := rh.authService.UpdateUser(&request)
	if len(updateErrs) > 0 {
		rh.abortWithErrors(ctx, updateErrs)
		return
	}
	rh.ok(ctx, updated)
}

func (rh *RestHandler) DeleteUser(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id < 1 {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	if deleteErrs := rh.authService.DeleteUser(uint(id)); len(deleteErrs) > 0 {
		rh.abortWithErrors(ctx, deleteErrs)
		return
	}
	ctx.JSON(200, models.Response{
		Success: true,
		Message: msgs.MsgUserDeleted,
	})
}

// GetLandlordTenants lists the distinct tenants assigned to the calling
// landlord's properties.
func (rh *RestHandler) GetLandlordTenants(ctx *gin.Context) {
	landlord := utils.GetUserFromContext(ctx)

	tenants, listErrs := rh.propertyService.GetLandlordTenants(landlord)
	if len(listErrs) > 0 {
		rh.abortWithErrors(ctx, listErrs)
		return
	}
	rh.ok(ctx, tenants)
}
