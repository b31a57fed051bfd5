package handlers

import (
	"propertyHub/internal/errs"
	"propertyHub/internal/models"
	"propertyHub/internal/msgs"
	"propertyHub/internal/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (rh *RestHandler) CreateProperty(ctx *gin.Context) {
	creator := utils.GetUserFromContext(ctx)

	var body models.CreatePropertyRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	property, createErrs := rh.propertyService.CreateProperty(creator, &body)
	if len(createErrs) > 0 {
		rh.abortWithErrors(ctx, createErrs)
		return
	}
	rh.created(ctx, property)
}

func (rh *RestHandler) GetProperties(ctx *gin.Context) {
	viewer := utils.GetUserFromContext(ctx)

	properties, listErrs := rh.propertyService.GetProperties(viewer)
	if len(listErrs) > 0 {
		rh.abortWithErrors(ctx, listErrs)
		return
	}
	rh.ok(ctx, properties)
}

func (rh *RestHandler) GetProperty(ctx *gin.Context) {
	viewer := utils.GetUserFromContext(ctx)

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id < 1 {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	property, getErrs := rh.propertyService.GetProperty(viewer, uint(id))
	if len(getErrs) > 0 {
		rh.abortWithErrors(ctx, getErrs)
		return
	}
	rh.ok(ctx, property)
}

func (rh *RestHandler) UpdateProperty(ctx *gin.Context) {
	viewer := utils.GetUserFromContext(ctx)

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id < 1 {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	var body models.UpdatePropertyRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	property, updateErrs := rh.propertyService.UpdateProperty(viewer, uint(id), &body)
	if len(updateErrs) > 0 {
		rh.abortWithErrors(ctx, updateErrs)
		return
	}
	rh.ok(ctx, property)
}

func (rh *RestHandler) DeleteProperty(ctx *gin.Context) {
	viewer := utils.GetUserFromContext(ctx)

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id < 1 {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	if deleteErrs := rh.propertyService.DeleteProperty(viewer, uint(id)); len(deleteErrs) > 0 {
		rh.abortWithErrors(ctx, deleteErrs)
		return
	}
	ctx.JSON(200, models.Response{
		Success: true,
		Message: msgs.MsgPropertyDeleted,
	})
}

func (rh *RestHandler) AssignTenant(ctx *gin.Context) {
	viewer := utils.GetUserFromContext(ctx)

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id < 1 {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	var body models.AssignTenantRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil || body.TenantID == 0 {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	property, assignErrs := rh.propertyService.AssignTenant(viewer, uint(id), body.TenantID)
	if len(assignErrs) > 0 {
		rh.abortWithErrors(ctx, assignErrs)
		return
	}
	rh.ok(ctx, property)
}
