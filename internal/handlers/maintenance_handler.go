package handlers

import (
	"propertyHub/internal/errs"
	"propertyHub/internal/models"
	"propertyHub/internal/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (rh *RestHandler) CreateMaintenanceRequest(ctx *gin.Context) {
	creator := utils.GetUserFromContext(ctx)

	var body models.CreateMaintenanceRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	request, createErrs := rh.maintenanceService.CreateRequest(creator, &body)
	if len(createErrs) > 0 {
		rh.abortWithErrors(ctx, createErrs)
		return
	}
	rh.created(ctx, request)
}

func (rh *RestHandler) ListMaintenanceRequests(ctx *gin.Context) {
	viewer := utils.GetUserFromContext(ctx)

	requests, listErrs := rh.maintenanceService.ListRequests(viewer)
	if len(listErrs) > 0 {
		rh.abortWithErrors(ctx, listErrs)
		return
	}
	rh.ok(ctx, requests)
}

func (rh *RestHandler) GetMaintenanceRequest(ctx *gin.Context) {
	viewer := utils.GetUserFromContext(ctx)

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id < 1 {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	request, getErrs := rh.maintenanceService.GetRequest(viewer, uint(id))
	if len(getErrs) > 0 {
		rh.abortWithErrors(ctx, getErrs)
		return
	}
	rh.ok(ctx, request)
}

func (rh *RestHandler) UpdateMaintenanceStatus(ctx *gin.Context) {
	viewer := utils.GetUserFromContext(ctx)

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id < 1 {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	var body models.UpdateMaintenanceStatusRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	request, updateErrs := rh.maintenanceService.UpdateStatus(viewer, uint(id), &body)
	if len(updateErrs) > 0 {
		rh.abortWithErrors(ctx, updateErrs)
		return
	}
	rh.ok(ctx, request)
}
