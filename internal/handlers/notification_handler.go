package handlers

import (
	"propertyHub/internal/utils"

	"github.com/gin-gonic/gin"
)

func (rh *RestHandler) GetNotifications(ctx *gin.Context) {
	notifications, listErrs := rh.notificationService.GetLatest()
	if len(listErrs) > 0 {
		rh.abortWithErrors(ctx, listErrs)
		return
	}
	rh.ok(ctx, notifications)
}

func (rh *RestHandler) GetMyNotifications(ctx *gin.Context) {
	viewer := utils.GetUserFromContext(ctx)

	notifications, listErrs := rh.notificationService.GetForUser(viewer.ID)
	if len(listErrs) > 0 {
		rh.abortWithErrors(ctx, listErrs)
		return
	}
	rh.ok(ctx, notifications)
}
