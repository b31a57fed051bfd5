package handlers

import (
	"propertyHub/internal/errs"
	"propertyHub/internal/models"
	"propertyHub/internal/msgs"
	"propertyHub/internal/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (rh *RestHandler) UploadFile(ctx *gin.Context) {
	uploader := utils.GetUserFromContext(ctx)

	file, err := ctx.FormFile("file")
	if err != nil {
		rh.abortWithErrors(ctx, []error{errs.ErrNoFileUploaded})
		return
	}

	var body models.UploadFileRequestBody
	if err := ctx.ShouldBind(&body); err != nil {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidRequest})
		return
	}

	src, err := file.Open()
	if err != nil {
		rh.abortWithErrors(ctx, []error{errs.ErrUnableToOpenUploadedFile})
		return
	}
	defer src.Close()

	stored, uploadErrs := rh.fileService.UploadFile(
		uploader,
		file.Filename,
		src,
		file.Size,
		file.Header.Get("Content-Type"),
		&body,
	)
	if len(uploadErrs) > 0 {
		rh.abortWithErrors(ctx, uploadErrs)
		return
	}
	rh.created(ctx, stored)
}

func (rh *RestHandler) ListFiles(ctx *gin.Context) {
	viewer := utils.GetUserFromContext(ctx)

	files, listErrs := rh.fileService.ListFiles(viewer)
	if len(listErrs) > 0 {
		rh.abortWithErrors(ctx, listErrs)
		return
	}
	rh.ok(ctx, files)
}

func (rh *RestHandler) DeleteFile(ctx *gin.Context) {
	viewer := utils.GetUserFromContext(ctx)

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id < 1 {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	if deleteErrs := rh.fileService.DeleteFile(viewer, uint(id)); len(deleteErrs) > 0 {
		rh.abortWithErrors(ctx, deleteErrs)
		return
	}
	ctx.JSON(200, models.Response{
		Success: true,
		Message: msgs.MsgFileDeleted,
	})
}
