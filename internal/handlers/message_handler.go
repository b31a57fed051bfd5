package handlers

import (
	"propertyHub/internal/errs"
	"propertyHub/internal/models"
	"propertyHub/internal/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

// SendMessage godoc
// @Summary      Send a direct message
// @Description  Sends a message to a user the caller is allowed to reach
// @Tags         messages
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Failure      403  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /api/messages [post]
func (rh *RestHandler) SendMessage(ctx *gin.Context) {
	sender := utils.GetUserFromContext(ctx)

	var body models.SendMessageRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	message, sendErrs := rh.messagingService.Send(sender, body.ReceiverID, body.Content)
	if len(sendErrs) > 0 {
		rh.abortWithErrors(ctx, sendErrs)
		return
	}

	rh.created(ctx, message)
}

// GetMessagesBetween godoc
// @Summary      List the transcript with one peer
// @Description  Returns messages between the caller and user_id, oldest first
// @Tags         messages
// @Produce      json
// @Param        user_id  query  int  true   "peer user id"
// @Param        limit    query  int  false  "page size (max 500)"
// @Param        offset   query  int  false  "rows to skip"
// @Success      200  {object}  models.Response
// @Failure      403  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /api/messages [get]
func (rh *RestHandler) GetMessagesBetween(ctx *gin.Context) {
	viewer := utils.GetUserFromContext(ctx)

	peerID, err := strconv.Atoi(ctx.Query("user_id"))
	if err != nil || peerID < 1 {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	offset, _ := strconv.Atoi(ctx.Query("offset"))

	messages, listErrs := rh.messagingService.ListBetween(viewer, uint(peerID), limit, offset)
	if len(listErrs) > 0 {
		rh.abortWithErrors(ctx, listErrs)
		return
	}

	rh.ok(ctx, messages)
}

// MarkMessagesRead godoc
// @Summary      Mark a peer's messages read
// @Description  Marks every unread message from the given sender as read
// @Tags         messages
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      403  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /api/messages/read [put]
func (rh *RestHandler) MarkMessagesRead(ctx *gin.Context) {
	viewer := utils.GetUserFromContext(ctx)

	var body models.MarkReadRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil || body.From == 0 {
		rh.abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	count, markErrs := rh.messagingService.MarkRead(viewer, body.From)
	if len(markErrs) > 0 {
		rh.abortWithErrors(ctx, markErrs)
		return
	}

	rh.ok(ctx, models.MarkReadResponse{ModifiedCount: count})
}

// GetConversations godoc
// @Summary      List conversations
// @Description  One entry per counterpart with the latest message exchanged
// @Tags         messages
// @Produce      json
// @Success      200  {object}  models.Response
// @Router       /api/messages/conversations [get]
func (rh *RestHandler) GetConversations(ctx *gin.Context) {
	viewer := utils.GetUserFromContext(ctx)

	conversations, listErrs := rh.messagingService.ListConversations(viewer)
	if len(listErrs) > 0 {
		rh.abortWithErrors(ctx, listErrs)
		return
	}

	rh.ok(ctx, conversations)
}

// GetUnreadCount godoc
// @Summary      Count unread messages
// @Tags         messages
// @Produce      json
// @Success      200  {object}  models.Response
// @Router       /api/messages/unread-count [get]
func (rh *RestHandler) GetUnreadCount(ctx *gin.Context) {
	viewer := utils.GetUserFromContext(ctx)

	count, countErrs := rh.messagingService.UnreadCount(viewer)
	if len(countErrs) > 0 {
		rh.abortWithErrors(ctx, countErrs)
		return
	}

	rh.ok(ctx, models.UnreadCountResponse{UnreadCount: count})
}
