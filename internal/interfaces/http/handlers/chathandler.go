package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	chatdto "github.com/darna-inc/darna/internal/application/chat/dto"
	"github.com/darna-inc/darna/internal/application/chat/usecases"
	"github.com/darna-inc/darna/internal/shared/logger"
	"github.com/darna-inc/darna/internal/shared/utils"
)

type ChatHandler struct {
	sendUC         sendMessageUseCase
	conversationUC conversationUseCase
	inboxUC        inboxUseCase
	markReadUC     markReadUseCase
	logger         logger.Interface
}

func NewChatHandler(
	sendUC sendMessageUseCase,
	conversationUC conversationUseCase,
	inboxUC inboxUseCase,
	markReadUC markReadUseCase,
	logger logger.Interface,
) *ChatHandler {
	return &ChatHandler{
		sendUC:         sendUC,
		conversationUC: conversationUC,
		inboxUC:        inboxUC,
		markReadUC:     markReadUC,
		logger:         logger,
	}
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	who, err := currentCaller(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req chatdto.SendMessageRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.sendUC.Execute(c.Request.Context(), usecases.SendMessageCommand{
		SenderID:   who.ID,
		ReceiverID: req.ReceiverID,
		PropertyID: req.PropertyID,
		Content:    req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message sent")
}

func (h *ChatHandler) GetConversation(c *gin.Context) {
	who, err := currentCaller(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	otherID, err := parseIDParam(c, "sender_id", "sender")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	p := utils.ParsePagination(c)

	result, err := h.conversationUC.Execute(c.Request.Context(), usecases.ConversationQuery{
		UserID:  who.ID,
		OtherID: otherID,
		Offset:  p.Offset,
		Limit:   p.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ChatHandler) GetInbox(c *gin.Context) {
	who, err := currentCaller(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	p := utils.ParsePagination(c)

	result, err := h.inboxUC.Execute(c.Request.Context(), usecases.InboxQuery{
		UserID: who.ID,
		Offset: p.Offset,
		Limit:  p.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ChatHandler) MarkRead(c *gin.Context) {
	who, err := currentCaller(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	senderID, err := parseIDParam(c, "sender_id", "sender")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markReadUC.Execute(c.Request.Context(), who.ID, senderID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
