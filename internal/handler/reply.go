package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/threadhub-dev/threadhub/internal/domain"
	"github.com/threadhub-dev/threadhub/internal/errors"
	"github.com/threadhub-dev/threadhub/internal/middleware"
	"github.com/threadhub-dev/threadhub/internal/utils"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{Message: "Please sign-in", StatusCode: http.StatusUnauthorized})
		return
	}
	vars := mux.Vars(r)
	threadId := domain.ThreadId(vars["thread_id"])
	commentId := domain.CommentId(vars["comment_id"])

	var payload domain.NewReplyPayload
	if err := utils.Decode(r.Body, &payload); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	created, err := h.reply.Create(user.Id, threadId, commentId, payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, map[string]any{"addedReply": created})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{Message: "Please sign-in", StatusCode: http.StatusUnauthorized})
		return
	}
	vars := mux.Vars(r)
	threadId := domain.ThreadId(vars["thread_id"])
	commentId := domain.CommentId(vars["comment_id"])
	replyId := domain.ReplyId(vars["reply_id"])

	if err := h.reply.Delete(user.Id, threadId, commentId, replyId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}
