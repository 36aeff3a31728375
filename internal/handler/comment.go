package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/threadhub-dev/threadhub/internal/domain"
	"github.com/threadhub-dev/threadhub/internal/errors"
	"github.com/threadhub-dev/threadhub/internal/middleware"
	"github.com/threadhub-dev/threadhub/internal/utils"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{Message: "Please sign-in", StatusCode: http.StatusUnauthorized})
		return
	}
	threadId := domain.ThreadId(mux.Vars(r)["thread_id"])

	var payload domain.NewCommentPayload
	if err := utils.Decode(r.Body, &payload); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	created, err := h.comment.Create(user.Id, threadId, payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, map[string]any{"addedComment": created})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{Message: "Please sign-in", StatusCode: http.StatusUnauthorized})
		return
	}
	vars := mux.Vars(r)
	threadId := domain.ThreadId(vars["thread_id"])
	commentId := domain.CommentId(vars["comment_id"])

	if err := h.comment.Delete(user.Id, threadId, commentId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}

// ToggleCommentLike likes the comment for the requesting user, or removes
// the like when it already exists.
func (h *Handler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{Message: "Please sign-in", StatusCode: http.StatusUnauthorized})
		return
	}
	vars := mux.Vars(r)
	threadId := domain.ThreadId(vars["thread_id"])
	commentId := domain.CommentId(vars["comment_id"])

	if err := h.comment.ToggleLike(user.Id, threadId, commentId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}
