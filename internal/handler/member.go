package handler

import (
	"github.com/deppfellow/boardhub/internal/model"
	"github.com/deppfellow/boardhub/internal/response"
	"github.com/deppfellow/boardhub/internal/server"
	"github.com/deppfellow/boardhub/internal/service"
	"github.com/labstack/echo/v4"
)

// MemberHandler serves /boards/:id/members.
type MemberHandler struct {
	Handler
	service *service.MemberService
}

func NewMemberHandler(s *server.Server, memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{
		Handler: NewHandler(s),
		service: memberService,
	}
}

// ListMembers responds with the bare member array, not an envelope.
// A board that does not exist is encoded as null.
func (h *MemberHandler) ListMembers(c echo.Context, req *model.ListMembersPayload) ([]model.Member, error) {
	return h.service.ListMembers(c.Request().Context(), req)
}

func (h *MemberHandler) UpdateMemberRole(c echo.Context, req *model.UpdateMemberRolePayload) (response.Envelope, error) {
	if err := h.service.UpdateMemberRole(c.Request().Context(), req); err != nil {
		return response.Envelope{}, err
	}
	return response.Success(service.MessageRoleUpdated), nil
}

func (h *MemberHandler) DeleteMember(c echo.Context, req *model.DeleteMemberPayload) (response.Envelope, error) {
	if err := h.service.DeleteMember(c.Request().Context(), req); err != nil {
		return response.Envelope{}, err
	}
	return response.Success(service.MessageMemberDelete), nil
}
