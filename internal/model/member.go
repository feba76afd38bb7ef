package model

import (
	"strconv"

	"github.com/deppfellow/boardhub/internal/validation"
)

// BoardParams identifies a board from the :id path parameter.
//
// The id is kept as a string so a malformed value is reported as a
// validation failure rather than a bind error. Signed ids are accepted;
// a negative id simply matches no board.
type BoardParams struct {
	ID string `param:"id" json:"-" validate:"required,numeric"`
}

// BoardID returns the parsed board id. Only meaningful after Validate succeeds.
func (p BoardParams) BoardID() int64 {
	id, _ := strconv.ParseInt(p.ID, 10, 64)
	return id
}

func (p BoardParams) validateID() error {
	if _, err := strconv.ParseInt(p.ID, 10, 64); err != nil {
		return validation.CustomValidationErrors{{Field: "id", Message: "must be a number"}}
	}
	return nil
}

// ListMembersPayload is the input of GET /boards/:id/members.
type ListMembersPayload struct {
	BoardParams
}

func (p *ListMembersPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	return p.validateID()
}

// UpdateMemberRolePayload is the input of PUT|PATCH /boards/:id/members.
//
// Role is only checked for presence here; registry membership is a
// domain rule enforced by the member service.
type UpdateMemberRolePayload struct {
	BoardParams
	Member string `json:"member" validate:"required,uuid"`
	Role   string `json:"role" validate:"required"`
}

func (p *UpdateMemberRolePayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	return p.validateID()
}

// DeleteMemberPayload is the input of DELETE /boards/:id/members.
type DeleteMemberPayload struct {
	BoardParams
	Member string `json:"member" validate:"required,uuid"`
}

func (p *DeleteMemberPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	return p.validateID()
}
