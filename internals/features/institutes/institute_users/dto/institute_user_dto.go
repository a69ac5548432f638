// file: internals/features/institutes/institute_users/dto/institute_user_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	iuModel "institutku_backend/internals/features/institutes/institute_users/model"
)

/* ===================== REQUESTS ===================== */

type GrantRoleRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Role   string    `json:"role" validate:"required,oneof=admin teacher parent student"`
}

func (r *GrantRoleRequest) ToModel(instituteID uuid.UUID) *iuModel.InstituteUserModel {
	return &iuModel.InstituteUserModel{
		InstituteUserInstituteID: instituteID,
		InstituteUserUserID:      r.UserID,
		InstituteUserRole:        strings.ToLower(strings.TrimSpace(r.Role)),
	}
}

/* ===================== RESPONSES ===================== */

type InstituteUserResponse struct {
	InstituteUserID uuid.UUID `json:"institute_user_id"`
	InstituteID     uuid.UUID `json:"institute_id"`
	UserID          uuid.UUID `json:"user_id"`
	UserName        string    `json:"user_name"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	IsActive        bool      `json:"is_active"`
}
