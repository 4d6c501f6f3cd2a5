package request

// SetGrantRequest は直接共有の設定リクエストです
// access に none を指定すると共有を取り消します
type SetGrantRequest struct {
	SubjectType string `json:"subjectType" validate:"required,subject_type"`
	SubjectID   string `json:"subjectId" validate:"required,uuid"`
	Access      string `json:"access" validate:"required,access_level"`
}

// SetRoomMemberRequest はルームメンバーの設定リクエストです
type SetRoomMemberRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
	Access string `json:"access" validate:"required,access_level"`
}

// AddGroupMemberRequest はグループメンバー追加リクエストです
// role を省略すると member として追加します
type AddGroupMemberRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
	Role   string `json:"role" validate:"omitempty,oneof=member manager"`
}
