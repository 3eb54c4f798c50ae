package handler

import "encoding/json"

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateUserRequest struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsManager bool   `json:"is_manager"`
	IsShare   bool   `json:"is_share"`
	IsActive  *bool  `json:"is_active"`
}

type UserResponse struct {
	UserID    int64  `json:"user_id"`
	PartnerID int64  `json:"partner_id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	IsActive  bool   `json:"is_active"`
	IsShare   bool   `json:"is_share"`
	IsManager bool   `json:"is_manager"`
}

type StageRequest struct {
	Name     string `json:"name"`
	Sequence int    `json:"sequence"`
	Fold     bool   `json:"fold"`
}

type StageResponse struct {
	StageID  int64  `json:"stage_id"`
	Name     string `json:"name"`
	Sequence int    `json:"sequence"`
	Fold     bool   `json:"fold"`
}

type TeamRequest struct {
	Name      string  `json:"name"`
	MemberIDs []int64 `json:"member_ids"`
}

type RenameTeamRequest struct {
	Name string `json:"name"`
}

type SetMembersRequest struct {
	MemberIDs []int64 `json:"member_ids"`
}

type AddMemberRequest struct {
	UserID int64 `json:"user_id"`
}

type TeamMemberResponse struct {
	UserID   int64  `json:"user_id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type TeamResponse struct {
	TeamID      int64                `json:"team_id"`
	Name        string               `json:"name"`
	Active      bool                 `json:"active"`
	MemberCount int                  `json:"member_count"`
	Members     []TeamMemberResponse `json:"members"`
}

type ProjectRequest struct {
	Name    string `json:"name"`
	Privacy string `json:"privacy"`
	TeamID  *int64 `json:"team_id"`
}

type UpdateProjectRequest struct {
	Name    *string `json:"name"`
	Privacy *string `json:"privacy"`
	TeamID  *int64  `json:"team_id"`
}

type ProjectResponse struct {
	ProjectID int64   `json:"project_id"`
	Name      string  `json:"name"`
	Privacy   string  `json:"privacy"`
	TeamID    *int64  `json:"team_id"`
	Active    bool    `json:"active"`
	CreatedAt *string `json:"createdAt,omitempty"`
}

type FollowerRequest struct {
	PartnerID int64 `json:"partner_id"`
}

type PartnerResponse struct {
	PartnerID int64  `json:"partner_id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
}

type TaskRequest struct {
	Name        string  `json:"name"`
	ProjectID   *int64  `json:"project_id"`
	StageID     *int64  `json:"stage_id"`
	AssigneeIDs []int64 `json:"assignee_ids"`
}

// ChangeProjectRequest: project_id обязателен, null снимает проект
type ChangeProjectRequest struct {
	ProjectID OptionalID `json:"project_id"`
}

// OptionalID отличает отсутствующее поле от явного null
type OptionalID struct {
	Present bool
	Value   *int64
}

func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

type SetAssigneesRequest struct {
	AssigneeIDs []int64 `json:"assignee_ids"`
}

type TaskResponse struct {
	TaskID      int64   `json:"task_id"`
	Name        string  `json:"name"`
	ProjectID   *int64  `json:"project_id"`
	StageID     *int64  `json:"stage_id"`
	CreatedBy   int64   `json:"created_by"`
	AssigneeIDs []int64 `json:"assignee_ids"`
	Active      bool    `json:"active"`
	CreatedAt   *string `json:"createdAt,omitempty"`
}

type StageCountResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type AssigneeStatsResponse struct {
	ID         int64                `json:"id"`
	Name       string               `json:"name"`
	TotalTasks int                  `json:"total_tasks"`
	Stages     []StageCountResponse `json:"stages"`
}

type TaskStatisticsResponse struct {
	Period     string                  `json:"period"`
	TotalTasks int                     `json:"total_tasks"`
	Stages     []StageCountResponse    `json:"stages"`
	Assignees  []AssigneeStatsResponse `json:"assignees"`
}
