package handler

import (
	"time"

	"github.com/bagdasarian/project-team-rules/internal/domain"
)

func formatTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func domainUserToHTTP(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.ID,
		PartnerID: user.PartnerID,
		Login:     user.Login,
		Name:      user.Name,
		Email:     user.Email,
		IsActive:  user.IsActive,
		IsShare:   user.IsShare,
		IsManager: user.IsManager,
	}
}

func httpUserToDomain(req CreateUserRequest) *domain.User {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &domain.User{
		Login:     req.Login,
		Name:      req.Name,
		Email:     req.Email,
		IsActive:  active,
		IsShare:   req.IsShare,
		IsManager: req.IsManager,
	}
}

func domainStageToHTTP(stage *domain.Stage) StageResponse {
	return StageResponse{
		StageID:  stage.ID,
		Name:     stage.Name,
		Sequence: stage.Sequence,
		Fold:     stage.Fold,
	}
}

func domainStagesToHTTP(stages []*domain.Stage) []StageResponse {
	result := make([]StageResponse, 0, len(stages))
	for _, stage := range stages {
		result = append(result, domainStageToHTTP(stage))
	}
	return result
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	members := make([]TeamMemberResponse, 0, len(team.Members))
	for _, member := range team.Members {
		members = append(members, TeamMemberResponse{
			UserID:   member.UserID,
			Name:     member.Name,
			IsActive: member.IsActive,
		})
	}

	return TeamResponse{
		TeamID:      team.ID,
		Name:        team.Name,
		Active:      team.Active,
		MemberCount: team.MemberCount,
		Members:     members,
	}
}

func domainTeamsToHTTP(teams []*domain.Team) []TeamResponse {
	result := make([]TeamResponse, 0, len(teams))
	for _, team := range teams {
		result = append(result, domainTeamToHTTP(team))
	}
	return result
}

func domainMembersToHTTP(members []domain.TeamMember) []TeamMemberResponse {
	result := make([]TeamMemberResponse, 0, len(members))
	for _, member := range members {
		result = append(result, TeamMemberResponse{
			UserID:   member.UserID,
			Name:     member.Name,
			IsActive: member.IsActive,
		})
	}
	return result
}

func domainProjectToHTTP(project *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID: project.ID,
		Name:      project.Name,
		Privacy:   string(project.Privacy),
		TeamID:    project.TeamID,
		Active:    project.Active,
		CreatedAt: formatTime(project.CreatedAt),
	}
}

func domainProjectsToHTTP(projects []*domain.Project) []ProjectResponse {
	result := make([]ProjectResponse, 0, len(projects))
	for _, project := range projects {
		result = append(result, domainProjectToHTTP(project))
	}
	return result
}

func httpProjectUpdateToDomain(req UpdateProjectRequest) domain.ProjectUpdate {
	update := domain.ProjectUpdate{
		Name:   req.Name,
		TeamID: req.TeamID,
	}
	if req.Privacy != nil {
		privacy := domain.Privacy(*req.Privacy)
		update.Privacy = &privacy
	}
	return update
}

func domainPartnersToHTTP(partners []domain.Partner) []PartnerResponse {
	result := make([]PartnerResponse, 0, len(partners))
	for _, p := range partners {
		result = append(result, PartnerResponse{
			PartnerID: p.ID,
			Name:      p.Name,
			Email:     p.Email,
		})
	}
	return result
}

func domainTaskToHTTP(task *domain.Task) TaskResponse {
	assignees := task.AssigneeIDs
	if assignees == nil {
		assignees = []int64{}
	}
	return TaskResponse{
		TaskID:      task.ID,
		Name:        task.Name,
		ProjectID:   task.ProjectID,
		StageID:     task.StageID,
		CreatedBy:   task.CreatedBy,
		AssigneeIDs: assignees,
		Active:      task.Active,
		CreatedAt:   formatTime(task.CreatedAt),
	}
}

func domainTasksToHTTP(tasks []*domain.Task) []TaskResponse {
	result := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, domainTaskToHTTP(task))
	}
	return result
}

func stageCountsToHTTP(counts []domain.StageCount) []StageCountResponse {
	result := make([]StageCountResponse, 0, len(counts))
	for _, sc := range counts {
		result = append(result, StageCountResponse{Name: sc.Name, Count: sc.Count})
	}
	return result
}

func domainStatsToHTTP(stats *domain.TaskStatistics) TaskStatisticsResponse {
	assignees := make([]AssigneeStatsResponse, 0, len(stats.Assignees))
	for _, a := range stats.Assignees {
		assignees = append(assignees, AssigneeStatsResponse{
			ID:         a.UserID,
			Name:       a.Name,
			TotalTasks: a.TotalTasks,
			Stages:     stageCountsToHTTP(a.Stages),
		})
	}

	return TaskStatisticsResponse{
		Period:     string(stats.Period),
		TotalTasks: stats.TotalTasks,
		Stages:     stageCountsToHTTP(stats.Stages),
		Assignees:  assignees,
	}
}
