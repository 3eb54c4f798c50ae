package domain

// ProjectAccess - данные, необходимые для проверки видимости проекта
type ProjectAccess struct {
	Project            Project
	TeamMemberIDs      []int64
	FollowerPartnerIDs []int64
}

// CanSeeProject: менеджер видит всё; подписка и членство в команде - независимые
// основания, достаточно любого из них.
func (c Caller) CanSeeProject(a ProjectAccess) bool {
	if c.IsManager {
		return true
	}
	if containsID(a.FollowerPartnerIDs, c.PartnerID) {
		return true
	}
	switch a.Project.Privacy {
	case PrivacyTeam:
		return a.Project.TeamID != nil && containsID(a.TeamMemberIDs, c.UserID)
	case PrivacyEmployees:
		return !c.IsShare
	default:
		return false
	}
}

// CanSeeTask: автор и исполнители видят задачу даже без доступа к проекту.
// project == nil означает, что у задачи нет проекта.
func (c Caller) CanSeeTask(t Task, project *ProjectAccess) bool {
	if c.IsManager {
		return true
	}
	if t.CreatedBy == c.UserID || t.IsAssignee(c.UserID) {
		return true
	}
	if t.ProjectID == nil || project == nil {
		return false
	}
	return c.CanSeeProject(*project)
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
