package domain

// Caller - тот, от чьего имени выполняется запрос.
// Передается явно в каждую операцию политики видимости и статистики.
type Caller struct {
	UserID    int64
	PartnerID int64
	Name      string
	IsManager bool
	IsShare   bool
}

func CallerFromUser(u *User) Caller {
	return Caller{
		UserID:    u.ID,
		PartnerID: u.PartnerID,
		Name:      u.Name,
		IsManager: u.IsManager,
		IsShare:   u.IsShare,
	}
}

// RequireManager возвращает ACCESS_DENIED, если у вызывающего нет прав менеджера
func (c Caller) RequireManager(action string) error {
	if !c.IsManager {
		return NewAccessError("manager capability required to %s", action)
	}
	return nil
}
