package domain

import "time"

type User struct {
	ID        int64
	PartnerID int64
	Login     string
	Name      string
	Email     string
	IsActive  bool
	IsShare   bool
	IsManager bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Partner - контакт пользователя; подписчики проектов хранятся как партнеры
type Partner struct {
	ID    int64
	Name  string
	Email string
}
