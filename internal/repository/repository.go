// Package repository описывает границу хранилища для сервисного слоя
package repository

import (
	"context"
	"errors"
)

// ErrNotFound возвращается, когда запись с указанным идентификатором отсутствует
var ErrNotFound = errors.New("record not found")

// TxManager выполняет функцию внутри транзакции.
// Вложенные вызовы переиспользуют уже открытую транзакцию из контекста.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	// WithinReadTx открывает read-only транзакцию с единым снимком данных
	WithinReadTx(ctx context.Context, fn func(ctx context.Context) error) error
}
