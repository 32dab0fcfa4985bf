package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/supplier_orders/internal/domain"
)

// ErrInvalidChange - строка пакетного файла не прошла проверку.
var ErrInvalidChange = errors.New("invalid status change")

// StatusChange - одна запись пакетной смены статусов: позиция заказа и статус из панели.
type StatusChange struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ParsedChange - проверенная запись с уже сопоставленным статусом бэкенда.
type ParsedChange struct {
	ID     string
	Status domain.FulfillmentStatus
}

// ParseStatusChange разбирает и проверяет одну запись.
// Лишние поля и хвостовые данные считаются ошибкой.
func ParseStatusChange(raw []byte) (ParsedChange, error) {
	var change StatusChange
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&change); err != nil {
		return ParsedChange{}, fmt.Errorf("%w: invalid json: %v", ErrInvalidChange, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return ParsedChange{}, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidChange)
	}

	id := strings.TrimSpace(change.ID)
	if id == "" {
		return ParsedChange{}, fmt.Errorf("%w: id обязателен", ErrInvalidChange)
	}
	status, err := ToAPIStatus(change.Status)
	if err != nil {
		return ParsedChange{}, fmt.Errorf("%w: %w", ErrInvalidChange, err)
	}
	return ParsedChange{ID: id, Status: status}, nil
}
