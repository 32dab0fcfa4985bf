package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/supplier_orders/internal/domain"
)

// ErrInvalidStatus - базовая (sentinel error) ошибка для неизвестного статуса выполнения.
var ErrInvalidStatus = errors.New("invalid fulfillment status")

// apiStatuses - значения, которые принимает бэкенд.
var apiStatuses = map[domain.FulfillmentStatus]struct{}{
	domain.StatusPending:    {},
	domain.StatusConfirmed:  {},
	domain.StatusProcessing: {},
	domain.StatusShipped:    {},
	domain.StatusDelivered:  {},
	domain.StatusCancelled:  {},
	domain.StatusReturned:   {},
}

// uiToAPI - таблица сопоставления статусов из панели со статусами бэкенда.
// Не 1:1: «confirmed» в панели отправляется как «processing».
var uiToAPI = map[string]domain.FulfillmentStatus{
	"pending":    domain.StatusPending,
	"confirmed":  domain.StatusProcessing,
	"processing": domain.StatusProcessing,
	"shipped":    domain.StatusShipped,
	"delivered":  domain.StatusDelivered,
	"cancelled":  domain.StatusCancelled,
	"returned":   domain.StatusReturned,
}

// FulfillmentStatus проверяет статус, уходящий в PUT .../fulfillment.
func FulfillmentStatus(s domain.FulfillmentStatus) error {
	if _, ok := apiStatuses[s]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
	}
	return nil
}

// ToAPIStatus переводит статус, выбранный в панели, в значение для бэкенда.
func ToAPIStatus(ui string) (domain.FulfillmentStatus, error) {
	s, ok := uiToAPI[strings.ToLower(strings.TrimSpace(ui))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, ui)
	}
	return s, nil
}

// StatusFilter проверяет фильтр списка; пустая строка означает «без фильтра».
func StatusFilter(s string) error {
	if s == "" {
		return nil
	}
	return FulfillmentStatus(domain.FulfillmentStatus(s))
}
