package domain

import "errors"

var (
	// ErrCustomerNameRequired — попытка создать клиента с пустым именем.
	ErrCustomerNameRequired = errors.New("customer name is required")
	// ErrCustomerNotFound возвращается, если клиент не найден в хранилище.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrAmbiguousCustomerID сигнализирует о нарушении инварианта уникальности:
	// по одному идентификатору нашлось больше одного клиента. Это баг хранилища
	// или генератора идентификаторов, а не пользовательская ошибка.
	ErrAmbiguousCustomerID = errors.New("ambiguous customer id: more than one match")
)

// IsNotFound проверяет, является ли ошибка отсутствием клиента.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCustomerNotFound)
}

// IsInvariantViolation проверяет, является ли ошибка нарушением
// инварианта уникальности идентификаторов.
func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrAmbiguousCustomerID)
}
