package domain

// Customer — клиент CRM. После создания запись неизменяема:
// ID выдаёт генератор идентификаторов, Name фиксируется при добавлении.
type Customer struct {
	// ID — уникальный положительный идентификатор, настоящий ключ записи.
	ID int64
	// Name — имя клиента; уникальность не гарантируется.
	Name string
}

// Order представляет заказ клиента. Бизнес-полей у заказа нет,
// это запись-связка для витрины customer -> orders.
type Order struct {
	// ID — порядковый номер заказа в рамках одного клиента, начиная с 1.
	// Глобальной уникальности нет и не требуется.
	ID int64
	// CustomerID — идентификатор клиента-владельца; заказ не живёт без клиента.
	CustomerID int64
}
