package models

// All returns every model for schema migration, parents before dependents.
func All() []interface{} {
	return []interface{}{
		&Customer{},
		&Vehicle{},
		&Mechanic{},
		&Part{},
		&Service{},
		&Order{},
		&OrderStatus{},
		&OrderService{},
		&OrderPart{},
		&Invoice{},
		&Payment{},
		&Notification{},
		&User{},
	}
}
