package intake

// Models lists the tables of the public intake site in migration order.
func Models() []interface{} {
	return []interface{}{
		&User{},
		&Contact{},
		&Application{},
	}
}
