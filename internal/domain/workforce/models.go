package workforce

// Models lists the tables of the billing application; parents come first.
func Models() []interface{} {
	return []interface{}{
		&User{},
		&Vendor{},
		&EmployeeVendor{},
		&Timesheet{},
		&Invoice{},
		&InvoiceItem{},
		&Payment{},
	}
}
