package dashboard

type EmployeeCount struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Count        int64  `json:"count"`
}

type Summary struct {
	Income         float64          `json:"income"`
	Expenses       float64          `json:"expenses"`
	Balance        float64          `json:"balance"`
	WorkOrderCount int64            `json:"work_order_count"`
	ByEmployee     []EmployeeCount  `json:"by_employee"`
	ByStatus       map[string]int64 `json:"by_status"`
}
