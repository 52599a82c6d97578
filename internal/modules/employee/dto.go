package employee

type CreateEmployeeRequest struct {
	Name     string `json:"name" binding:"required"`
	DNI      string `json:"dni" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}
