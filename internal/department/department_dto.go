package department

type DepartmentResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
