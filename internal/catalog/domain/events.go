package domain

type ProductCreated struct {
	ProductID    int64
	Name         string
	DepartmentID int64
}

type DepartmentCreated struct {
	DepartmentID int64
	Name         string
}
