package company

type Company struct {
	ID   string
	Name string
	CNPJ string
}
